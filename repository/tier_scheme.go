package repository

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"techimpact/domain"
)

// TierScheme is the on-disk form of a penalty scheme preset:
//
//	tiers:
//	  - threshold: "0%"
//	    penalty: 5
//	  - threshold: "0.1% - 0.5%"
//	    penalty: 10
type TierScheme struct {
	Tiers []domain.TierRow `yaml:"tiers"`
}

// LoadTierScheme reads a YAML preset. An empty path yields no rows.
func LoadTierScheme(path string) ([]domain.TierRow, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read tier scheme %s", path)
	}
	var scheme TierScheme
	if err := yaml.Unmarshal(data, &scheme); err != nil {
		return nil, errors.Wrapf(err, "parse tier scheme %s", path)
	}
	if len(scheme.Tiers) == 0 {
		return nil, errors.Errorf("tier scheme %s has no tiers", path)
	}
	return scheme.Tiers, nil
}
