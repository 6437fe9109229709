package service

import (
	"errors"
	"strings"

	"go.uber.org/multierr"

	"techimpact/domain"
)

// ErrInvalidTiers marks a penalty scheme that cannot be evaluated.
var ErrInvalidTiers = errors.New("invalid tiers")

// ValidationError carries every failed rule of an input check.
type ValidationError struct {
	Result domain.ValidationResult
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Result.Errors, "; ")
}

// TierError is returned when the penalty scheme itself is unusable.
type TierError struct {
	Result domain.ValidationResult
}

func (e *TierError) Error() string {
	return "invalid tiers: " + strings.Join(e.Result.Errors, "; ")
}

func (e *TierError) Is(target error) bool { return target == ErrInvalidTiers }

// rules accumulates failed checks and warnings in evaluation order.
type rules struct {
	err      error
	warnings []string
}

func (r *rules) fail(msg string) {
	r.err = multierr.Append(r.err, errors.New(msg))
}

func (r *rules) failIf(cond bool, msg string) {
	if cond {
		r.fail(msg)
	}
}

func (r *rules) warnIf(cond bool, msg string) {
	if cond {
		r.warnings = append(r.warnings, msg)
	}
}

func (r *rules) result() domain.ValidationResult {
	errs := multierr.Errors(r.err)
	res := domain.ValidationResult{
		Valid:    len(errs) == 0,
		Errors:   make([]string, 0, len(errs)),
		Warnings: r.warnings,
	}
	for _, err := range errs {
		res.Errors = append(res.Errors, err.Error())
	}
	if res.Warnings == nil {
		res.Warnings = []string{}
	}
	return res
}
