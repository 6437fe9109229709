package service

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"techimpact/repository"
)

// PartialService loads shared page fragments once per path. Concurrent
// loads of the same path share a single fetch; failures are not cached.
type PartialService struct {
	source repository.PartialSource
	log    zerolog.Logger

	group singleflight.Group
	mu    sync.RWMutex
	cache map[string]string
}

func NewPartialService(source repository.PartialSource, log zerolog.Logger) *PartialService {
	return &PartialService{
		source: source,
		log:    log.With().Str("component", "partials").Logger(),
		cache:  make(map[string]string),
	}
}

// Load returns the partial at path, or fallback markup if it cannot be fetched.
// The shared fetch ignores cancellation of the caller that started it.
func (s *PartialService) Load(ctx context.Context, path string) string {
	s.mu.RLock()
	content, ok := s.cache[path]
	s.mu.RUnlock()
	if ok {
		return content
	}

	v, err, shared := s.group.Do(path, func() (any, error) {
		s.mu.RLock()
		content, ok := s.cache[path]
		s.mu.RUnlock()
		if ok {
			return content, nil
		}

		content, err := s.source.Fetch(context.WithoutCancel(ctx), path)
		if err != nil {
			return "", err
		}
		s.mu.Lock()
		s.cache[path] = content
		s.mu.Unlock()
		return content, nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("failed to load partial")
		return FallbackPartial(path)
	}
	if shared {
		s.log.Debug().Str("path", path).Msg("shared in-flight partial load")
	}
	return v.(string)
}

// Cached reports whether path has been loaded successfully.
func (s *PartialService) Cached(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.cache[path]
	return ok
}

// FallbackPartial is minimal markup for header and footer paths; other
// paths get nothing.
func FallbackPartial(path string) string {
	switch {
	case strings.Contains(path, "header"):
		return fallbackHeader
	case strings.Contains(path, "footer"):
		return fallbackFooter
	default:
		return ""
	}
}

const fallbackHeader = `<header class="header">
    <div class="container">
        <div class="header-content">
            <div class="logo">
                <a href="index.html" class="logo-link">
                    <span class="logo-icon">📊</span>
                    <span class="logo-text">TechImpact.online</span>
                </a>
            </div>
            <nav class="nav">
                <a href="index.html" class="nav-link">SLA Calculator</a>
                <a href="website-downtime-calculator.html" class="nav-link">Downtime Calculator</a>
                <a href="rto-rpo-calculator.html" class="nav-link">RTO/RPO Calculator</a>
            </nav>
            <a href="start-trial.html" class="btn btn-primary">Get Started</a>
        </div>
    </div>
</header>`

const fallbackFooter = `<footer class="footer">
    <div class="container">
        <p class="footer-tagline">Quantifying tech risk, empowering decisions.</p>
        <p class="footer-copyright">© TechImpact.online. All rights reserved.</p>
        <p class="disclaimer">Estimates only. Check your contract.</p>
    </div>
</footer>`
