package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type countingSource struct {
	calls   atomic.Int32
	release chan struct{}
	fail    atomic.Bool
}

func (s *countingSource) Fetch(_ context.Context, path string) (string, error) {
	s.calls.Add(1)
	if s.release != nil {
		<-s.release
	}
	if s.fail.Load() {
		return "", errors.New("HTTP 404: Not Found")
	}
	return "<p>" + path + "</p>", nil
}

func TestPartialService_ConcurrentLoadsShareOneFetch(t *testing.T) {
	source := &countingSource{release: make(chan struct{})}
	svc := NewPartialService(source, zerolog.Nop())

	const loaders = 10
	results := make([]string, loaders)
	var wg sync.WaitGroup
	for i := 0; i < loaders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.Load(context.Background(), "partials/header.html")
		}(i)
	}
	close(source.release)
	wg.Wait()

	assert.Equal(t, int32(1), source.calls.Load())
	for _, r := range results {
		assert.Equal(t, "<p>partials/header.html</p>", r)
	}
	assert.True(t, svc.Cached("partials/header.html"))
}

func TestPartialService_FailureFallsBackAndRetries(t *testing.T) {
	source := &countingSource{}
	source.fail.Store(true)
	svc := NewPartialService(source, zerolog.Nop())

	header := svc.Load(context.Background(), "partials/header.html")
	assert.Contains(t, header, "TechImpact.online")
	assert.Contains(t, header, `class="header"`)
	assert.False(t, svc.Cached("partials/header.html"))

	assert.Contains(t, svc.Load(context.Background(), "partials/footer.html"), "Estimates only")
	assert.Empty(t, svc.Load(context.Background(), "partials/sidebar.html"))

	source.fail.Store(false)
	assert.Equal(t, "<p>partials/header.html</p>", svc.Load(context.Background(), "partials/header.html"))
	assert.True(t, svc.Cached("partials/header.html"))
	assert.Equal(t, int32(4), source.calls.Load())
}

type contextSource struct{}

func (contextSource) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "<p>" + path + "</p>", nil
}

func TestPartialService_CallerCancellationDoesNotFailFetch(t *testing.T) {
	svc := NewPartialService(contextSource{}, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "<p>header.html</p>", svc.Load(ctx, "header.html"))
	assert.True(t, svc.Cached("header.html"))
}
