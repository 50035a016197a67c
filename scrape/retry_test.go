package scrape_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CarlosDimare/soccerwiki/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetry(t *testing.T) {
	t.Parallel()

	t.Run("returns first successful result", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "<html></html>", nil
		}

		html, err := scrape.FetchWithRetry(context.Background(), "https://example.com", fetch, scrape.DefaultRetryDelays())

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until the delays are exhausted", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", errors.New("connection refused")
		}
		delays := []time.Duration{time.Millisecond, time.Millisecond}

		_, err := scrape.FetchWithRetry(context.Background(), "https://example.com", fetch, delays)

		require.Error(t, err)
		assert.Equal(t, "connection refused", err.Error())
		assert.Equal(t, 3, calls)
	})

	t.Run("recovers after a transient failure", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			if calls == 1 {
				return "", errors.New("timeout")
			}
			return "ok", nil
		}

		html, err := scrape.FetchWithRetry(context.Background(), "https://example.com", fetch, []time.Duration{time.Millisecond})

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 2, calls)
	})

	t.Run("no delays means a single attempt", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", errors.New("boom")
		}

		_, err := scrape.FetchWithRetry(context.Background(), "https://example.com", fetch, nil)

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancellation aborts the wait between attempts", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fetch := func(ctx context.Context, url string) (string, error) {
			return "", errors.New("boom")
		}

		_, err := scrape.FetchWithRetry(ctx, "https://example.com", fetch, []time.Duration{time.Hour})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
