package contador

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// NoRedirectClient returns a client that reports redirects instead of
// following them.
func NoRedirectClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// IncrementLoad fires n concurrent POST /incrementar requests at target and
// returns each request's latency in milliseconds.
func IncrementLoad(ctx context.Context, client *http.Client, target string, n int) ([]float64, error) {
	url := strings.TrimRight(target, "/") + "/incrementar"

	var (
		lock  sync.Mutex
		times = make([]float64, 0, n)
	)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
			if err != nil {
				return err
			}

			start := time.Now()
			resp, err := client.Do(req)
			elapsed := time.Since(start)
			if err != nil {
				return err
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusSeeOther {
				return fmt.Errorf("POST %s: status %d", url, resp.StatusCode)
			}

			lock.Lock()
			times = append(times, float64(elapsed)/float64(time.Millisecond))
			lock.Unlock()
			return nil
		})
	}

	err := g.Wait()
	return times, err
}
