// Package keepalive pings the service's own health endpoint on an interval
// so free-tier hosting does not idle the instance out.
package keepalive

import (
	"context"
	"log"
	"net/http"
	"time"
)

// DefaultInterval stays under the usual 15-minute idle timeout.
const DefaultInterval = 14 * time.Minute

// Pinger issues periodic GET requests against a health URL.
type Pinger struct {
	url      string
	interval time.Duration
	client   *http.Client
}

// NewPinger creates a pinger for url. A non-positive interval uses the default.
func NewPinger(url string, interval time.Duration) *Pinger {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Pinger{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Run pings until ctx is cancelled. Failures are logged and the loop keeps
// going; a missed ping is harmless.
func (p *Pinger) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.ping(ctx)
		}
	}
}

func (p *Pinger) ping(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		log.Printf("keepalive: bad request: %v", err)
		return
	}
	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("keepalive: ping failed: %v", err)
		return
	}
	resp.Body.Close()
}
