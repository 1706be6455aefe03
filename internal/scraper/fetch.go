package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"

	"github.com/pfrederiksen/gridiron-ical/internal/logger"
)

const (
	// UserAgent mimics a desktop browser; athletics sites block obvious
	// script user agents.
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// Timeout bounds a single fetch attempt.
	Timeout = 30 * time.Second

	// minRequestGap spaces successive requests to the same site.
	minRequestGap = 2 * time.Second

	maxRetries = 3
)

// blockSignatures are phrases that mark a bot-block page served with a
// 200 status.
var blockSignatures = []string{
	"access denied",
	"request unsuccessful",
	"are you a robot",
	"captcha",
}

// Client fetches schedule pages with retries and request spacing.
type Client struct {
	http        *http.Client
	lastRequest time.Time
}

// NewClient creates a Client with the default timeout.
func NewClient() *Client {
	return &Client{
		http: &http.Client{Timeout: Timeout},
	}
}

// Fetch retrieves url and parses it into a goquery document. Non-2xx
// statuses, transport failures, and bot-block pages all count as fetch
// errors; each attempt is retried with exponential backoff up to the
// retry limit.
func (c *Client) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	if gap := time.Since(c.lastRequest); gap < minRequestGap && !c.lastRequest.IsZero() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(minRequestGap - gap):
		}
	}

	var doc *goquery.Document
	operation := func() error {
		var err error
		doc, err = c.fetchOnce(ctx, url)
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	err := backoff.RetryNotify(operation, policy, func(err error, wait time.Duration) {
		logger.Warn("fetch attempt failed", logger.Fields{
			"url":   url,
			"retry": wait.String(),
		})
	})
	c.lastRequest = time.Now()
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	return doc, nil
}

func (c *Client) fetchOnce(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	if sig := blockSignature(doc); sig != "" {
		return nil, fmt.Errorf("bot-block page detected (%q)", sig)
	}
	return doc, nil
}

// blockSignature reports the first bot-block phrase found in the page
// text, or "".
func blockSignature(doc *goquery.Document) string {
	text := strings.ToLower(doc.Find("title").Text() + " " + doc.Find("h1").Text())
	for _, sig := range blockSignatures {
		if strings.Contains(text, sig) {
			return sig
		}
	}
	return ""
}
