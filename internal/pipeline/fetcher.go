package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/pmorozov/inklet/internal/model"
	"github.com/pmorozov/inklet/internal/util"
)

// Fetcher retrieves prose from URLs
type Fetcher struct {
	httpClient *http.Client
	robots     *util.RobotsChecker
	userAgent  string
	maxBytes   int64
}

// NewFetcher creates a new Fetcher with the given configuration. A nil
// robots checker disables the robots.txt gate; a nil proxy func uses the
// environment proxy settings.
func NewFetcher(timeout time.Duration, userAgent string, maxBytes int64, robots *util.RobotsChecker, proxy func(*http.Request) (*url.URL, error)) *Fetcher {
	if proxy == nil {
		proxy = http.ProxyFromEnvironment
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: &http.Transport{Proxy: proxy},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    robots,
		userAgent: userAgent,
		maxBytes:  maxBytes,
	}
}

// FetchResult contains the fetched paragraphs and metadata
type FetchResult struct {
	Paragraphs []string
	Meta       model.FetchMeta
	Subject    string
	FinalURL   string
}

// Fetch retrieves the page at rawURL and splits it into paragraphs.
// HTML responses are reduced to visible text first.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	if f.robots != nil && !f.robots.IsAllowed(ctx, rawURL) {
		return nil, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,text/plain;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	var paragraphs []string
	if strings.Contains(contentType, "html") {
		paragraphs, err = htmlParagraphs(string(body))
		if err != nil {
			return nil, fmt.Errorf("parse html: %w", err)
		}
	} else {
		paragraphs = SplitParagraphs(string(body))
	}

	finalURL := resp.Request.URL.String()

	return &FetchResult{
		Paragraphs: paragraphs,
		Meta: model.FetchMeta{
			StatusCode:   resp.StatusCode,
			ContentType:  contentType,
			LastModified: resp.Header.Get("Last-Modified"),
		},
		Subject:  extractSubject(finalURL),
		FinalURL: finalURL,
	}, nil
}

// htmlParagraphs extracts the visible text of each <p> element, skipping
// script/style content. Pages without <p> elements fall back to the whole
// visible text as one paragraph.
func htmlParagraphs(htmlContent string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	var paragraphs []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "p":
				if text := strings.TrimSpace(visibleText(n)); text != "" {
					paragraphs = append(paragraphs, text)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(paragraphs) == 0 {
		if text := strings.TrimSpace(visibleText(doc)); text != "" {
			paragraphs = []string{text}
		}
	}

	return paragraphs, nil
}

// visibleText collects the text nodes under n, skipping scripts/styles
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(text)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}

// SplitParagraphs splits plain text into paragraphs on blank lines
func SplitParagraphs(text string) []string {
	var paragraphs []string
	for _, block := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		block = strings.TrimSpace(strings.Join(strings.Fields(block), " "))
		if block != "" {
			paragraphs = append(paragraphs, block)
		}
	}
	return paragraphs
}

// extractSubject extracts a human-readable subject from the URL
func extractSubject(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return parsed.Host
	}

	segments := strings.Split(path, "/")
	last := segments[len(segments)-1]

	last = strings.ReplaceAll(last, "_", " ")
	last = strings.ReplaceAll(last, "-", " ")

	if idx := strings.LastIndex(last, "."); idx > 0 {
		last = last[:idx]
	}

	return last
}
