// Package news fetches market headlines from an RSS feed and filters them
// down to broad market drivers plus the active ticker. Headlines are
// contextual garnish: a feed failure never blocks a refresh.
package news

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultFeedURL = "https://www.cnbc.com/id/15839069/device/rss/rss.html"

// maxHeadlines caps how many filtered items a report carries.
const maxHeadlines = 5

var marketKeywords = []string{
	"business", "economy", "regulation", "policy", "growth",
	"earnings", "revenue", "strategy", "tech", "sector", "tax",
}

// Headline is one filtered feed entry.
type Headline struct {
	Title     string
	Link      string
	Published string
	Source    string
}

type rssDoc struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title string    `xml:"title"`
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate"`
}

// Client fetches and filters the feed.
type Client struct {
	http    *resty.Client
	feedURL string
	source  string
}

// NewClient creates a feed client. An empty feedURL selects the CNBC
// markets feed the dashboard has always used.
func NewClient(feedURL string, timeout time.Duration) *Client {
	if feedURL == "" {
		feedURL = defaultFeedURL
	}
	c := resty.New()
	c.SetTimeout(timeout)
	c.SetHeader("User-Agent", "Mozilla/5.0")
	return &Client{http: c, feedURL: feedURL, source: "CNBC"}
}

// TopHeadlines returns up to five headlines matching the market keywords
// or the ticker.
func (c *Client) TopHeadlines(ctx context.Context, ticker string) ([]Headline, error) {
	resp, err := c.http.R().SetContext(ctx).Get(c.feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetch feed: status %d", resp.StatusCode())
	}

	var doc rssDoc
	if err := xml.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	source := c.source
	if doc.Channel.Title != "" {
		source = doc.Channel.Title
	}
	all := make([]Headline, 0, len(doc.Channel.Items))
	for _, item := range doc.Channel.Items {
		all = append(all, Headline{
			Title:     item.Title,
			Link:      item.Link,
			Published: item.PubDate,
			Source:    source,
		})
	}
	return Filter(all, ticker, maxHeadlines), nil
}

// Filter keeps headlines whose title mentions a market keyword or the
// ticker, capped at limit, preserving feed order.
func Filter(items []Headline, ticker string, limit int) []Headline {
	keywords := marketKeywords
	if t := strings.ToLower(strings.TrimSpace(ticker)); t != "" {
		keywords = append(append([]string{}, marketKeywords...), t)
	}

	var out []Headline
	for _, item := range items {
		title := strings.ToLower(item.Title)
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				out = append(out, item)
				break
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out
}
