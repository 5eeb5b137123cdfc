package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"MarketPulse/internal/model"
)

// RestFetcher implements Fetcher against a self-hosted bars REST service,
// for deployments where Yahoo is unreachable or rate-limited.
type RestFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRestFetcher creates a fetcher with optional proxy support.
func NewRestFetcher(baseURL, apiKey, proxyURL string) *RestFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RestFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RestFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape from the bars service.
type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

func (f *RestFetcher) FetchDailyBars(symbol string, horizon Horizon) ([]model.OHLCV, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&range=%s",
		f.BaseURL, url.QueryEscape(symbol), string(horizon))

	body, err := f.get(endpoint)
	if err != nil {
		return nil, err
	}
	var raw []restBar
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}
	bars := make([]model.OHLCV, len(raw))
	for i, rb := range raw {
		bars[i] = model.OHLCV{
			Time:   time.Unix(rb.Timestamp, 0),
			Open:   rb.Open,
			High:   rb.High,
			Low:    rb.Low,
			Close:  rb.Close,
			Volume: rb.Volume,
		}
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func (f *RestFetcher) FetchMeta(symbol string) (model.AssetMeta, error) {
	endpoint := fmt.Sprintf("%s/api/v1/instrument?symbol=%s", f.BaseURL, url.QueryEscape(symbol))

	meta := model.AssetMeta{LongName: symbol, Sector: "Diversified", Beta: 1.0}
	body, err := f.get(endpoint)
	if err != nil {
		return meta, err
	}
	var raw struct {
		Name      string  `json:"name"`
		Sector    string  `json:"sector"`
		MarketCap float64 `json:"market_cap"`
		Beta      float64 `json:"beta"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return meta, fmt.Errorf("decode instrument: %w", err)
	}
	if raw.Name != "" {
		meta.LongName = raw.Name
	}
	if raw.Sector != "" {
		meta.Sector = raw.Sector
	}
	meta.MarketCap = raw.MarketCap
	if raw.Beta != 0 {
		meta.Beta = raw.Beta
	}
	return meta, nil
}

func (f *RestFetcher) get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
