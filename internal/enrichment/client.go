package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go-attend/internal/config"

	"go.uber.org/zap"
)

//go:generate mockgen -source=client.go -destination=mock/resolver_mock.go -package=mock

// Resolver looks up where a check-in happened. Lookups never fail: any
// problem yields nil.
type Resolver interface {
	LookupIP(ctx context.Context, ip string) *IPLocation
	ReverseGeocode(ctx context.Context, lat, lon float64) *string
}

type IPLocation struct {
	City      string
	Region    string
	Country   string
	Latitude  float64
	Longitude float64
}

// Label renders the location as "City, Region, Country", skipping blanks.
func (l IPLocation) Label() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.City, l.Region, l.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type Client struct {
	http              *http.Client
	ipLookupURL       string
	reverseGeocodeURL string
	userAgent         string
	logger            *zap.Logger
}

func NewClient(cfg config.Enrichment, logger ...*zap.Logger) *Client {
	l := zap.L().Named("enrichment.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("enrichment.client")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		http:              &http.Client{Timeout: timeout},
		ipLookupURL:       strings.TrimRight(cfg.IPLookupURL, "/"),
		reverseGeocodeURL: cfg.ReverseGeocodeURL,
		userAgent:         cfg.UserAgent,
		logger:            l,
	}
}

type ipLookupResponse struct {
	Status     string  `json:"status"`
	City       string  `json:"city"`
	RegionName string  `json:"regionName"`
	Country    string  `json:"country"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

func (c *Client) LookupIP(ctx context.Context, ip string) *IPLocation {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if c.ipLookupURL == "" || parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return nil
	}

	var body ipLookupResponse
	if err := c.getJSON(ctx, c.ipLookupURL+"/"+url.PathEscape(parsed.String()), &body); err != nil {
		c.logger.Debug("ip lookup failed", zap.String("ip", parsed.String()), zap.Error(err))
		return nil
	}
	if body.Status != "" && body.Status != "success" {
		return nil
	}

	return &IPLocation{
		City:      body.City,
		Region:    body.RegionName,
		Country:   body.Country,
		Latitude:  body.Lat,
		Longitude: body.Lon,
	}
}

type reverseGeocodeResponse struct {
	DisplayName string `json:"display_name"`
}

func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) *string {
	if c.reverseGeocodeURL == "" {
		return nil
	}
	u, err := url.Parse(c.reverseGeocodeURL)
	if err != nil {
		c.logger.Warn("invalid reverse geocode url", zap.Error(err))
		return nil
	}
	q := u.Query()
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	u.RawQuery = q.Encode()

	var body reverseGeocodeResponse
	if err := c.getJSON(ctx, u.String(), &body); err != nil {
		c.logger.Debug("reverse geocode failed", zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Error(err))
		return nil
	}
	name := strings.TrimSpace(body.DisplayName)
	if name == "" {
		return nil
	}
	return &name
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// DisplayAddress prefers the reverse geocoded coordinates and falls back to
// the IP location. It returns "" when neither resolves.
func DisplayAddress(ctx context.Context, r Resolver, lat, lon *float64, ip string) string {
	if lat != nil && lon != nil {
		if name := r.ReverseGeocode(ctx, *lat, *lon); name != nil {
			return *name
		}
	}
	if loc := r.LookupIP(ctx, ip); loc != nil {
		return loc.Label()
	}
	return ""
}
