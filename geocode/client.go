package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/acikkaynak/housing-api-go/pkg/metrics"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
)

const searchLimit = 10

var ErrProviderStatus = errors.New("geocoding provider returned an unexpected status")

type ClientOptions struct {
	BaseURL      string
	UserAgent    string
	CountryCodes string
	Timeout      time.Duration
}

// Client talks to a Nominatim compatible HTTP API.
type Client struct {
	opts   ClientOptions
	client *fasthttp.Client
}

func NewClient(opts ClientOptions) *Client {
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	return &Client{
		opts: opts,
		client: &fasthttp.Client{
			Name:                     opts.UserAgent,
			NoDefaultUserAgentHeader: opts.UserAgent == "",
		},
	}
}

func (c *Client) Search(ctx context.Context, query string) ([]Candidate, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(searchLimit))
	params.Set("addressdetails", "1")
	if c.opts.CountryCodes != "" {
		params.Set("countrycodes", c.opts.CountryCodes)
	}

	var places []place
	if err := c.get(ctx, "search", params, &places); err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(places))
	for _, p := range places {
		candidates = append(candidates, p.candidate())
	}
	return candidates, nil
}

func (c *Client) Reverse(ctx context.Context, lat, lng float64) (*Candidate, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("zoom", "18")
	params.Set("addressdetails", "1")

	var p place
	if err := c.get(ctx, "reverse", params, &p); err != nil {
		return nil, err
	}
	if p.Error != "" {
		return nil, fmt.Errorf("reverse geocoding failed: %s", p.Error)
	}

	candidate := p.candidate()
	return &candidate, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	req := fasthttp.AcquireRequest()
	res := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(res)

	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if c.opts.UserAgent != "" {
		req.Header.SetUserAgent(c.opts.UserAgent)
	}
	req.SetRequestURI(c.opts.BaseURL + "/" + endpoint + "?" + params.Encode())

	deadline := time.Now().Add(c.opts.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	start := time.Now()
	err := c.client.DoDeadline(req, res, deadline)
	status := "error"
	if err == nil {
		status = strconv.Itoa(res.StatusCode())
	}
	metrics.GeocoderRequests.WithLabelValues(endpoint, status).Observe(time.Since(start).Seconds())

	if err != nil {
		return fmt.Errorf("failed to call geocoding %s. err: %w", endpoint, err)
	}
	if res.StatusCode() != fasthttp.StatusOK {
		return fmt.Errorf("%w: %s %d", ErrProviderStatus, endpoint, res.StatusCode())
	}

	if err := jsoniter.Unmarshal(res.Body(), out); err != nil {
		return fmt.Errorf("failed to decode geocoding %s response. err: %w", endpoint, err)
	}
	return nil
}
