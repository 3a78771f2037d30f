package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brokerdesk/carrier-sales-api/pkg/logger"
	"github.com/brokerdesk/carrier-sales-api/pkg/prom"
	"github.com/valyala/fasthttp"
)

// ErrUpstreamUnavailable covers every network-level failure and every
// non-success status from the verification registry. Callers surface it as a
// bad gateway, never as a local server error.
var ErrUpstreamUnavailable = errors.New("verification upstream unavailable")

const docketPath = "/qc/services/carriers/docket-number/"

type Config struct {
	BaseURL string
	WebKey  string
	Timeout time.Duration
}

// FMCSAClient is a stateless pass-through to the FMCSA carrier registry.
// One attempt per call, bounded by the configured timeout; no retries.
type FMCSAClient struct {
	config *Config
	client *fasthttp.Client
}

func NewFMCSAClient(config *Config) (*FMCSAClient, error) {
	if config == nil {
		return nil, errors.New("config is required")
	}
	if config.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}

	client := &fasthttp.Client{
		ReadTimeout:         config.Timeout,
		WriteTimeout:        config.Timeout,
		MaxIdleConnDuration: 60 * time.Second,
	}

	logger.Info("FMCSA client initialized", "base_url", config.BaseURL, "timeout", config.Timeout)

	return &FMCSAClient{config: config, client: client}, nil
}

// VerifyMC fetches the registry record for one MC number and returns the
// upstream body verbatim.
func (c *FMCSAClient) VerifyMC(ctx context.Context, mcNumber string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.config.BaseURL + docketPath + mcNumber)
	req.URI().QueryArgs().Set("webKey", c.config.WebKey)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.config.Timeout)
	}

	start := time.Now()
	err := c.client.DoDeadline(req, resp, deadline)
	latency := time.Since(start)

	if err != nil {
		prom.ObserveVerifyUpstream(latency, true)
		logger.Warn("FMCSA request failed", "mc_number", mcNumber, "error", err, "latency_ms", latency.Milliseconds())
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	statusCode := resp.StatusCode()
	if statusCode < 200 || statusCode > 299 {
		prom.ObserveVerifyUpstream(latency, true)
		logger.Warn("FMCSA returned non-success status", "mc_number", mcNumber, "status", statusCode)
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUpstreamUnavailable, statusCode)
	}

	prom.ObserveVerifyUpstream(latency, false)

	result := make([]byte, len(resp.Body()))
	copy(result, resp.Body())

	return result, nil
}
