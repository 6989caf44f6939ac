// Package bls talks to the BLS public time-series API.
package bls

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"wagesync/internal/bootstrap/config"
	"wagesync/internal/bootstrap/logging"
	"wagesync/internal/domain/wage"
	"wagesync/internal/errs"
	"wagesync/internal/ports"
)

// MaxSeriesPerRequest is the API's hard limit on series ids per call.
const MaxSeriesPerRequest = 50

const statusSucceeded = "REQUEST_SUCCEEDED"

var (
	ErrNoSeries      = errors.New("at least one series id is required")
	ErrTooManySeries = fmt.Errorf("more than %d series ids in one request", MaxSeriesPerRequest)
)

// StatusError is a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bls api returned http %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Kind() string { return "transport" }

// APIError is a well-formed response whose status is not REQUEST_SUCCEEDED.
type APIError struct {
	Status   string
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("bls api status %s", e.Status)
	}
	return fmt.Sprintf("bls api status %s: %s", e.Status, strings.Join(e.Messages, "; "))
}

func (e *APIError) Kind() string { return "transport" }

type FetchRequest struct {
	SeriesIDs []string
	StartYear int
	EndYear   int
}

type requestBody struct {
	SeriesID        []string `json:"seriesid"`
	StartYear       string   `json:"startyear,omitempty"`
	EndYear         string   `json:"endyear,omitempty"`
	RegistrationKey string   `json:"registrationkey,omitempty"`
}

type Response struct {
	Status  string   `json:"status"`
	Message []string `json:"message"`
	Results *Results `json:"Results,omitempty"`
}

type Results struct {
	Series []Series `json:"series"`
}

type Series struct {
	SeriesID string        `json:"seriesID"`
	Data     []Observation `json:"data"`
}

type Observation struct {
	Year       string     `json:"year"`
	Period     string     `json:"period"`
	PeriodName string     `json:"periodName"`
	Value      string     `json:"value"`
	Footnotes  []Footnote `json:"footnotes"`
}

type Footnote struct {
	Code string `json:"code,omitempty"`
	Text string `json:"text,omitempty"`
}

type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ ports.SeriesFetcher = (*Client)(nil)

func NewClient(cfg config.BLSConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: cfg.APIURL,
		apiKey:   strings.TrimSpace(cfg.APIKey),
		http:     &http.Client{Timeout: timeout},
	}
}

// WithHTTPClient swaps the transport, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	clone := *c
	clone.http = hc
	return &clone
}

// Fetch performs one API call. The series limit is checked before any
// network traffic and is never retried.
func (c *Client) Fetch(ctx context.Context, req FetchRequest) (Response, error) {
	if ctx == nil {
		return Response{}, errors.New("context is required")
	}
	if len(req.SeriesIDs) == 0 {
		return Response{}, ErrNoSeries
	}
	if len(req.SeriesIDs) > MaxSeriesPerRequest {
		return Response{}, fmt.Errorf("%w: got %d", ErrTooManySeries, len(req.SeriesIDs))
	}

	body := requestBody{
		SeriesID:        req.SeriesIDs,
		RegistrationKey: c.apiKey,
	}
	if req.StartYear > 0 {
		body.StartYear = fmt.Sprint(req.StartYear)
	}
	if req.EndYear > 0 {
		body.EndYear = fmt.Sprint(req.EndYear)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return Response{}, errs.Wrap(err, "marshal bls request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Response{}, errs.Wrap(err, "build bls request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	logCtx := logging.WithAttrs(ctx, slog.String("component", "bls.client"))
	logging.Debug(logCtx, "posting bls request", slog.Int("series", len(req.SeriesIDs)), slog.Int("start_year", req.StartYear), slog.Int("end_year", req.EndYear))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Response{}, errs.Wrap(err, "call bls api")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, errs.Wrap(err, "read bls response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Response{}, &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(raw), 512)}
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return Response{}, errs.Wrap(err, "decode bls response")
	}
	if out.Status != statusSucceeded {
		return Response{}, &APIError{Status: out.Status, Messages: out.Message}
	}
	for _, msg := range out.Message {
		logging.Debug(logCtx, "bls api message", slog.String("message", msg))
	}
	return out, nil
}

// FetchRecords fetches a series set and folds it into per-year records.
func (c *Client) FetchRecords(ctx context.Context, req ports.SeriesRequest) ([]wage.Record, error) {
	resp, err := c.Fetch(ctx, FetchRequest{
		SeriesIDs: req.SeriesIDs,
		StartYear: req.StartYear,
		EndYear:   req.EndYear,
	})
	if err != nil {
		return nil, err
	}
	return Fold(resp, req.Occupation, req.GeographyKey), nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
