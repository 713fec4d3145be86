package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/rhsm-sync/internal/config"
	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/internal/utils"
	"github.com/MKhiriev/rhsm-sync/models"
)

type httpAPIClient struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs the REST implementation of [APIClient]. The
// base URL is normalised from cfg.APIAddress; a missing scheme defaults to
// http.
func NewHTTPAPIClient(cfg config.CtlConfig, log *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api address: %w", err)
	}

	return &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		token:  strings.TrimSpace(cfg.Token),
		logger: log.Component("api-client"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// State implements [APIClient]. GET /api/subscriptions.
func (h *httpAPIClient) State(ctx context.Context) (models.StateView, error) {
	var state models.StateView

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&state).
		Get("/api/subscriptions")
	if err != nil {
		return models.StateView{}, fmt.Errorf("state request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StateView{}, err
	}

	return state, nil
}

// Refresh implements [APIClient]. POST /api/subscriptions/refresh.
func (h *httpAPIClient) Refresh(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/subscriptions/refresh")
	if err != nil {
		return fmt.Errorf("refresh request: %w", err)
	}
	return mapHTTPError(resp)
}

// History implements [APIClient]. GET /api/subscriptions/history?limit=N,
// limit <= 0 leaves the server default.
func (h *httpAPIClient) History(ctx context.Context, limit int) ([]models.Snapshot, error) {
	var snapshots []models.Snapshot

	req := h.client.R().
		SetContext(ctx).
		SetResult(&snapshots)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/subscriptions/history")
	if err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return snapshots, nil
}

// Register implements [APIClient]. POST /api/subscriptions/register with
// the bearer token.
func (h *httpAPIClient) Register(ctx context.Context, details models.RegistrationDetails) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		SetHeader("Content-Type", "application/json").
		SetBody(details).
		Post("/api/subscriptions/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	return mapHTTPError(resp)
}

// Unregister implements [APIClient]. POST /api/subscriptions/unregister
// with the bearer token.
func (h *httpAPIClient) Unregister(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		Post("/api/subscriptions/unregister")
	if err != nil {
		return fmt.Errorf("unregister request: %w", err)
	}
	return mapHTTPError(resp)
}

// Version implements [APIClient]. GET /api/version.
func (h *httpAPIClient) Version(ctx context.Context) (string, error) {
	var body struct {
		Version string `json:"version"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return body.Version, nil
}
