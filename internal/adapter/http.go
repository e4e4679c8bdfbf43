package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"

	"github.com/globalsight/sar-drone-client/internal/config"
	"github.com/globalsight/sar-drone-client/internal/logger"
	"github.com/globalsight/sar-drone-client/internal/utils"
	"github.com/globalsight/sar-drone-client/models"
)

const (
	retryAttempts    = 2
	retryBackoffBase = 200 * time.Millisecond
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout. Every outbound request carries an
// X-Request-Id header for server-side correlation.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	ids := utils.NewUUIDGenerator()
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", ids.Generate())
		return nil
	})

	return &httpServerAdapter{client: client, ids: ids, logger: logger}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login and decodes the auth payload. No Authorization header is
// attached and the returned token is not stored; that decision belongs to
// the session store after it has validated the payload.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&auth).
		Post("/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError("login", resp); err != nil {
		return models.AuthResponse{}, err
	}

	return auth, nil
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /auth/register and returns the created profile. No Authorization
// header is attached.
func (h *httpServerAdapter) Register(ctx context.Context, reg models.Registration) (models.UserProfile, error) {
	var created models.UserProfile

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reg).
		SetResult(&created).
		Post("/auth/register")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError("register", resp); err != nil {
		return models.UserProfile{}, err
	}

	return created, nil
}

// Logout implements [ServerAdapter]. The backend exposes no logout endpoint;
// invalidation is purely local, so this is a no-op kept for interface
// stability.
func (h *httpServerAdapter) Logout(_ context.Context) error {
	return nil
}

// ListHistory implements [ServerAdapter]. It GETs a page of disaster events
// from GET /api/history. Transient failures are retried.
func (h *httpServerAdapter) ListHistory(ctx context.Context, q models.PageQuery, filters map[string]string) (models.Page[models.DisasterEvent], error) {
	var page models.Page[models.DisasterEvent]

	body, err := h.getWithRetry(ctx, "list history", "/api/history", buildPageQuery(q, filters))
	if err != nil {
		return page, err
	}

	if err = json.Unmarshal(body, &page); err != nil {
		return page, fmt.Errorf("decode history page: %w", err)
	}
	return page, nil
}

// GetHistoryEvent implements [ServerAdapter]. It GETs a single event from
// GET /api/history/{disNo}.
func (h *httpServerAdapter) GetHistoryEvent(ctx context.Context, disNo string) (models.DisasterEvent, error) {
	var event models.DisasterEvent

	body, err := h.getWithRetry(ctx, "get history event", "/api/history/"+url.PathEscape(disNo), nil)
	if err != nil {
		return event, err
	}

	if err = json.Unmarshal(body, &event); err != nil {
		return event, fmt.Errorf("decode history event: %w", err)
	}
	return event, nil
}

// CreateHistoryEvent implements [ServerAdapter]. It POSTs the event to
// POST /api/history. Requires a valid bearer token and an elevated role
// server-side.
func (h *httpServerAdapter) CreateHistoryEvent(ctx context.Context, event models.DisasterEvent) (models.DisasterEvent, error) {
	var created models.DisasterEvent

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		SetResult(&created).
		Post("/api/history")
	if err != nil {
		return models.DisasterEvent{}, fmt.Errorf("create history event request: %w", err)
	}
	if err = mapHTTPError("create history event", resp); err != nil {
		return models.DisasterEvent{}, err
	}

	return created, nil
}

// UpdateHistoryEvent implements [ServerAdapter]. It PUTs the event to
// PUT /api/history/{disNo}.
func (h *httpServerAdapter) UpdateHistoryEvent(ctx context.Context, disNo string, event models.DisasterEvent) (models.DisasterEvent, error) {
	var updated models.DisasterEvent

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		SetResult(&updated).
		Put("/api/history/" + url.PathEscape(disNo))
	if err != nil {
		return models.DisasterEvent{}, fmt.Errorf("update history event request: %w", err)
	}
	if err = mapHTTPError("update history event", resp); err != nil {
		return models.DisasterEvent{}, err
	}

	return updated, nil
}

// DeleteHistoryEvent implements [ServerAdapter]. It sends a DELETE to
// DELETE /api/history/{disNo}. A 204 with no body counts as success.
func (h *httpServerAdapter) DeleteHistoryEvent(ctx context.Context, disNo string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/history/" + url.PathEscape(disNo))
	if err != nil {
		return fmt.Errorf("delete history event request: %w", err)
	}

	return mapHTTPError("delete history event", resp)
}

// CreateSimulations implements [ServerAdapter]. It POSTs the spec array to
// POST /api/simulations and decodes the created records. Single attempt: the
// operation is not idempotent.
func (h *httpServerAdapter) CreateSimulations(ctx context.Context, specs []models.SimulationSpec) ([]models.Simulation, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(specs).
		Post("/api/simulations")
	if err != nil {
		return nil, fmt.Errorf("create simulations request: %w", err)
	}
	if err = mapHTTPError("create simulations", resp); err != nil {
		return nil, err
	}

	var created []models.Simulation
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return nil, fmt.Errorf("decode created simulations: %w", err)
	}

	return created, nil
}

// GetSimulation implements [ServerAdapter]. It GETs a single simulation from
// GET /api/simulations/{id}.
func (h *httpServerAdapter) GetSimulation(ctx context.Context, id int64) (models.Simulation, error) {
	var sim models.Simulation

	body, err := h.getWithRetry(ctx, "get simulation", "/api/simulations/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return sim, err
	}

	if err = json.Unmarshal(body, &sim); err != nil {
		return sim, fmt.Errorf("decode simulation: %w", err)
	}
	return sim, nil
}

// ListUserSimulations implements [ServerAdapter]. It GETs a page of the
// authenticated user's simulations from GET /api/simulations.
func (h *httpServerAdapter) ListUserSimulations(ctx context.Context, q models.PageQuery, filters map[string]string) (models.Page[models.Simulation], error) {
	var page models.Page[models.Simulation]

	body, err := h.getWithRetry(ctx, "list user simulations", "/api/simulations", buildPageQuery(q, filters))
	if err != nil {
		return page, err
	}

	if err = json.Unmarshal(body, &page); err != nil {
		return page, fmt.Errorf("decode simulations page: %w", err)
	}
	return page, nil
}

// TriggerPrediction implements [ServerAdapter]. It POSTs to
// POST /api/simulations/{id}/predict and returns the updated simulation.
func (h *httpServerAdapter) TriggerPrediction(ctx context.Context, id int64) (models.Simulation, error) {
	var sim models.Simulation

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetResult(&sim).
		Post("/api/simulations/" + strconv.FormatInt(id, 10) + "/predict")
	if err != nil {
		return models.Simulation{}, fmt.Errorf("trigger prediction request: %w", err)
	}
	if err = mapHTTPError("trigger prediction", resp); err != nil {
		return models.Simulation{}, err
	}

	return sim, nil
}

// DispatchDrones implements [ServerAdapter]. It POSTs to
// POST /api/drone/dispatch/{id} and returns the dispatch summary.
func (h *httpServerAdapter) DispatchDrones(ctx context.Context, id int64) (models.DroneDispatch, error) {
	var dispatch models.DroneDispatch

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetResult(&dispatch).
		Post("/api/drone/dispatch/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.DroneDispatch{}, fmt.Errorf("dispatch drones request: %w", err)
	}
	if err = mapHTTPError("dispatch drones", resp); err != nil {
		return models.DroneDispatch{}, err
	}

	return dispatch, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// getWithRetry performs an authenticated GET with a bounded retry on
// transport failures and 502 responses. GETs are idempotent, so a replay is
// safe; everything else in this adapter is single attempt.
func (h *httpServerAdapter) getWithRetry(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	var body []byte

	backoff := retry.WithMaxRetries(retryAttempts, retry.NewExponential(retryBackoffBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req := h.authedRequest(ctx)
		if query != nil {
			req.SetQueryParamsFromValues(query)
		}

		resp, err := req.Get(path)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("%s request: %w", op, err))
		}

		if mapped := mapHTTPError(op, resp); mapped != nil {
			if resp.StatusCode() == http.StatusBadGateway {
				return retry.RetryableError(mapped)
			}
			return mapped
		}

		body = resp.Body()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return body, nil
}

// buildPageQuery converts pagination parameters and optional filters into
// query values. Empty filter values are omitted; page, size, and sort are
// always present.
func buildPageQuery(q models.PageQuery, filters map[string]string) url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("size", strconv.Itoa(q.Size))
	values.Set("sort", q.Sort)

	for key, value := range filters {
		if key == "" || value == "" {
			continue
		}
		values.Set(key, value)
	}

	return values
}
