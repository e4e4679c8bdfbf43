// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// SAR-Drone REST backend.
//
// The primary abstraction is [ServerAdapter], which decouples the session
// layer and the screens from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401 — the forced-logout signal).
package adapter

import (
	"context"

	"github.com/globalsight/sar-drone-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the SAR-Drone
// backend. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// The adapter is a pure transport: it never writes local state. Persisting
// the token and profile across restarts is owned by the session store.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. An empty token detaches the header.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// Login authenticates against POST /auth/login and returns the raw auth
	// payload (token plus flattened profile fields). The adapter does NOT
	// store the token itself; the caller decides whether the response is
	// acceptable and calls SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// Register creates an account via POST /auth/register and returns the
	// created profile payload.
	Register(ctx context.Context, reg models.Registration) (models.UserProfile, error)

	// Logout ends the remote session. The current backend exposes no logout
	// endpoint, so the HTTP implementation is a local no-op kept on the
	// interface so the session layer's flow is stable when one appears.
	Logout(ctx context.Context) error

	// ListHistory fetches a page of disaster events from GET /api/history.
	// Non-empty filter values are appended as query parameters.
	ListHistory(ctx context.Context, q models.PageQuery, filters map[string]string) (models.Page[models.DisasterEvent], error)

	// GetHistoryEvent fetches a single disaster event by its DisNo.
	GetHistoryEvent(ctx context.Context, disNo string) (models.DisasterEvent, error)

	// CreateHistoryEvent creates a disaster event. Requires an elevated role
	// server-side; the client just forwards the request.
	CreateHistoryEvent(ctx context.Context, event models.DisasterEvent) (models.DisasterEvent, error)

	// UpdateHistoryEvent replaces the event identified by disNo.
	UpdateHistoryEvent(ctx context.Context, disNo string, event models.DisasterEvent) (models.DisasterEvent, error)

	// DeleteHistoryEvent removes the event identified by disNo.
	DeleteHistoryEvent(ctx context.Context, disNo string) error

	// CreateSimulations submits one or more simulation specs in a single
	// POST /api/simulations request and returns the created records in the
	// same order.
	CreateSimulations(ctx context.Context, specs []models.SimulationSpec) ([]models.Simulation, error)

	// GetSimulation fetches a single simulation by id.
	GetSimulation(ctx context.Context, id int64) (models.Simulation, error)

	// ListUserSimulations fetches a page of the authenticated user's
	// simulations from GET /api/simulations.
	ListUserSimulations(ctx context.Context, q models.PageQuery, filters map[string]string) (models.Page[models.Simulation], error)

	// TriggerPrediction starts the AI prediction pipeline for a simulation
	// via POST /api/simulations/{id}/predict.
	TriggerPrediction(ctx context.Context, id int64) (models.Simulation, error)

	// DispatchDrones requests a simulated drone dispatch for a simulation
	// via POST /api/drone/dispatch/{id}.
	DispatchDrones(ctx context.Context, id int64) (models.DroneDispatch, error)
}
