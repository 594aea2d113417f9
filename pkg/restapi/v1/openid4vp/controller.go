/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package openid4vp_test -source=controller.go -mock_names orchestratorService=MockOrchestratorService,wellKnownService=MockWellKnownService

package openid4vp

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/eudi-wallet/openid4vp-rp/pkg/restapi/resterr"
	"github.com/eudi-wallet/openid4vp-rp/pkg/service/openid4vp"
)

var logger = log.New("openid4vp-api")

const (
	requestObjectContentType   = "application/oauth-authz-req+jwt"
	entityStatementContentType = "application/entity-statement+jwt"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type orchestratorService interface {
	BeginAuthentication(ctx context.Context, policyID string) (*openid4vp.InteractionInfo, error)
	GetRequestObject(ctx context.Context, requestToken string) (string, error)
	AcceptResponse(ctx context.Context, authResponse *openid4vp.AuthorizationResponse) (*openid4vp.Session, error)
	GetStatus(ctx context.Context, id openid4vp.SessionID) (*openid4vp.StatusInfo, error)
	GetResponse(ctx context.Context, id openid4vp.SessionID) (openid4vp.Claims, error)
}

type wellKnownService interface {
	GetEntityConfiguration(ctx context.Context) (string, error)
}

// Config holds configuration options for Controller.
type Config struct {
	OrchestratorSvc orchestratorService
	WellKnownSvc    wellKnownService
	Tracer          trace.Tracer
}

// Controller is the wallet- and frontend-facing HTTP boundary. Error detail
// never crosses it: responses carry generic OAuth-style error codes and the
// full cause goes to the log.
type Controller struct {
	orchestratorSvc orchestratorService
	wellKnownSvc    wellKnownService
	tracer          trace.Tracer
}

// NewController creates a new Controller instance and mounts its routes.
func NewController(r router, cfg *Config) *Controller {
	c := &Controller{
		orchestratorSvc: cfg.OrchestratorSvc,
		wellKnownSvc:    cfg.WellKnownSvc,
		tracer:          cfg.Tracer,
	}

	r.POST("/openid4vp/pre-request", c.PreRequest)
	r.GET("/openid4vp/request-uri", c.RequestURI)
	r.POST("/openid4vp/response-uri", c.ResponseURI)
	r.GET("/openid4vp/status", c.Status)
	r.GET("/openid4vp/get-response", c.GetResponse)
	r.GET("/.well-known/openid-federation", c.EntityConfiguration)

	return c
}

// PreRequestBody is the frontend's session creation request.
type PreRequestBody struct {
	PolicyID string `json:"policy_id"`
}

// PreRequestResponse feeds the QR code shown to the user.
type PreRequestResponse struct {
	SessionID  string `json:"session_id"`
	ClientID   string `json:"client_id"`
	RequestURI string `json:"request_uri"`
}

// StatusResponse is the polling view of a session.
type StatusResponse struct {
	SessionID     string `json:"session_id"`
	State         string `json:"state"`
	ResponseURL   string `json:"response_url,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`
}

// PreRequest opens an authentication session (POST /openid4vp/pre-request).
func (c *Controller) PreRequest(e echo.Context) error {
	req := e.Request()

	ctx, span := c.tracer.Start(req.Context(), "PreRequest")
	defer span.End()

	var body PreRequestBody

	if err := e.Bind(&body); err != nil || body.PolicyID == "" {
		return c.writeError(e, resterr.NewProtocolError(resterr.OrchestratorComponent, "pre-request",
			errors.New("policy_id is required")))
	}

	info, err := c.orchestratorSvc.BeginAuthentication(ctx, body.PolicyID)
	if err != nil {
		return c.writeError(e, err)
	}

	return e.JSON(http.StatusCreated, &PreRequestResponse{
		SessionID:  string(info.SessionID),
		ClientID:   info.ClientID,
		RequestURI: info.RequestURI,
	})
}

// RequestURI serves the signed request object (GET /openid4vp/request-uri).
func (c *Controller) RequestURI(e echo.Context) error {
	req := e.Request()

	ctx, span := c.tracer.Start(req.Context(), "RequestURI")
	defer span.End()

	token := e.QueryParam("id")
	if token == "" {
		return c.writeError(e, resterr.NewProtocolError(resterr.OrchestratorComponent, "request-uri",
			errors.New("id query parameter is required")))
	}

	requestObject, err := c.orchestratorSvc.GetRequestObject(ctx, token)
	if err != nil {
		return c.writeError(e, err)
	}

	return e.Blob(http.StatusOK, requestObjectContentType, []byte(requestObject))
}

// ResponseURI accepts the wallet's authorization response
// (POST /openid4vp/response-uri).
func (c *Controller) ResponseURI(e echo.Context) error {
	req := e.Request()

	ctx, span := c.tracer.Start(req.Context(), "ResponseURI")
	defer span.End()

	authResponse := &openid4vp.AuthorizationResponse{
		State:                  e.FormValue("state"),
		Response:               e.FormValue("response"),
		VPToken:                e.FormValue("vp_token"),
		PresentationSubmission: e.FormValue("presentation_submission"),
	}

	if authResponse.State == "" {
		return c.writeError(e, resterr.NewProtocolError(resterr.OrchestratorComponent, "response-uri",
			errors.New("state form parameter is required")))
	}

	if _, err := c.orchestratorSvc.AcceptResponse(ctx, authResponse); err != nil {
		return c.writeError(e, err)
	}

	return e.JSON(http.StatusOK, map[string]interface{}{})
}

// Status is the frontend polling endpoint (GET /openid4vp/status). A pending
// session answers 201, a response under verification answers 202 and a
// terminal session answers 200 with the outcome.
func (c *Controller) Status(e echo.Context) error {
	req := e.Request()

	ctx, span := c.tracer.Start(req.Context(), "Status")
	defer span.End()

	id := e.QueryParam("id")
	if id == "" {
		return c.writeError(e, resterr.NewProtocolError(resterr.OrchestratorComponent, "status",
			errors.New("id query parameter is required")))
	}

	info, err := c.orchestratorSvc.GetStatus(ctx, openid4vp.SessionID(id))
	if err != nil {
		return c.writeError(e, err)
	}

	return e.JSON(statusCode(info.State), &StatusResponse{
		SessionID:     string(info.SessionID),
		State:         string(info.State),
		ResponseURL:   info.ResponseURL,
		FailureReason: string(info.FailureReason),
	})
}

// GetResponse serves the verification result exactly once
// (GET /openid4vp/get-response).
func (c *Controller) GetResponse(e echo.Context) error {
	req := e.Request()

	ctx, span := c.tracer.Start(req.Context(), "GetResponse")
	defer span.End()

	id := e.QueryParam("id")
	if id == "" {
		return c.writeError(e, resterr.NewProtocolError(resterr.OrchestratorComponent, "get-response",
			errors.New("id query parameter is required")))
	}

	claims, err := c.orchestratorSvc.GetResponse(ctx, openid4vp.SessionID(id))
	if err != nil {
		return c.writeError(e, err)
	}

	return e.JSON(http.StatusOK, claims)
}

// EntityConfiguration publishes the RP's signed entity configuration
// (GET /.well-known/openid-federation).
func (c *Controller) EntityConfiguration(e echo.Context) error {
	req := e.Request()

	ctx, span := c.tracer.Start(req.Context(), "EntityConfiguration")
	defer span.End()

	statement, err := c.wellKnownSvc.GetEntityConfiguration(ctx)
	if err != nil {
		return c.writeError(e, resterr.NewSystemError(resterr.WellKnownSvcComponent, "entity-configuration", err))
	}

	return e.Blob(http.StatusOK, entityStatementContentType, []byte(statement))
}

func statusCode(state openid4vp.State) int {
	switch state {
	case openid4vp.StateCreated, openid4vp.StateRequestIssued:
		return http.StatusCreated
	case openid4vp.StateResponseReceived, openid4vp.StateTrustVerified, openid4vp.StatePresentationVerified:
		return http.StatusAccepted
	default:
		return http.StatusOK
	}
}

// writeError logs the full error and answers with a generic OAuth-style body.
func (c *Controller) writeError(e echo.Context, err error) error {
	status := http.StatusInternalServerError

	var customErr *resterr.CustomError

	if errors.As(err, &customErr) {
		status = customErr.HTTPStatus()
	}

	logger.Errorc(e.Request().Context(), "Request failed", log.WithError(err))

	return e.JSON(status, map[string]string{"error": genericErrorCode(status)})
}

func genericErrorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid_request"
	case http.StatusUnauthorized, http.StatusForbidden:
		return "access_denied"
	case http.StatusServiceUnavailable:
		return "temporarily_unavailable"
	default:
		return "server_error"
	}
}
