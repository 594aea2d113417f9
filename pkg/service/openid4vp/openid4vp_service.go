/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination openid4vp_service_mocks_test.go -self_package mocks -package openid4vp_test -source=openid4vp_service.go -mock_names sessionManager=MockSessionManager,cryptoEngine=MockCryptoEngine,trustResolver=MockTrustResolver,presentationVerifier=MockPresentationVerifier,requestObjectStore=MockRequestObjectStore,policyRegistry=MockPolicyRegistry,eventService=MockEventService,metricsProvider=MockMetricsProvider

package openid4vp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-jose/go-jose/v3"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/eudi-wallet/openid4vp-rp/internal/logfields"
	"github.com/eudi-wallet/openid4vp-rp/pkg/crypto"
	"github.com/eudi-wallet/openid4vp-rp/pkg/doc/presexch"
	"github.com/eudi-wallet/openid4vp-rp/pkg/doc/sdjwt"
	"github.com/eudi-wallet/openid4vp-rp/pkg/event/spi"
	noopmetrics "github.com/eudi-wallet/openid4vp-rp/pkg/observability/metrics/noop"
	"github.com/eudi-wallet/openid4vp-rp/pkg/restapi/resterr"
	"github.com/eudi-wallet/openid4vp-rp/pkg/service/federation"
	"github.com/eudi-wallet/openid4vp-rp/pkg/service/verifypresentation"
)

var logger = log.New("openid4vp-service")

const (
	// ResponseModeDirectPost is the plain form-post response mode.
	ResponseModeDirectPost = "direct_post"
	// ResponseModeDirectPostJWT wraps the response in a JWE (JARM).
	ResponseModeDirectPostJWT = "direct_post.jwt"

	vpResponseType = "vp_token"
	requestScope   = "openid"
	clientIDScheme = "entity_id"

	maxRequestObjectPutRetries = 3
)

type sessionManager interface {
	CreateSession(policyID string, policy *presexch.PresentationDefinition, responseMode string) (*Session, error)
	Get(id SessionID) (*Session, error)
	GetByRequestToken(token string) (*Session, error)
	Transition(update *SessionUpdate) (*Session, error)
	Fail(id SessionID, from State, reason FailureReason) (*Session, error)
	Delete(id SessionID) error
}

type cryptoEngine interface {
	SignRequest(claims interface{}, alg jose.SignatureAlgorithm) (string, error)
	Decrypt(token string) (string, error)
	TokenLifetime() time.Duration
}

type trustResolver interface {
	Resolve(ctx context.Context, entityID string) (*federation.TrustAttestation, error)
}

type presentationVerifier interface {
	ParsePresentation(format, raw string) (*verifypresentation.ProcessedPresentation, error)
	VerifyPresentation(
		ctx context.Context,
		p *verifypresentation.ProcessedPresentation,
		issuerKeys *jose.JSONWebKeySet,
		challenge *verifypresentation.Challenge,
	) error
	EvaluatePolicy(
		ctx context.Context,
		policy *presexch.PresentationDefinition,
		p *verifypresentation.ProcessedPresentation,
	) (*verifypresentation.VerificationOutcome, error)
}

type requestObjectStore interface {
	Put(ctx context.Context, token, requestObject string) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type policyRegistry interface {
	Get(policyID string) (*presexch.PresentationDefinition, error)
}

type eventService interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

type metricsProvider interface {
	BeginAuthenticationTime(value time.Duration)
	AcceptResponseTime(value time.Duration)
}

// Config holds the orchestrator dependencies and endpoint layout.
type Config struct {
	SessionManager       sessionManager
	Crypto               cryptoEngine
	TrustResolver        trustResolver
	PresentationVerifier presentationVerifier
	RequestObjectStore   requestObjectStore
	PolicyRegistry       policyRegistry
	EventSvc             eventService
	EventTopic           string

	ClientID       string
	RequestURIBase string
	ResponseURI    string
	ResponseURL    string
	ResponseMode   string
	SigAlg         jose.SignatureAlgorithm

	Metrics metricsProvider
}

// Service drives a wallet authentication session from request issuance to a
// terminal outcome. Every state change goes through the session manager CAS,
// so concurrent calls against the same session cannot double-advance it.
type Service struct {
	sessionManager       sessionManager
	crypto               cryptoEngine
	trustResolver        trustResolver
	presentationVerifier presentationVerifier
	requestObjectStore   requestObjectStore
	policyRegistry       policyRegistry
	eventSvc             eventService
	eventTopic           string

	clientID       string
	requestURIBase string
	responseURI    string
	responseURL    string
	responseMode   string
	sigAlg         jose.SignatureAlgorithm

	metrics metricsProvider
}

// NewService creates the orchestrator.
func NewService(cfg *Config) *Service {
	s := &Service{
		sessionManager:       cfg.SessionManager,
		crypto:               cfg.Crypto,
		trustResolver:        cfg.TrustResolver,
		presentationVerifier: cfg.PresentationVerifier,
		requestObjectStore:   cfg.RequestObjectStore,
		policyRegistry:       cfg.PolicyRegistry,
		eventSvc:             cfg.EventSvc,
		eventTopic:           cfg.EventTopic,
		clientID:             cfg.ClientID,
		requestURIBase:       cfg.RequestURIBase,
		responseURI:          cfg.ResponseURI,
		responseURL:          cfg.ResponseURL,
		responseMode:         cfg.ResponseMode,
		sigAlg:               cfg.SigAlg,
		metrics:              cfg.Metrics,
	}

	if s.eventTopic == "" {
		s.eventTopic = spi.VerifierEventTopic
	}

	if s.responseMode == "" {
		s.responseMode = ResponseModeDirectPostJWT
	}

	if s.sigAlg == "" {
		s.sigAlg = jose.ES256
	}

	if s.metrics == nil {
		s.metrics = noopmetrics.GetMetrics()
	}

	return s
}

// RequestObject is the signed authorization request retrieved by the wallet
// from the request-uri endpoint.
type RequestObject struct {
	ISS string `json:"iss"`
	AUD string `json:"aud"`
	IAT int64  `json:"iat"`
	EXP int64  `json:"exp"`

	ResponseType   string `json:"response_type"`
	ResponseMode   string `json:"response_mode"`
	ResponseURI    string `json:"response_uri"`
	ClientID       string `json:"client_id"`
	ClientIDScheme string `json:"client_id_scheme"`
	Nonce          string `json:"nonce"`
	State          string `json:"state"`
	Scope          string `json:"scope"`

	PresentationDefinition *presexch.PresentationDefinition `json:"presentation_definition"`
}

// AuthorizationResponse is the wallet's response-uri payload. Response carries
// the JARM JWE for direct_post.jwt; VPToken and PresentationSubmission carry
// the plain form fields for direct_post.
type AuthorizationResponse struct {
	State                  string
	Response               string
	VPToken                string
	PresentationSubmission string
}

// BeginAuthentication opens a session for the named policy, signs the
// request object and stages it for a single wallet fetch.
func (s *Service) BeginAuthentication(ctx context.Context, policyID string) (*InteractionInfo, error) {
	startedAt := time.Now()
	defer func() {
		s.metrics.BeginAuthenticationTime(time.Since(startedAt))
	}()

	policy, err := s.policyRegistry.Get(policyID)
	if err != nil {
		return nil, resterr.NewProtocolError(resterr.OrchestratorComponent, "get-policy",
			fmt.Errorf("policy %q: %w", policyID, err))
	}

	session, err := s.sessionManager.CreateSession(policyID, policy, s.responseMode)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.SessionManagerComponent, "create-session", err)
	}

	token, err := s.signRequestObject(session, policy)
	if err != nil {
		return nil, resterr.NewCryptoError(resterr.CryptoEngineComponent, "sign-request-object", err)
	}

	putOp := func() error {
		return s.requestObjectStore.Put(ctx, session.RequestToken, token)
	}

	if err = backoff.Retry(putOp,
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRequestObjectPutRetries)); err != nil {
		return nil, resterr.NewResourceError(resterr.RequestObjectStoreComponent, "put-request-object", err)
	}

	session, err = s.sessionManager.Transition(&SessionUpdate{
		ID:        session.ID,
		FromState: StateCreated,
		ToState:   StateRequestIssued,
	})
	if err != nil {
		return nil, resterr.NewSystemError(resterr.SessionManagerComponent, "issue-request", err)
	}

	if err = s.sendSessionEvent(ctx, spi.VerifierInteractionInitiated, session); err != nil {
		logger.Warnc(ctx, "Failed to send verifier event. Ignoring..", log.WithError(err))
	}

	logger.Debugc(ctx, "Authentication session opened",
		logfields.WithSessionID(string(session.ID)), logfields.WithPolicyID(policyID))

	return &InteractionInfo{
		SessionID:  session.ID,
		ClientID:   s.clientID,
		RequestURI: fmt.Sprintf("%s?id=%s", s.requestURIBase, session.RequestToken),
	}, nil
}

// GetRequestObject serves the staged request object to the wallet. The object
// stays retrievable until the session leaves REQUEST_ISSUED or expires.
func (s *Service) GetRequestObject(ctx context.Context, requestToken string) (string, error) {
	session, err := s.sessionManager.GetByRequestToken(requestToken)
	if errors.Is(err, ErrDataNotFound) {
		return "", resterr.NewProtocolError(resterr.OrchestratorComponent, "get-request-object",
			fmt.Errorf("unknown request token: %w", err))
	}

	if err != nil {
		return "", resterr.NewSystemError(resterr.SessionManagerComponent, "get-request-object", err)
	}

	if session.State == StateExpired {
		return "", resterr.NewProtocolError(resterr.OrchestratorComponent, "get-request-object", ErrSessionExpired)
	}

	token, err := s.requestObjectStore.Get(ctx, requestToken)
	if errors.Is(err, ErrDataNotFound) {
		return "", resterr.NewProtocolError(resterr.OrchestratorComponent, "get-request-object",
			fmt.Errorf("request object already consumed: %w", err))
	}

	if err != nil {
		return "", resterr.NewResourceError(resterr.RequestObjectStoreComponent, "get-request-object", err)
	}

	if err = s.sendSessionEvent(ctx, spi.VerifierRequestObjectRetrieved, session); err != nil {
		logger.Warnc(ctx, "Failed to send verifier event. Ignoring..", log.WithError(err))
	}

	return token, nil
}

// AcceptResponse validates a wallet response end to end and drives the
// session to COMPLETED or FAILED. The first caller to win the CAS on
// RESPONSE_RECEIVED owns the session; later deliveries of the same token are
// replays.
//
//nolint:funlen
func (s *Service) AcceptResponse(ctx context.Context, authResponse *AuthorizationResponse) (*Session, error) {
	startedAt := time.Now()
	defer func() {
		s.metrics.AcceptResponseTime(time.Since(startedAt))
	}()

	session, err := s.sessionManager.GetByRequestToken(authResponse.State)
	if errors.Is(err, ErrDataNotFound) {
		return nil, resterr.NewProtocolError(resterr.OrchestratorComponent, "accept-response",
			fmt.Errorf("unknown state parameter: %w", err))
	}

	if err != nil {
		return nil, resterr.NewSystemError(resterr.SessionManagerComponent, "accept-response", err)
	}

	switch {
	case session.State == StateExpired:
		return nil, resterr.NewProtocolError(resterr.OrchestratorComponent, "accept-response", ErrSessionExpired)
	case session.State == StateCreated:
		return nil, resterr.NewProtocolError(resterr.OrchestratorComponent, "accept-response",
			errors.New("request object not issued yet"))
	case session.State != StateRequestIssued:
		// The session already consumed a response, successfully or not.
		return nil, resterr.NewProtocolError(resterr.OrchestratorComponent, "accept-response", ErrReplayedResponse)
	}

	session, err = s.sessionManager.Transition(&SessionUpdate{
		ID:        session.ID,
		FromState: StateRequestIssued,
		ToState:   StateResponseReceived,
	})
	if errors.Is(err, ErrStateConflict) {
		// Lost the race to a parallel delivery of the same response.
		return nil, resterr.NewProtocolError(resterr.OrchestratorComponent, "accept-response", ErrConcurrentResponse)
	}

	if err != nil {
		return nil, resterr.NewSystemError(resterr.SessionManagerComponent, "accept-response", err)
	}

	presentation, err := s.unpackPresentation(session, authResponse)
	if err != nil {
		return s.failSession(ctx, session, err)
	}

	attestation, err := s.trustResolver.Resolve(ctx, presentation.Issuer)
	if err != nil {
		session.FailureReason = ReasonUntrustedEntity

		return s.failSession(ctx, session,
			resterr.NewTrustError(resterr.FederationResolverComponent, "resolve-trust-chain", err))
	}

	session, err = s.sessionManager.Transition(&SessionUpdate{
		ID:             session.ID,
		FromState:      StateResponseReceived,
		ToState:        StateTrustVerified,
		WalletEntityID: lo.ToPtr(presentation.Issuer),
		TrustAnchor:    lo.ToPtr(attestation.Anchor),
	})
	if err != nil {
		return nil, resterr.NewSystemError(resterr.SessionManagerComponent, "accept-response", err)
	}

	err = s.presentationVerifier.VerifyPresentation(ctx, presentation, attestation.JWKS,
		&verifypresentation.Challenge{
			Audience: s.clientID,
			Nonce:    session.Nonce,
		})
	if err != nil {
		session.FailureReason = ReasonUntrustedEntity

		return s.failSession(ctx, session,
			resterr.NewCryptoError(resterr.PresentationVerifierComponent, "verify-presentation", err))
	}

	outcome, err := s.presentationVerifier.EvaluatePolicy(ctx, session.Policy, presentation)
	if err != nil {
		session.FailureReason = ReasonPolicyNotSatisfied

		return s.failSession(ctx, session,
			resterr.NewPolicyError(resterr.PresentationVerifierComponent, "evaluate-policy", err))
	}

	session, err = s.sessionManager.Transition(&SessionUpdate{
		ID:        session.ID,
		FromState: StateTrustVerified,
		ToState:   StatePresentationVerified,
	})
	if err != nil {
		return nil, resterr.NewSystemError(resterr.SessionManagerComponent, "accept-response", err)
	}

	session, err = s.sessionManager.Transition(&SessionUpdate{
		ID:        session.ID,
		FromState: StatePresentationVerified,
		ToState:   StateCompleted,
		Result:    outcome.Claims,
	})
	if err != nil {
		return nil, resterr.NewSystemError(resterr.SessionManagerComponent, "accept-response", err)
	}

	if err = s.requestObjectStore.Delete(ctx, session.RequestToken); err != nil {
		logger.Warnc(ctx, "Failed to delete request object. Ignoring..", log.WithError(err))
	}

	err = s.sendSessionEvent(ctx, spi.VerifierInteractionSucceeded, session, func(ep *EventPayload) {
		ep.ClaimKeys = lo.Keys(outcome.Claims)
	})
	if err != nil {
		logger.Warnc(ctx, "Failed to send verifier event. Ignoring..", log.WithError(err))
	}

	logger.Debugc(ctx, "Authentication session completed",
		logfields.WithSessionID(string(session.ID)),
		logfields.WithEntityID(session.WalletEntityID),
		logfields.WithTrustAnchor(session.TrustAnchor),
		logfields.WithClaimKeys(lo.Keys(outcome.Claims)))

	return session, nil
}

// GetStatus reports the polling view of a session. The response URL is
// populated once a terminal outcome exists.
func (s *Service) GetStatus(ctx context.Context, id SessionID) (*StatusInfo, error) {
	session, err := s.sessionManager.Get(id)
	if errors.Is(err, ErrDataNotFound) {
		return nil, resterr.NewProtocolError(resterr.OrchestratorComponent, "get-status",
			fmt.Errorf("unknown session: %w", err))
	}

	if err != nil {
		return nil, resterr.NewSystemError(resterr.SessionManagerComponent, "get-status", err)
	}

	info := &StatusInfo{
		SessionID:     session.ID,
		State:         session.State,
		FailureReason: session.FailureReason,
	}

	if session.State == StateCompleted {
		info.ResponseURL = fmt.Sprintf("%s?id=%s", s.responseURL, session.ID)
	}

	return info, nil
}

// GetResponse returns the disclosed claims of a COMPLETED session exactly
// once. The session is deleted as part of serving it.
func (s *Service) GetResponse(ctx context.Context, id SessionID) (Claims, error) {
	session, err := s.sessionManager.Get(id)
	if errors.Is(err, ErrDataNotFound) {
		return nil, resterr.NewProtocolError(resterr.OrchestratorComponent, "get-response",
			fmt.Errorf("unknown session: %w", err))
	}

	if err != nil {
		return nil, resterr.NewSystemError(resterr.SessionManagerComponent, "get-response", err)
	}

	if session.State != StateCompleted {
		return nil, resterr.NewProtocolError(resterr.OrchestratorComponent, "get-response",
			fmt.Errorf("session state is %s, not %s", session.State, StateCompleted))
	}

	if err = s.sessionManager.Delete(id); err != nil {
		return nil, resterr.NewSystemError(resterr.SessionManagerComponent, "get-response", err)
	}

	logger.Debugc(ctx, "Authentication result served", logfields.WithSessionID(string(id)))

	return session.Result, nil
}

func (s *Service) signRequestObject(session *Session, policy *presexch.PresentationDefinition) (string, error) {
	now := time.Now().UTC()

	return s.crypto.SignRequest(&RequestObject{
		ISS:                    s.clientID,
		AUD:                    "https://self-issued.me/v2",
		IAT:                    now.Unix(),
		EXP:                    now.Add(s.crypto.TokenLifetime()).Unix(),
		ResponseType:           vpResponseType,
		ResponseMode:           session.ResponseMode,
		ResponseURI:            s.responseURI,
		ClientID:               s.clientID,
		ClientIDScheme:         clientIDScheme,
		Nonce:                  session.Nonce,
		State:                  session.RequestToken,
		Scope:                  requestScope,
		PresentationDefinition: policy,
	}, s.sigAlg)
}

// unpackPresentation extracts and parses the vp_token from either response
// mode. Errors here are protocol errors: the wallet sent something malformed.
func (s *Service) unpackPresentation(
	session *Session,
	authResponse *AuthorizationResponse,
) (*verifypresentation.ProcessedPresentation, error) {
	vpToken := authResponse.VPToken
	submission := authResponse.PresentationSubmission

	if session.ResponseMode == ResponseModeDirectPostJWT {
		if authResponse.Response == "" {
			return nil, resterr.NewProtocolError(resterr.OrchestratorComponent, "unpack-response",
				errors.New("response mode is direct_post.jwt but no response parameter was sent"))
		}

		decrypted, err := s.crypto.Decrypt(authResponse.Response)
		if err != nil {
			return nil, resterr.NewCryptoError(resterr.CryptoEngineComponent, "decrypt-response", err)
		}

		payload, err := decodeJWTPayload(decrypted)
		if err != nil {
			return nil, resterr.NewProtocolError(resterr.OrchestratorComponent, "unpack-response", err)
		}

		vpToken = gjson.GetBytes(payload, "vp_token").String()
		submission = gjson.GetBytes(payload, "presentation_submission").Raw
	}

	if vpToken == "" {
		return nil, resterr.NewProtocolError(resterr.OrchestratorComponent, "unpack-response",
			errors.New("vp_token is missing"))
	}

	format := gjson.Get(submission, "descriptor_map.0.format").String()
	if format == "" {
		format = sdjwt.Format
	}

	presentation, err := s.presentationVerifier.ParsePresentation(format, vpToken)
	if err != nil {
		return nil, resterr.NewProtocolError(resterr.PresentationVerifierComponent, "parse-presentation", err)
	}

	return presentation, nil
}

// decodeJWTPayload exposes the claims of a decrypted response as JSON. The
// JARM payload is either a bare JSON object or a signed JWT around one.
func decodeJWTPayload(token string) ([]byte, error) {
	if !crypto.IsJWS(token) {
		return []byte(token), nil
	}

	claims, err := crypto.UnsafeDecodeClaims(token)
	if err != nil {
		return nil, fmt.Errorf("decode response payload: %w", err)
	}

	return json.Marshal(claims)
}

// failSession moves the session to FAILED and reports the terminal error.
// The failure reason recorded on the session drives the status endpoint; the
// returned error drives the HTTP answer to the wallet.
func (s *Service) failSession(ctx context.Context, session *Session, cause error) (*Session, error) {
	reason := session.FailureReason
	if reason == "" {
		reason = ReasonUntrustedEntity
	}

	failed, err := s.sessionManager.Fail(session.ID, session.State, reason)
	if err != nil {
		logger.Warnc(ctx, "Failed to mark session as failed",
			log.WithError(err), logfields.WithSessionID(string(session.ID)))

		failed = session
	}

	if delErr := s.requestObjectStore.Delete(ctx, session.RequestToken); delErr != nil {
		logger.Warnc(ctx, "Failed to delete request object. Ignoring..", log.WithError(delErr))
	}

	s.sendFailedEvent(ctx, failed, cause)

	return nil, cause
}
