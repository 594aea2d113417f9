/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrDataNotFound = errors.New("data not found")

// Kind classifies an error for retry and reporting decisions. Protocol,
// crypto, trust and policy failures are never retried; only resource
// failures are eligible for bounded local retry before surfacing.
type Kind string

const (
	KindProtocol Kind = "protocol-error"
	KindCrypto   Kind = "crypto-error"
	KindTrust    Kind = "trust-error"
	KindPolicy   Kind = "policy-error"
	KindResource Kind = "resource-error"
	KindSystem   Kind = "system-error"
)

type Component string

const (
	OrchestratorComponent         Component = "openid4vp-service"
	SessionManagerComponent       Component = "session-manager"
	CryptoEngineComponent         Component = "crypto-engine"
	FederationResolverComponent   Component = "federation-resolver"
	PresentationVerifierComponent Component = "presentation-verifier"
	RequestObjectStoreComponent   Component = "request-object-store"
	WellKnownSvcComponent         Component = "well-known-service"
	MongoDBComponent              Component = "mongodb-service"
	RedisComponent                Component = "redis-service"
)

// CustomError carries the internal error classification across component
// boundaries. The kind and component never cross the trust boundary to the
// wallet or browser: handlers log the full detail and answer with a generic
// message.
type CustomError struct {
	Kind      Kind
	Component Component
	Operation string
	Err       error
}

func NewProtocolError(component Component, operation string, err error) *CustomError {
	return &CustomError{Kind: KindProtocol, Component: component, Operation: operation, Err: err}
}

func NewCryptoError(component Component, operation string, err error) *CustomError {
	return &CustomError{Kind: KindCrypto, Component: component, Operation: operation, Err: err}
}

func NewTrustError(component Component, operation string, err error) *CustomError {
	return &CustomError{Kind: KindTrust, Component: component, Operation: operation, Err: err}
}

func NewPolicyError(component Component, operation string, err error) *CustomError {
	return &CustomError{Kind: KindPolicy, Component: component, Operation: operation, Err: err}
}

func NewResourceError(component Component, operation string, err error) *CustomError {
	return &CustomError{Kind: KindResource, Component: component, Operation: operation, Err: err}
}

func NewSystemError(component Component, operation string, err error) *CustomError {
	return &CustomError{Kind: KindSystem, Component: component, Operation: operation, Err: err}
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s[component: %s; operation: %s]: %v", e.Kind, e.Component, e.Operation, e.Err)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to the status returned across the trust
// boundary. Response bodies stay generic regardless of status.
func (e *CustomError) HTTPStatus() int {
	switch e.Kind {
	case KindProtocol:
		return http.StatusBadRequest
	case KindCrypto:
		return http.StatusUnauthorized
	case KindTrust:
		return http.StatusForbidden
	case KindPolicy:
		return http.StatusForbidden
	case KindResource:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GetKind extracts the classification of err, defaulting to system-error for
// errors raised outside the taxonomy.
func GetKind(err error) Kind {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Kind
	}

	return KindSystem
}

// IsRetryable reports whether err belongs to the only class eligible for
// bounded local retry.
func IsRetryable(err error) bool {
	return GetKind(err) == KindResource
}
