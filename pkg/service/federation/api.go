/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package federation

import (
	"errors"
	"time"

	"github.com/go-jose/go-jose/v3"
)

var ErrDataNotFound = errors.New("data not found")

var (
	ErrChainBroken       = errors.New("trust chain broken")
	ErrSignatureInvalid  = errors.New("entity statement signature invalid")
	ErrNoTrustAnchor     = errors.New("no path to a configured trust anchor")
	ErrChainTooLong      = errors.New("trust chain exceeds max depth")
	ErrResolutionTimeout = errors.New("trust chain resolution timed out")
)

// TrustAnchor is a federation root the verifier is configured to trust. Its
// keys are provisioned out of band and are read-only at runtime.
type TrustAnchor struct {
	EntityID string              `json:"entity_id"`
	JWKS     *jose.JSONWebKeySet `json:"jwks"`
}

// TrustAttestation is the outcome of a successful trust chain resolution for
// one entity. Chain holds the raw entity statements, leaf first, anchor last.
type TrustAttestation struct {
	EntityID   string              `json:"entity_id"`
	Anchor     string              `json:"anchor"`
	Chain      []string            `json:"chain"`
	JWKS       *jose.JSONWebKeySet `json:"jwks"`
	ResolvedAt time.Time           `json:"resolved_at"`
	ValidUntil time.Time           `json:"valid_until"`
}

// Expired reports whether the attestation may no longer be served from cache.
func (a *TrustAttestation) Expired(now time.Time) bool {
	return !now.Before(a.ValidUntil)
}

// EntityStatement is a decoded federation entity statement payload. Raw keeps
// the compact JWS for chain storage and re-verification.
type EntityStatement struct {
	Raw            string
	Issuer         string
	Subject        string
	ExpiresAt      time.Time
	JWKS           *jose.JSONWebKeySet
	AuthorityHints []string
	Metadata       map[string]interface{}
}
