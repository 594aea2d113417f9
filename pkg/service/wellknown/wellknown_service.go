/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination wellknown_service_mocks_test.go -self_package mocks -package wellknown_test -source=wellknown_service.go -mock_names cryptoSigner=MockCryptoSigner

package wellknown

import (
	"context"
	"sync"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/eudi-wallet/openid4vp-rp/internal/logfields"
)

var logger = log.New("wellknown-service")

const defaultStatementLifetime = 24 * time.Hour

type cryptoSigner interface {
	SignEntityStatement(claims interface{}, alg jose.SignatureAlgorithm) (string, error)
	PublicJWKS() *jose.JSONWebKeySet
}

// EntityConfigurationClaims is the payload of this RP's self-signed entity
// configuration statement.
type EntityConfigurationClaims struct {
	ISS string `json:"iss"`
	SUB string `json:"sub"`
	IAT int64  `json:"iat"`
	EXP int64  `json:"exp"`

	JWKS           *jose.JSONWebKeySet `json:"jwks"`
	AuthorityHints []string            `json:"authority_hints,omitempty"`
	Metadata       *EntityMetadata     `json:"metadata"`
}

// EntityMetadata groups the per-entity-type metadata sections.
type EntityMetadata struct {
	FederationEntity   *FederationEntityMetadata `json:"federation_entity,omitempty"`
	OpenIDRelyingParty *RelyingPartyMetadata     `json:"openid_relying_party,omitempty"`
}

// FederationEntityMetadata describes the organization behind this entity.
type FederationEntityMetadata struct {
	OrganizationName string `json:"organization_name,omitempty"`
	HomepageURI      string `json:"homepage_uri,omitempty"`
}

// RelyingPartyMetadata advertises the RP's protocol surface to federation
// participants.
type RelyingPartyMetadata struct {
	ClientID                string              `json:"client_id"`
	ClientName              string              `json:"client_name,omitempty"`
	ApplicationType         string              `json:"application_type"`
	ResponseTypesSupported  []string            `json:"response_types_supported"`
	ResponseModesSupported  []string            `json:"response_modes_supported"`
	RequestObjectSigningAlg []string            `json:"request_object_signing_alg_values_supported"`
	JWKS                    *jose.JSONWebKeySet `json:"jwks"`
}

// Config holds the identity and metadata published by the service.
type Config struct {
	Signer            cryptoSigner
	EntityID          string
	OrganizationName  string
	AuthorityHints    []string
	ResponseModes     []string
	SigningAlgs       []string
	StatementLifetime time.Duration
	SigAlg            jose.SignatureAlgorithm
}

// Service publishes this RP's entity configuration. The signed statement is
// rebuilt only when the previous one runs out, so reads are a cache hit for
// the whole statement lifetime.
type Service struct {
	signer            cryptoSigner
	entityID          string
	organizationName  string
	authorityHints    []string
	responseModes     []string
	signingAlgs       []string
	statementLifetime time.Duration
	sigAlg            jose.SignatureAlgorithm

	mu        sync.RWMutex
	statement string
	expiresAt time.Time
}

// NewService creates the service.
func NewService(cfg *Config) *Service {
	s := &Service{
		signer:            cfg.Signer,
		entityID:          cfg.EntityID,
		organizationName:  cfg.OrganizationName,
		authorityHints:    cfg.AuthorityHints,
		responseModes:     cfg.ResponseModes,
		signingAlgs:       cfg.SigningAlgs,
		statementLifetime: cfg.StatementLifetime,
		sigAlg:            cfg.SigAlg,
	}

	if s.statementLifetime == 0 {
		s.statementLifetime = defaultStatementLifetime
	}

	return s
}

// GetEntityConfiguration returns the signed entity configuration statement,
// re-signing it once the cached copy expires.
func (s *Service) GetEntityConfiguration(ctx context.Context) (string, error) {
	now := time.Now().UTC()

	s.mu.RLock()
	statement, expiresAt := s.statement, s.expiresAt
	s.mu.RUnlock()

	if statement != "" && now.Before(expiresAt) {
		return statement, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have re-signed while this one waited for the lock.
	if s.statement != "" && now.Before(s.expiresAt) {
		return s.statement, nil
	}

	expiresAt = now.Add(s.statementLifetime)

	signed, err := s.signer.SignEntityStatement(&EntityConfigurationClaims{
		ISS:            s.entityID,
		SUB:            s.entityID,
		IAT:            now.Unix(),
		EXP:            expiresAt.Unix(),
		JWKS:           s.signer.PublicJWKS(),
		AuthorityHints: s.authorityHints,
		Metadata: &EntityMetadata{
			FederationEntity: &FederationEntityMetadata{
				OrganizationName: s.organizationName,
				HomepageURI:      s.entityID,
			},
			OpenIDRelyingParty: &RelyingPartyMetadata{
				ClientID:                s.entityID,
				ClientName:              s.organizationName,
				ApplicationType:         "web",
				ResponseTypesSupported:  []string{"vp_token"},
				ResponseModesSupported:  s.responseModes,
				RequestObjectSigningAlg: s.signingAlgs,
				JWKS:                    s.signer.PublicJWKS(),
			},
		},
	}, s.sigAlg)
	if err != nil {
		return "", err
	}

	s.statement = signed
	s.expiresAt = expiresAt

	logger.Debugc(ctx, "Entity configuration re-signed",
		logfields.WithEntityID(s.entityID), logfields.WithValidUntil(expiresAt))

	return signed, nil
}
