/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination federation_service_mocks_test.go -self_package mocks -package federation_test -source=federation_service.go -mock_names entityFetcher=MockEntityFetcher,attestationStore=MockAttestationStore,anchorStore=MockAnchorStore,metricsProvider=MockMetricsProvider

package federation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/eudi-wallet/openid4vp-rp/internal/logfields"
	noopmetrics "github.com/eudi-wallet/openid4vp-rp/pkg/observability/metrics/noop"
)

var logger = log.New("federation-service")

const (
	defaultMaxDepth       = 5
	defaultResolveTimeout = 10 * time.Second
)

type entityFetcher interface {
	FetchEntityConfiguration(ctx context.Context, entityID string) (string, error)
	FetchSubordinateStatement(ctx context.Context, issuer, subject string) (string, error)
}

type attestationStore interface {
	Put(attestation *TrustAttestation) error
	Get(entityID string) (*TrustAttestation, error)
}

type anchorStore interface {
	GetAll() ([]*TrustAnchor, error)
}

type metricsProvider interface {
	ResolveTrustChainTime(value time.Duration)
	FederationCacheHit()
}

// Config holds the resolver dependencies.
type Config struct {
	Fetcher          entityFetcher
	AttestationStore attestationStore
	AnchorStore      anchorStore

	MaxChainDepth  int
	ResolveTimeout time.Duration
	Metrics        metricsProvider
}

// Service resolves and caches trust chains for federation entities.
type Service struct {
	fetcher          entityFetcher
	attestationStore attestationStore
	anchors          map[string]*TrustAnchor

	maxChainDepth  int
	resolveTimeout time.Duration
	metrics        metricsProvider

	// cache maps entity id to *TrustAttestation. Values are replaced whole,
	// readers never see a partially built attestation.
	cache sync.Map
}

// NewService loads the configured trust anchors and returns the resolver.
func NewService(cfg *Config) (*Service, error) {
	anchors, err := cfg.AnchorStore.GetAll()
	if err != nil {
		return nil, fmt.Errorf("load trust anchors: %w", err)
	}

	if len(anchors) == 0 {
		return nil, errors.New("at least one trust anchor is required")
	}

	anchorsByID := make(map[string]*TrustAnchor, len(anchors))
	for _, anchor := range anchors {
		anchorsByID[anchor.EntityID] = anchor
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = noopmetrics.GetMetrics()
	}

	maxDepth := cfg.MaxChainDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	resolveTimeout := cfg.ResolveTimeout
	if resolveTimeout <= 0 {
		resolveTimeout = defaultResolveTimeout
	}

	return &Service{
		fetcher:          cfg.Fetcher,
		attestationStore: cfg.AttestationStore,
		anchors:          anchorsByID,
		maxChainDepth:    maxDepth,
		resolveTimeout:   resolveTimeout,
		metrics:          metrics,
	}, nil
}

// Resolve returns a valid trust attestation for the entity, from cache when
// possible. A failed resolution is never cached.
func (s *Service) Resolve(ctx context.Context, entityID string) (*TrustAttestation, error) {
	now := time.Now().UTC()

	if cached, ok := s.cache.Load(entityID); ok {
		attestation := cached.(*TrustAttestation) //nolint: errcheck
		if !attestation.Expired(now) {
			s.metrics.FederationCacheHit()

			return attestation, nil
		}

		s.cache.Delete(entityID)
	}

	if stored, err := s.attestationStore.Get(entityID); err == nil && !stored.Expired(now) {
		s.cache.Store(entityID, stored)
		s.metrics.FederationCacheHit()

		return stored, nil
	}

	startTime := time.Now()
	defer func() {
		s.metrics.ResolveTrustChainTime(time.Since(startTime))
	}()

	resolveCtx, cancel := context.WithTimeout(ctx, s.resolveTimeout)
	defer cancel()

	chain, anchor, err := s.buildChain(resolveCtx, entityID, 0)
	if err != nil {
		if errors.Is(resolveCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrResolutionTimeout, err)
		}

		logger.Warnc(ctx, "Trust chain resolution failed",
			logfields.WithEntityID(entityID), log.WithError(err))

		return nil, err
	}

	attestation := &TrustAttestation{
		EntityID:   entityID,
		Anchor:     anchor.EntityID,
		Chain:      rawChain(chain),
		JWKS:       chain[0].JWKS,
		ResolvedAt: now,
		ValidUntil: chainValidUntil(chain),
	}

	if err = s.attestationStore.Put(attestation); err != nil {
		return nil, fmt.Errorf("store attestation: %w", err)
	}

	s.cache.Store(entityID, attestation)

	logger.Debugc(ctx, "Resolved trust chain",
		logfields.WithEntityID(entityID),
		logfields.WithTrustAnchor(anchor.EntityID),
		logfields.WithChainLength(len(attestation.Chain)),
		logfields.WithValidUntil(attestation.ValidUntil),
		logfields.WithResolutionTime(time.Since(startTime)))

	return attestation, nil
}

// buildChain walks authority hints upward until it reaches a configured trust
// anchor. The returned chain is leaf first: entity configuration, then the
// subordinate statement its superior issued about it, then the superior's own
// chain.
func (s *Service) buildChain(ctx context.Context, entityID string, depth int) ([]*EntityStatement, *TrustAnchor, error) {
	if depth > s.maxChainDepth {
		return nil, nil, ErrChainTooLong
	}

	entityConfig, err := s.fetchEntityConfiguration(ctx, entityID)
	if err != nil {
		return nil, nil, err
	}

	if anchor, ok := s.anchors[entityID]; ok {
		if err = verifyStatement(entityConfig, anchor.JWKS.Keys); err != nil {
			return nil, nil, fmt.Errorf("anchor %s configuration: %w", entityID, err)
		}

		return []*EntityStatement{entityConfig}, anchor, nil
	}

	if len(entityConfig.AuthorityHints) == 0 {
		return nil, nil, fmt.Errorf("%w: %s declares no authority hints", ErrNoTrustAnchor, entityID)
	}

	lastErr := error(ErrNoTrustAnchor)

	for _, hint := range entityConfig.AuthorityHints {
		upper, anchor, err := s.buildChain(ctx, hint, depth+1)
		if err != nil {
			lastErr = err

			continue
		}

		subordinate, err := s.fetchSubordinateStatement(ctx, upper[0], entityID)
		if err != nil {
			lastErr = err

			continue
		}

		// The superior asserts the subject's keys. The entity configuration
		// must verify under them, otherwise the link is forged.
		if err = verifyStatement(entityConfig, subordinate.JWKS.Keys); err != nil {
			lastErr = fmt.Errorf("entity configuration of %s not signed with superior-asserted keys: %w",
				entityID, err)

			continue
		}

		chain := make([]*EntityStatement, 0, len(upper)+2)
		chain = append(chain, entityConfig, subordinate)
		chain = append(chain, upper...)

		return chain, anchor, nil
	}

	return nil, nil, lastErr
}

func (s *Service) fetchEntityConfiguration(ctx context.Context, entityID string) (*EntityStatement, error) {
	raw, err := s.fetcher.FetchEntityConfiguration(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch entity configuration of %s: %v", ErrChainBroken, entityID, err)
	}

	statement, err := parseEntityStatement(raw)
	if err != nil {
		return nil, err
	}

	if statement.Issuer != entityID || statement.Subject != entityID {
		return nil, fmt.Errorf("%w: entity configuration of %s is not self-issued", ErrChainBroken, entityID)
	}

	// Entity configurations are self-signed.
	if err = verifyStatement(statement, statement.JWKS.Keys); err != nil {
		return nil, fmt.Errorf("entity configuration of %s: %w", entityID, err)
	}

	return statement, nil
}

func (s *Service) fetchSubordinateStatement(ctx context.Context, authority *EntityStatement, subject string) (*EntityStatement, error) {
	logger.Debugc(ctx, "Fetching subordinate statement",
		logfields.WithAuthorityHint(authority.Issuer), logfields.WithEntityID(subject))

	raw, err := s.fetcher.FetchSubordinateStatement(ctx, authority.Issuer, subject)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch subordinate statement %s about %s: %v",
			ErrChainBroken, authority.Issuer, subject, err)
	}

	statement, err := parseEntityStatement(raw)
	if err != nil {
		return nil, err
	}

	if statement.Issuer != authority.Issuer || statement.Subject != subject {
		return nil, fmt.Errorf("%w: subordinate statement subject/issuer mismatch", ErrChainBroken)
	}

	if err = verifyStatement(statement, authority.JWKS.Keys); err != nil {
		return nil, fmt.Errorf("subordinate statement of %s: %w", authority.Issuer, err)
	}

	return statement, nil
}

func rawChain(chain []*EntityStatement) []string {
	raw := make([]string, len(chain))
	for i, statement := range chain {
		raw[i] = statement.Raw
	}

	return raw
}

func chainValidUntil(chain []*EntityStatement) time.Time {
	validUntil := chain[0].ExpiresAt

	for _, statement := range chain[1:] {
		if statement.ExpiresAt.Before(validUntil) {
			validUntil = statement.ExpiresAt
		}
	}

	return validUntil
}
