/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package verifypresentation checks a wallet's presentation against the
// session policy: structure, issuer trust and field constraints.
package verifypresentation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/eudi-wallet/openid4vp-rp/internal/logfields"
	"github.com/eudi-wallet/openid4vp-rp/pkg/doc/presexch"
	noopmetrics "github.com/eudi-wallet/openid4vp-rp/pkg/observability/metrics/noop"
)

var logger = log.New("verify-presentation-service")

type metricsProvider interface {
	VerifyPresentationTime(value time.Duration)
}

// Config holds the service dependencies.
type Config struct {
	Formats []FormatVerifier
	Metrics metricsProvider
}

// Service dispatches presentations to their format verifier and evaluates
// presentation definitions over the disclosed claims.
type Service struct {
	formats map[string]FormatVerifier
	metrics metricsProvider
}

// New creates the service.
func New(config *Config) *Service {
	formats := make(map[string]FormatVerifier, len(config.Formats))
	for _, verifier := range config.Formats {
		formats[verifier.Format()] = verifier
	}

	metrics := config.Metrics
	if metrics == nil {
		metrics = noopmetrics.GetMetrics()
	}

	return &Service{
		formats: formats,
		metrics: metrics,
	}
}

// ParsePresentation checks the structural shape of a raw presentation.
func (s *Service) ParsePresentation(format, raw string) (*ProcessedPresentation, error) {
	verifier, ok := s.formats[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return verifier.Parse(raw)
}

// VerifyPresentation runs the format's cryptographic checks with the issuer
// keys resolved through the trust chain.
func (s *Service) VerifyPresentation(
	ctx context.Context,
	p *ProcessedPresentation,
	issuerKeys *jose.JSONWebKeySet,
	challenge *Challenge,
) error {
	startTime := time.Now()
	defer func() {
		s.metrics.VerifyPresentationTime(time.Since(startTime))
	}()

	verifier, ok := s.formats[p.Format]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, p.Format)
	}

	if err := verifier.Verify(p, issuerKeys, challenge); err != nil {
		return err
	}

	logger.Debugc(ctx, "Presentation verified",
		logfields.WithCredFormat(p.Format), logfields.WithEntityID(p.Issuer))

	return nil
}

// EvaluatePolicy checks the disclosed claims against every input descriptor of
// the policy and returns the outcome limited to the requested claims.
func (s *Service) EvaluatePolicy(
	ctx context.Context,
	policy *presexch.PresentationDefinition,
	p *ProcessedPresentation,
) (*VerificationOutcome, error) {
	disclosed := map[string]interface{}{}

	for _, descriptor := range policy.InputDescriptors {
		if err := descriptor.EvaluateClaims(p.Claims); err != nil {
			return nil, fmt.Errorf("input descriptor %s: %w", descriptor.ID, err)
		}

		for _, name := range descriptor.RequestedClaimNames() {
			if value, ok := p.Claims[name]; ok {
				disclosed[name] = value
			}
		}
	}

	outcome := &VerificationOutcome{
		PolicyID: policy.ID,
		Format:   p.Format,
		Issuer:   p.Issuer,
		Claims:   disclosed,
	}

	logger.Debugc(ctx, "Policy satisfied",
		logfields.WithPolicyID(policy.ID),
		logfields.WithClaimKeys(claimKeys(disclosed)))

	return outcome, nil
}

func claimKeys(claims map[string]interface{}) []string {
	keys := make([]string, 0, len(claims))
	for key := range claims {
		keys = append(keys, key)
	}

	return keys
}
