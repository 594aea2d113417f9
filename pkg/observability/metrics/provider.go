/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "openid4vp_rp"

	// Crypto plain crypto operations.
	Crypto               = "crypto"
	CryptoSignTimeMetric = "crypto_sign_seconds"

	// Federation operations.
	Federation                = "federation"
	FederationResolveMetric   = "federation_resolve_seconds"
	FederationCacheHitsMetric = "federation_cache_hits_total"

	// Controller operations.
	Controller                    = "controller"
	ControllerAcceptRespMetric    = "controller_acceptResponse_seconds"
	ControllerBeginAuthnMetric    = "controller_beginAuthentication_seconds"
	ControllerVerifyOutcomeMetric = "controller_verificationOutcome_total"

	// Service operations.
	Service                 = "service"
	VerifyPresentationTime  = "service_verifyPresentation_seconds"
	AcceptResponseTime      = "service_acceptResponse_seconds"
	BeginAuthenticationTime = "service_beginAuthentication_seconds"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	SignTime(value time.Duration)
	ResolveTrustChainTime(value time.Duration)
	FederationCacheHit()
	BeginAuthenticationTime(value time.Duration)
	AcceptResponseTime(value time.Duration)
	VerifyPresentationTime(value time.Duration)
}
