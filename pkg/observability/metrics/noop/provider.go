/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/eudi-wallet/openid4vp-rp/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the metrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) SignTime(_ time.Duration)                {}
func (n *NoMetrics) ResolveTrustChainTime(_ time.Duration)   {}
func (n *NoMetrics) FederationCacheHit()                     {}
func (n *NoMetrics) BeginAuthenticationTime(_ time.Duration) {}
func (n *NoMetrics) AcceptResponseTime(_ time.Duration)      {}
func (n *NoMetrics) VerifyPresentationTime(_ time.Duration)  {}
