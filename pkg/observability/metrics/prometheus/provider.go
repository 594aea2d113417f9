/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/eudi-wallet/openid4vp-rp/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	if err := pp.httpServer.ListenAndServe(); err != nil {
		return fmt.Errorf("start metrics HTTP server: %w", err)
	}

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the relying-party backend.
type PromMetrics struct {
	signTime          prometheus.Histogram
	resolveChainTime  prometheus.Histogram
	cacheHits         prometheus.Counter
	beginAuthnTime    prometheus.Histogram
	acceptRespTime    prometheus.Histogram
	verifyPresentTime prometheus.Histogram
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		signTime:          newSignTime(),
		resolveChainTime:  newResolveChainTime(),
		cacheHits:         newCacheHits(),
		beginAuthnTime:    newBeginAuthnTime(),
		acceptRespTime:    newAcceptRespTime(),
		verifyPresentTime: newVerifyPresentTime(),
	}

	registerMetrics(pm)

	return pm
}

// SignTime records the time for sign.
func (pm *PromMetrics) SignTime(value time.Duration) {
	pm.signTime.Observe(value.Seconds())

	logger.Debug("crypto sign time", log.WithDuration(value))
}

// ResolveTrustChainTime records the time for a full trust-chain resolution.
func (pm *PromMetrics) ResolveTrustChainTime(value time.Duration) {
	pm.resolveChainTime.Observe(value.Seconds())

	logger.Debug("federation trust-chain resolution time", log.WithDuration(value))
}

// FederationCacheHit counts attestation cache hits.
func (pm *PromMetrics) FederationCacheHit() {
	pm.cacheHits.Inc()
}

// BeginAuthenticationTime records the time for the BeginAuthentication service call.
func (pm *PromMetrics) BeginAuthenticationTime(value time.Duration) {
	pm.beginAuthnTime.Observe(value.Seconds())

	logger.Debug("BeginAuthentication service call time", log.WithDuration(value))
}

// AcceptResponseTime records the time for the AcceptResponse service call.
func (pm *PromMetrics) AcceptResponseTime(value time.Duration) {
	pm.acceptRespTime.Observe(value.Seconds())

	logger.Debug("AcceptResponse service call time", log.WithDuration(value))
}

// VerifyPresentationTime records the time for presentation verification.
func (pm *PromMetrics) VerifyPresentationTime(value time.Duration) {
	pm.verifyPresentTime.Observe(value.Seconds())

	logger.Debug("VerifyPresentation service call time", log.WithDuration(value))
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.signTime, pm.resolveChainTime, pm.cacheHits,
		pm.beginAuthnTime, pm.acceptRespTime, pm.verifyPresentTime,
	)
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newSignTime() prometheus.Histogram {
	return newHistogram(
		metrics.Crypto, metrics.CryptoSignTimeMetric,
		"The time (in seconds) it takes to run crypto sign.",
		nil,
	)
}

func newResolveChainTime() prometheus.Histogram {
	return newHistogram(
		metrics.Federation, metrics.FederationResolveMetric,
		"The time (in seconds) it takes to resolve and validate a trust chain.",
		nil,
	)
}

func newCacheHits() prometheus.Counter {
	return newCounter(
		metrics.Federation, metrics.FederationCacheHitsMetric,
		"The number of trust attestation cache hits.",
		nil,
	)
}

func newBeginAuthnTime() prometheus.Histogram {
	return newHistogram(
		metrics.Service, metrics.BeginAuthenticationTime,
		"The time (in seconds) it takes to begin an authentication session.",
		nil,
	)
}

func newAcceptRespTime() prometheus.Histogram {
	return newHistogram(
		metrics.Service, metrics.AcceptResponseTime,
		"The time (in seconds) it takes to process a wallet authorization response.",
		nil,
	)
}

func newVerifyPresentTime() prometheus.Histogram {
	return newHistogram(
		metrics.Service, metrics.VerifyPresentationTime,
		"The time (in seconds) it takes to verify a presentation against policy.",
		nil,
	)
}
