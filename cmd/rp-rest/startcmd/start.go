/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/eudi-wallet/openid4vp-rp/pkg/crypto"
	"github.com/eudi-wallet/openid4vp-rp/pkg/event"
	"github.com/eudi-wallet/openid4vp-rp/pkg/observability/metrics"
	noopmetrics "github.com/eudi-wallet/openid4vp-rp/pkg/observability/metrics/noop"
	prommetrics "github.com/eudi-wallet/openid4vp-rp/pkg/observability/metrics/prometheus"
	openid4vpapi "github.com/eudi-wallet/openid4vp-rp/pkg/restapi/v1/openid4vp"
	"github.com/eudi-wallet/openid4vp-rp/pkg/service/federation"
	"github.com/eudi-wallet/openid4vp-rp/pkg/service/openid4vp"
	"github.com/eudi-wallet/openid4vp-rp/pkg/service/verifypresentation"
	"github.com/eudi-wallet/openid4vp-rp/pkg/service/wellknown"
	"github.com/eudi-wallet/openid4vp-rp/pkg/storage/mongodb"
	"github.com/eudi-wallet/openid4vp-rp/pkg/storage/mongodb/anchorstore"
	"github.com/eudi-wallet/openid4vp-rp/pkg/storage/mongodb/attestationstore"
	"github.com/eudi-wallet/openid4vp-rp/pkg/storage/mongodb/sessionstore"
	"github.com/eudi-wallet/openid4vp-rp/pkg/storage/redis"
	"github.com/eudi-wallet/openid4vp-rp/pkg/storage/redis/requestobjectstore"
)

var logger = log.New("rp-rest")

const (
	requestURIPath    = "/openid4vp/request-uri"
	responseURIPath   = "/openid4vp/response-uri"
	getResponseURL    = "/openid4vp/get-response"
	metricsReadHeader = 5 * time.Second
)

type server interface {
	ListenAndServe(host string, router http.Handler) error
}

// HTTPServer represents an actual HTTP server implementation.
type HTTPServer struct{}

// ListenAndServe starts the server using the standard Go HTTP server implementation.
func (s *HTTPServer) ListenAndServe(host string, router http.Handler) error {
	return http.ListenAndServe(host, router) //nolint:gosec
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(srv server) *cobra.Command {
	startCmd := createStartCmd(srv)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(srv server) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start rp-rest",
		Long:  "Start the OpenID4VP relying-party REST server",
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters, err := getStartupParameters(cmd)
			if err != nil {
				return err
			}

			return startService(parameters, srv)
		},
	}
}

//nolint:funlen,cyclop
func startService(parameters *startupParameters, srv server) error {
	if parameters.responseMode != "" &&
		parameters.responseMode != openid4vp.ResponseModeDirectPost &&
		parameters.responseMode != openid4vp.ResponseModeDirectPostJWT {
		return fmt.Errorf("unsupported response mode: %s", parameters.responseMode)
	}

	metricsProvider := createMetrics(parameters.metricsHost)

	mongoClient, err := mongodb.New(parameters.mongoDBURL, parameters.databaseName)
	if err != nil {
		return fmt.Errorf("connect to mongodb: %w", err)
	}

	redisOpts := []redis.ClientOpt{}
	if parameters.redisMasterName != "" {
		redisOpts = append(redisOpts, redis.WithMasterName(parameters.redisMasterName))
	}

	if parameters.redisPassword != "" {
		redisOpts = append(redisOpts, redis.WithPassword(parameters.redisPassword))
	}

	redisClient, err := redis.New(parameters.redisURLs, redisOpts...)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}

	signingKey, err := loadJWK(parameters.signingKeyFile)
	if err != nil {
		return fmt.Errorf("load signing key: %w", err)
	}

	var decryptionKeys []*jose.JSONWebKey

	for _, keyFile := range parameters.encryptionKeyFiles {
		key, keyErr := loadJWK(keyFile)
		if keyErr != nil {
			return fmt.Errorf("load encryption key: %w", keyErr)
		}

		decryptionKeys = append(decryptionKeys, key)
	}

	cryptoEngine, err := crypto.New(&crypto.Config{
		SigningKey:     signingKey,
		DecryptionKeys: decryptionKeys,
		TokenLifetime:  parameters.sessionLifetime,
		Metrics:        metricsProvider,
	})
	if err != nil {
		return err
	}

	sessionStore, err := sessionstore.New(mongoClient, parameters.sessionRetention)
	if err != nil {
		return fmt.Errorf("create session store: %w", err)
	}

	attestationStore, err := attestationstore.New(mongoClient)
	if err != nil {
		return fmt.Errorf("create attestation store: %w", err)
	}

	anchorStore := anchorstore.New(mongoClient)

	anchors, err := loadTrustAnchors(parameters.trustAnchorsFile)
	if err != nil {
		return err
	}

	if err = anchorStore.Seed(anchors); err != nil {
		return fmt.Errorf("seed trust anchors: %w", err)
	}

	federationSvc, err := federation.NewService(&federation.Config{
		Fetcher:          federation.NewHTTPFetcher(&http.Client{Timeout: parameters.resolveTimeout}),
		AttestationStore: attestationStore,
		AnchorStore:      anchorStore,
		MaxChainDepth:    parameters.maxChainDepth,
		ResolveTimeout:   parameters.resolveTimeout,
		Metrics:          metricsProvider,
	})
	if err != nil {
		return err
	}

	policyRegistry, err := openid4vp.NewFilePolicyRegistry(parameters.policiesFilePath)
	if err != nil {
		return fmt.Errorf("load policies: %w", err)
	}

	presentationVerifier := verifypresentation.New(&verifypresentation.Config{
		Formats: []verifypresentation.FormatVerifier{verifypresentation.NewSDJWTVerifier(0)},
		Metrics: metricsProvider,
	})

	eventBus := event.NewBus()
	defer eventBus.Close()

	orchestrator := openid4vp.NewService(&openid4vp.Config{
		SessionManager:       openid4vp.NewSessionManager(sessionStore, parameters.sessionLifetime),
		Crypto:               cryptoEngine,
		TrustResolver:        federationSvc,
		PresentationVerifier: presentationVerifier,
		RequestObjectStore:   requestobjectstore.New(redisClient, parameters.requestObjectTTL),
		PolicyRegistry:       policyRegistry,
		EventSvc:             eventBus,
		ClientID:             parameters.externalURL,
		RequestURIBase:       parameters.externalURL + requestURIPath,
		ResponseURI:          parameters.externalURL + responseURIPath,
		ResponseURL:          parameters.externalURL + getResponseURL,
		ResponseMode:         parameters.responseMode,
		Metrics:              metricsProvider,
	})

	wellKnownSvc := wellknown.NewService(&wellknown.Config{
		Signer:           cryptoEngine,
		EntityID:         parameters.externalURL,
		OrganizationName: parameters.organizationName,
		AuthorityHints:   parameters.authorityHints,
		ResponseModes: []string{
			openid4vp.ResponseModeDirectPost,
			openid4vp.ResponseModeDirectPostJWT,
		},
		SigningAlgs: lo.Map(crypto.DefaultSupportedSigAlgs,
			func(alg jose.SignatureAlgorithm, _ int) string { return string(alg) }),
	})

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.Use(echomw.Recover())

	openid4vpapi.NewController(router, &openid4vpapi.Config{
		OrchestratorSvc: orchestrator,
		WellKnownSvc:    wellKnownSvc,
		Tracer:          trace.NewNoopTracerProvider().Tracer("rp-rest"),
	})

	logger.Info(fmt.Sprintf("Starting rp-rest server on host %s", parameters.hostURL))

	return srv.ListenAndServe(parameters.hostURL, router)
}

func createMetrics(metricsHost string) metrics.Metrics {
	if metricsHost == "" {
		return noopmetrics.GetMetrics()
	}

	provider := prommetrics.NewPrometheusProvider(&http.Server{
		Addr:              metricsHost,
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: metricsReadHeader,
	})

	go func() {
		if err := provider.Create(); err != nil {
			logger.Error("Metrics server stopped", log.WithError(err))
		}
	}()

	return provider.Metrics()
}

func loadJWK(path string) (*jose.JSONWebKey, error) {
	jsonBytes, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	key := &jose.JSONWebKey{}
	if err = json.Unmarshal(jsonBytes, key); err != nil {
		return nil, fmt.Errorf("parse JWK %s: %w", path, err)
	}

	return key, nil
}

func loadTrustAnchors(path string) ([]*federation.TrustAnchor, error) {
	jsonBytes, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("load trust anchors: %w", err)
	}

	var anchors []*federation.TrustAnchor
	if err = json.Unmarshal(jsonBytes, &anchors); err != nil {
		return nil, fmt.Errorf("parse trust anchors %s: %w", path, err)
	}

	return anchors, nil
}
