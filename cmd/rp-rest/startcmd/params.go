/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLEnvKey        = "RP_REST_HOST_URL"
	hostURLFlagUsage     = "Host:Port to run the rp-rest instance on. " + commonEnvVarUsageText + hostURLEnvKey

	externalURLFlagName  = "external-url"
	externalURLEnvKey    = "RP_REST_EXTERNAL_URL"
	externalURLFlagUsage = "Public base URL of this RP. Doubles as the federation entity id and OAuth client_id. " +
		commonEnvVarUsageText + externalURLEnvKey

	mongoDBURLFlagName  = "mongodb-url"
	mongoDBURLEnvKey    = "RP_REST_MONGODB_URL"
	mongoDBURLFlagUsage = "MongoDB connection string. " + commonEnvVarUsageText + mongoDBURLEnvKey

	databaseNameFlagName  = "database-name"
	databaseNameEnvKey    = "RP_REST_DATABASE_NAME"
	databaseNameFlagUsage = "MongoDB database name. " + commonEnvVarUsageText + databaseNameEnvKey

	redisURLFlagName  = "redis-url"
	redisURLEnvKey    = "RP_REST_REDIS_URL"
	redisURLFlagUsage = "Comma-separated list of Redis addresses. " + commonEnvVarUsageText + redisURLEnvKey

	redisMasterNameFlagName  = "redis-master-name"
	redisMasterNameEnvKey    = "RP_REST_REDIS_MASTER_NAME"
	redisMasterNameFlagUsage = "Redis Sentinel master name. " + commonEnvVarUsageText + redisMasterNameEnvKey

	redisPasswordFlagName  = "redis-password" //nolint:gosec
	redisPasswordEnvKey    = "RP_REST_REDIS_PASSWORD"
	redisPasswordFlagUsage = "Redis password. " + commonEnvVarUsageText + redisPasswordEnvKey

	signingKeyFileFlagName  = "signing-key-file"
	signingKeyFileEnvKey    = "RP_REST_SIGNING_KEY_FILE"
	signingKeyFileFlagUsage = "Path to a JWK file with this RP's private signing key. " +
		commonEnvVarUsageText + signingKeyFileEnvKey

	encryptionKeyFilesFlagName  = "encryption-key-files"
	encryptionKeyFilesEnvKey    = "RP_REST_ENCRYPTION_KEY_FILES"
	encryptionKeyFilesFlagUsage = "Comma-separated JWK files with private keys for decrypting " +
		"direct_post.jwt responses. " + commonEnvVarUsageText + encryptionKeyFilesEnvKey

	policiesFilePathFlagName  = "policies-file-path"
	policiesFilePathEnvKey    = "RP_REST_POLICIES_FILE_PATH"
	policiesFilePathFlagUsage = "Presentation policies json file path. " +
		commonEnvVarUsageText + policiesFilePathEnvKey

	trustAnchorsFileFlagName  = "trust-anchors-file"
	trustAnchorsFileEnvKey    = "RP_REST_TRUST_ANCHORS_FILE"
	trustAnchorsFileFlagUsage = "Json file with the federation trust anchors and their keys. " +
		commonEnvVarUsageText + trustAnchorsFileEnvKey

	sessionLifetimeFlagName  = "session-lifetime"
	sessionLifetimeEnvKey    = "RP_REST_SESSION_LIFETIME"
	sessionLifetimeFlagUsage = "Wallet authentication session lifetime, e.g. 2m. " +
		commonEnvVarUsageText + sessionLifetimeEnvKey

	sessionRetentionFlagName  = "session-retention"
	sessionRetentionEnvKey    = "RP_REST_SESSION_RETENTION"
	sessionRetentionFlagUsage = "How long finished sessions stay readable before the store purges them. " +
		commonEnvVarUsageText + sessionRetentionEnvKey

	requestObjectTTLFlagName  = "request-object-ttl"
	requestObjectTTLEnvKey    = "RP_REST_REQUEST_OBJECT_TTL"
	requestObjectTTLFlagUsage = "Lifetime of staged request objects in Redis. " +
		commonEnvVarUsageText + requestObjectTTLEnvKey

	maxChainDepthFlagName  = "federation-max-chain-depth"
	maxChainDepthEnvKey    = "RP_REST_FEDERATION_MAX_CHAIN_DEPTH"
	maxChainDepthFlagUsage = "Maximum trust chain length accepted by the federation resolver. " +
		commonEnvVarUsageText + maxChainDepthEnvKey

	resolveTimeoutFlagName  = "federation-resolve-timeout"
	resolveTimeoutEnvKey    = "RP_REST_FEDERATION_RESOLVE_TIMEOUT"
	resolveTimeoutFlagUsage = "Overall deadline for one trust chain resolution. " +
		commonEnvVarUsageText + resolveTimeoutEnvKey

	responseModeFlagName  = "response-mode"
	responseModeEnvKey    = "RP_REST_RESPONSE_MODE"
	responseModeFlagUsage = "Requested wallet response mode: direct_post or direct_post.jwt. " +
		commonEnvVarUsageText + responseModeEnvKey

	organizationNameFlagName  = "organization-name"
	organizationNameEnvKey    = "RP_REST_ORGANIZATION_NAME"
	organizationNameFlagUsage = "Organization name published in the entity configuration. " +
		commonEnvVarUsageText + organizationNameEnvKey

	authorityHintsFlagName  = "authority-hints"
	authorityHintsEnvKey    = "RP_REST_AUTHORITY_HINTS"
	authorityHintsFlagUsage = "Comma-separated entity ids of this RP's federation superiors. " +
		commonEnvVarUsageText + authorityHintsEnvKey

	metricsHostFlagName  = "metrics-host"
	metricsHostEnvKey    = "RP_REST_METRICS_HOST"
	metricsHostFlagUsage = "Host:Port to serve Prometheus metrics on. Disabled when unset. " +
		commonEnvVarUsageText + metricsHostEnvKey

	defaultSessionLifetime  = 2 * time.Minute
	defaultSessionRetention = time.Hour
	defaultRequestObjectTTL = 5 * time.Minute
	defaultMaxChainDepth    = 5
	defaultResolveTimeout   = 10 * time.Second
	defaultDatabaseName     = "openid4vp_rp"
)

type startupParameters struct {
	hostURL     string
	externalURL string

	mongoDBURL   string
	databaseName string

	redisURLs       []string
	redisMasterName string
	redisPassword   string

	signingKeyFile     string
	encryptionKeyFiles []string

	policiesFilePath string
	trustAnchorsFile string

	sessionLifetime  time.Duration
	sessionRetention time.Duration
	requestObjectTTL time.Duration

	maxChainDepth  int
	resolveTimeout time.Duration

	responseMode     string
	organizationName string
	authorityHints   []string

	metricsHost string
}

//nolint:funlen
func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	externalURL, err := cmdutils.GetUserSetVarFromString(cmd, externalURLFlagName, externalURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	mongoDBURL, err := cmdutils.GetUserSetVarFromString(cmd, mongoDBURLFlagName, mongoDBURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	databaseName := cmdutils.GetUserSetOptionalVarFromString(cmd, databaseNameFlagName, databaseNameEnvKey)
	if databaseName == "" {
		databaseName = defaultDatabaseName
	}

	redisURLs, err := cmdutils.GetUserSetVarFromArrayString(cmd, redisURLFlagName, redisURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	signingKeyFile, err := cmdutils.GetUserSetVarFromString(cmd, signingKeyFileFlagName, signingKeyFileEnvKey, false)
	if err != nil {
		return nil, err
	}

	policiesFilePath, err := cmdutils.GetUserSetVarFromString(cmd, policiesFilePathFlagName,
		policiesFilePathEnvKey, false)
	if err != nil {
		return nil, err
	}

	trustAnchorsFile, err := cmdutils.GetUserSetVarFromString(cmd, trustAnchorsFileFlagName,
		trustAnchorsFileEnvKey, false)
	if err != nil {
		return nil, err
	}

	sessionLifetime, err := getDuration(cmd, sessionLifetimeFlagName, sessionLifetimeEnvKey, defaultSessionLifetime)
	if err != nil {
		return nil, err
	}

	sessionRetention, err := getDuration(cmd, sessionRetentionFlagName, sessionRetentionEnvKey,
		defaultSessionRetention)
	if err != nil {
		return nil, err
	}

	requestObjectTTL, err := getDuration(cmd, requestObjectTTLFlagName, requestObjectTTLEnvKey,
		defaultRequestObjectTTL)
	if err != nil {
		return nil, err
	}

	resolveTimeout, err := getDuration(cmd, resolveTimeoutFlagName, resolveTimeoutEnvKey, defaultResolveTimeout)
	if err != nil {
		return nil, err
	}

	maxChainDepth := defaultMaxChainDepth

	if raw := cmdutils.GetUserSetOptionalVarFromString(cmd, maxChainDepthFlagName, maxChainDepthEnvKey); raw != "" {
		maxChainDepth, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", maxChainDepthFlagName, err)
		}
	}

	return &startupParameters{
		hostURL:            hostURL,
		externalURL:        externalURL,
		mongoDBURL:         mongoDBURL,
		databaseName:       databaseName,
		redisURLs:          redisURLs,
		redisMasterName:    cmdutils.GetUserSetOptionalVarFromString(cmd, redisMasterNameFlagName, redisMasterNameEnvKey),
		redisPassword:      cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey),
		signingKeyFile:     signingKeyFile,
		encryptionKeyFiles: cmdutils.GetUserSetOptionalCSVVar(cmd, encryptionKeyFilesFlagName, encryptionKeyFilesEnvKey),
		policiesFilePath:   policiesFilePath,
		trustAnchorsFile:   trustAnchorsFile,
		sessionLifetime:    sessionLifetime,
		sessionRetention:   sessionRetention,
		requestObjectTTL:   requestObjectTTL,
		maxChainDepth:      maxChainDepth,
		resolveTimeout:     resolveTimeout,
		responseMode:       cmdutils.GetUserSetOptionalVarFromString(cmd, responseModeFlagName, responseModeEnvKey),
		organizationName:   cmdutils.GetUserSetOptionalVarFromString(cmd, organizationNameFlagName, organizationNameEnvKey),
		authorityHints:     cmdutils.GetUserSetOptionalCSVVar(cmd, authorityHintsFlagName, authorityHintsEnvKey),
		metricsHost:        cmdutils.GetUserSetOptionalVarFromString(cmd, metricsHostFlagName, metricsHostEnvKey),
	}, nil
}

func getDuration(cmd *cobra.Command, flagName, envKey string, defaultValue time.Duration) (time.Duration, error) {
	raw := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", flagName, err)
	}

	return value, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(externalURLFlagName, "", "", externalURLFlagUsage)
	startCmd.Flags().StringP(mongoDBURLFlagName, "", "", mongoDBURLFlagUsage)
	startCmd.Flags().StringP(databaseNameFlagName, "", "", databaseNameFlagUsage)
	startCmd.Flags().StringArrayP(redisURLFlagName, "", []string{}, redisURLFlagUsage)
	startCmd.Flags().StringP(redisMasterNameFlagName, "", "", redisMasterNameFlagUsage)
	startCmd.Flags().StringP(redisPasswordFlagName, "", "", redisPasswordFlagUsage)
	startCmd.Flags().StringP(signingKeyFileFlagName, "", "", signingKeyFileFlagUsage)
	startCmd.Flags().StringP(encryptionKeyFilesFlagName, "", "", encryptionKeyFilesFlagUsage)
	startCmd.Flags().StringP(policiesFilePathFlagName, "", "", policiesFilePathFlagUsage)
	startCmd.Flags().StringP(trustAnchorsFileFlagName, "", "", trustAnchorsFileFlagUsage)
	startCmd.Flags().StringP(sessionLifetimeFlagName, "", "", sessionLifetimeFlagUsage)
	startCmd.Flags().StringP(sessionRetentionFlagName, "", "", sessionRetentionFlagUsage)
	startCmd.Flags().StringP(requestObjectTTLFlagName, "", "", requestObjectTTLFlagUsage)
	startCmd.Flags().StringP(maxChainDepthFlagName, "", "", maxChainDepthFlagUsage)
	startCmd.Flags().StringP(resolveTimeoutFlagName, "", "", resolveTimeoutFlagUsage)
	startCmd.Flags().StringP(responseModeFlagName, "", "", responseModeFlagUsage)
	startCmd.Flags().StringP(organizationNameFlagName, "", "", organizationNameFlagUsage)
	startCmd.Flags().StringP(authorityHintsFlagName, "", "", authorityHintsFlagUsage)
	startCmd.Flags().StringP(metricsHostFlagName, "", "", metricsHostFlagUsage)
}
