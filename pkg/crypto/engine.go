/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/go-jose/go-jose/v3/jwt"

	noopmetrics "github.com/eudi-wallet/openid4vp-rp/pkg/observability/metrics/noop"
)

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrSignatureInvalid     = errors.New("signature invalid")
	ErrDecryptionFailed     = errors.New("decryption failed")
	ErrExpiredToken         = errors.New("token expired")
	ErrIssuerMismatch       = errors.New("issuer mismatch")
)

const (
	defaultExp       = 5 * time.Minute
	defaultClockSkew = 30 * time.Second

	jwsPartCount = 3
	jwePartCount = 5
)

type metricsProvider interface {
	SignTime(value time.Duration)
}

// Config holds the key material and algorithm allow-lists for the engine.
// Allow-lists left empty fall back to the documented defaults.
type Config struct {
	SigningKey           *jose.JSONWebKey
	DecryptionKeys       []*jose.JSONWebKey
	DefaultSigAlg        jose.SignatureAlgorithm
	SupportedSigAlgs     []jose.SignatureAlgorithm
	SupportedKeyEncAlgs  []jose.KeyAlgorithm
	SupportedContentEncs []jose.ContentEncryption
	TokenLifetime        time.Duration
	ClockSkew            time.Duration
	Metrics              metricsProvider
}

// Engine signs and encrypts outgoing JWTs and verifies and decrypts incoming
// ones. All operations are stateless and safe for concurrent use.
type Engine struct {
	signingKey           *jose.JSONWebKey
	decryptionKeys       []*jose.JSONWebKey
	defaultSigAlg        jose.SignatureAlgorithm
	supportedSigAlgs     []jose.SignatureAlgorithm
	supportedKeyEncAlgs  []jose.KeyAlgorithm
	supportedContentEncs []jose.ContentEncryption
	tokenLifetime        time.Duration
	clockSkew            time.Duration
	metrics              metricsProvider
}

// New creates an Engine.
func New(cfg *Config) (*Engine, error) {
	if cfg.SigningKey == nil || !cfg.SigningKey.Valid() {
		return nil, errors.New("crypto engine: signing key is missing or invalid")
	}

	e := &Engine{
		signingKey:           cfg.SigningKey,
		decryptionKeys:       cfg.DecryptionKeys,
		defaultSigAlg:        cfg.DefaultSigAlg,
		supportedSigAlgs:     cfg.SupportedSigAlgs,
		supportedKeyEncAlgs:  cfg.SupportedKeyEncAlgs,
		supportedContentEncs: cfg.SupportedContentEncs,
		tokenLifetime:        cfg.TokenLifetime,
		clockSkew:            cfg.ClockSkew,
		metrics:              cfg.Metrics,
	}

	if e.defaultSigAlg == "" {
		e.defaultSigAlg = jose.ES256
	}

	if len(e.supportedSigAlgs) == 0 {
		e.supportedSigAlgs = DefaultSupportedSigAlgs
	}

	if len(e.supportedKeyEncAlgs) == 0 {
		e.supportedKeyEncAlgs = DefaultSupportedKeyEncAlgs
	}

	if len(e.supportedContentEncs) == 0 {
		e.supportedContentEncs = DefaultSupportedContentEncs
	}

	if e.tokenLifetime == 0 {
		e.tokenLifetime = defaultExp
	}

	if e.clockSkew == 0 {
		e.clockSkew = defaultClockSkew
	}

	if e.metrics == nil {
		e.metrics = noopmetrics.GetMetrics()
	}

	if !sigAlgSupported(e.supportedSigAlgs, e.defaultSigAlg) {
		return nil, fmt.Errorf("crypto engine: default algorithm %s: %w", e.defaultSigAlg, ErrUnsupportedAlgorithm)
	}

	return e, nil
}

// TokenLifetime is the server-side expiration window applied to every token
// regardless of its claims.
func (e *Engine) TokenLifetime() time.Duration {
	return e.tokenLifetime
}

// PublicJWKS returns the engine's public keys for publication in the entity
// configuration metadata.
func (e *Engine) PublicJWKS() *jose.JSONWebKeySet {
	keys := []jose.JSONWebKey{e.signingKey.Public()}

	for _, k := range e.decryptionKeys {
		keys = append(keys, k.Public())
	}

	return &jose.JSONWebKeySet{Keys: keys}
}

// SignRequest produces a compact JWS over claims with typ oauth-authz-req+jwt.
// An empty alg selects the configured default; an alg outside the supported
// set is rejected.
func (e *Engine) SignRequest(claims interface{}, alg jose.SignatureAlgorithm) (string, error) {
	return e.sign(claims, alg, "oauth-authz-req+jwt")
}

// SignEntityStatement produces a compact JWS over claims with typ
// entity-statement+jwt, for publication as this party's entity configuration.
func (e *Engine) SignEntityStatement(claims interface{}, alg jose.SignatureAlgorithm) (string, error) {
	return e.sign(claims, alg, "entity-statement+jwt")
}

func (e *Engine) sign(claims interface{}, alg jose.SignatureAlgorithm, typ string) (string, error) {
	startTime := time.Now()

	defer func() {
		e.metrics.SignTime(time.Since(startTime))
	}()

	if alg == "" {
		alg = e.defaultSigAlg
	}

	if !sigAlgSupported(e.supportedSigAlgs, alg) {
		return "", fmt.Errorf("sign with %s: %w", alg, ErrUnsupportedAlgorithm)
	}

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: alg, Key: e.signingKey},
		(&jose.SignerOptions{}).WithType(jose.ContentType(typ)),
	)
	if err != nil {
		return "", fmt.Errorf("create signer: %w", err)
	}

	token, err := jwt.Signed(signer).Claims(claims).CompactSerialize()
	if err != nil {
		return "", fmt.Errorf("sign claims: %w", err)
	}

	return token, nil
}

// EncryptRequest wraps an already-signed JWT into a compact JWE for the given
// recipient. Both halves of the algorithm pair must be in the supported sets.
func (e *Engine) EncryptRequest(signedJWT string, recipient *jose.JSONWebKey,
	alg jose.KeyAlgorithm, enc jose.ContentEncryption) (string, error) {
	if !keyEncAlgSupported(e.supportedKeyEncAlgs, alg) {
		return "", fmt.Errorf("encrypt request with alg %s: %w", alg, ErrUnsupportedAlgorithm)
	}

	if !contentEncSupported(e.supportedContentEncs, enc) {
		return "", fmt.Errorf("encrypt request with enc %s: %w", enc, ErrUnsupportedAlgorithm)
	}

	encrypter, err := jose.NewEncrypter(enc,
		jose.Recipient{Algorithm: alg, Key: recipient},
		(&jose.EncrypterOptions{}).WithContentType("JWT"),
	)
	if err != nil {
		return "", fmt.Errorf("create encrypter: %w", err)
	}

	object, err := encrypter.Encrypt([]byte(signedJWT))
	if err != nil {
		return "", fmt.Errorf("encrypt request: %w", err)
	}

	serialized, err := object.CompactSerialize()
	if err != nil {
		return "", fmt.Errorf("serialize request JWE: %w", err)
	}

	return serialized, nil
}

// Decrypt unwraps a compact JWE using the engine's decryption keys and returns
// the embedded payload. Tokens that are not JWEs are returned unchanged.
func (e *Engine) Decrypt(token string) (string, error) {
	if !IsJWE(token) {
		return token, nil
	}

	object, err := jose.ParseEncrypted(token)
	if err != nil {
		return "", fmt.Errorf("parse JWE: %w", ErrDecryptionFailed)
	}

	for _, key := range e.decryptionKeys {
		plaintext, decErr := object.Decrypt(key)
		if decErr == nil {
			return string(plaintext), nil
		}
	}

	return "", ErrDecryptionFailed
}

// VerifyAndDecrypt decrypts the token if encrypted, verifies its signature
// against the issuer's published keys and returns the claims. Expiration is
// enforced server-side from iat, bounded by the configured lifetime, on top
// of the token's own exp claim.
func (e *Engine) VerifyAndDecrypt(token, expectedIssuer string,
	issuerKeys *jose.JSONWebKeySet) (map[string]interface{}, error) {
	inner, err := e.Decrypt(token)
	if err != nil {
		return nil, err
	}

	parsed, err := jwt.ParseSigned(inner)
	if err != nil {
		return nil, fmt.Errorf("parse signed token: %w", ErrSignatureInvalid)
	}

	claims, err := verifyWithKeySet(parsed, issuerKeys)
	if err != nil {
		return nil, err
	}

	if err := e.checkTemporalClaims(claims); err != nil {
		return nil, err
	}

	if iss, _ := claims["iss"].(string); expectedIssuer != "" && iss != expectedIssuer {
		return nil, fmt.Errorf("issuer %q: %w", iss, ErrIssuerMismatch)
	}

	return claims, nil
}

func (e *Engine) checkTemporalClaims(claims map[string]interface{}) error {
	now := time.Now()

	if exp, ok := numericClaim(claims, "exp"); ok {
		if now.After(time.Unix(exp, 0).Add(e.clockSkew)) {
			return ErrExpiredToken
		}
	}

	// The server-side lifetime wins over whatever exp the issuer chose.
	if iat, ok := numericClaim(claims, "iat"); ok {
		if now.After(time.Unix(iat, 0).Add(e.tokenLifetime).Add(e.clockSkew)) {
			return ErrExpiredToken
		}
	}

	return nil
}

func verifyWithKeySet(parsed *jwt.JSONWebToken, keys *jose.JSONWebKeySet) (map[string]interface{}, error) {
	if keys == nil || len(keys.Keys) == 0 {
		return nil, fmt.Errorf("no issuer keys: %w", ErrSignatureInvalid)
	}

	candidates := keys.Keys

	if len(parsed.Headers) > 0 && parsed.Headers[0].KeyID != "" {
		if matched := keys.Key(parsed.Headers[0].KeyID); len(matched) > 0 {
			candidates = matched
		}
	}

	for i := range candidates {
		claims := map[string]interface{}{}
		if err := parsed.Claims(candidates[i], &claims); err == nil {
			return claims, nil
		}
	}

	return nil, ErrSignatureInvalid
}

// IsJWE reports whether token is a compact-serialized JWE.
func IsJWE(token string) bool {
	return strings.Count(token, ".") == jwePartCount-1
}

// IsJWS reports whether token is a compact-serialized JWS.
func IsJWS(token string) bool {
	return strings.Count(token, ".") == jwsPartCount-1
}

// UnsafeDecodeClaims decodes the payload of a compact JWS without verifying
// its signature. To be used with precaution, only to discover routing values
// (iss, nonce) before the real verification happens.
func UnsafeDecodeClaims(token string) (map[string]interface{}, error) {
	parsed, err := jwt.ParseSigned(token)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims := map[string]interface{}{}
	if err := parsed.UnsafeClaimsWithoutVerification(&claims); err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}

	return claims, nil
}

func numericClaim(claims map[string]interface{}, name string) (int64, bool) {
	switch v := claims[name].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}

		return n, true
	default:
		return 0, false
	}
}
