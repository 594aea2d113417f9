/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package sdjwt parses and verifies IETF SD-JWT verifiable credentials with
// key binding (vc+sd-jwt): issuer-signed JWT, selective disclosures and the
// holder's key-binding JWT.
package sdjwt

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/go-jose/go-jose/v3/jwt"
)

// Format is the credential format identifier handled by this package.
const Format = "vc+sd-jwt"

const (
	disclosureSeparator = "~"

	kbJWTType = "kb+jwt"
)

var (
	ErrInvalidFormat      = errors.New("not an sd-jwt with key binding")
	ErrSignatureInvalid   = errors.New("sd-jwt signature invalid")
	ErrDisclosureInvalid  = errors.New("disclosure digest not found in issuer payload")
	ErrKeyBindingInvalid  = errors.New("key binding verification failed")
	ErrCredentialExpired  = errors.New("credential expired")
	ErrMissingHolderKey   = errors.New("missing cnf key in issuer payload")
)

// Disclosure is one decoded selective-disclosure entry.
type Disclosure struct {
	Salt    string
	Name    string
	Value   interface{}
	encoded string
	digest  string
}

// Digest returns the base64url-encoded sha-256 digest of the encoded
// disclosure, as referenced from the issuer payload's _sd arrays.
func (d *Disclosure) Digest() string {
	return d.digest
}

// Presentation is a parsed, not yet verified sd-jwt presentation.
type Presentation struct {
	IssuerJWT     string
	IssuerKeyID   string
	IssuerClaims  map[string]interface{}
	Disclosures   []*Disclosure
	KeyBindingJWT string
}

// Challenge binds the key-binding JWT to one authentication session.
type Challenge struct {
	Audience string
	Nonce    string
}

// Parse splits and decodes a compact sd-jwt+kb token. No signature is
// verified here.
func Parse(token string) (*Presentation, error) {
	parts := strings.Split(token, disclosureSeparator)
	if len(parts) < 2 {
		return nil, ErrInvalidFormat
	}

	issuerJWT := parts[0]
	kbJWT := parts[len(parts)-1]

	if issuerJWT == "" || kbJWT == "" {
		return nil, fmt.Errorf("%w: missing issuer or key-binding part", ErrInvalidFormat)
	}

	parsed, err := jwt.ParseSigned(issuerJWT)
	if err != nil {
		return nil, fmt.Errorf("%w: issuer jwt: %v", ErrInvalidFormat, err)
	}

	claims := map[string]interface{}{}
	if err = parsed.UnsafeClaimsWithoutVerification(&claims); err != nil {
		return nil, fmt.Errorf("%w: issuer claims: %v", ErrInvalidFormat, err)
	}

	var keyID string
	if len(parsed.Headers) > 0 {
		keyID = parsed.Headers[0].KeyID
	}

	disclosures, err := decodeDisclosures(parts[1 : len(parts)-1])
	if err != nil {
		return nil, err
	}

	return &Presentation{
		IssuerJWT:     issuerJWT,
		IssuerKeyID:   keyID,
		IssuerClaims:  claims,
		Disclosures:   disclosures,
		KeyBindingJWT: kbJWT,
	}, nil
}

// Issuer returns the iss claim of the issuer-signed JWT.
func (p *Presentation) Issuer() string {
	iss, _ := p.IssuerClaims["iss"].(string)

	return iss
}

// VerifyIssuerSignature verifies the issuer-signed JWT against keys resolved
// through the issuer's trust chain, and checks the credential's own expiry.
func (p *Presentation) VerifyIssuerSignature(issuerKeys *jose.JSONWebKeySet, now time.Time) error {
	if issuerKeys == nil || len(issuerKeys.Keys) == 0 {
		return fmt.Errorf("no issuer keys: %w", ErrSignatureInvalid)
	}

	parsed, err := jwt.ParseSigned(p.IssuerJWT)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	if err := verifyAgainstKeySet(parsed, issuerKeys, p.IssuerKeyID); err != nil {
		return err
	}

	if exp, ok := numericClaim(p.IssuerClaims, "exp"); ok && now.After(time.Unix(exp, 0)) {
		return ErrCredentialExpired
	}

	return nil
}

// VerifyKeyBinding verifies the holder's key-binding JWT with the cnf key
// declared in the issuer payload and matches it against the session
// challenge. The kb-jwt iat must not lie in the future beyond clockSkew.
func (p *Presentation) VerifyKeyBinding(challenge *Challenge, clockSkew time.Duration, now time.Time) error {
	holderKey, err := p.confirmationKey()
	if err != nil {
		return err
	}

	parsed, err := jwt.ParseSigned(p.KeyBindingJWT)
	if err != nil {
		return fmt.Errorf("%w: parse kb-jwt: %v", ErrKeyBindingInvalid, err)
	}

	if len(parsed.Headers) > 0 {
		if typ, ok := parsed.Headers[0].ExtraHeaders[jose.HeaderType].(string); ok && typ != kbJWTType {
			return fmt.Errorf("%w: unexpected kb-jwt typ %q", ErrKeyBindingInvalid, typ)
		}
	}

	claims := map[string]interface{}{}
	if err = parsed.Claims(holderKey, &claims); err != nil {
		return fmt.Errorf("%w: kb-jwt signature", ErrKeyBindingInvalid)
	}

	aud, _ := claims["aud"].(string)
	nonce, _ := claims["nonce"].(string)

	if aud != challenge.Audience {
		return fmt.Errorf("%w: aud does not match verifier", ErrKeyBindingInvalid)
	}

	if nonce != challenge.Nonce {
		return fmt.Errorf("%w: nonce does not match challenge", ErrKeyBindingInvalid)
	}

	iat, ok := numericClaim(claims, "iat")
	if !ok {
		return fmt.Errorf("%w: missing iat", ErrKeyBindingInvalid)
	}

	if time.Unix(iat, 0).After(now.Add(clockSkew)) {
		return fmt.Errorf("%w: iat is in the future", ErrKeyBindingInvalid)
	}

	return nil
}

// VerifyDisclosures checks that every disclosure digest is referenced from an
// _sd array somewhere in the issuer payload.
func (p *Presentation) VerifyDisclosures() error {
	digests := map[string]struct{}{}
	collectDigests(p.IssuerClaims, digests)

	for _, d := range p.Disclosures {
		if _, ok := digests[d.digest]; !ok {
			return fmt.Errorf("%w: %s", ErrDisclosureInvalid, d.Name)
		}
	}

	return nil
}

// DisclosedClaims resolves the issuer payload with all disclosures applied:
// _sd bookkeeping is dropped and each disclosed name/value pair is inserted
// where its digest was referenced.
func (p *Presentation) DisclosedClaims() map[string]interface{} {
	byDigest := map[string]*Disclosure{}
	for _, d := range p.Disclosures {
		byDigest[d.digest] = d
	}

	resolved := resolveValue(p.IssuerClaims, byDigest)

	claims, ok := resolved.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}

	return claims
}

func (p *Presentation) confirmationKey() (*jose.JSONWebKey, error) {
	cnf, ok := p.IssuerClaims["cnf"].(map[string]interface{})
	if !ok {
		return nil, ErrMissingHolderKey
	}

	jwkValue, ok := cnf["jwk"].(map[string]interface{})
	if !ok {
		return nil, ErrMissingHolderKey
	}

	raw, err := json.Marshal(jwkValue)
	if err != nil {
		return nil, fmt.Errorf("marshal cnf.jwk: %w", err)
	}

	key := &jose.JSONWebKey{}
	if err := key.UnmarshalJSON(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingHolderKey, err)
	}

	return key, nil
}

func decodeDisclosures(encoded []string) ([]*Disclosure, error) {
	disclosures := make([]*Disclosure, 0, len(encoded))

	for _, enc := range encoded {
		if enc == "" {
			continue
		}

		raw, err := base64.RawURLEncoding.DecodeString(enc)
		if err != nil {
			return nil, fmt.Errorf("%w: disclosure encoding: %v", ErrInvalidFormat, err)
		}

		var fields []interface{}
		if err := json.Unmarshal(raw, &fields); err != nil || len(fields) != 3 {
			return nil, fmt.Errorf("%w: disclosure is not a [salt, name, value] triple", ErrInvalidFormat)
		}

		salt, _ := fields[0].(string)

		name, ok := fields[1].(string)
		if !ok {
			return nil, fmt.Errorf("%w: disclosure name is not a string", ErrInvalidFormat)
		}

		sum := sha256.Sum256([]byte(enc))

		disclosures = append(disclosures, &Disclosure{
			Salt:    salt,
			Name:    name,
			Value:   fields[2],
			encoded: enc,
			digest:  base64.RawURLEncoding.EncodeToString(sum[:]),
		})
	}

	return disclosures, nil
}

// EncodeDisclosure serializes a [salt, name, value] triple the way a wallet
// would. Exposed for tests and tooling.
func EncodeDisclosure(salt, name string, value interface{}) (string, string, error) {
	raw, err := json.Marshal([]interface{}{salt, name, value})
	if err != nil {
		return "", "", err
	}

	encoded := base64.RawURLEncoding.EncodeToString(raw)
	sum := sha256.Sum256([]byte(encoded))

	return encoded, base64.RawURLEncoding.EncodeToString(sum[:]), nil
}

func collectDigests(value interface{}, out map[string]struct{}) {
	switch v := value.(type) {
	case map[string]interface{}:
		if sd, ok := v["_sd"].([]interface{}); ok {
			for _, d := range sd {
				if s, ok := d.(string); ok {
					out[s] = struct{}{}
				}
			}
		}

		for name, nested := range v {
			if name == "_sd" {
				continue
			}

			collectDigests(nested, out)
		}
	case []interface{}:
		for _, nested := range v {
			collectDigests(nested, out)
		}
	}
}

func resolveValue(value interface{}, byDigest map[string]*Disclosure) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		resolved := map[string]interface{}{}

		for name, nested := range v {
			if name == "_sd" || name == "_sd_alg" {
				continue
			}

			resolved[name] = resolveValue(nested, byDigest)
		}

		if sd, ok := v["_sd"].([]interface{}); ok {
			for _, d := range sd {
				digest, ok := d.(string)
				if !ok {
					continue
				}

				if disclosure, ok := byDigest[digest]; ok {
					resolved[disclosure.Name] = resolveValue(disclosure.Value, byDigest)
				}
			}
		}

		return resolved
	case []interface{}:
		resolved := make([]interface{}, 0, len(v))
		for _, nested := range v {
			resolved = append(resolved, resolveValue(nested, byDigest))
		}

		return resolved
	default:
		return v
	}
}

func verifyAgainstKeySet(parsed *jwt.JSONWebToken, keys *jose.JSONWebKeySet, keyID string) error {
	candidates := keys.Keys

	if keyID != "" {
		if matched := keys.Key(keyID); len(matched) > 0 {
			candidates = matched
		}
	}

	for i := range candidates {
		var claims map[string]interface{}
		if err := parsed.Claims(candidates[i], &claims); err == nil {
			return nil
		}
	}

	return ErrSignatureInvalid
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
