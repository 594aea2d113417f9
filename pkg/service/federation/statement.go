/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package federation

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/go-jose/go-jose/v3/jwt"
)

type statementClaims struct {
	Issuer         string                 `json:"iss"`
	Subject        string                 `json:"sub"`
	IssuedAt       int64                  `json:"iat"`
	ExpiresAt      int64                  `json:"exp"`
	JWKS           *jose.JSONWebKeySet    `json:"jwks"`
	AuthorityHints []string               `json:"authority_hints"`
	Metadata       map[string]interface{} `json:"metadata"`
}

func parseEntityStatement(raw string) (*EntityStatement, error) {
	parsed, err := jwt.ParseSigned(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: parse entity statement: %v", ErrChainBroken, err)
	}

	// Claims are extracted before signature verification. The caller decides
	// which keys the statement must verify under.
	var rawClaims map[string]interface{}
	if err = parsed.UnsafeClaimsWithoutVerification(&rawClaims); err != nil {
		return nil, fmt.Errorf("%w: entity statement claims: %v", ErrChainBroken, err)
	}

	claimBytes, err := json.Marshal(rawClaims)
	if err != nil {
		return nil, fmt.Errorf("%w: entity statement claims: %v", ErrChainBroken, err)
	}

	claims := &statementClaims{}
	if err = json.Unmarshal(claimBytes, claims); err != nil {
		return nil, fmt.Errorf("%w: entity statement claims: %v", ErrChainBroken, err)
	}

	if claims.Issuer == "" || claims.Subject == "" {
		return nil, fmt.Errorf("%w: entity statement without iss/sub", ErrChainBroken)
	}

	if claims.JWKS == nil || len(claims.JWKS.Keys) == 0 {
		return nil, fmt.Errorf("%w: entity statement of %s without jwks", ErrChainBroken, claims.Issuer)
	}

	if claims.ExpiresAt == 0 {
		return nil, fmt.Errorf("%w: entity statement of %s without exp", ErrChainBroken, claims.Issuer)
	}

	expiresAt := time.Unix(claims.ExpiresAt, 0).UTC()
	if expiresAt.Before(time.Now().UTC()) {
		return nil, fmt.Errorf("%w: entity statement of %s expired", ErrChainBroken, claims.Issuer)
	}

	return &EntityStatement{
		Raw:            raw,
		Issuer:         claims.Issuer,
		Subject:        claims.Subject,
		ExpiresAt:      expiresAt,
		JWKS:           claims.JWKS,
		AuthorityHints: claims.AuthorityHints,
		Metadata:       claims.Metadata,
	}, nil
}

func verifyStatement(statement *EntityStatement, keys []jose.JSONWebKey) error {
	parsed, err := jwt.ParseSigned(statement.Raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	for i := range keys {
		var claims map[string]interface{}
		if err = parsed.Claims(keys[i], &claims); err == nil {
			return nil
		}
	}

	return ErrSignatureInvalid
}
