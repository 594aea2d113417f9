/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifypresentation

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v3"

	"github.com/eudi-wallet/openid4vp-rp/pkg/doc/sdjwt"
)

const defaultClockSkew = 30 * time.Second

// SDJWTVerifier handles vc+sd-jwt presentations.
type SDJWTVerifier struct {
	clockSkew time.Duration
	now       func() time.Time
}

// NewSDJWTVerifier creates the verifier. A zero clockSkew falls back to the
// default.
func NewSDJWTVerifier(clockSkew time.Duration) *SDJWTVerifier {
	if clockSkew <= 0 {
		clockSkew = defaultClockSkew
	}

	return &SDJWTVerifier{
		clockSkew: clockSkew,
		now:       time.Now,
	}
}

// Format implements FormatVerifier.
func (v *SDJWTVerifier) Format() string {
	return sdjwt.Format
}

// Parse implements FormatVerifier.
func (v *SDJWTVerifier) Parse(raw string) (*ProcessedPresentation, error) {
	presentation, err := sdjwt.Parse(raw)
	if err != nil {
		return nil, err
	}

	issuer := presentation.Issuer()
	if issuer == "" {
		return nil, fmt.Errorf("%w: missing iss", sdjwt.ErrInvalidFormat)
	}

	return &ProcessedPresentation{
		Format: sdjwt.Format,
		Issuer: issuer,
		Claims: presentation.DisclosedClaims(),
		native: presentation,
	}, nil
}

// Verify implements FormatVerifier.
func (v *SDJWTVerifier) Verify(p *ProcessedPresentation, issuerKeys *jose.JSONWebKeySet, challenge *Challenge) error {
	presentation, ok := p.native.(*sdjwt.Presentation)
	if !ok {
		return errors.New("presentation was not parsed by the sd-jwt verifier")
	}

	now := v.now()

	if err := presentation.VerifyIssuerSignature(issuerKeys, now); err != nil {
		return err
	}

	if err := presentation.VerifyDisclosures(); err != nil {
		return err
	}

	return presentation.VerifyKeyBinding(&sdjwt.Challenge{
		Audience: challenge.Audience,
		Nonce:    challenge.Nonce,
	}, v.clockSkew, now)
}
