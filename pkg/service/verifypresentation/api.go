/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifypresentation

import (
	"errors"

	"github.com/go-jose/go-jose/v3"
)

var ErrUnsupportedFormat = errors.New("unsupported credential format")

// Challenge binds a presentation to one authentication session.
type Challenge struct {
	Audience string
	Nonce    string
}

// ProcessedPresentation is a structurally valid presentation whose trust and
// policy checks have not run yet.
type ProcessedPresentation struct {
	Format string
	Issuer string
	Claims map[string]interface{}

	// format-specific parsed form, owned by the FormatVerifier that built it
	native interface{}
}

// VerificationOutcome is the terminal result of a verified presentation: the
// requested claims that were actually disclosed, and where they came from.
type VerificationOutcome struct {
	PolicyID string
	Format   string
	Issuer   string
	Claims   map[string]interface{}
}

// FormatVerifier is the capability set of one credential format.
type FormatVerifier interface {
	// Format returns the format identifier the verifier handles.
	Format() string

	// Parse checks the structural shape of a raw presentation and extracts
	// its disclosed claims.
	Parse(raw string) (*ProcessedPresentation, error)

	// Verify checks issuer signature, disclosure integrity and the holder's
	// challenge binding.
	Verify(p *ProcessedPresentation, issuerKeys *jose.JSONWebKeySet, challenge *Challenge) error
}
