/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"time"

	"go.uber.org/zap"
)

// Log Fields.
const (
	FieldSessionID      = "sessionID"
	FieldSessionState   = "sessionState"
	FieldEntityID       = "entityID"
	FieldTrustAnchor    = "trustAnchor"
	FieldChainLength    = "chainLength"
	FieldPolicyID       = "policyID"
	FieldRequestToken   = "requestToken"
	FieldCredFormat     = "credFormat"
	FieldValidUntil     = "validUntil"
	FieldFailureReason  = "failureReason"
	FieldResponseMode   = "responseMode"
	FieldClaimKeys      = "claimKeys"
	FieldSigningAlg     = "signingAlg"
	FieldEncryptionAlg  = "encryptionAlg"
	FieldEventType      = "eventType"
	FieldAuthorityHint  = "authorityHint"
	FieldResolutionTime = "resolutionTime"
)

// WithSessionID sets the SessionID field.
func WithSessionID(sessionID string) zap.Field {
	return zap.String(FieldSessionID, sessionID)
}

// WithSessionState sets the SessionState field.
func WithSessionState(state string) zap.Field {
	return zap.String(FieldSessionState, state)
}

// WithEntityID sets the EntityID field.
func WithEntityID(entityID string) zap.Field {
	return zap.String(FieldEntityID, entityID)
}

// WithTrustAnchor sets the TrustAnchor field.
func WithTrustAnchor(anchor string) zap.Field {
	return zap.String(FieldTrustAnchor, anchor)
}

// WithChainLength sets the ChainLength field.
func WithChainLength(length int) zap.Field {
	return zap.Int(FieldChainLength, length)
}

// WithPolicyID sets the PolicyID field.
func WithPolicyID(policyID string) zap.Field {
	return zap.String(FieldPolicyID, policyID)
}

// WithRequestToken sets the RequestToken field.
func WithRequestToken(token string) zap.Field {
	return zap.String(FieldRequestToken, token)
}

// WithCredFormat sets the CredFormat field.
func WithCredFormat(format string) zap.Field {
	return zap.String(FieldCredFormat, format)
}

// WithValidUntil sets the ValidUntil field.
func WithValidUntil(validUntil time.Time) zap.Field {
	return zap.Time(FieldValidUntil, validUntil)
}

// WithFailureReason sets the FailureReason field.
func WithFailureReason(reason string) zap.Field {
	return zap.String(FieldFailureReason, reason)
}

// WithResponseMode sets the ResponseMode field.
func WithResponseMode(mode string) zap.Field {
	return zap.String(FieldResponseMode, mode)
}

// WithClaimKeys sets the ClaimKeys field.
func WithClaimKeys(claimKeys []string) zap.Field {
	return zap.Strings(FieldClaimKeys, claimKeys)
}

// WithSigningAlg sets the SigningAlg field.
func WithSigningAlg(alg string) zap.Field {
	return zap.String(FieldSigningAlg, alg)
}

// WithEncryptionAlg sets the EncryptionAlg field.
func WithEncryptionAlg(alg string) zap.Field {
	return zap.String(FieldEncryptionAlg, alg)
}

// WithEventType sets the EventType field.
func WithEventType(eventType string) zap.Field {
	return zap.String(FieldEventType, eventType)
}

// WithAuthorityHint sets the AuthorityHint field.
func WithAuthorityHint(hint string) zap.Field {
	return zap.String(FieldAuthorityHint, hint)
}

// WithResolutionTime sets the ResolutionTime field.
func WithResolutionTime(d time.Duration) zap.Field {
	return zap.Duration(FieldResolutionTime, d)
}
