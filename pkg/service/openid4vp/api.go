/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package openid4vp

import (
	"errors"
	"time"

	"github.com/eudi-wallet/openid4vp-rp/pkg/doc/presexch"
)

var ErrDataNotFound = errors.New("data not found")

var (
	// ErrReplayedResponse is returned when a wallet response arrives for a
	// session that already consumed one.
	ErrReplayedResponse = errors.New("authorization response already received")

	// ErrConcurrentResponse is returned to the loser of a same-session
	// response race.
	ErrConcurrentResponse = errors.New("concurrent authorization response")

	// ErrSessionExpired is returned when a session is touched past its
	// expires_at. Expiry is evaluated lazily on every access.
	ErrSessionExpired = errors.New("session expired")

	// ErrStateConflict is returned by the session store when a
	// compare-and-swap update finds a state other than the expected one.
	ErrStateConflict = errors.New("session state conflict")

	// ErrDuplicateSession is returned when a nonce or request token collides
	// with a live session.
	ErrDuplicateSession = errors.New("duplicate session")
)

// SessionID identifies one authentication session.
type SessionID string

// State is a step of the session lifecycle.
type State string

const (
	StateCreated              State = "CREATED"
	StateRequestIssued        State = "REQUEST_ISSUED"
	StateResponseReceived     State = "RESPONSE_RECEIVED"
	StateTrustVerified        State = "TRUST_VERIFIED"
	StatePresentationVerified State = "PRESENTATION_VERIFIED"
	StateCompleted            State = "COMPLETED"
	StateFailed               State = "FAILED"
	StateExpired              State = "EXPIRED"
)

// nextStates is the forward edge set of the lifecycle. FAILED and EXPIRED are
// reachable from any non-terminal state and are handled in CanTransition.
var nextStates = map[State]State{
	StateCreated:              StateRequestIssued,
	StateRequestIssued:        StateResponseReceived,
	StateResponseReceived:     StateTrustVerified,
	StateTrustVerified:        StatePresentationVerified,
	StatePresentationVerified: StateCompleted,
}

// IsTerminal reports whether no further transition may leave the state.
func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateExpired
}

// CanTransition reports whether from -> to is a legal lifecycle move.
// Transitions are monotonic: a state is never revisited.
func CanTransition(from, to State) bool {
	if from.IsTerminal() {
		return false
	}

	if to == StateFailed || to == StateExpired {
		return true
	}

	return nextStates[from] == to
}

// FailureReason explains a FAILED terminal state.
type FailureReason string

const (
	ReasonUntrustedEntity    FailureReason = "UntrustedEntity"
	ReasonPolicyNotSatisfied FailureReason = "PolicyNotSatisfied"
)

// Claims is a flat set of disclosed user attributes.
type Claims = map[string]interface{}

// Session is one wallet authentication interaction, from request issuance to
// a terminal outcome.
type Session struct {
	ID           SessionID
	State        State
	PolicyID     string
	Policy       *presexch.PresentationDefinition
	Nonce        string
	RequestToken string
	ResponseMode string

	WalletEntityID string
	TrustAnchor    string

	Result        Claims
	FailureReason FailureReason

	CreatedAt time.Time
	ExpiresAt time.Time
}

// LogicallyExpired reports lazy expiry: the wall clock passed expires_at but
// the stored state has not caught up yet.
func (s *Session) LogicallyExpired(now time.Time) bool {
	return !s.State.IsTerminal() && now.After(s.ExpiresAt)
}

// SessionUpdate carries the mutable slice of a session for a CAS update. The
// store applies it only when the stored state still equals FromState.
type SessionUpdate struct {
	ID        SessionID
	FromState State
	ToState   State

	WalletEntityID *string
	TrustAnchor    *string
	Result         Claims
	FailureReason  *FailureReason
}

// InteractionInfo is returned from BeginAuthentication and feeds the QR code
// shown to the user.
type InteractionInfo struct {
	SessionID  SessionID
	ClientID   string
	RequestURI string
}

// StatusInfo is the polling view of a session.
type StatusInfo struct {
	SessionID     SessionID
	State         State
	ResponseURL   string
	FailureReason FailureReason
}
