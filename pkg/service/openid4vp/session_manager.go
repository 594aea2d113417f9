/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination session_manager_mocks_test.go -self_package mocks -package openid4vp_test -source=session_manager.go -mock_names sessionStore=MockSessionStore

package openid4vp

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/eudi-wallet/openid4vp-rp/pkg/doc/presexch"
)

const (
	nonceSize        = 32
	requestTokenSize = 32
	maxCreateRetries = 10
)

type sessionStore interface {
	Create(session *Session) (SessionID, error)
	Get(id SessionID) (*Session, error)
	GetByRequestToken(token string) (*Session, error)
	UpdateState(update *SessionUpdate) (*Session, error)
	Delete(id SessionID) error
}

// SessionManager creates sessions with fresh nonces and request tokens and
// guards every state change behind the store's compare-and-swap primitive.
type SessionManager struct {
	store    sessionStore
	lifetime time.Duration
}

// NewSessionManager creates the manager. lifetime bounds each session from
// creation to logical expiry.
func NewSessionManager(store sessionStore, lifetime time.Duration) *SessionManager {
	return &SessionManager{
		store:    store,
		lifetime: lifetime,
	}
}

// CreateSession opens a new session in CREATED state. Nonce and request token
// are random and unique among live sessions.
func (m *SessionManager) CreateSession(
	policyID string,
	policy *presexch.PresentationDefinition,
	responseMode string,
) (*Session, error) {
	for i := 1; i <= maxCreateRetries; i++ {
		nonce, err := randomToken(nonceSize)
		if err != nil {
			return nil, err
		}

		requestToken, err := randomToken(requestTokenSize)
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC()

		session := &Session{
			State:        StateCreated,
			PolicyID:     policyID,
			Policy:       policy,
			Nonce:        nonce,
			RequestToken: requestToken,
			ResponseMode: responseMode,
			CreatedAt:    now,
			ExpiresAt:    now.Add(m.lifetime),
		}

		id, err := m.store.Create(session)
		if errors.Is(err, ErrDuplicateSession) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("create session: %w", err)
		}

		session.ID = id

		return session, nil
	}

	return nil, fmt.Errorf("create session: unique nonce not found after %d retries", maxCreateRetries)
}

// Get returns a session by id, applying lazy expiry first: a session past its
// expires_at is moved to EXPIRED before anything else sees it.
func (m *SessionManager) Get(id SessionID) (*Session, error) {
	session, err := m.store.Get(id)
	if err != nil {
		return nil, err
	}

	return m.lazyExpire(session)
}

// GetByRequestToken returns a session by its request-uri token, with the same
// lazy expiry as Get.
func (m *SessionManager) GetByRequestToken(token string) (*Session, error) {
	session, err := m.store.GetByRequestToken(token)
	if err != nil {
		return nil, err
	}

	return m.lazyExpire(session)
}

// Transition applies a compare-and-swap state change after validating it
// against the lifecycle table.
func (m *SessionManager) Transition(update *SessionUpdate) (*Session, error) {
	if !CanTransition(update.FromState, update.ToState) {
		return nil, fmt.Errorf("illegal transition %s -> %s: %w",
			update.FromState, update.ToState, ErrStateConflict)
	}

	return m.store.UpdateState(update)
}

// Fail moves a session to FAILED with the given reason.
func (m *SessionManager) Fail(id SessionID, from State, reason FailureReason) (*Session, error) {
	return m.Transition(&SessionUpdate{
		ID:            id,
		FromState:     from,
		ToState:       StateFailed,
		FailureReason: &reason,
	})
}

// Delete removes a session outright. Used to make a served result one-shot.
func (m *SessionManager) Delete(id SessionID) error {
	return m.store.Delete(id)
}

func (m *SessionManager) lazyExpire(session *Session) (*Session, error) {
	if !session.LogicallyExpired(time.Now().UTC()) {
		return session, nil
	}

	expired, err := m.store.UpdateState(&SessionUpdate{
		ID:        session.ID,
		FromState: session.State,
		ToState:   StateExpired,
	})

	// Another access may have expired it first. Expiry wins either way.
	if errors.Is(err, ErrStateConflict) && expired != nil && expired.State == StateExpired {
		return expired, nil
	}

	if err != nil {
		return nil, err
	}

	return expired, nil
}

func randomToken(size int) (string, error) {
	raw := make([]byte, size)

	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}
