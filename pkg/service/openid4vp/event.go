/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package openid4vp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/eudi-wallet/openid4vp-rp/pkg/event/spi"
	"github.com/eudi-wallet/openid4vp-rp/pkg/restapi/resterr"
)

const eventSource = "source://rp/openid4vp"

// EventPayload is the JSON body attached to verifier lifecycle events.
type EventPayload struct {
	PolicyID       string   `json:"policyID,omitempty"`
	WalletEntityID string   `json:"walletEntityID,omitempty"`
	TrustAnchor    string   `json:"trustAnchor,omitempty"`
	FailureReason  string   `json:"failureReason,omitempty"`
	ClaimKeys      []string `json:"claimKeys,omitempty"`
	Error          string   `json:"error,omitempty"`
	ErrorComponent string   `json:"errorComponent,omitempty"`
}

func (s *Service) sendSessionEvent(
	ctx context.Context,
	eventType spi.EventType,
	session *Session,
	modifiers ...func(ep *EventPayload),
) error {
	ep := createBaseEventPayload(session)

	for _, modifier := range modifiers {
		modifier(ep)
	}

	event, err := CreateEvent(eventType, session.ID, ep)
	if err != nil {
		return err
	}

	return s.eventSvc.Publish(ctx, s.eventTopic, event)
}

func (s *Service) sendFailedEvent(ctx context.Context, session *Session, e error) {
	err := s.sendSessionEvent(ctx, spi.VerifierInteractionFailed, session, func(ep *EventPayload) {
		ep.Error = e.Error()
		ep.FailureReason = string(session.FailureReason)

		var customErr *resterr.CustomError

		if errors.As(e, &customErr) {
			ep.ErrorComponent = string(customErr.Component)
		}
	})

	if err != nil {
		logger.Warnc(ctx, "Failed to send verifier event. Ignoring..", log.WithError(err))
	}
}

// CreateEvent builds a verifier event envelope for the given session.
func CreateEvent(
	eventType spi.EventType,
	sessionID SessionID,
	ep *EventPayload,
) (*spi.Event, error) {
	payload, err := json.Marshal(ep)
	if err != nil {
		return nil, err
	}

	event := spi.NewEventWithPayload(uuid.NewString(), eventSource, eventType, payload)
	event.SessionID = string(sessionID)

	return event, nil
}

func createBaseEventPayload(session *Session) *EventPayload {
	return &EventPayload{
		PolicyID:       session.PolicyID,
		WalletEntityID: session.WalletEntityID,
		TrustAnchor:    session.TrustAnchor,
	}
}
