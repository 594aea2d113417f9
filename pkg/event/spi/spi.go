/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package spi

import (
	"time"
)

const (
	// VerifierEventTopic relying-party verifier topic name.
	VerifierEventTopic = "rp-openid4vp-verifier"
)

// EventType event type.
type EventType string

const (
	// VerifierInteractionInitiated is published when a new authentication session is created.
	VerifierInteractionInitiated = EventType("openid4vp_interaction_initiated")
	// VerifierRequestObjectRetrieved is published when the wallet fetches the request object.
	VerifierRequestObjectRetrieved = EventType("openid4vp_request_object_retrieved")
	// VerifierInteractionSucceeded is published when a session reaches COMPLETED.
	VerifierInteractionSucceeded = EventType("openid4vp_interaction_succeeded")
	// VerifierInteractionFailed is published when a session reaches FAILED.
	VerifierInteractionFailed = EventType("openid4vp_interaction_failed")
)

type Payload []byte

type Event struct {
	// SpecVersion is spec version(required).
	SpecVersion string `json:"specVersion"`

	// ID identifies the event(required).
	ID string `json:"id"`

	// Source is URI for producer(required).
	Source string `json:"source"`

	// Type defines event type(required).
	Type EventType `json:"type"`

	// Time defines time of occurrence(required).
	Time time.Time `json:"time"`

	// DataContentType is data content type(optional).
	DataContentType string `json:"dataContentType,omitempty"`

	// Data defines message(optional).
	Data []byte `json:"data,omitempty"`

	// SessionID defines authentication session ID(optional).
	SessionID string `json:"sessionId,omitempty"`
}

// Copy an event.
func (m *Event) Copy() *Event {
	return &Event{
		SpecVersion:     m.SpecVersion,
		ID:              m.ID,
		Source:          m.Source,
		Type:            m.Type,
		Time:            m.Time,
		DataContentType: m.DataContentType,
		Data:            m.Data,
		SessionID:       m.SessionID,
	}
}

// NewEvent creates a new Event.
func NewEvent(id string, source string, eventType EventType) *Event {
	return NewEventWithPayload(id, source, eventType, nil)
}

// NewEventWithPayload creates a new Event with payload.
func NewEventWithPayload(id string, source string, eventType EventType, data Payload) *Event {
	event := &Event{
		SpecVersion: "1.0",
		ID:          id,
		Source:      source,
		Type:        eventType,
		Time:        time.Now(),
	}

	if data != nil {
		event.Data = data
		event.DataContentType = "application/json"
	}

	return event
}
