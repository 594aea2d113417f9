/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"errors"
	"sync"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/eudi-wallet/openid4vp-rp/internal/logfields"
	"github.com/eudi-wallet/openid4vp-rp/pkg/event/spi"
)

var logger = log.New("event-bus")

const defaultBufferSize = 250

// ErrBusClosed is returned by Publish and Subscribe after Close.
var ErrBusClosed = errors.New("event bus is closed")

// Bus implements a publisher/subscriber using Go channels. This implementation
// works only on a single node, i.e. handlers are not distributed. In order to
// distribute the load across a cluster, a persistent message queue should
// instead be used.
type Bus struct {
	subscribers map[string][]chan *spi.Event
	mutex       sync.RWMutex

	publishChan chan *entry
	doneChan    chan struct{}
	closed      bool
}

type entry struct {
	topic    string
	messages []*spi.Event
}

// NewBus returns an in-memory event bus.
func NewBus() *Bus {
	b := &Bus{
		subscribers: make(map[string][]chan *spi.Event),
		publishChan: make(chan *entry, defaultBufferSize),
		doneChan:    make(chan struct{}),
	}

	go b.processMessages()

	return b
}

// Close stops the publisher and closes all subscriber channels.
func (b *Bus) Close() error {
	b.mutex.Lock()
	if b.closed {
		b.mutex.Unlock()

		return nil
	}

	b.closed = true
	b.mutex.Unlock()

	b.doneChan <- struct{}{}
	<-b.doneChan

	b.mutex.Lock()
	defer b.mutex.Unlock()

	for _, msgChans := range b.subscribers {
		for _, msgChan := range msgChans {
			close(msgChan)
		}
	}

	b.subscribers = nil

	return nil
}

// Subscribe subscribes to a topic and returns the Go channel over which
// messages are sent. The returned channel will be closed by Close.
func (b *Bus) Subscribe(_ context.Context, topic string) (<-chan *spi.Event, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.closed {
		return nil, ErrBusClosed
	}

	msgChan := make(chan *spi.Event, defaultBufferSize)

	b.subscribers[topic] = append(b.subscribers[topic], msgChan)

	return msgChan, nil
}

// Publish publishes the given messages to the given topic. This function
// returns immediately after sending the messages to the internal channel.
func (b *Bus) Publish(_ context.Context, topic string, messages ...*spi.Event) error {
	b.mutex.RLock()
	closed := b.closed
	b.mutex.RUnlock()

	if closed {
		return ErrBusClosed
	}

	b.publishChan <- &entry{
		topic:    topic,
		messages: messages,
	}

	return nil
}

func (b *Bus) processMessages() {
	for {
		select {
		case e := <-b.publishChan:
			b.publish(e)

		case <-b.doneChan:
			b.doneChan <- struct{}{}

			return
		}
	}
}

func (b *Bus) publish(e *entry) {
	b.mutex.RLock()
	subscribers := b.subscribers[e.topic]
	b.mutex.RUnlock()

	if len(subscribers) == 0 {
		return
	}

	for _, subscriber := range subscribers {
		for _, m := range e.messages {
			msg := m.Copy()

			logger.Debug("publishing message", logfields.WithEventType(string(msg.Type)))

			subscriber <- msg
		}
	}
}
