// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

// Package nats provides a NATS JetStream implementation of the event
// publisher.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/certledger/registry/pkg/events"
	broker "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	eventsPrefix  = "events"
	maxReconnects = -1
)

var jsStreamConfig = jetstream.StreamConfig{
	Name:              "events",
	Description:       "CertLedger stream for registry notifications",
	Subjects:          []string{"events.>"},
	Retention:         jetstream.LimitsPolicy,
	MaxMsgsPerSubject: 1e9,
	MaxAge:            time.Hour * 24,
	MaxMsgSize:        1024 * 1024,
	Discard:           jetstream.DiscardOld,
	Storage:           jetstream.FileStorage,
}

var _ events.Publisher = (*pubEventStore)(nil)

type pubEventStore struct {
	conn *broker.Conn
	js   jetstream.JetStream
}

// NewPublisher returns a JetStream-backed event publisher. The events
// stream is created on first use if it does not exist.
func NewPublisher(ctx context.Context, url string) (events.Publisher, error) {
	conn, err := broker.Connect(url, broker.MaxReconnects(maxReconnects))
	if err != nil {
		return nil, err
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if _, err := js.CreateOrUpdateStream(ctx, jsStreamConfig); err != nil {
		conn.Close()
		return nil, err
	}

	return &pubEventStore{
		conn: conn,
		js:   js,
	}, nil
}

func (es *pubEventStore) Publish(ctx context.Context, stream string, event events.Event) error {
	values, err := event.Encode()
	if err != nil {
		return err
	}
	values["occurred_at"] = time.Now().UnixNano()

	data, err := json.Marshal(values)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("%s.%s", eventsPrefix, stream)
	_, err = es.js.Publish(ctx, subject, data)

	return err
}

func (es *pubEventStore) Close() error {
	es.conn.Close()
	return nil
}
