// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

// Package events provides the notification abstraction for registry
// state changes. Events are fire-and-forget records for external
// observers; the registry never consumes its own notifications.
package events

import "context"

// Event is an abstraction of a registry notification.
type Event interface {
	// Encode encodes event to map format.
	Encode() (map[string]any, error)
}

// Publisher specifies an event publishing API.
type Publisher interface {
	// Publish publishes event to stream.
	Publish(ctx context.Context, stream string, event Event) error

	// Close gracefully closes event publisher's connection.
	Close() error
}
