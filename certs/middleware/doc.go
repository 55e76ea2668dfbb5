// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

// Package middleware provides logging, metrics and tracing decorators
// for the registry service.
package middleware
