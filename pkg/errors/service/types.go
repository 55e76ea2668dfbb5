// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package service

import "github.com/certledger/registry/pkg/errors"

// Wrapper for Service errors.
var (
	// ErrAuthentication indicates failure occurred while authenticating the entity.
	ErrAuthentication = errors.NewAuthNError("failed to perform authentication over the entity")

	// ErrAuthorization indicates failure occurred while authorizing the entity.
	ErrAuthorization = errors.NewAuthZError("failed to perform authorization over the entity")

	// ErrCreateEntity indicates error in creating entity or entities.
	ErrCreateEntity = errors.NewServiceError("failed to create entity")

	// ErrViewEntity indicates error in viewing entity or entities.
	ErrViewEntity = errors.NewServiceError("view entity failed")

	// ErrUpdateEntity indicates error in updating entity or entities.
	ErrUpdateEntity = errors.NewServiceError("update entity failed")

	// ErrMalformedEntity indicates a malformed entity specification.
	ErrMalformedEntity = errors.New("malformed entity specification")

	// ErrNotFound indicates a non-existent entity request.
	ErrNotFound = errors.NewNotFoundError("entity not found")

	// ErrConflict indicates that entity already exists.
	ErrConflict = errors.NewRequestError("entity already exists")
)
