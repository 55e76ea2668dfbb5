// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package repository

import "github.com/certledger/registry/pkg/errors"

// Wrapper for Repository errors.
var (
	// ErrCreateEntity indicates error in creating entity or entities.
	ErrCreateEntity = errors.NewServiceError("failed to create entity in the db")

	// ErrViewEntity indicates error in viewing entity or entities.
	ErrViewEntity = errors.NewServiceError("view entity failed")

	// ErrUpdateEntity indicates error in updating entity or entities.
	ErrUpdateEntity = errors.NewServiceError("update entity failed")

	// ErrNotFound indicates a non-existent entity request.
	ErrNotFound = errors.NewNotFoundError("entity not found")

	// ErrConflict indicates that entity already exists.
	ErrConflict = errors.NewRequestError("entity already exists")

	// ErrMalformedEntity indicates a malformed entity specification.
	ErrMalformedEntity = errors.NewRequestError("malformed entity specification")

	// ErrFailedOpDB indicates a failure in a database operation.
	ErrFailedOpDB = errors.New("operation on db element failed")
)
