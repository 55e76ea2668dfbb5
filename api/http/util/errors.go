// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package util

import "github.com/certledger/registry/pkg/errors"

// Errors defined in this file are used by the LoggingErrorEncoder decorator
// to distinguish and log API request validation errors and avoid that service
// errors are logged twice.
var (
	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.NewRequestError("something went wrong with the request")

	// ErrBearerToken indicates missing or invalid bearer user token.
	ErrBearerToken = errors.NewAuthNError("missing or invalid bearer user token")

	// ErrMissingID indicates missing entity ID.
	ErrMissingID = errors.NewRequestError("missing entity id")

	// ErrMissingCertID indicates missing certificate ID.
	ErrMissingCertID = errors.NewRequestError("missing certificate id")

	// ErrMissingCertHash indicates missing certificate hash.
	ErrMissingCertHash = errors.NewRequestError("missing certificate hash")

	// ErrMissingAddress indicates missing issuer address.
	ErrMissingAddress = errors.NewRequestError("missing issuer address")

	// ErrLimitSize indicates that an invalid limit.
	ErrLimitSize = errors.NewRequestError("invalid limit size")

	// ErrOffsetSize indicates an invalid offset.
	ErrOffsetSize = errors.NewRequestError("invalid offset size")

	// ErrInvalidQueryParams indicates invalid query parameters.
	ErrInvalidQueryParams = errors.NewRequestError("invalid query parameters")

	// ErrInvalidRevokedFilter indicates an invalid revocation filter value.
	ErrInvalidRevokedFilter = errors.NewRequestError("invalid revoked filter, use all, true or false")

	// ErrUnsupportedContentType indicates unacceptable or lack of Content-Type.
	ErrUnsupportedContentType = errors.NewMediaTypeError("unsupported content type")

	// ErrMalformedRequestBody indicates malformed request body.
	ErrMalformedRequestBody = errors.NewRequestError("request body is not a valid JSON, expecting a valid JSON")
)
