// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
)

// NestError is an Error that embeds other errors while keeping its own
// concrete type, so that transport layers can map the outermost type to
// a status code.
type NestError interface {
	Error
	Embed(e error) error
}

var _ NestError = (*customError)(nil)

func (e *customError) Embed(err error) error {
	if err == nil {
		return e
	}

	return &customError{
		msg: e.msg,
		err: fmt.Errorf("%w: %w", e.err, err),
	}
}

// RequestError indicates a malformed or otherwise invalid request.
type RequestError struct {
	customError
}

var _ NestError = (*RequestError)(nil)

func NewRequestError(message string) NestError {
	return &RequestError{
		customError: customError{
			msg: message,
			err: errors.New(message),
		},
	}
}

func (e *RequestError) Embed(err error) error {
	embedded := e.customError.Embed(err)
	return &RequestError{
		customError: *embedded.(*customError),
	}
}

// AuthNError indicates a failure to authenticate the caller.
type AuthNError struct {
	customError
}

var _ NestError = (*AuthNError)(nil)

func NewAuthNError(message string) NestError {
	return &AuthNError{
		customError: customError{
			msg: message,
			err: errors.New(message),
		},
	}
}

func (e *AuthNError) Embed(err error) error {
	embedded := e.customError.Embed(err)
	return &AuthNError{
		customError: *embedded.(*customError),
	}
}

// AuthZError indicates that the caller lacks the required role.
type AuthZError struct {
	customError
}

var _ NestError = (*AuthZError)(nil)

func NewAuthZError(message string) NestError {
	return &AuthZError{
		customError: customError{
			msg: message,
			err: errors.New(message),
		},
	}
}

func (e *AuthZError) Embed(err error) error {
	embedded := e.customError.Embed(err)
	return &AuthZError{
		customError: *embedded.(*customError),
	}
}

// MediaTypeError indicates an unsupported request content type.
type MediaTypeError struct {
	customError
}

var _ NestError = (*MediaTypeError)(nil)

func NewMediaTypeError(message string) NestError {
	return &MediaTypeError{
		customError: customError{
			msg: message,
			err: errors.New(message),
		},
	}
}

func (e *MediaTypeError) Embed(err error) error {
	embedded := e.customError.Embed(err)
	return &MediaTypeError{
		customError: *embedded.(*customError),
	}
}

// ServiceError indicates a failure while processing an otherwise valid
// request.
type ServiceError struct {
	customError
}

var _ NestError = (*ServiceError)(nil)

func NewServiceError(message string) NestError {
	return &ServiceError{
		customError: customError{
			msg: message,
			err: errors.New(message),
		},
	}
}

func (e *ServiceError) Embed(err error) error {
	embedded := e.customError.Embed(err)
	return &ServiceError{
		customError: *embedded.(*customError),
	}
}

// NotFoundError indicates a request over a non-existent entity.
type NotFoundError struct {
	customError
}

var _ NestError = (*NotFoundError)(nil)

func NewNotFoundError(message string) NestError {
	return &NotFoundError{
		customError: customError{
			msg: message,
			err: errors.New(message),
		},
	}
}

func (e *NotFoundError) Embed(err error) error {
	embedded := e.customError.Embed(err)
	return &NotFoundError{
		customError: *embedded.(*customError),
	}
}

// InternalError indicates an unexpected server-side failure.
type InternalError struct {
	customError
}

var _ NestError = (*InternalError)(nil)

func NewInternalError() error {
	return &InternalError{
		customError: customError{
			msg: "internal server error",
			err: errors.New("internal server error"),
		},
	}
}

func (e *InternalError) Embed(err error) error {
	embedded := e.customError.Embed(err)
	return &InternalError{
		customError: *embedded.(*customError),
	}
}
