// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package authn

import (
	"context"
	"encoding/json"
	"net/http"

	apiutil "github.com/certledger/registry/api/http/util"
	"github.com/certledger/registry/pkg/errors"
)

type sessionKeyType string

const (
	jsonContentType = "application/json"

	// SessionKey is the request context key under which the
	// authenticated Session is stored.
	SessionKey = sessionKeyType("session")
)

// AuthNMiddleware defines the interface for authenticated services with middleware.
type AuthNMiddleware interface {
	Authentication
	Middleware() func(http.Handler) http.Handler
}

type authnMiddleware struct {
	Authentication
}

// NewAuthNMiddleware creates a new authenticated service with middleware support.
func NewAuthNMiddleware(authnSvc Authentication) AuthNMiddleware {
	return &authnMiddleware{
		Authentication: authnSvc,
	}
}

// Middleware returns an HTTP middleware function that handles authentication.
func (a *authnMiddleware) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := apiutil.ExtractBearerToken(r)
			if token == "" {
				encodeError(w, apiutil.ErrBearerToken, http.StatusUnauthorized)
				return
			}
			session, err := a.Authenticate(r.Context(), token)
			if err != nil {
				encodeError(w, err, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func encodeError(w http.ResponseWriter, err error, statusCode int) {
	if errorVal, ok := err.(errors.Error); ok {
		w.Header().Set("Content-Type", jsonContentType)
		w.WriteHeader(statusCode)
		if err := json.NewEncoder(w).Encode(errorVal); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}
	http.Error(w, err.Error(), statusCode)
}
