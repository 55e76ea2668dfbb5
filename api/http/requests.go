// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"

	"github.com/certledger/registry"
	"github.com/go-chi/chi/v5/middleware"
)

// RequestIDMiddleware stamps every request with a fresh unique ID so
// that log lines and published events can be correlated.
func RequestIDMiddleware(idp registry.IDProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID, err := idp.ID()
			if err != nil {
				EncodeError(r.Context(), err, w)
				return
			}

			ctx := context.WithValue(r.Context(), middleware.RequestIDKey, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
