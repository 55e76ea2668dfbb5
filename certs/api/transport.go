// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

// Package api contains the HTTP transport of the certificate registry.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/certledger/registry"
	api "github.com/certledger/registry/api/http"
	apiutil "github.com/certledger/registry/api/http/util"
	"github.com/certledger/registry/certs"
	"github.com/certledger/registry/pkg/authn"
	"github.com/certledger/registry/pkg/errors"
	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const hashKey = "hash"

// MakeHandler returns a HTTP handler for the registry API endpoints.
func MakeHandler(svc certs.Service, authn authn.AuthNMiddleware, logger *slog.Logger, instanceID string, idp registry.IDProvider) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	r := chi.NewRouter()
	r.Use(api.RequestIDMiddleware(idp))

	r.Group(func(r chi.Router) {
		r.Use(authn.Middleware())

		r.Post("/certs", otelhttp.NewHandler(kithttp.NewServer(
			issueCertEndpoint(svc),
			decodeIssueCert,
			api.EncodeResponse,
			opts...,
		), "issue_cert").ServeHTTP)
		r.Post("/certs/{certID}/revoke", otelhttp.NewHandler(kithttp.NewServer(
			revokeCertEndpoint(svc),
			decodeRevokeCert,
			api.EncodeResponse,
			opts...,
		), "revoke_cert").ServeHTTP)
		r.Post("/issuers", otelhttp.NewHandler(kithttp.NewServer(
			addIssuerEndpoint(svc),
			decodeAddIssuer,
			api.EncodeResponse,
			opts...,
		), "add_issuer").ServeHTTP)
		r.Delete("/issuers/{address}", otelhttp.NewHandler(kithttp.NewServer(
			removeIssuerEndpoint(svc),
			decodeRemoveIssuer,
			api.EncodeResponse,
			opts...,
		), "remove_issuer").ServeHTTP)
	})

	// Verification and lookups are open to anonymous callers.
	r.Get("/certs/{certID}/verify", otelhttp.NewHandler(kithttp.NewServer(
		verifyCertEndpoint(svc),
		decodeVerifyCert,
		api.EncodeResponse,
		opts...,
	), "verify_cert").ServeHTTP)
	r.Get("/certs/{certID}", otelhttp.NewHandler(kithttp.NewServer(
		viewCertEndpoint(svc),
		decodeViewCert,
		api.EncodeResponse,
		opts...,
	), "view_cert").ServeHTTP)
	r.Get("/certs", otelhttp.NewHandler(kithttp.NewServer(
		listCertsEndpoint(svc),
		decodeListCerts,
		api.EncodeResponse,
		opts...,
	), "list_certs").ServeHTTP)
	r.Get("/issuers", otelhttp.NewHandler(kithttp.NewServer(
		listIssuersEndpoint(svc),
		decodeListIssuers,
		api.EncodeResponse,
		opts...,
	), "list_issuers").ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", registry.Health("registry", instanceID))

	return r
}

func decodeIssueCert(_ context.Context, r *http.Request) (any, error) {
	if r.Header.Get("Content-Type") != api.ContentType {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	var req issueCertReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrMalformedRequestBody)
	}

	return req, nil
}

func decodeVerifyCert(_ context.Context, r *http.Request) (any, error) {
	hash, err := apiutil.ReadStringQuery(r, hashKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := verifyCertReq{
		certID:   chi.URLParam(r, "certID"),
		certHash: hash,
	}

	return req, nil
}

func decodeRevokeCert(_ context.Context, r *http.Request) (any, error) {
	req := revokeCertReq{
		certID: chi.URLParam(r, "certID"),
	}

	return req, nil
}

func decodeViewCert(_ context.Context, r *http.Request) (any, error) {
	req := viewCertReq{
		certID: chi.URLParam(r, "certID"),
	}

	return req, nil
}

func decodeListCerts(_ context.Context, r *http.Request) (any, error) {
	o, err := apiutil.ReadNumQuery[uint64](r, api.OffsetKey, api.DefOffset)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	l, err := apiutil.ReadNumQuery[uint64](r, api.LimitKey, api.DefLimit)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	revoked, err := apiutil.ReadStringQuery(r, api.RevokedKey, "all")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := listCertsReq{
		pm: certs.PageMetadata{
			Offset:  o,
			Limit:   l,
			Revoked: revoked,
		},
	}

	return req, nil
}

func decodeAddIssuer(_ context.Context, r *http.Request) (any, error) {
	if r.Header.Get("Content-Type") != api.ContentType {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	var req issuerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrMalformedRequestBody)
	}

	return req, nil
}

func decodeRemoveIssuer(_ context.Context, r *http.Request) (any, error) {
	req := issuerReq{
		Address: chi.URLParam(r, "address"),
	}

	return req, nil
}

func decodeListIssuers(_ context.Context, r *http.Request) (any, error) {
	o, err := apiutil.ReadNumQuery[uint64](r, api.OffsetKey, api.DefOffset)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	l, err := apiutil.ReadNumQuery[uint64](r, api.LimitKey, api.DefLimit)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := listIssuersReq{
		pm: certs.PageMetadata{
			Offset: o,
			Limit:  l,
		},
	}

	return req, nil
}
