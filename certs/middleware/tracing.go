// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"

	"github.com/certledger/registry/certs"
	"github.com/certledger/registry/pkg/authn"
	"github.com/certledger/registry/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var _ certs.Service = (*tracingMiddleware)(nil)

type tracingMiddleware struct {
	tracer trace.Tracer
	svc    certs.Service
}

// TracingMiddleware traces every service operation.
func TracingMiddleware(svc certs.Service, tracer trace.Tracer) certs.Service {
	return &tracingMiddleware{tracer, svc}
}

func (tm *tracingMiddleware) IssueCert(ctx context.Context, session authn.Session, certID, certHash, ipfsCid string) (certs.Certificate, error) {
	ctx, span := tracing.StartSpan(ctx, tm.tracer, "issue_cert", trace.WithAttributes(
		attribute.String("cert_id", certID),
		attribute.String("issued_by", session.Address),
	))
	defer span.End()

	return tm.svc.IssueCert(ctx, session, certID, certHash, ipfsCid)
}

func (tm *tracingMiddleware) VerifyCert(ctx context.Context, certID, certHash string) (bool, error) {
	ctx, span := tracing.StartSpan(ctx, tm.tracer, "verify_cert", trace.WithAttributes(
		attribute.String("cert_id", certID),
	))
	defer span.End()

	return tm.svc.VerifyCert(ctx, certID, certHash)
}

func (tm *tracingMiddleware) RevokeCert(ctx context.Context, session authn.Session, certID string) (certs.Revocation, error) {
	ctx, span := tracing.StartSpan(ctx, tm.tracer, "revoke_cert", trace.WithAttributes(
		attribute.String("cert_id", certID),
		attribute.String("revoked_by", session.Address),
	))
	defer span.End()

	return tm.svc.RevokeCert(ctx, session, certID)
}

func (tm *tracingMiddleware) ViewCert(ctx context.Context, certID string) (certs.Certificate, error) {
	ctx, span := tracing.StartSpan(ctx, tm.tracer, "view_cert", trace.WithAttributes(
		attribute.String("cert_id", certID),
	))
	defer span.End()

	return tm.svc.ViewCert(ctx, certID)
}

func (tm *tracingMiddleware) ListCerts(ctx context.Context, pm certs.PageMetadata) (certs.CertificatePage, error) {
	ctx, span := tracing.StartSpan(ctx, tm.tracer, "list_certs", trace.WithAttributes(
		attribute.Int64("offset", int64(pm.Offset)),
		attribute.Int64("limit", int64(pm.Limit)),
	))
	defer span.End()

	return tm.svc.ListCerts(ctx, pm)
}

func (tm *tracingMiddleware) AddIssuer(ctx context.Context, session authn.Session, address string) (certs.Issuer, error) {
	ctx, span := tracing.StartSpan(ctx, tm.tracer, "add_issuer", trace.WithAttributes(
		attribute.String("address", address),
	))
	defer span.End()

	return tm.svc.AddIssuer(ctx, session, address)
}

func (tm *tracingMiddleware) RemoveIssuer(ctx context.Context, session authn.Session, address string) (certs.Issuer, error) {
	ctx, span := tracing.StartSpan(ctx, tm.tracer, "remove_issuer", trace.WithAttributes(
		attribute.String("address", address),
	))
	defer span.End()

	return tm.svc.RemoveIssuer(ctx, session, address)
}

func (tm *tracingMiddleware) ListIssuers(ctx context.Context, pm certs.PageMetadata) (certs.IssuerPage, error) {
	ctx, span := tracing.StartSpan(ctx, tm.tracer, "list_issuers", trace.WithAttributes(
		attribute.Int64("offset", int64(pm.Offset)),
		attribute.Int64("limit", int64(pm.Limit)),
	))
	defer span.End()

	return tm.svc.ListIssuers(ctx, pm)
}
