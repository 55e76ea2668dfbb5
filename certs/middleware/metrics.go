// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/certledger/registry/certs"
	"github.com/certledger/registry/pkg/authn"
	"github.com/go-kit/kit/metrics"
)

var _ certs.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     certs.Service
}

// MetricsMiddleware instruments the core service with request counters
// and latency summaries.
func MetricsMiddleware(svc certs.Service, counter metrics.Counter, latency metrics.Histogram) certs.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (mm *metricsMiddleware) IssueCert(ctx context.Context, session authn.Session, certID, certHash, ipfsCid string) (certs.Certificate, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "issue_cert").Add(1)
		mm.latency.With("method", "issue_cert").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.IssueCert(ctx, session, certID, certHash, ipfsCid)
}

func (mm *metricsMiddleware) VerifyCert(ctx context.Context, certID, certHash string) (bool, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "verify_cert").Add(1)
		mm.latency.With("method", "verify_cert").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.VerifyCert(ctx, certID, certHash)
}

func (mm *metricsMiddleware) RevokeCert(ctx context.Context, session authn.Session, certID string) (certs.Revocation, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "revoke_cert").Add(1)
		mm.latency.With("method", "revoke_cert").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.RevokeCert(ctx, session, certID)
}

func (mm *metricsMiddleware) ViewCert(ctx context.Context, certID string) (certs.Certificate, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "view_cert").Add(1)
		mm.latency.With("method", "view_cert").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.ViewCert(ctx, certID)
}

func (mm *metricsMiddleware) ListCerts(ctx context.Context, pm certs.PageMetadata) (certs.CertificatePage, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "list_certs").Add(1)
		mm.latency.With("method", "list_certs").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.ListCerts(ctx, pm)
}

func (mm *metricsMiddleware) AddIssuer(ctx context.Context, session authn.Session, address string) (certs.Issuer, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "add_issuer").Add(1)
		mm.latency.With("method", "add_issuer").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.AddIssuer(ctx, session, address)
}

func (mm *metricsMiddleware) RemoveIssuer(ctx context.Context, session authn.Session, address string) (certs.Issuer, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "remove_issuer").Add(1)
		mm.latency.With("method", "remove_issuer").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.RemoveIssuer(ctx, session, address)
}

func (mm *metricsMiddleware) ListIssuers(ctx context.Context, pm certs.PageMetadata) (certs.IssuerPage, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "list_issuers").Add(1)
		mm.latency.With("method", "list_issuers").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.ListIssuers(ctx, pm)
}
