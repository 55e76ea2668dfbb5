// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/certledger/registry/certs"
	"github.com/certledger/registry/pkg/authn"
	"github.com/go-chi/chi/v5/middleware"
)

var _ certs.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    certs.Service
}

// LoggingMiddleware adds logging facilities to the core service.
func LoggingMiddleware(svc certs.Service, logger *slog.Logger) certs.Service {
	return &loggingMiddleware{logger, svc}
}

func (lm *loggingMiddleware) IssueCert(ctx context.Context, session authn.Session, certID, certHash, ipfsCid string) (cert certs.Certificate, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
			slog.Group("certificate",
				slog.String("cert_id", certID),
				slog.String("issued_by", session.Address),
			),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("Issue certificate failed", args...)
			return
		}
		lm.logger.Info("Issue certificate completed successfully", args...)
	}(time.Now())
	return lm.svc.IssueCert(ctx, session, certID, certHash, ipfsCid)
}

func (lm *loggingMiddleware) VerifyCert(ctx context.Context, certID, certHash string) (valid bool, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
			slog.String("cert_id", certID),
			slog.Bool("valid", valid),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("Verify certificate failed", args...)
			return
		}
		lm.logger.Info("Verify certificate completed successfully", args...)
	}(time.Now())
	return lm.svc.VerifyCert(ctx, certID, certHash)
}

func (lm *loggingMiddleware) RevokeCert(ctx context.Context, session authn.Session, certID string) (revocation certs.Revocation, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
			slog.Group("certificate",
				slog.String("cert_id", certID),
				slog.String("revoked_by", session.Address),
			),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("Revoke certificate failed", args...)
			return
		}
		lm.logger.Info("Revoke certificate completed successfully", args...)
	}(time.Now())
	return lm.svc.RevokeCert(ctx, session, certID)
}

func (lm *loggingMiddleware) ViewCert(ctx context.Context, certID string) (cert certs.Certificate, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
			slog.String("cert_id", certID),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("View certificate failed", args...)
			return
		}
		lm.logger.Info("View certificate completed successfully", args...)
	}(time.Now())
	return lm.svc.ViewCert(ctx, certID)
}

func (lm *loggingMiddleware) ListCerts(ctx context.Context, pm certs.PageMetadata) (page certs.CertificatePage, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
			slog.Group("page",
				slog.Uint64("offset", pm.Offset),
				slog.Uint64("limit", pm.Limit),
				slog.Uint64("total", page.Total),
			),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("List certificates failed", args...)
			return
		}
		lm.logger.Info("List certificates completed successfully", args...)
	}(time.Now())
	return lm.svc.ListCerts(ctx, pm)
}

func (lm *loggingMiddleware) AddIssuer(ctx context.Context, session authn.Session, address string) (issuer certs.Issuer, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
			slog.String("address", address),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("Add issuer failed", args...)
			return
		}
		lm.logger.Info("Add issuer completed successfully", args...)
	}(time.Now())
	return lm.svc.AddIssuer(ctx, session, address)
}

func (lm *loggingMiddleware) RemoveIssuer(ctx context.Context, session authn.Session, address string) (issuer certs.Issuer, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
			slog.String("address", address),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("Remove issuer failed", args...)
			return
		}
		lm.logger.Info("Remove issuer completed successfully", args...)
	}(time.Now())
	return lm.svc.RemoveIssuer(ctx, session, address)
}

func (lm *loggingMiddleware) ListIssuers(ctx context.Context, pm certs.PageMetadata) (page certs.IssuerPage, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("request_id", middleware.GetReqID(ctx)),
			slog.Group("page",
				slog.Uint64("offset", pm.Offset),
				slog.Uint64("limit", pm.Limit),
				slog.Uint64("total", page.Total),
			),
		}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
			lm.logger.Warn("List issuers failed", args...)
			return
		}
		lm.logger.Info("List issuers completed successfully", args...)
	}(time.Now())
	return lm.svc.ListIssuers(ctx, pm)
}
