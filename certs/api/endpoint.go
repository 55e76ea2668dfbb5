// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	apiutil "github.com/certledger/registry/api/http/util"
	"github.com/certledger/registry/certs"
	"github.com/certledger/registry/pkg/authn"
	"github.com/certledger/registry/pkg/errors"
	svcerr "github.com/certledger/registry/pkg/errors/service"
	"github.com/go-kit/kit/endpoint"
)

func issueCertEndpoint(svc certs.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(issueCertReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(authn.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthorization
		}

		cert, err := svc.IssueCert(ctx, session, req.CertID, req.CertHash, req.IPFSCid)
		if err != nil {
			return nil, err
		}

		return issueCertRes{cert}, nil
	}
}

func verifyCertEndpoint(svc certs.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(verifyCertReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		valid, err := svc.VerifyCert(ctx, req.certID, req.certHash)
		if err != nil {
			return nil, err
		}

		return verifyCertRes{CertID: req.certID, Valid: valid}, nil
	}
}

func revokeCertEndpoint(svc certs.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(revokeCertReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(authn.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthorization
		}

		revocation, err := svc.RevokeCert(ctx, session, req.certID)
		if err != nil {
			return nil, err
		}

		return revokeCertRes{revocation}, nil
	}
}

func viewCertEndpoint(svc certs.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(viewCertReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		cert, err := svc.ViewCert(ctx, req.certID)
		if err != nil {
			return nil, err
		}

		return viewCertRes{cert}, nil
	}
}

func listCertsEndpoint(svc certs.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(listCertsReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		page, err := svc.ListCerts(ctx, req.pm)
		if err != nil {
			return nil, err
		}

		return listCertsRes{page}, nil
	}
}

func addIssuerEndpoint(svc certs.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(issuerReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(authn.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthorization
		}

		issuer, err := svc.AddIssuer(ctx, session, req.Address)
		if err != nil {
			return nil, err
		}

		return issuerRes{Issuer: issuer, created: true}, nil
	}
}

func removeIssuerEndpoint(svc certs.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(issuerReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, ok := ctx.Value(authn.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthorization
		}

		issuer, err := svc.RemoveIssuer(ctx, session, req.Address)
		if err != nil {
			return nil, err
		}

		return issuerRes{Issuer: issuer}, nil
	}
}

func listIssuersEndpoint(svc certs.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(listIssuersReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		page, err := svc.ListIssuers(ctx, req.pm)
		if err != nil {
			return nil, err
		}

		return listIssuersRes{page}, nil
	}
}
