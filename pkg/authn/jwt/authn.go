// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

// Package jwt provides symmetric-key JWT authentication for the
// registry. The token subject carries the caller's principal address.
package jwt

import (
	"context"
	"time"

	"github.com/certledger/registry/pkg/authn"
	"github.com/certledger/registry/pkg/errors"
	svcerr "github.com/certledger/registry/pkg/errors/service"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const issuerName = "certledger.registry"

var (
	// errInvalidIssuer is returned when the issuer is not certledger.registry.
	errInvalidIssuer = errors.New("invalid token issuer value")
	// errMissingSubject is returned when the token has no subject claim.
	errMissingSubject = errors.New("missing token subject")
	// ErrSignJWT indicates an error in signing jwt token.
	ErrSignJWT = errors.New("failed to sign jwt token")
	// ErrValidateJWTToken indicates a failure to validate JWT token.
	ErrValidateJWTToken = errors.New("failed to validate jwt token")
)

var _ authn.Authentication = (*authentication)(nil)

type authentication struct {
	secret []byte
}

// NewAuthentication returns token authentication backed by a shared
// HS256 secret.
func NewAuthentication(secret []byte) authn.Authentication {
	return &authentication{secret: secret}
}

func (a *authentication) Authenticate(ctx context.Context, token string) (authn.Session, error) {
	tkn, err := jwt.Parse(
		[]byte(token),
		jwt.WithValidate(true),
		jwt.WithKey(jwa.HS256, a.secret),
	)
	if err != nil {
		return authn.Session{}, errors.Wrap(svcerr.ErrAuthentication, errors.Wrap(ErrValidateJWTToken, err))
	}

	if tkn.Issuer() != issuerName {
		return authn.Session{}, errors.Wrap(svcerr.ErrAuthentication, errInvalidIssuer)
	}
	if tkn.Subject() == "" {
		return authn.Session{}, errors.Wrap(svcerr.ErrAuthentication, errMissingSubject)
	}

	return authn.Session{
		Address: tkn.Subject(),
		TokenID: tkn.JwtID(),
	}, nil
}

// Issue builds and signs a token for the given principal address. It is
// used by operators to mint issuer credentials out of band.
func Issue(secret []byte, address string, validity time.Duration) (string, error) {
	now := time.Now()
	builder := jwt.NewBuilder().
		Issuer(issuerName).
		Subject(address).
		IssuedAt(now).
		Expiration(now.Add(validity))

	tkn, err := builder.Build()
	if err != nil {
		return "", errors.Wrap(ErrSignJWT, err)
	}

	signed, err := jwt.Sign(tkn, jwt.WithKey(jwa.HS256, secret))
	if err != nil {
		return "", errors.Wrap(ErrSignJWT, err)
	}

	return string(signed), nil
}
