// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

// Package events emits a registry event on every successful mutation.
package events

import (
	"context"

	"github.com/certledger/registry/certs"
	"github.com/certledger/registry/pkg/authn"
	"github.com/certledger/registry/pkg/events"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	registryPrefix     = "registry."
	issueStream        = registryPrefix + certIssue
	revokeStream       = registryPrefix + certRevoke
	addIssuerStream    = registryPrefix + issuerAdd
	removeIssuerStream = registryPrefix + issuerRemove
)

var _ certs.Service = (*eventStore)(nil)

type eventStore struct {
	events.Publisher
	svc certs.Service
}

// NewEventStoreMiddleware returns a wrapper around the registry service
// that publishes an event after every successful mutation. Reads pass
// through silently.
func NewEventStoreMiddleware(svc certs.Service, publisher events.Publisher) certs.Service {
	return &eventStore{
		Publisher: publisher,
		svc:       svc,
	}
}

func (es *eventStore) IssueCert(ctx context.Context, session authn.Session, certID, certHash, ipfsCid string) (certs.Certificate, error) {
	cert, err := es.svc.IssueCert(ctx, session, certID, certHash, ipfsCid)
	if err != nil {
		return cert, err
	}

	event := issueCertEvent{
		Certificate: cert,
		requestID:   middleware.GetReqID(ctx),
	}

	if err := es.Publish(ctx, issueStream, event); err != nil {
		return cert, err
	}

	return cert, nil
}

func (es *eventStore) VerifyCert(ctx context.Context, certID, certHash string) (bool, error) {
	return es.svc.VerifyCert(ctx, certID, certHash)
}

func (es *eventStore) RevokeCert(ctx context.Context, session authn.Session, certID string) (certs.Revocation, error) {
	revocation, err := es.svc.RevokeCert(ctx, session, certID)
	if err != nil {
		return revocation, err
	}

	event := revokeCertEvent{
		Revocation: revocation,
		revokedBy:  session.Address,
		requestID:  middleware.GetReqID(ctx),
	}

	if err := es.Publish(ctx, revokeStream, event); err != nil {
		return revocation, err
	}

	return revocation, nil
}

func (es *eventStore) ViewCert(ctx context.Context, certID string) (certs.Certificate, error) {
	return es.svc.ViewCert(ctx, certID)
}

func (es *eventStore) ListCerts(ctx context.Context, pm certs.PageMetadata) (certs.CertificatePage, error) {
	return es.svc.ListCerts(ctx, pm)
}

func (es *eventStore) AddIssuer(ctx context.Context, session authn.Session, address string) (certs.Issuer, error) {
	issuer, err := es.svc.AddIssuer(ctx, session, address)
	if err != nil {
		return issuer, err
	}

	event := issuerEvent{
		Issuer:      issuer,
		operation:   issuerAdd,
		performedBy: session.Address,
		requestID:   middleware.GetReqID(ctx),
	}

	if err := es.Publish(ctx, addIssuerStream, event); err != nil {
		return issuer, err
	}

	return issuer, nil
}

func (es *eventStore) RemoveIssuer(ctx context.Context, session authn.Session, address string) (certs.Issuer, error) {
	issuer, err := es.svc.RemoveIssuer(ctx, session, address)
	if err != nil {
		return issuer, err
	}

	event := issuerEvent{
		Issuer:      issuer,
		operation:   issuerRemove,
		performedBy: session.Address,
		requestID:   middleware.GetReqID(ctx),
	}

	if err := es.Publish(ctx, removeIssuerStream, event); err != nil {
		return issuer, err
	}

	return issuer, nil
}

func (es *eventStore) ListIssuers(ctx context.Context, pm certs.PageMetadata) (certs.IssuerPage, error) {
	return es.svc.ListIssuers(ctx, pm)
}
