// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package certs

import (
	"context"
	"sync"
	"time"

	"github.com/certledger/registry/pkg/authn"
	"github.com/certledger/registry/pkg/errors"
	repoerr "github.com/certledger/registry/pkg/errors/repository"
	svcerr "github.com/certledger/registry/pkg/errors/service"
)

var (
	// ErrFailedCertCreation failed to create certificate.
	ErrFailedCertCreation = errors.New("failed to issue certificate")

	// ErrFailedCertRevocation failed to revoke certificate.
	ErrFailedCertRevocation = errors.New("failed to revoke certificate")

	// ErrFailedIssuerUpdate failed to update the issuer set.
	ErrFailedIssuerUpdate = errors.New("failed to update issuer set")
)

var _ Service = (*registryService)(nil)

// Service specifies an API that must be fulfilled by the registry service
// implementation, and all of its decorators (e.g. logging & metrics).
type Service interface {
	// IssueCert stores a new certificate record under certID. The caller
	// must be a currently authorized issuer.
	IssueCert(ctx context.Context, session authn.Session, certID, certHash, ipfsCid string) (Certificate, error)

	// VerifyCert reports whether a non-revoked certificate with the given
	// hash is stored under certID. Open to any caller; absence, revocation
	// and hash mismatch are indistinguishable in the result.
	VerifyCert(ctx context.Context, certID, certHash string) (bool, error)

	// RevokeCert irreversibly revokes the certificate stored under certID.
	// Only the record's original issuer or the registry owner may revoke.
	RevokeCert(ctx context.Context, session authn.Session, certID string) (Revocation, error)

	// ViewCert retrieves the certificate stored under certID. Open to any
	// caller; fails with a not-found error for absent records.
	ViewCert(ctx context.Context, certID string) (Certificate, error)

	// ListCerts lists issued certificates.
	ListCerts(ctx context.Context, pm PageMetadata) (CertificatePage, error)

	// AddIssuer authorizes an address to issue certificates. Owner only.
	// Re-adding an authorized issuer succeeds.
	AddIssuer(ctx context.Context, session authn.Session, address string) (Issuer, error)

	// RemoveIssuer withdraws issuing authorization from an address,
	// whether or not it was ever authorized. Owner only.
	RemoveIssuer(ctx context.Context, session authn.Session, address string) (Issuer, error)

	// ListIssuers lists issuer entries, including deauthorized ones.
	ListIssuers(ctx context.Context, pm PageMetadata) (IssuerPage, error)
}

type registryService struct {
	repo  Repository
	owner string

	// mu serializes all registry mutations, reproducing the single
	// sequenced writer the on-chain original gets from its host ledger.
	// Reads go straight to the store, which serves consistent snapshots.
	mu sync.Mutex
}

// New returns a new registry service with owner seeded as the first
// authorized issuer. Seeding is idempotent across restarts.
func New(ctx context.Context, repo Repository, owner string) (Service, error) {
	if ZeroAddress(owner) {
		return nil, ErrMissingAddress
	}

	svc := &registryService{
		repo:  repo,
		owner: owner,
	}

	seed := Issuer{
		Address:    owner,
		Authorized: true,
		AddedAt:    time.Now().UTC(),
	}
	if err := svc.repo.SaveIssuer(ctx, seed); err != nil {
		return nil, errors.Wrap(ErrFailedIssuerUpdate, err)
	}

	return svc, nil
}

func (rs *registryService) IssueCert(ctx context.Context, session authn.Session, certID, certHash, ipfsCid string) (Certificate, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if err := rs.authorizeIssuer(ctx, session.Address); err != nil {
		return Certificate{}, err
	}

	if certID == "" {
		return Certificate{}, errors.Wrap(ErrFailedCertCreation, ErrMissingCertID)
	}
	hash, err := NormalizeHash(certHash)
	if err != nil {
		return Certificate{}, errors.Wrap(ErrFailedCertCreation, err)
	}

	cert := Certificate{
		CertID:   certID,
		CertHash: hash,
		IPFSCid:  ipfsCid,
		IssuedBy: session.Address,
		IssuedAt: time.Now().UTC(),
	}

	// Uniqueness of certID is enforced by the store's primary key, so a
	// racing duplicate observes a conflict rather than corruption.
	if _, err := rs.repo.Save(ctx, cert); err != nil {
		return Certificate{}, errors.Wrap(ErrFailedCertCreation, err)
	}

	return cert, nil
}

func (rs *registryService) VerifyCert(ctx context.Context, certID, certHash string) (bool, error) {
	// Malformed input can never match a stored digest, so it verifies
	// as false rather than failing.
	hash, err := NormalizeHash(certHash)
	if err != nil {
		return false, nil
	}

	cert, err := rs.repo.RetrieveByID(ctx, certID)
	if err != nil {
		if errors.Contains(err, repoerr.ErrNotFound) {
			return false, nil
		}
		return false, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	if cert.Revoked {
		return false, nil
	}

	return cert.CertHash == hash, nil
}

func (rs *registryService) RevokeCert(ctx context.Context, session authn.Session, certID string) (Revocation, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	cert, err := rs.repo.RetrieveByID(ctx, certID)
	if err != nil {
		return Revocation{}, errors.Wrap(ErrFailedCertRevocation, err)
	}

	if cert.Revoked {
		return Revocation{}, errors.Wrap(ErrFailedCertRevocation, ErrAlreadyRevoked)
	}

	// Issuing authorization does not extend to other issuers' records.
	if session.Address != cert.IssuedBy && session.Address != rs.owner {
		return Revocation{}, errors.Wrap(ErrFailedCertRevocation, svcerr.ErrAuthorization)
	}

	revokedAt := time.Now().UTC()
	if err := rs.repo.Revoke(ctx, certID, revokedAt); err != nil {
		return Revocation{}, errors.Wrap(ErrFailedCertRevocation, err)
	}

	return Revocation{CertID: certID, RevokedAt: revokedAt}, nil
}

func (rs *registryService) ViewCert(ctx context.Context, certID string) (Certificate, error) {
	if certID == "" {
		return Certificate{}, ErrMissingCertID
	}

	cert, err := rs.repo.RetrieveByID(ctx, certID)
	if err != nil {
		return Certificate{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return cert, nil
}

func (rs *registryService) ListCerts(ctx context.Context, pm PageMetadata) (CertificatePage, error) {
	cp, err := rs.repo.RetrieveAll(ctx, pm)
	if err != nil {
		return CertificatePage{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return cp, nil
}

func (rs *registryService) AddIssuer(ctx context.Context, session authn.Session, address string) (Issuer, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if err := rs.authorizeOwner(session.Address); err != nil {
		return Issuer{}, err
	}
	if ZeroAddress(address) {
		return Issuer{}, errors.Wrap(ErrFailedIssuerUpdate, ErrMissingAddress)
	}

	issuer := Issuer{
		Address:    address,
		Authorized: true,
		AddedAt:    time.Now().UTC(),
	}
	if err := rs.repo.SaveIssuer(ctx, issuer); err != nil {
		return Issuer{}, errors.Wrap(ErrFailedIssuerUpdate, err)
	}

	return issuer, nil
}

func (rs *registryService) RemoveIssuer(ctx context.Context, session authn.Session, address string) (Issuer, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if err := rs.authorizeOwner(session.Address); err != nil {
		return Issuer{}, err
	}
	if ZeroAddress(address) {
		return Issuer{}, errors.Wrap(ErrFailedIssuerUpdate, ErrMissingAddress)
	}

	// Removal is unconditional: addresses that were never authorized get
	// a deauthorized entry as well.
	issuer := Issuer{
		Address:    address,
		Authorized: false,
		AddedAt:    time.Now().UTC(),
	}
	if err := rs.repo.SaveIssuer(ctx, issuer); err != nil {
		return Issuer{}, errors.Wrap(ErrFailedIssuerUpdate, err)
	}

	return issuer, nil
}

func (rs *registryService) ListIssuers(ctx context.Context, pm PageMetadata) (IssuerPage, error) {
	ip, err := rs.repo.RetrieveIssuers(ctx, pm)
	if err != nil {
		return IssuerPage{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return ip, nil
}

func (rs *registryService) authorizeIssuer(ctx context.Context, address string) error {
	issuer, err := rs.repo.RetrieveIssuer(ctx, address)
	if err != nil {
		if errors.Contains(err, repoerr.ErrNotFound) {
			return errors.Wrap(ErrFailedCertCreation, svcerr.ErrAuthorization)
		}
		return errors.Wrap(ErrFailedCertCreation, err)
	}
	if !issuer.Authorized {
		return errors.Wrap(ErrFailedCertCreation, svcerr.ErrAuthorization)
	}

	return nil
}

func (rs *registryService) authorizeOwner(address string) error {
	if address != rs.owner {
		return errors.Wrap(ErrFailedIssuerUpdate, svcerr.ErrAuthorization)
	}

	return nil
}
