// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package certs_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/certledger/registry/certs"
	"github.com/certledger/registry/certs/mocks"
	"github.com/certledger/registry/pkg/authn"
	"github.com/certledger/registry/pkg/errors"
	repoerr "github.com/certledger/registry/pkg/errors/repository"
	svcerr "github.com/certledger/registry/pkg/errors/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	owner      = "0x5b38da6a701c568545dcfcb03fcb875f56beddc4"
	issuerAddr = "0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2"
	otherAddr  = "0x4b20993bc481177ec7e8f571cecae8a9e22c02db"
	certID     = "BC-2024-0001"
	validHash  = "7d865e959b2466918c9863afca942d0fb89d7c9ac0c99bafc3749504ded97730"
	otherHash  = "2c26b46b68ffc68ff99b453c1d30413413422d706483bfa0f98a5e886266e7ae"
	ipfsCid    = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
)

var zeroHash = strings.Repeat("0", 64)

func newService(t *testing.T) (certs.Service, *mocks.Repository) {
	repo := new(mocks.Repository)
	seedCall := repo.On("SaveIssuer", mock.Anything, mock.Anything).Return(nil)
	svc, err := certs.New(context.Background(), repo, owner)
	require.Nil(t, err, fmt.Sprintf("unexpected error creating service: %s", err))
	seedCall.Unset()

	return svc, repo
}

func TestNew(t *testing.T) {
	cases := []struct {
		desc    string
		owner   string
		seedErr error
		err     error
	}{
		{
			desc:  "create service with valid owner",
			owner: owner,
		},
		{
			desc:  "create service with empty owner",
			owner: "",
			err:   certs.ErrMissingAddress,
		},
		{
			desc:  "create service with zero owner",
			owner: "0x0000000000000000000000000000000000000000",
			err:   certs.ErrMissingAddress,
		},
		{
			desc:    "create service with failing seed",
			owner:   owner,
			seedErr: repoerr.ErrUpdateEntity,
			err:     repoerr.ErrUpdateEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repo := new(mocks.Repository)
			repoCall := repo.On("SaveIssuer", mock.Anything, mock.Anything).Return(tc.seedErr)
			_, err := certs.New(context.Background(), repo, tc.owner)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			repoCall.Unset()
		})
	}
}

func TestIssueCert(t *testing.T) {
	svc, repo := newService(t)

	cases := []struct {
		desc      string
		session   authn.Session
		certID    string
		certHash  string
		issuer    certs.Issuer
		issuerErr error
		saveErr   error
		err       error
	}{
		{
			desc:     "issue new certificate",
			session:  authn.Session{Address: issuerAddr},
			certID:   certID,
			certHash: validHash,
			issuer:   certs.Issuer{Address: issuerAddr, Authorized: true},
		},
		{
			desc:     "issue new certificate as owner",
			session:  authn.Session{Address: owner},
			certID:   certID,
			certHash: validHash,
			issuer:   certs.Issuer{Address: owner, Authorized: true},
		},
		{
			desc:     "issue certificate with prefixed upper-case hash",
			session:  authn.Session{Address: issuerAddr},
			certID:   certID,
			certHash: "0x" + strings.ToUpper(validHash),
			issuer:   certs.Issuer{Address: issuerAddr, Authorized: true},
		},
		{
			desc:      "issue certificate with unknown caller",
			session:   authn.Session{Address: otherAddr},
			certID:    certID,
			certHash:  validHash,
			issuerErr: repoerr.ErrNotFound,
			err:       svcerr.ErrAuthorization,
		},
		{
			desc:     "issue certificate with deauthorized caller",
			session:  authn.Session{Address: issuerAddr},
			certID:   certID,
			certHash: validHash,
			issuer:   certs.Issuer{Address: issuerAddr, Authorized: false},
			err:      svcerr.ErrAuthorization,
		},
		{
			desc:     "issue certificate with empty id",
			session:  authn.Session{Address: issuerAddr},
			certID:   "",
			certHash: validHash,
			issuer:   certs.Issuer{Address: issuerAddr, Authorized: true},
			err:      certs.ErrMissingCertID,
		},
		{
			desc:     "issue certificate with malformed hash",
			session:  authn.Session{Address: issuerAddr},
			certID:   certID,
			certHash: "not-a-hash",
			issuer:   certs.Issuer{Address: issuerAddr, Authorized: true},
			err:      certs.ErrInvalidCertHash,
		},
		{
			desc:     "issue certificate with short hash",
			session:  authn.Session{Address: issuerAddr},
			certID:   certID,
			certHash: validHash[:32],
			issuer:   certs.Issuer{Address: issuerAddr, Authorized: true},
			err:      certs.ErrInvalidCertHash,
		},
		{
			desc:     "issue certificate with zero hash",
			session:  authn.Session{Address: issuerAddr},
			certID:   certID,
			certHash: zeroHash,
			issuer:   certs.Issuer{Address: issuerAddr, Authorized: true},
			err:      certs.ErrZeroCertHash,
		},
		{
			desc:     "issue certificate with duplicate id",
			session:  authn.Session{Address: issuerAddr},
			certID:   certID,
			certHash: validHash,
			issuer:   certs.Issuer{Address: issuerAddr, Authorized: true},
			saveErr:  repoerr.ErrConflict,
			err:      repoerr.ErrConflict,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			issuerCall := repo.On("RetrieveIssuer", mock.Anything, tc.session.Address).Return(tc.issuer, tc.issuerErr)
			saveCall := repo.On("Save", mock.Anything, mock.Anything).Return(tc.certID, tc.saveErr)
			cert, err := svc.IssueCert(context.Background(), tc.session, tc.certID, tc.certHash, ipfsCid)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			if err == nil {
				assert.Equal(t, tc.certID, cert.CertID)
				assert.Equal(t, validHash, cert.CertHash)
				assert.Equal(t, tc.session.Address, cert.IssuedBy)
				assert.False(t, cert.Revoked)
				assert.False(t, cert.IssuedAt.IsZero())
			}
			issuerCall.Unset()
			saveCall.Unset()
		})
	}
}

func TestVerifyCert(t *testing.T) {
	svc, repo := newService(t)

	revokedAt := time.Now().UTC()
	cases := []struct {
		desc        string
		certID      string
		certHash    string
		cert        certs.Certificate
		retrieveErr error
		valid       bool
		err         error
	}{
		{
			desc:     "verify matching certificate",
			certID:   certID,
			certHash: validHash,
			cert:     certs.Certificate{CertID: certID, CertHash: validHash},
			valid:    true,
		},
		{
			desc:     "verify with prefixed upper-case hash",
			certID:   certID,
			certHash: "0x" + strings.ToUpper(validHash),
			cert:     certs.Certificate{CertID: certID, CertHash: validHash},
			valid:    true,
		},
		{
			desc:     "verify with mismatched hash",
			certID:   certID,
			certHash: otherHash,
			cert:     certs.Certificate{CertID: certID, CertHash: validHash},
			valid:    false,
		},
		{
			desc:        "verify unknown certificate",
			certID:      "unknown",
			certHash:    validHash,
			retrieveErr: repoerr.ErrNotFound,
			valid:       false,
		},
		{
			desc:     "verify revoked certificate",
			certID:   certID,
			certHash: validHash,
			cert:     certs.Certificate{CertID: certID, CertHash: validHash, Revoked: true, RevokedAt: &revokedAt},
			valid:    false,
		},
		{
			desc:     "verify with malformed hash",
			certID:   certID,
			certHash: "zz",
			valid:    false,
		},
		{
			desc:        "verify with failing store",
			certID:      certID,
			certHash:    validHash,
			retrieveErr: repoerr.ErrViewEntity,
			valid:       false,
			err:         svcerr.ErrViewEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", mock.Anything, tc.certID).Return(tc.cert, tc.retrieveErr)
			valid, err := svc.VerifyCert(context.Background(), tc.certID, tc.certHash)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			assert.Equal(t, tc.valid, valid, fmt.Sprintf("%s: expected valid %v got %v\n", tc.desc, tc.valid, valid))
			repoCall.Unset()
		})
	}
}

func TestRevokeCert(t *testing.T) {
	svc, repo := newService(t)

	issued := certs.Certificate{CertID: certID, CertHash: validHash, IssuedBy: issuerAddr}
	revokedAt := time.Now().UTC()
	cases := []struct {
		desc        string
		session     authn.Session
		certID      string
		cert        certs.Certificate
		retrieveErr error
		revokeErr   error
		err         error
	}{
		{
			desc:    "revoke by original issuer",
			session: authn.Session{Address: issuerAddr},
			certID:  certID,
			cert:    issued,
		},
		{
			desc:    "revoke by owner",
			session: authn.Session{Address: owner},
			certID:  certID,
			cert:    issued,
		},
		{
			desc:    "revoke by another issuer",
			session: authn.Session{Address: otherAddr},
			certID:  certID,
			cert:    issued,
			err:     svcerr.ErrAuthorization,
		},
		{
			desc:        "revoke unknown certificate",
			session:     authn.Session{Address: issuerAddr},
			certID:      "unknown",
			retrieveErr: repoerr.ErrNotFound,
			err:         repoerr.ErrNotFound,
		},
		{
			desc:    "revoke already revoked certificate",
			session: authn.Session{Address: issuerAddr},
			certID:  certID,
			cert:    certs.Certificate{CertID: certID, CertHash: validHash, IssuedBy: issuerAddr, Revoked: true, RevokedAt: &revokedAt},
			err:     certs.ErrAlreadyRevoked,
		},
		{
			desc:      "revoke with failing store",
			session:   authn.Session{Address: issuerAddr},
			certID:    certID,
			cert:      issued,
			revokeErr: repoerr.ErrUpdateEntity,
			err:       repoerr.ErrUpdateEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			retrieveCall := repo.On("RetrieveByID", mock.Anything, tc.certID).Return(tc.cert, tc.retrieveErr)
			revokeCall := repo.On("Revoke", mock.Anything, tc.certID, mock.Anything).Return(tc.revokeErr)
			revocation, err := svc.RevokeCert(context.Background(), tc.session, tc.certID)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			if err == nil {
				assert.Equal(t, tc.certID, revocation.CertID)
				assert.False(t, revocation.RevokedAt.IsZero())
			}
			retrieveCall.Unset()
			revokeCall.Unset()
		})
	}
}

func TestViewCert(t *testing.T) {
	svc, repo := newService(t)

	cases := []struct {
		desc        string
		certID      string
		cert        certs.Certificate
		retrieveErr error
		err         error
	}{
		{
			desc:   "view existing certificate",
			certID: certID,
			cert:   certs.Certificate{CertID: certID, CertHash: validHash, IssuedBy: issuerAddr},
		},
		{
			desc:        "view unknown certificate",
			certID:      "unknown",
			retrieveErr: repoerr.ErrNotFound,
			err:         repoerr.ErrNotFound,
		},
		{
			desc:   "view with empty id",
			certID: "",
			err:    certs.ErrMissingCertID,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", mock.Anything, tc.certID).Return(tc.cert, tc.retrieveErr)
			cert, err := svc.ViewCert(context.Background(), tc.certID)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			if err == nil {
				assert.Equal(t, tc.cert, cert)
			}
			repoCall.Unset()
		})
	}
}

func TestListCerts(t *testing.T) {
	svc, repo := newService(t)

	page := certs.CertificatePage{
		Total: 1,
		Limit: 10,
		Certificates: []certs.Certificate{
			{CertID: certID, CertHash: validHash, IssuedBy: issuerAddr},
		},
	}
	cases := []struct {
		desc        string
		pm          certs.PageMetadata
		page        certs.CertificatePage
		retrieveErr error
		err         error
	}{
		{
			desc: "list certificates",
			pm:   certs.PageMetadata{Limit: 10, Revoked: "all"},
			page: page,
		},
		{
			desc:        "list certificates with failing store",
			pm:          certs.PageMetadata{Limit: 10, Revoked: "all"},
			retrieveErr: repoerr.ErrViewEntity,
			err:         svcerr.ErrViewEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveAll", mock.Anything, tc.pm).Return(tc.page, tc.retrieveErr)
			page, err := svc.ListCerts(context.Background(), tc.pm)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			if err == nil {
				assert.Equal(t, tc.page, page)
			}
			repoCall.Unset()
		})
	}
}

func TestAddIssuer(t *testing.T) {
	svc, repo := newService(t)

	cases := []struct {
		desc    string
		session authn.Session
		address string
		saveErr error
		err     error
	}{
		{
			desc:    "add issuer as owner",
			session: authn.Session{Address: owner},
			address: issuerAddr,
		},
		{
			desc:    "re-add authorized issuer",
			session: authn.Session{Address: owner},
			address: issuerAddr,
		},
		{
			desc:    "add issuer as non-owner",
			session: authn.Session{Address: issuerAddr},
			address: otherAddr,
			err:     svcerr.ErrAuthorization,
		},
		{
			desc:    "add issuer with zero address",
			session: authn.Session{Address: owner},
			address: "0x0000000000000000000000000000000000000000",
			err:     certs.ErrMissingAddress,
		},
		{
			desc:    "add issuer with failing store",
			session: authn.Session{Address: owner},
			address: issuerAddr,
			saveErr: repoerr.ErrUpdateEntity,
			err:     repoerr.ErrUpdateEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("SaveIssuer", mock.Anything, mock.Anything).Return(tc.saveErr)
			issuer, err := svc.AddIssuer(context.Background(), tc.session, tc.address)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			if err == nil {
				assert.Equal(t, tc.address, issuer.Address)
				assert.True(t, issuer.Authorized)
			}
			repoCall.Unset()
		})
	}
}

func TestRemoveIssuer(t *testing.T) {
	svc, repo := newService(t)

	cases := []struct {
		desc    string
		session authn.Session
		address string
		saveErr error
		err     error
	}{
		{
			desc:    "remove issuer as owner",
			session: authn.Session{Address: owner},
			address: issuerAddr,
		},
		{
			desc:    "remove never-added issuer",
			session: authn.Session{Address: owner},
			address: otherAddr,
		},
		{
			desc:    "remove issuer as non-owner",
			session: authn.Session{Address: issuerAddr},
			address: otherAddr,
			err:     svcerr.ErrAuthorization,
		},
		{
			desc:    "remove issuer with zero address",
			session: authn.Session{Address: owner},
			address: "",
			err:     certs.ErrMissingAddress,
		},
		{
			desc:    "remove issuer with failing store",
			session: authn.Session{Address: owner},
			address: issuerAddr,
			saveErr: repoerr.ErrUpdateEntity,
			err:     repoerr.ErrUpdateEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("SaveIssuer", mock.Anything, mock.Anything).Return(tc.saveErr)
			issuer, err := svc.RemoveIssuer(context.Background(), tc.session, tc.address)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			if err == nil {
				assert.Equal(t, tc.address, issuer.Address)
				assert.False(t, issuer.Authorized)
			}
			repoCall.Unset()
		})
	}
}

func TestListIssuers(t *testing.T) {
	svc, repo := newService(t)

	page := certs.IssuerPage{
		Total: 2,
		Limit: 10,
		Issuers: []certs.Issuer{
			{Address: owner, Authorized: true},
			{Address: issuerAddr, Authorized: false},
		},
	}
	cases := []struct {
		desc        string
		pm          certs.PageMetadata
		page        certs.IssuerPage
		retrieveErr error
		err         error
	}{
		{
			desc: "list issuers",
			pm:   certs.PageMetadata{Limit: 10},
			page: page,
		},
		{
			desc:        "list issuers with failing store",
			pm:          certs.PageMetadata{Limit: 10},
			retrieveErr: repoerr.ErrViewEntity,
			err:         svcerr.ErrViewEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveIssuers", mock.Anything, tc.pm).Return(tc.page, tc.retrieveErr)
			page, err := svc.ListIssuers(context.Background(), tc.pm)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			if err == nil {
				assert.Equal(t, tc.page, page)
			}
			repoCall.Unset()
		})
	}
}

func TestIssueRevokeVerifyFlow(t *testing.T) {
	svc, repo := newService(t)

	session := authn.Session{Address: issuerAddr}
	issuerCall := repo.On("RetrieveIssuer", mock.Anything, issuerAddr).Return(certs.Issuer{Address: issuerAddr, Authorized: true}, nil)
	saveCall := repo.On("Save", mock.Anything, mock.Anything).Return(certID, nil)
	cert, err := svc.IssueCert(context.Background(), session, certID, validHash, ipfsCid)
	require.Nil(t, err, fmt.Sprintf("unexpected error issuing certificate: %s", err))
	issuerCall.Unset()
	saveCall.Unset()

	retrieveCall := repo.On("RetrieveByID", mock.Anything, certID).Return(cert, nil)
	valid, err := svc.VerifyCert(context.Background(), certID, validHash)
	assert.Nil(t, err)
	assert.True(t, valid, "freshly issued certificate must verify")
	retrieveCall.Unset()

	retrieveCall = repo.On("RetrieveByID", mock.Anything, certID).Return(cert, nil)
	revokeCall := repo.On("Revoke", mock.Anything, certID, mock.Anything).Return(nil)
	revocation, err := svc.RevokeCert(context.Background(), session, certID)
	require.Nil(t, err, fmt.Sprintf("unexpected error revoking certificate: %s", err))
	retrieveCall.Unset()
	revokeCall.Unset()

	cert.Revoked = true
	cert.RevokedAt = &revocation.RevokedAt
	retrieveCall = repo.On("RetrieveByID", mock.Anything, certID).Return(cert, nil)
	valid, err = svc.VerifyCert(context.Background(), certID, validHash)
	assert.Nil(t, err)
	assert.False(t, valid, "revoked certificate must not verify")
	retrieveCall.Unset()
}
