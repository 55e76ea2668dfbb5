// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package events_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/certledger/registry/certs"
	"github.com/certledger/registry/certs/events"
	"github.com/certledger/registry/certs/mocks"
	"github.com/certledger/registry/pkg/authn"
	"github.com/certledger/registry/pkg/errors"
	eventsmocks "github.com/certledger/registry/pkg/events/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	owner      = "0x5b38da6a701c568545dcfcb03fcb875f56beddc4"
	issuerAddr = "0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2"
	certID     = "BC-2024-0001"
	validHash  = "7d865e959b2466918c9863afca942d0fb89d7c9ac0c99bafc3749504ded97730"
)

var errPublish = errors.New("failed to publish event")

func newEventStore() (certs.Service, *mocks.Service, *eventsmocks.Publisher) {
	svc := new(mocks.Service)
	publisher := new(eventsmocks.Publisher)

	return events.NewEventStoreMiddleware(svc, publisher), svc, publisher
}

func TestIssueCertEvents(t *testing.T) {
	cert := certs.Certificate{CertID: certID, CertHash: validHash, IssuedBy: issuerAddr, IssuedAt: time.Now().UTC()}
	cases := []struct {
		desc       string
		svcErr     error
		publishErr error
		err        error
	}{
		{
			desc: "issue publishes event",
		},
		{
			desc:   "failed issue publishes nothing",
			svcErr: certs.ErrFailedCertCreation,
			err:    certs.ErrFailedCertCreation,
		},
		{
			desc:       "publish failure surfaces",
			publishErr: errPublish,
			err:        errPublish,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			es, svc, publisher := newEventStore()
			session := authn.Session{Address: issuerAddr}
			svc.On("IssueCert", mock.Anything, session, certID, validHash, "").Return(cert, tc.svcErr)
			publisher.On("Publish", mock.Anything, "registry.certificate.issue", mock.Anything).Return(tc.publishErr)
			_, err := es.IssueCert(context.Background(), session, certID, validHash, "")
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			if tc.svcErr != nil {
				publisher.AssertNotCalled(t, "Publish", mock.Anything, "registry.certificate.issue", mock.Anything)
			}
		})
	}
}

func TestRevokeCertEvents(t *testing.T) {
	es, svc, publisher := newEventStore()

	session := authn.Session{Address: owner}
	revocation := certs.Revocation{CertID: certID, RevokedAt: time.Now().UTC()}
	svcCall := svc.On("RevokeCert", mock.Anything, session, certID).Return(revocation, nil)
	publishCall := publisher.On("Publish", mock.Anything, "registry.certificate.revoke", mock.Anything).Return(nil)

	resp, err := es.RevokeCert(context.Background(), session, certID)
	assert.Nil(t, err)
	assert.Equal(t, revocation, resp)
	publisher.AssertCalled(t, "Publish", mock.Anything, "registry.certificate.revoke", mock.Anything)
	svcCall.Unset()
	publishCall.Unset()
}

func TestIssuerEvents(t *testing.T) {
	es, svc, publisher := newEventStore()

	session := authn.Session{Address: owner}
	issuer := certs.Issuer{Address: issuerAddr, Authorized: true, AddedAt: time.Now().UTC()}
	svcCall := svc.On("AddIssuer", mock.Anything, session, issuerAddr).Return(issuer, nil)
	publishCall := publisher.On("Publish", mock.Anything, "registry.issuer.add", mock.Anything).Return(nil)

	_, err := es.AddIssuer(context.Background(), session, issuerAddr)
	assert.Nil(t, err)
	publisher.AssertCalled(t, "Publish", mock.Anything, "registry.issuer.add", mock.Anything)
	svcCall.Unset()
	publishCall.Unset()

	issuer.Authorized = false
	svcCall = svc.On("RemoveIssuer", mock.Anything, session, issuerAddr).Return(issuer, nil)
	publishCall = publisher.On("Publish", mock.Anything, "registry.issuer.remove", mock.Anything).Return(nil)

	_, err = es.RemoveIssuer(context.Background(), session, issuerAddr)
	assert.Nil(t, err)
	publisher.AssertCalled(t, "Publish", mock.Anything, "registry.issuer.remove", mock.Anything)
	svcCall.Unset()
	publishCall.Unset()
}

func TestReadsPublishNothing(t *testing.T) {
	es, svc, publisher := newEventStore()

	svcCall := svc.On("VerifyCert", mock.Anything, certID, validHash).Return(true, nil)
	valid, err := es.VerifyCert(context.Background(), certID, validHash)
	assert.Nil(t, err)
	assert.True(t, valid)
	svcCall.Unset()

	svcCall = svc.On("ViewCert", mock.Anything, certID).Return(certs.Certificate{CertID: certID}, nil)
	_, err = es.ViewCert(context.Background(), certID)
	assert.Nil(t, err)
	svcCall.Unset()

	svcCall = svc.On("ListCerts", mock.Anything, mock.Anything).Return(certs.CertificatePage{}, nil)
	_, err = es.ListCerts(context.Background(), certs.PageMetadata{Limit: 10})
	assert.Nil(t, err)
	svcCall.Unset()

	svcCall = svc.On("ListIssuers", mock.Anything, mock.Anything).Return(certs.IssuerPage{}, nil)
	_, err = es.ListIssuers(context.Background(), certs.PageMetadata{Limit: 10})
	assert.Nil(t, err)
	svcCall.Unset()

	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}
