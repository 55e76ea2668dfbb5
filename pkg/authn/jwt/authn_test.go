// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package jwt_test

import (
	"context"
	"testing"
	"time"

	smqjwt "github.com/certledger/registry/pkg/authn/jwt"
	"github.com/certledger/registry/pkg/errors"
	svcerr "github.com/certledger/registry/pkg/errors/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	secret  = []byte("registry-test-secret")
	address = "0xa1b2c3d4e5f60718293a4b5c6d7e8f9001122334"
)

func TestAuthenticate(t *testing.T) {
	valid, err := smqjwt.Issue(secret, address, time.Hour)
	require.Nil(t, err)

	expired, err := smqjwt.Issue(secret, address, -time.Hour)
	require.Nil(t, err)

	foreign, err := smqjwt.Issue([]byte("other-secret"), address, time.Hour)
	require.Nil(t, err)

	noSubject, err := smqjwt.Issue(secret, "", time.Hour)
	require.Nil(t, err)

	authn := smqjwt.NewAuthentication(secret)

	cases := []struct {
		desc    string
		token   string
		address string
		err     error
	}{
		{
			desc:    "valid token",
			token:   valid,
			address: address,
			err:     nil,
		},
		{
			desc:  "expired token",
			token: expired,
			err:   svcerr.ErrAuthentication,
		},
		{
			desc:  "token signed with foreign key",
			token: foreign,
			err:   svcerr.ErrAuthentication,
		},
		{
			desc:  "token without subject",
			token: noSubject,
			err:   svcerr.ErrAuthentication,
		},
		{
			desc:  "garbage token",
			token: "not-a-token",
			err:   svcerr.ErrAuthentication,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			session, err := authn.Authenticate(context.Background(), tc.token)
			assert.True(t, errors.Contains(err, tc.err), "expected %v got %v", tc.err, err)
			assert.Equal(t, tc.address, session.Address)
		})
	}
}
