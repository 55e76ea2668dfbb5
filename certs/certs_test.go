// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package certs_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/certledger/registry/certs"
	"github.com/certledger/registry/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeHash(t *testing.T) {
	cases := []struct {
		desc string
		hash string
		want string
		err  error
	}{
		{
			desc: "canonical lower-case hash",
			hash: validHash,
			want: validHash,
		},
		{
			desc: "upper-case hash",
			hash: strings.ToUpper(validHash),
			want: validHash,
		},
		{
			desc: "prefixed hash",
			hash: "0x" + validHash,
			want: validHash,
		},
		{
			desc: "prefixed hash with surrounding whitespace",
			hash: "  0x" + validHash + "\n",
			want: validHash,
		},
		{
			desc: "empty hash",
			hash: "",
			err:  certs.ErrInvalidCertHash,
		},
		{
			desc: "non-hex hash",
			hash: strings.Repeat("zz", 32),
			err:  certs.ErrInvalidCertHash,
		},
		{
			desc: "short hash",
			hash: validHash[:62],
			err:  certs.ErrInvalidCertHash,
		},
		{
			desc: "long hash",
			hash: validHash + "ab",
			err:  certs.ErrInvalidCertHash,
		},
		{
			desc: "zero hash",
			hash: zeroHash,
			err:  certs.ErrZeroCertHash,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := certs.NormalizeHash(tc.hash)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestZeroAddress(t *testing.T) {
	cases := []struct {
		desc    string
		address string
		zero    bool
	}{
		{
			desc:    "regular address",
			address: owner,
			zero:    false,
		},
		{
			desc:    "empty address",
			address: "",
			zero:    true,
		},
		{
			desc:    "whitespace address",
			address: "   ",
			zero:    true,
		},
		{
			desc:    "zero address with prefix",
			address: "0x0000000000000000000000000000000000000000",
			zero:    true,
		},
		{
			desc:    "zero address without prefix",
			address: strings.Repeat("0", 40),
			zero:    true,
		},
		{
			desc:    "almost zero address",
			address: "0x0000000000000000000000000000000000000001",
			zero:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.zero, certs.ZeroAddress(tc.address))
		})
	}
}
