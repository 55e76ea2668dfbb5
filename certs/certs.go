// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package certs

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"github.com/certledger/registry/pkg/errors"
)

// HashSize is the size of a certificate content digest in bytes.
const HashSize = 32

var (
	// ErrMissingCertID indicates an empty certificate identifier.
	ErrMissingCertID = errors.NewRequestError("missing certificate id")

	// ErrInvalidCertHash indicates a hash that is not a hex-encoded 32-byte digest.
	ErrInvalidCertHash = errors.NewRequestError("invalid certificate hash")

	// ErrZeroCertHash indicates an all-zero digest, which is never a valid content hash.
	ErrZeroCertHash = errors.NewRequestError("zero certificate hash")

	// ErrMissingAddress indicates an empty or all-zero issuer address.
	ErrMissingAddress = errors.NewRequestError("missing or zero issuer address")

	// ErrAlreadyRevoked indicates a revocation of an already revoked certificate.
	ErrAlreadyRevoked = errors.NewRequestError("certificate already revoked")
)

// Certificate is a single registry record. Everything except the
// revocation flag and its timestamp is immutable after issuance.
type Certificate struct {
	CertID    string     `json:"cert_id"`
	CertHash  string     `json:"cert_hash"`
	IPFSCid   string     `json:"ipfs_cid,omitempty"`
	IssuedBy  string     `json:"issued_by"`
	IssuedAt  time.Time  `json:"issued_at"`
	Revoked   bool       `json:"revoked"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// Issuer is a principal authorized to create records. Entries are never
// deleted; removal clears the authorization flag.
type Issuer struct {
	Address    string    `json:"address"`
	Authorized bool      `json:"authorized"`
	AddedAt    time.Time `json:"added_at"`
}

// Revocation carries the effect of a successful revoke operation.
type Revocation struct {
	CertID    string    `json:"cert_id"`
	RevokedAt time.Time `json:"revoked_at"`
}

type PageMetadata struct {
	Total   uint64 `json:"total,omitempty"`
	Offset  uint64 `json:"offset,omitempty"`
	Limit   uint64 `json:"limit,omitempty"`
	Revoked string `json:"revoked,omitempty"`
}

type CertificatePage struct {
	Total        uint64        `json:"total"`
	Offset       uint64        `json:"offset"`
	Limit        uint64        `json:"limit"`
	Certificates []Certificate `json:"certificates,omitempty"`
}

type IssuerPage struct {
	Total   uint64   `json:"total"`
	Offset  uint64   `json:"offset"`
	Limit   uint64   `json:"limit"`
	Issuers []Issuer `json:"issuers,omitempty"`
}

// Repository specifies the registry persistence API. The store is
// insert-only: certificates and issuers are flagged, never removed.
type Repository interface {
	// Save stores a new certificate record and returns its id.
	Save(ctx context.Context, cert Certificate) (string, error)

	// RetrieveByID retrieves the certificate stored under certID.
	RetrieveByID(ctx context.Context, certID string) (Certificate, error)

	// RetrieveAll retrieves issued certificates, newest first.
	RetrieveAll(ctx context.Context, pm PageMetadata) (CertificatePage, error)

	// Revoke flips the revocation flag of an existing record.
	Revoke(ctx context.Context, certID string, revokedAt time.Time) error

	// SaveIssuer upserts the authorization flag for an issuer address.
	SaveIssuer(ctx context.Context, issuer Issuer) error

	// RetrieveIssuer retrieves the issuer entry for an address.
	RetrieveIssuer(ctx context.Context, address string) (Issuer, error)

	// RetrieveIssuers retrieves issuer entries, oldest first.
	RetrieveIssuers(ctx context.Context, pm PageMetadata) (IssuerPage, error)
}

// NormalizeHash validates a hex-encoded certificate digest and returns
// its canonical lower-case form.
func NormalizeHash(certHash string) (string, error) {
	h := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(certHash), "0x"))
	raw, err := hex.DecodeString(h)
	if err != nil || len(raw) != HashSize {
		return "", ErrInvalidCertHash
	}

	zero := true
	for _, b := range raw {
		if b != 0 {
			zero = false
			break
		}
	}
	if zero {
		return "", ErrZeroCertHash
	}

	return h, nil
}

// ZeroAddress reports whether the address is empty or an all-zero hex
// address of any length.
func ZeroAddress(address string) bool {
	a := strings.TrimPrefix(strings.TrimSpace(address), "0x")
	if a == "" {
		return true
	}
	for _, c := range a {
		if c != '0' {
			return false
		}
	}
	return true
}
