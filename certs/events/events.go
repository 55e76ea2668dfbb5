// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"github.com/certledger/registry/certs"
	"github.com/certledger/registry/pkg/events"
)

const (
	certPrefix   = "certificate."
	certIssue    = certPrefix + "issue"
	certRevoke   = certPrefix + "revoke"
	issuerPrefix = "issuer."
	issuerAdd    = issuerPrefix + "add"
	issuerRemove = issuerPrefix + "remove"
)

var (
	_ events.Event = (*issueCertEvent)(nil)
	_ events.Event = (*revokeCertEvent)(nil)
	_ events.Event = (*issuerEvent)(nil)
)

type issueCertEvent struct {
	certs.Certificate
	requestID string
}

func (ice issueCertEvent) Encode() (map[string]any, error) {
	val := map[string]any{
		"operation":  certIssue,
		"cert_id":    ice.CertID,
		"cert_hash":  ice.CertHash,
		"issued_by":  ice.IssuedBy,
		"issued_at":  ice.IssuedAt,
		"request_id": ice.requestID,
	}

	if ice.IPFSCid != "" {
		val["ipfs_cid"] = ice.IPFSCid
	}

	return val, nil
}

type revokeCertEvent struct {
	certs.Revocation
	revokedBy string
	requestID string
}

func (rce revokeCertEvent) Encode() (map[string]any, error) {
	return map[string]any{
		"operation":  certRevoke,
		"cert_id":    rce.CertID,
		"revoked_by": rce.revokedBy,
		"revoked_at": rce.RevokedAt,
		"request_id": rce.requestID,
	}, nil
}

type issuerEvent struct {
	certs.Issuer
	operation   string
	performedBy string
	requestID   string
}

func (ie issuerEvent) Encode() (map[string]any, error) {
	return map[string]any{
		"operation":    ie.operation,
		"address":      ie.Address,
		"authorized":   ie.Authorized,
		"performed_by": ie.performedBy,
		"request_id":   ie.requestID,
	}, nil
}
