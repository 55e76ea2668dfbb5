// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package api

import (
	api "github.com/certledger/registry/api/http"
	apiutil "github.com/certledger/registry/api/http/util"
	"github.com/certledger/registry/certs"
)

type issueCertReq struct {
	CertID   string `json:"cert_id"`
	CertHash string `json:"cert_hash"`
	IPFSCid  string `json:"ipfs_cid"`
}

func (req issueCertReq) validate() error {
	if req.CertID == "" {
		return apiutil.ErrMissingCertID
	}
	if req.CertHash == "" {
		return apiutil.ErrMissingCertHash
	}

	return nil
}

type verifyCertReq struct {
	certID   string
	certHash string
}

func (req verifyCertReq) validate() error {
	if req.certID == "" {
		return apiutil.ErrMissingCertID
	}

	return nil
}

type revokeCertReq struct {
	certID string
}

func (req revokeCertReq) validate() error {
	if req.certID == "" {
		return apiutil.ErrMissingCertID
	}

	return nil
}

type viewCertReq struct {
	certID string
}

func (req viewCertReq) validate() error {
	if req.certID == "" {
		return apiutil.ErrMissingCertID
	}

	return nil
}

type listCertsReq struct {
	pm certs.PageMetadata
}

func (req listCertsReq) validate() error {
	if req.pm.Limit > api.MaxLimitSize {
		return apiutil.ErrLimitSize
	}
	switch req.pm.Revoked {
	case "all", "true", "false":
	default:
		return apiutil.ErrInvalidRevokedFilter
	}

	return nil
}

type issuerReq struct {
	Address string `json:"address"`
}

func (req issuerReq) validate() error {
	if req.Address == "" {
		return apiutil.ErrMissingAddress
	}

	return nil
}

type listIssuersReq struct {
	pm certs.PageMetadata
}

func (req listIssuersReq) validate() error {
	if req.pm.Limit > api.MaxLimitSize {
		return apiutil.ErrLimitSize
	}

	return nil
}
