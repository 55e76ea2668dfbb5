// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"
	"net/http"

	"github.com/certledger/registry"
	"github.com/certledger/registry/certs"
)

var (
	_ registry.Response = (*issueCertRes)(nil)
	_ registry.Response = (*verifyCertRes)(nil)
	_ registry.Response = (*revokeCertRes)(nil)
	_ registry.Response = (*viewCertRes)(nil)
	_ registry.Response = (*listCertsRes)(nil)
	_ registry.Response = (*issuerRes)(nil)
	_ registry.Response = (*listIssuersRes)(nil)
)

type issueCertRes struct {
	certs.Certificate
}

func (res issueCertRes) Code() int {
	return http.StatusCreated
}

func (res issueCertRes) Headers() map[string]string {
	return map[string]string{
		"Location": fmt.Sprintf("/certs/%s", res.CertID),
	}
}

func (res issueCertRes) Empty() bool {
	return false
}

type verifyCertRes struct {
	CertID string `json:"cert_id"`
	Valid  bool   `json:"valid"`
}

func (res verifyCertRes) Code() int {
	return http.StatusOK
}

func (res verifyCertRes) Headers() map[string]string {
	return map[string]string{}
}

func (res verifyCertRes) Empty() bool {
	return false
}

type revokeCertRes struct {
	certs.Revocation
}

func (res revokeCertRes) Code() int {
	return http.StatusOK
}

func (res revokeCertRes) Headers() map[string]string {
	return map[string]string{}
}

func (res revokeCertRes) Empty() bool {
	return false
}

type viewCertRes struct {
	certs.Certificate
}

func (res viewCertRes) Code() int {
	return http.StatusOK
}

func (res viewCertRes) Headers() map[string]string {
	return map[string]string{}
}

func (res viewCertRes) Empty() bool {
	return false
}

type listCertsRes struct {
	certs.CertificatePage
}

func (res listCertsRes) Code() int {
	return http.StatusOK
}

func (res listCertsRes) Headers() map[string]string {
	return map[string]string{}
}

func (res listCertsRes) Empty() bool {
	return false
}

type issuerRes struct {
	certs.Issuer
	created bool
}

func (res issuerRes) Code() int {
	if res.created {
		return http.StatusCreated
	}

	return http.StatusOK
}

func (res issuerRes) Headers() map[string]string {
	if res.created {
		return map[string]string{
			"Location": fmt.Sprintf("/issuers/%s", res.Address),
		}
	}

	return map[string]string{}
}

func (res issuerRes) Empty() bool {
	return false
}

type listIssuersRes struct {
	certs.IssuerPage
}

func (res listIssuersRes) Code() int {
	return http.StatusOK
}

func (res listIssuersRes) Headers() map[string]string {
	return map[string]string{}
}

func (res listIssuersRes) Empty() bool {
	return false
}
