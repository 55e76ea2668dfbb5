// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"encoding/json"
	"net/http"
	"time"
)

const (
	contentType     = "Content-Type"
	contentTypeJSON = "application/health+json"
	svcStatus       = "pass"

	// Version represents the last service git tag in git history.
	Version = "0.1.0"
)

// HealthInfo contains version endpoint response.
type HealthInfo struct {
	// Status contains service status.
	Status string `json:"status"`

	// Version contains current service version.
	Version string `json:"version"`

	// Service contains service name.
	Service string `json:"service"`

	// InstanceID contains the ID of the service instance.
	InstanceID string `json:"instance_id"`

	// LastUpdate contains the time of the last health check.
	LastUpdate time.Time `json:"last_update"`
}

// Health exposes an HTTP handler for retrieving service health.
func Health(service, instanceID string) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		res := HealthInfo{
			Service:    service,
			Status:     svcStatus,
			Version:    Version,
			InstanceID: instanceID,
			LastUpdate: time.Now().UTC(),
		}

		rw.Header().Set(contentType, contentTypeJSON)
		rw.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(rw).Encode(res); err != nil {
			http.Error(rw, err.Error(), http.StatusInternalServerError)
		}
	}
}
