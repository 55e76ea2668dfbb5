// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package authn

import "context"

// Session is the authenticated caller of a registry operation. Address
// is the principal the registry authorizes against: it decides issuer
// membership and owner checks.
type Session struct {
	Address string
	TokenID string
}

// Authentication authenticates a bearer token into a Session.
type Authentication interface {
	Authenticate(ctx context.Context, token string) (Session, error)
}
