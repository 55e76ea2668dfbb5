// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package postgres

import migrate "github.com/rubenv/sql-migrate"

// Migration of the certificate registry.
func Migration() *migrate.MemoryMigrationSource {
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id: "registry_1",
				Up: []string{
					`CREATE TABLE IF NOT EXISTS certs (
						cert_id     TEXT PRIMARY KEY,
						cert_hash   TEXT NOT NULL,
						ipfs_cid    TEXT NOT NULL DEFAULT '',
						issued_by   TEXT NOT NULL,
						issued_at   TIMESTAMPTZ NOT NULL,
						revoked     BOOLEAN NOT NULL DEFAULT FALSE,
						revoked_at  TIMESTAMPTZ
					);`,
					`CREATE TABLE IF NOT EXISTS issuers (
						address     TEXT PRIMARY KEY,
						authorized  BOOLEAN NOT NULL DEFAULT FALSE,
						added_at    TIMESTAMPTZ NOT NULL
					);`,
				},
				Down: []string{
					"DROP TABLE IF EXISTS certs;",
					"DROP TABLE IF EXISTS issuers;",
				},
			},
		},
	}
}
