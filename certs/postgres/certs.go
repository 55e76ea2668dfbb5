// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

// Package postgres contains the PostgreSQL implementation of the
// certificate registry repository.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/certledger/registry/certs"
	"github.com/certledger/registry/pkg/errors"
	repoerr "github.com/certledger/registry/pkg/errors/repository"
	"github.com/certledger/registry/pkg/postgres"
)

var _ certs.Repository = (*certsRepository)(nil)

type certsRepository struct {
	db postgres.Database
}

// NewRepository instantiates a PostgreSQL implementation of the
// registry repository.
func NewRepository(db postgres.Database) certs.Repository {
	return &certsRepository{db: db}
}

func (cr *certsRepository) Save(ctx context.Context, cert certs.Certificate) (string, error) {
	q := `INSERT INTO certs (cert_id, cert_hash, ipfs_cid, issued_by, issued_at, revoked)
	VALUES (:cert_id, :cert_hash, :ipfs_cid, :issued_by, :issued_at, :revoked)
	RETURNING cert_id`

	dbcrt := toDBCert(cert)
	row, err := cr.db.NamedQueryContext(ctx, q, dbcrt)
	if err != nil {
		return "", postgres.HandleError(repoerr.ErrCreateEntity, err)
	}
	defer row.Close()

	var certID string
	if row.Next() {
		if err := row.Scan(&certID); err != nil {
			return "", errors.Wrap(repoerr.ErrFailedOpDB, err)
		}
	}

	return certID, nil
}

func (cr *certsRepository) RetrieveByID(ctx context.Context, certID string) (certs.Certificate, error) {
	q := `SELECT cert_id, cert_hash, ipfs_cid, issued_by, issued_at, revoked, revoked_at FROM certs WHERE cert_id = $1`

	var dbcrt dbCert
	if err := cr.db.QueryRowxContext(ctx, q, certID).StructScan(&dbcrt); err != nil {
		if err == sql.ErrNoRows {
			return certs.Certificate{}, errors.Wrap(repoerr.ErrNotFound, err)
		}

		return certs.Certificate{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return toCert(dbcrt), nil
}

func (cr *certsRepository) RetrieveAll(ctx context.Context, pm certs.PageMetadata) (certs.CertificatePage, error) {
	pageQuery, err := PageQuery(pm)
	if err != nil {
		return certs.CertificatePage{}, err
	}

	q := fmt.Sprintf(`SELECT cert_id, cert_hash, ipfs_cid, issued_by, issued_at, revoked, revoked_at FROM certs %s
			ORDER BY issued_at DESC
			LIMIT :limit OFFSET :offset`, pageQuery)

	param := dbPageMetadata{
		Offset: pm.Offset,
		Limit:  pm.Limit,
	}

	rows, err := cr.db.NamedQueryContext(ctx, q, param)
	if err != nil {
		return certs.CertificatePage{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	certificates := []certs.Certificate{}
	for rows.Next() {
		dbcrt := dbCert{}
		if err := rows.StructScan(&dbcrt); err != nil {
			return certs.CertificatePage{}, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		certificates = append(certificates, toCert(dbcrt))
	}

	cq := fmt.Sprintf(`SELECT COUNT(*) AS total_count FROM certs %s`, pageQuery)

	total, err := postgres.Total(ctx, cr.db, cq, param)
	if err != nil {
		return certs.CertificatePage{}, errors.Wrap(repoerr.ErrFailedOpDB, err)
	}

	return certs.CertificatePage{
		Total:        total,
		Offset:       pm.Offset,
		Limit:        pm.Limit,
		Certificates: certificates,
	}, nil
}

func (cr *certsRepository) Revoke(ctx context.Context, certID string, revokedAt time.Time) error {
	q := `UPDATE certs SET revoked = TRUE, revoked_at = :revoked_at WHERE cert_id = :cert_id`

	param := dbCert{
		CertID:    certID,
		RevokedAt: sql.NullTime{Time: revokedAt, Valid: true},
	}
	result, err := cr.db.NamedExecContext(ctx, q, param)
	if err != nil {
		return postgres.HandleError(repoerr.ErrUpdateEntity, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(repoerr.ErrFailedOpDB, err)
	}
	if rowsAffected == 0 {
		return errors.Wrap(repoerr.ErrNotFound, errors.New("certificate not found"))
	}

	return nil
}

func (cr *certsRepository) SaveIssuer(ctx context.Context, issuer certs.Issuer) error {
	q := `INSERT INTO issuers (address, authorized, added_at)
	VALUES (:address, :authorized, :added_at)
	ON CONFLICT (address) DO UPDATE SET authorized = EXCLUDED.authorized, added_at = EXCLUDED.added_at`

	dbisr := toDBIssuer(issuer)
	if _, err := cr.db.NamedExecContext(ctx, q, dbisr); err != nil {
		return postgres.HandleError(repoerr.ErrUpdateEntity, err)
	}

	return nil
}

func (cr *certsRepository) RetrieveIssuer(ctx context.Context, address string) (certs.Issuer, error) {
	q := `SELECT address, authorized, added_at FROM issuers WHERE address = $1`

	var dbisr dbIssuer
	if err := cr.db.QueryRowxContext(ctx, q, address).StructScan(&dbisr); err != nil {
		if err == sql.ErrNoRows {
			return certs.Issuer{}, errors.Wrap(repoerr.ErrNotFound, err)
		}

		return certs.Issuer{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return toIssuer(dbisr), nil
}

func (cr *certsRepository) RetrieveIssuers(ctx context.Context, pm certs.PageMetadata) (certs.IssuerPage, error) {
	q := `SELECT address, authorized, added_at FROM issuers
			ORDER BY added_at ASC
			LIMIT :limit OFFSET :offset`

	param := dbPageMetadata{
		Offset: pm.Offset,
		Limit:  pm.Limit,
	}

	rows, err := cr.db.NamedQueryContext(ctx, q, param)
	if err != nil {
		return certs.IssuerPage{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	issuers := []certs.Issuer{}
	for rows.Next() {
		dbisr := dbIssuer{}
		if err := rows.StructScan(&dbisr); err != nil {
			return certs.IssuerPage{}, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		issuers = append(issuers, toIssuer(dbisr))
	}

	total, err := postgres.Total(ctx, cr.db, `SELECT COUNT(*) AS total_count FROM issuers`, param)
	if err != nil {
		return certs.IssuerPage{}, errors.Wrap(repoerr.ErrFailedOpDB, err)
	}

	return certs.IssuerPage{
		Total:   total,
		Offset:  pm.Offset,
		Limit:   pm.Limit,
		Issuers: issuers,
	}, nil
}

// PageQuery builds the filter clause for certificate listings.
func PageQuery(pm certs.PageMetadata) (string, error) {
	var query []string

	switch pm.Revoked {
	case "true":
		query = append(query, "revoked = true")
	case "false":
		query = append(query, "revoked = false")
	}

	var emq string
	if len(query) > 0 {
		emq = fmt.Sprintf("WHERE %s", strings.Join(query, " AND "))
	}

	return emq, nil
}

type dbPageMetadata struct {
	Offset uint64 `db:"offset"`
	Limit  uint64 `db:"limit"`
}

type dbCert struct {
	CertID    string       `db:"cert_id"`
	CertHash  string       `db:"cert_hash"`
	IPFSCid   string       `db:"ipfs_cid"`
	IssuedBy  string       `db:"issued_by"`
	IssuedAt  time.Time    `db:"issued_at"`
	Revoked   bool         `db:"revoked"`
	RevokedAt sql.NullTime `db:"revoked_at"`
}

func toDBCert(c certs.Certificate) dbCert {
	var revokedAt sql.NullTime
	if c.RevokedAt != nil {
		revokedAt = sql.NullTime{Time: *c.RevokedAt, Valid: true}
	}

	return dbCert{
		CertID:    c.CertID,
		CertHash:  c.CertHash,
		IPFSCid:   c.IPFSCid,
		IssuedBy:  c.IssuedBy,
		IssuedAt:  c.IssuedAt,
		Revoked:   c.Revoked,
		RevokedAt: revokedAt,
	}
}

func toCert(cdb dbCert) certs.Certificate {
	c := certs.Certificate{
		CertID:   cdb.CertID,
		CertHash: cdb.CertHash,
		IPFSCid:  cdb.IPFSCid,
		IssuedBy: cdb.IssuedBy,
		IssuedAt: cdb.IssuedAt,
		Revoked:  cdb.Revoked,
	}
	if cdb.RevokedAt.Valid {
		revokedAt := cdb.RevokedAt.Time
		c.RevokedAt = &revokedAt
	}

	return c
}

type dbIssuer struct {
	Address    string    `db:"address"`
	Authorized bool      `db:"authorized"`
	AddedAt    time.Time `db:"added_at"`
}

func toDBIssuer(i certs.Issuer) dbIssuer {
	return dbIssuer{
		Address:    i.Address,
		Authorized: i.Authorized,
		AddedAt:    i.AddedAt,
	}
}

func toIssuer(idb dbIssuer) certs.Issuer {
	return certs.Issuer{
		Address:    idb.Address,
		Authorized: idb.Authorized,
		AddedAt:    idb.AddedAt,
	}
}
