// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"

	"github.com/certledger/registry/pkg/errors"
	repoerr "github.com/certledger/registry/pkg/errors/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes:
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	errDuplicate      = "23505" // unique_violation
	errFK             = "23503" // foreign_key_violation
	errInvalid        = "22P02" // invalid_text_representation
	errTruncation     = "22001" // string_data_right_truncation
	errInvalidChar    = "22021" // character_not_in_repertoire
	errUntranslatable = "22P05" // untranslatable_character
)

// HandleError translates a backend error into a registry error, keeping
// wrapper as the operation-level context.
func HandleError(wrapper, err error) error {
	pqErr, ok := err.(*pgconn.PgError)
	if ok {
		switch pqErr.Code {
		case errDuplicate:
			return errors.Wrap(wrapper, repoerr.ErrConflict)
		case errInvalid, errInvalidChar, errTruncation, errUntranslatable:
			return errors.Wrap(wrapper, repoerr.ErrMalformedEntity)
		case errFK:
			return errors.Wrap(wrapper, repoerr.ErrCreateEntity)
		}
	}

	return errors.Wrap(wrapper, err)
}

// Total executes a count query and returns the total number of rows.
func Total(ctx context.Context, db Database, query string, params any) (uint64, error) {
	rows, err := db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	total := uint64(0)
	if rows.Next() {
		if err := rows.Scan(&total); err != nil {
			return 0, err
		}
	}

	return total, nil
}
