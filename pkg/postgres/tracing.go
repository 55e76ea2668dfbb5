// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ Database = (*database)(nil)

// Database provides a database interface.
type Database interface {
	// NamedQueryContext executes a named query against the database and returns rows.
	NamedQueryContext(ctx context.Context, query string, args any) (*sqlx.Rows, error)

	// NamedExecContext executes a named query against the database.
	NamedExecContext(ctx context.Context, query string, args any) (sql.Result, error)

	// QueryRowxContext queries the database and returns an *sqlx.Row.
	QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row

	// QueryxContext queries the database and returns an *sqlx.Rows.
	QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
}

type database struct {
	db     *sqlx.DB
	tracer trace.Tracer
	name   string
}

// NewDatabase creates a Database instance that traces every statement.
func NewDatabase(db *sqlx.DB, config Config, tracer trace.Tracer) Database {
	return &database{
		db:     db,
		tracer: tracer,
		name:   config.Name,
	}
}

func (d *database) NamedQueryContext(ctx context.Context, query string, args any) (*sqlx.Rows, error) {
	ctx, span := d.startSpan(ctx, "sql_named_query", query)
	defer span.End()

	rows, err := d.db.NamedQueryContext(ctx, query, args)
	recordError(span, err)

	return rows, err
}

func (d *database) NamedExecContext(ctx context.Context, query string, args any) (sql.Result, error) {
	ctx, span := d.startSpan(ctx, "sql_named_exec", query)
	defer span.End()

	res, err := d.db.NamedExecContext(ctx, query, args)
	recordError(span, err)

	return res, err
}

func (d *database) QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row {
	ctx, span := d.startSpan(ctx, "sql_query_row", query)
	defer span.End()

	return d.db.QueryRowxContext(ctx, query, args...)
}

func (d *database) QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error) {
	ctx, span := d.startSpan(ctx, "sql_query", query)
	defer span.End()

	rows, err := d.db.QueryxContext(ctx, query, args...)
	recordError(span, err)

	return rows, err
}

func (d *database) startSpan(ctx context.Context, operation, query string) (context.Context, trace.Span) {
	return d.tracer.Start(ctx,
		fmt.Sprintf("%s %s", operation, d.name),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.name", d.name),
			attribute.String("db.statement", query),
		),
	)
}

func recordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
