// Package repository implements data persistence for sealed records.
// Repositories support both PostgreSQL and MySQL and store every envelope field verbatim.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/sealbox/internal/database"
	apperrors "github.com/allisson/sealbox/internal/errors"
	recordsDomain "github.com/allisson/sealbox/internal/records/domain"
)

const recordColumns = `id, ciphertext, nonce, wrapped_key, wrap_nonce, salt, key_version, algorithm, created_at, updated_at`

// PostgreSQLRecordRepository implements Record persistence for PostgreSQL databases.
type PostgreSQLRecordRepository struct {
	db *sql.DB
}

// Create inserts a new record into the PostgreSQL database.
func (p *PostgreSQLRecordRepository) Create(ctx context.Context, record *recordsDomain.Record) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO records (` + recordColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := querier.ExecContext(
		ctx,
		query,
		record.ID,
		record.Envelope.Ciphertext,
		record.Envelope.Nonce,
		record.Envelope.WrappedKey,
		record.Envelope.WrapNonce,
		record.Envelope.Salt,
		record.Envelope.KeyVersion,
		record.Envelope.Algorithm,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create record")
	}
	return nil
}

// Get retrieves a record by its ID.
func (p *PostgreSQLRecordRepository) Get(ctx context.Context, recordID uuid.UUID) (*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + recordColumns + ` FROM records WHERE id = $1`

	var record recordsDomain.Record
	err := querier.QueryRowContext(ctx, query, recordID).Scan(
		&record.ID,
		&record.Envelope.Ciphertext,
		&record.Envelope.Nonce,
		&record.Envelope.WrappedKey,
		&record.Envelope.WrapNonce,
		&record.Envelope.Salt,
		&record.Envelope.KeyVersion,
		&record.Envelope.Algorithm,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, recordsDomain.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get record")
	}

	return &record, nil
}

// List retrieves records ordered by ID with pagination.
func (p *PostgreSQLRecordRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + recordColumns + ` FROM records ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list records")
	}
	defer func() { _ = rows.Close() }()

	return scanPostgreSQLRecords(rows)
}

// ListByKeyVersion retrieves up to limit records whose key version equals version, ordered by ID.
func (p *PostgreSQLRecordRepository) ListByKeyVersion(
	ctx context.Context,
	version uint,
	limit int,
) ([]*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + recordColumns + ` FROM records WHERE key_version = $1 ORDER BY id LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, version, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list records by key version")
	}
	defer func() { _ = rows.Close() }()

	return scanPostgreSQLRecords(rows)
}

// Update replaces the envelope of a record, but only while its stored key version
// still equals expectedKeyVersion. Returns ErrKeyVersionConflict otherwise.
func (p *PostgreSQLRecordRepository) Update(
	ctx context.Context,
	record *recordsDomain.Record,
	expectedKeyVersion uint,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE records
			  SET wrapped_key = $1, wrap_nonce = $2, salt = $3, key_version = $4, updated_at = $5
			  WHERE id = $6 AND key_version = $7`

	result, err := querier.ExecContext(
		ctx,
		query,
		record.Envelope.WrappedKey,
		record.Envelope.WrapNonce,
		record.Envelope.Salt,
		record.Envelope.KeyVersion,
		record.UpdatedAt,
		record.ID,
		expectedKeyVersion,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update record")
	}

	return checkRowsAffected(result, recordsDomain.ErrKeyVersionConflict)
}

// Delete removes a record by its ID.
func (p *PostgreSQLRecordRepository) Delete(ctx context.Context, recordID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM records WHERE id = $1`, recordID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete record")
	}

	return checkRowsAffected(result, recordsDomain.ErrRecordNotFound)
}

func scanPostgreSQLRecords(rows *sql.Rows) ([]*recordsDomain.Record, error) {
	records := make([]*recordsDomain.Record, 0)
	for rows.Next() {
		var record recordsDomain.Record
		if err := rows.Scan(
			&record.ID,
			&record.Envelope.Ciphertext,
			&record.Envelope.Nonce,
			&record.Envelope.WrappedKey,
			&record.Envelope.WrapNonce,
			&record.Envelope.Salt,
			&record.Envelope.KeyVersion,
			&record.Envelope.Algorithm,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan record")
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate records")
	}

	return records, nil
}

// checkRowsAffected returns notAffected when the statement touched no rows.
func checkRowsAffected(result sql.Result, notAffected error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return notAffected
	}
	return nil
}

// NewPostgreSQLRecordRepository creates a new PostgreSQL Record repository instance.
func NewPostgreSQLRecordRepository(db *sql.DB) *PostgreSQLRecordRepository {
	return &PostgreSQLRecordRepository{db: db}
}
