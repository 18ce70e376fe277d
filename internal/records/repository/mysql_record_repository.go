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

// MySQLRecordRepository implements Record persistence for MySQL databases.
// IDs are stored as BINARY(16).
type MySQLRecordRepository struct {
	db *sql.DB
}

// Create inserts a new record into the MySQL database.
func (m *MySQLRecordRepository) Create(ctx context.Context, record *recordsDomain.Record) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO records (` + recordColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := record.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal record id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLRecordRepository) Get(ctx context.Context, recordID uuid.UUID) (*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := recordID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal record id")
	}

	query := `SELECT ` + recordColumns + ` FROM records WHERE id = ?`

	record, err := scanMySQLRecord(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, recordsDomain.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get record")
	}

	return record, nil
}

// List retrieves records ordered by ID with pagination.
func (m *MySQLRecordRepository) List(ctx context.Context, offset, limit int) ([]*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + recordColumns + ` FROM records ORDER BY id LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list records")
	}
	defer func() { _ = rows.Close() }()

	return scanMySQLRecords(rows)
}

// ListByKeyVersion retrieves up to limit records whose key version equals version, ordered by ID.
func (m *MySQLRecordRepository) ListByKeyVersion(
	ctx context.Context,
	version uint,
	limit int,
) ([]*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + recordColumns + ` FROM records WHERE key_version = ? ORDER BY id LIMIT ?`

	rows, err := querier.QueryContext(ctx, query, version, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list records by key version")
	}
	defer func() { _ = rows.Close() }()

	return scanMySQLRecords(rows)
}

// Update replaces the envelope of a record, but only while its stored key version
// still equals expectedKeyVersion. Returns ErrKeyVersionConflict otherwise.
func (m *MySQLRecordRepository) Update(
	ctx context.Context,
	record *recordsDomain.Record,
	expectedKeyVersion uint,
) error {
	querier := database.GetTx(ctx, m.db)

	id, err := record.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal record id")
	}

	query := `UPDATE records
			  SET wrapped_key = ?, wrap_nonce = ?, salt = ?, key_version = ?, updated_at = ?
			  WHERE id = ? AND key_version = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		record.Envelope.WrappedKey,
		record.Envelope.WrapNonce,
		record.Envelope.Salt,
		record.Envelope.KeyVersion,
		record.UpdatedAt,
		id,
		expectedKeyVersion,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update record")
	}

	return checkRowsAffected(result, recordsDomain.ErrKeyVersionConflict)
}

// Delete removes a record by its ID.
func (m *MySQLRecordRepository) Delete(ctx context.Context, recordID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	id, err := recordID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal record id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete record")
	}

	return checkRowsAffected(result, recordsDomain.ErrRecordNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMySQLRecord(row rowScanner) (*recordsDomain.Record, error) {
	var record recordsDomain.Record
	var id []byte

	if err := row.Scan(
		&id,
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
		return nil, err
	}

	if err := record.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal record id")
	}

	return &record, nil
}

func scanMySQLRecords(rows *sql.Rows) ([]*recordsDomain.Record, error) {
	records := make([]*recordsDomain.Record, 0)
	for rows.Next() {
		record, err := scanMySQLRecord(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan record")
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate records")
	}

	return records, nil
}

// NewMySQLRecordRepository creates a new MySQL Record repository instance.
func NewMySQLRecordRepository(db *sql.DB) *MySQLRecordRepository {
	return &MySQLRecordRepository{db: db}
}
