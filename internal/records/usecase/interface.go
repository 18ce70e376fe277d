// Package usecase defines the interfaces and implementations for the sealed
// record store. The store validates envelope structure but never decrypts;
// rotation runs on the client side with both secrets and persists only the
// rewrapped envelopes.
package usecase

import (
	"context"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	recordsDomain "github.com/allisson/sealbox/internal/records/domain"
)

// RecordRepository defines the interface for Record persistence operations.
type RecordRepository interface {
	Create(ctx context.Context, record *recordsDomain.Record) error
	Get(ctx context.Context, recordID uuid.UUID) (*recordsDomain.Record, error)
	List(ctx context.Context, offset, limit int) ([]*recordsDomain.Record, error)
	ListByKeyVersion(ctx context.Context, version uint, limit int) ([]*recordsDomain.Record, error)
	// Update persists a rewrapped envelope only while the stored key version
	// equals expectedKeyVersion.
	Update(ctx context.Context, record *recordsDomain.Record, expectedKeyVersion uint) error
	Delete(ctx context.Context, recordID uuid.UUID) error
}

// RecordUseCase defines the interface for record store business logic.
type RecordUseCase interface {
	Create(ctx context.Context, envelope cryptoDomain.EncodedRecord) (*recordsDomain.Record, error)
	Get(ctx context.Context, recordID uuid.UUID) (*recordsDomain.Record, error)
	List(ctx context.Context, offset, limit int) ([]*recordsDomain.Record, error)
	// Rewrap replaces the wrapped key of a stored record. The ciphertext and
	// nonce must be unchanged and the key version must increase.
	Rewrap(
		ctx context.Context,
		recordID uuid.UUID,
		envelope cryptoDomain.EncodedRecord,
	) (*recordsDomain.Record, error)
	Delete(ctx context.Context, recordID uuid.UUID) error
}

// RotationUseCase defines the interface for batch secret rotation over stored records.
type RotationUseCase interface {
	// Rotate rewraps up to batchSize records at fromVersion from oldSecret to
	// newSecret and returns how many were rewrapped. Zero means nothing is left.
	Rotate(ctx context.Context, oldSecret, newSecret string, fromVersion uint, batchSize int) (int, error)
}
