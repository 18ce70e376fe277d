package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	cryptoService "github.com/allisson/sealbox/internal/crypto/service"
	"github.com/allisson/sealbox/internal/database"
	recordsDomain "github.com/allisson/sealbox/internal/records/domain"
)

type recordUseCase struct {
	txManager  database.TxManager
	recordRepo RecordRepository
	codec      cryptoService.Codec
}

// Create validates and stores a new envelope. A missing key version is stored as InitialKeyVersion.
func (r *recordUseCase) Create(
	ctx context.Context,
	envelope cryptoDomain.EncodedRecord,
) (*recordsDomain.Record, error) {
	if err := validateEnvelope(r.codec, envelope); err != nil {
		return nil, err
	}

	if envelope.KeyVersion == 0 {
		envelope.KeyVersion = cryptoDomain.InitialKeyVersion
	}

	now := time.Now().UTC()
	record := &recordsDomain.Record{
		ID:        uuid.Must(uuid.NewV7()),
		Envelope:  envelope,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// Get retrieves a record by ID.
func (r *recordUseCase) Get(ctx context.Context, recordID uuid.UUID) (*recordsDomain.Record, error) {
	return r.recordRepo.Get(ctx, recordID)
}

// List retrieves records with pagination.
func (r *recordUseCase) List(ctx context.Context, offset, limit int) ([]*recordsDomain.Record, error) {
	return r.recordRepo.List(ctx, offset, limit)
}

// Rewrap replaces the wrapped key of a stored record inside a transaction.
func (r *recordUseCase) Rewrap(
	ctx context.Context,
	recordID uuid.UUID,
	envelope cryptoDomain.EncodedRecord,
) (*recordsDomain.Record, error) {
	if err := validateEnvelope(r.codec, envelope); err != nil {
		return nil, err
	}

	var updated *recordsDomain.Record
	err := r.txManager.WithTx(ctx, func(ctx context.Context) error {
		current, err := r.recordRepo.Get(ctx, recordID)
		if err != nil {
			return err
		}

		// Base64 decoding is strict, so equal bytes always have equal text.
		if envelope.Ciphertext != current.Envelope.Ciphertext || envelope.Nonce != current.Envelope.Nonce {
			return recordsDomain.ErrPayloadChanged
		}
		if !sameAlgorithm(envelope.Algorithm, current.Envelope.Algorithm) {
			return recordsDomain.ErrPayloadChanged
		}

		expected := current.KeyVersion()
		if envelope.KeyVersion <= expected {
			return recordsDomain.ErrKeyVersionNotIncreased
		}

		updated = &recordsDomain.Record{
			ID:        current.ID,
			Envelope:  envelope,
			CreatedAt: current.CreatedAt,
			UpdatedAt: time.Now().UTC(),
		}

		return r.recordRepo.Update(ctx, updated, expected)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// sameAlgorithm compares algorithms after resolving the empty default.
func sameAlgorithm(a, b string) bool {
	algA, errA := cryptoDomain.ParseAlgorithm(a)
	algB, errB := cryptoDomain.ParseAlgorithm(b)
	return errA == nil && errB == nil && algA == algB
}

// Delete removes a record by ID.
func (r *recordUseCase) Delete(ctx context.Context, recordID uuid.UUID) error {
	return r.recordRepo.Delete(ctx, recordID)
}

// NewRecordUseCase creates a new RecordUseCase instance.
func NewRecordUseCase(
	txManager database.TxManager,
	recordRepo RecordRepository,
	codec cryptoService.Codec,
) RecordUseCase {
	return &recordUseCase{
		txManager:  txManager,
		recordRepo: recordRepo,
		codec:      codec,
	}
}
