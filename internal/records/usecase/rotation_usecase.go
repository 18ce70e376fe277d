package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	cryptoService "github.com/allisson/sealbox/internal/crypto/service"
	cryptoUsecase "github.com/allisson/sealbox/internal/crypto/usecase"
	"github.com/allisson/sealbox/internal/database"
	recordsDomain "github.com/allisson/sealbox/internal/records/domain"
)

type rotationUseCase struct {
	txManager   database.TxManager
	recordRepo  RecordRepository
	envelope    cryptoUsecase.EnvelopeUseCase
	codec       cryptoService.Codec
	concurrency int
}

// Rotate processes one batch. Records are rewrapped concurrently (key derivation
// dominates the cost) and then persisted in a single transaction with optimistic
// key version checks. Any failure, authentication failures included, aborts the
// whole batch and nothing is written.
func (r *rotationUseCase) Rotate(
	ctx context.Context,
	oldSecret, newSecret string,
	fromVersion uint,
	batchSize int,
) (int, error) {
	records, err := r.recordRepo.ListByKeyVersion(ctx, fromVersion, batchSize)
	if err != nil {
		return 0, err
	}

	if len(records) == 0 {
		return 0, nil
	}

	rewrapped := make([]*recordsDomain.Record, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, record := range records {
		g.Go(func() error {
			decoded, err := r.codec.DecodeRecord(record.Envelope)
			if err != nil {
				return err
			}

			result, err := r.envelope.Rewrap(gctx, oldSecret, newSecret, decoded)
			if err != nil {
				return err
			}

			rewrapped[i] = &recordsDomain.Record{
				ID:        record.ID,
				Envelope:  r.codec.EncodeRecord(result),
				CreatedAt: record.CreatedAt,
				UpdatedAt: time.Now().UTC(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	err = r.txManager.WithTx(ctx, func(ctx context.Context) error {
		for i, record := range rewrapped {
			if err := r.recordRepo.Update(ctx, record, records[i].KeyVersion()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(rewrapped), nil
}

// NewRotationUseCase creates a new RotationUseCase instance. concurrency bounds
// how many records are rewrapped at once; values below 1 mean one at a time.
func NewRotationUseCase(
	txManager database.TxManager,
	recordRepo RecordRepository,
	envelope cryptoUsecase.EnvelopeUseCase,
	codec cryptoService.Codec,
	concurrency int,
) RotationUseCase {
	if concurrency < 1 {
		concurrency = 1
	}
	return &rotationUseCase{
		txManager:   txManager,
		recordRepo:  recordRepo,
		envelope:    envelope,
		codec:       codec,
		concurrency: concurrency,
	}
}
