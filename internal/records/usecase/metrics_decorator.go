package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	"github.com/allisson/sealbox/internal/metrics"
	recordsDomain "github.com/allisson/sealbox/internal/records/domain"
)

func recordMetrics(ctx context.Context, m metrics.BusinessMetrics, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	m.RecordOperation(ctx, "records", operation, status)
	m.RecordDuration(ctx, "records", operation, time.Since(start), status)
}

// recordUseCaseWithMetrics decorates RecordUseCase with metrics instrumentation.
type recordUseCaseWithMetrics struct {
	next    RecordUseCase
	metrics metrics.BusinessMetrics
}

// NewRecordUseCaseWithMetrics wraps a RecordUseCase with metrics recording.
func NewRecordUseCaseWithMetrics(useCase RecordUseCase, m metrics.BusinessMetrics) RecordUseCase {
	return &recordUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for record creation.
func (r *recordUseCaseWithMetrics) Create(
	ctx context.Context,
	envelope cryptoDomain.EncodedRecord,
) (*recordsDomain.Record, error) {
	start := time.Now()
	record, err := r.next.Create(ctx, envelope)
	recordMetrics(ctx, r.metrics, "record_create", start, err)
	return record, err
}

// Get records metrics for record retrieval.
func (r *recordUseCaseWithMetrics) Get(ctx context.Context, recordID uuid.UUID) (*recordsDomain.Record, error) {
	start := time.Now()
	record, err := r.next.Get(ctx, recordID)
	recordMetrics(ctx, r.metrics, "record_get", start, err)
	return record, err
}

// List records metrics for record listing.
func (r *recordUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*recordsDomain.Record, error) {
	start := time.Now()
	records, err := r.next.List(ctx, offset, limit)
	recordMetrics(ctx, r.metrics, "record_list", start, err)
	return records, err
}

// Rewrap records metrics for record rewrap.
func (r *recordUseCaseWithMetrics) Rewrap(
	ctx context.Context,
	recordID uuid.UUID,
	envelope cryptoDomain.EncodedRecord,
) (*recordsDomain.Record, error) {
	start := time.Now()
	record, err := r.next.Rewrap(ctx, recordID, envelope)
	recordMetrics(ctx, r.metrics, "record_rewrap", start, err)
	return record, err
}

// Delete records metrics for record deletion.
func (r *recordUseCaseWithMetrics) Delete(ctx context.Context, recordID uuid.UUID) error {
	start := time.Now()
	err := r.next.Delete(ctx, recordID)
	recordMetrics(ctx, r.metrics, "record_delete", start, err)
	return err
}

// rotationUseCaseWithMetrics decorates RotationUseCase with metrics instrumentation.
type rotationUseCaseWithMetrics struct {
	next    RotationUseCase
	metrics metrics.BusinessMetrics
}

// NewRotationUseCaseWithMetrics wraps a RotationUseCase with metrics recording.
func NewRotationUseCaseWithMetrics(useCase RotationUseCase, m metrics.BusinessMetrics) RotationUseCase {
	return &rotationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Rotate records metrics for one rotation batch.
func (r *rotationUseCaseWithMetrics) Rotate(
	ctx context.Context,
	oldSecret, newSecret string,
	fromVersion uint,
	batchSize int,
) (int, error) {
	start := time.Now()
	count, err := r.next.Rotate(ctx, oldSecret, newSecret, fromVersion, batchSize)
	recordMetrics(ctx, r.metrics, "record_rotate", start, err)
	return count, err
}
