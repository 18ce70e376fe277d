package usecase

import (
	"context"
	"time"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	"github.com/allisson/sealbox/internal/metrics"
)

// envelopeUseCaseWithMetrics decorates EnvelopeUseCase with metrics instrumentation.
type envelopeUseCaseWithMetrics struct {
	next    EnvelopeUseCase
	metrics metrics.BusinessMetrics
}

// NewEnvelopeUseCaseWithMetrics wraps an EnvelopeUseCase with metrics recording.
func NewEnvelopeUseCaseWithMetrics(useCase EnvelopeUseCase, m metrics.BusinessMetrics) EnvelopeUseCase {
	return &envelopeUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (e *envelopeUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "envelope", operation, status)
	e.metrics.RecordDuration(ctx, "envelope", operation, time.Since(start), status)
}

// Seal records metrics for seal operations.
func (e *envelopeUseCaseWithMetrics) Seal(
	ctx context.Context,
	secret string,
	plaintext []byte,
) (*cryptoDomain.EncryptedRecord, error) {
	start := time.Now()
	record, err := e.next.Seal(ctx, secret, plaintext)
	e.record(ctx, "envelope_seal", start, err)
	return record, err
}

// Open records metrics for open operations.
func (e *envelopeUseCaseWithMetrics) Open(
	ctx context.Context,
	secret string,
	record *cryptoDomain.EncryptedRecord,
) ([]byte, error) {
	start := time.Now()
	plaintext, err := e.next.Open(ctx, secret, record)
	e.record(ctx, "envelope_open", start, err)
	return plaintext, err
}

// Rewrap records metrics for rewrap operations.
func (e *envelopeUseCaseWithMetrics) Rewrap(
	ctx context.Context,
	oldSecret, newSecret string,
	record *cryptoDomain.EncryptedRecord,
) (*cryptoDomain.EncryptedRecord, error) {
	start := time.Now()
	rewrapped, err := e.next.Rewrap(ctx, oldSecret, newSecret, record)
	e.record(ctx, "envelope_rewrap", start, err)
	return rewrapped, err
}
