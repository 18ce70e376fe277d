package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	cryptoService "github.com/allisson/sealbox/internal/crypto/service"
	cryptoUseCase "github.com/allisson/sealbox/internal/crypto/usecase"
	recordsUseCase "github.com/allisson/sealbox/internal/records/usecase"
)

// RunPut seals plaintext read from the input and stores the resulting envelope.
// The new record id is written to the output.
func RunPut(
	ctx context.Context,
	envelopeUseCase cryptoUseCase.EnvelopeUseCase,
	recordUseCase recordsUseCase.RecordUseCase,
	codec cryptoService.Codec,
	logger *slog.Logger,
	streams IOTuple,
	secretEnv string,
) error {
	secret, err := lookupSecret("secret-env", secretEnv)
	if err != nil {
		return err
	}

	plaintext, err := readAll(streams.Reader)
	if err != nil {
		return err
	}
	defer cryptoDomain.Zero(plaintext)

	sealed, err := envelopeUseCase.Seal(ctx, secret, plaintext)
	if err != nil {
		return fmt.Errorf("failed to seal: %w", err)
	}

	record, err := recordUseCase.Create(ctx, codec.EncodeRecord(sealed))
	if err != nil {
		return fmt.Errorf("failed to store record: %w", err)
	}

	if _, err := fmt.Fprintln(streams.Writer, record.ID.String()); err != nil {
		return fmt.Errorf("failed to write record id: %w", err)
	}

	logger.Info("record stored",
		slog.String("record_id", record.ID.String()),
		slog.Int("plaintext_bytes", len(plaintext)),
	)
	return nil
}

// RunGet loads a stored record and writes its opened plaintext to the output.
func RunGet(
	ctx context.Context,
	envelopeUseCase cryptoUseCase.EnvelopeUseCase,
	recordUseCase recordsUseCase.RecordUseCase,
	codec cryptoService.Codec,
	logger *slog.Logger,
	streams IOTuple,
	recordIDStr string,
	secretEnv string,
) error {
	recordID, err := uuid.Parse(recordIDStr)
	if err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}

	secret, err := lookupSecret("secret-env", secretEnv)
	if err != nil {
		return err
	}

	record, err := recordUseCase.Get(ctx, recordID)
	if err != nil {
		return fmt.Errorf("failed to load record: %w", err)
	}

	return openAndWrite(ctx, envelopeUseCase, codec, logger, streams.Writer, secret, record.Envelope)
}
