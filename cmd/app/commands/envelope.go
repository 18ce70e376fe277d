package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	cryptoService "github.com/allisson/sealbox/internal/crypto/service"
	cryptoUseCase "github.com/allisson/sealbox/internal/crypto/usecase"
)

// RunSeal reads plaintext from the input, seals it under the secret held in the
// secretEnv environment variable and writes the encoded record as JSON to the output.
func RunSeal(
	ctx context.Context,
	envelopeUseCase cryptoUseCase.EnvelopeUseCase,
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

	record, err := envelopeUseCase.Seal(ctx, secret, plaintext)
	if err != nil {
		return fmt.Errorf("failed to seal: %w", err)
	}

	if err := writeEncodedRecord(streams.Writer, codec.EncodeRecord(record)); err != nil {
		return err
	}

	logger.Info("record sealed",
		slog.Int("plaintext_bytes", len(plaintext)),
		slog.String("algorithm", string(record.Algorithm)),
		slog.Uint64("key_version", uint64(record.KeyVersion)),
	)
	return nil
}

// RunOpen reads an encoded record as JSON from the input, opens it with the
// secret held in the secretEnv environment variable and writes the plaintext to the output.
func RunOpen(
	ctx context.Context,
	envelopeUseCase cryptoUseCase.EnvelopeUseCase,
	codec cryptoService.Codec,
	logger *slog.Logger,
	streams IOTuple,
	secretEnv string,
) error {
	secret, err := lookupSecret("secret-env", secretEnv)
	if err != nil {
		return err
	}

	encoded, err := readEncodedRecord(streams.Reader)
	if err != nil {
		return err
	}

	return openAndWrite(ctx, envelopeUseCase, codec, logger, streams.Writer, secret, encoded)
}

// RunRewrap reads an encoded record as JSON from the input, moves its data key
// from the old secret to the new one and writes the rewrapped record to the output.
// The payload ciphertext is never decrypted.
func RunRewrap(
	ctx context.Context,
	envelopeUseCase cryptoUseCase.EnvelopeUseCase,
	codec cryptoService.Codec,
	logger *slog.Logger,
	streams IOTuple,
	oldSecretEnv string,
	newSecretEnv string,
) error {
	oldSecret, err := lookupSecret("old-secret-env", oldSecretEnv)
	if err != nil {
		return err
	}
	newSecret, err := lookupSecret("new-secret-env", newSecretEnv)
	if err != nil {
		return err
	}

	encoded, err := readEncodedRecord(streams.Reader)
	if err != nil {
		return err
	}

	record, err := codec.DecodeRecord(encoded)
	if err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}

	rewrapped, err := envelopeUseCase.Rewrap(ctx, oldSecret, newSecret, record)
	if err != nil {
		return fmt.Errorf("failed to rewrap: %w", err)
	}

	if err := writeEncodedRecord(streams.Writer, codec.EncodeRecord(rewrapped)); err != nil {
		return err
	}

	logger.Info("record rewrapped",
		slog.Uint64("from_version", uint64(record.KeyVersion)),
		slog.Uint64("to_version", uint64(rewrapped.KeyVersion)),
	)
	return nil
}

// openAndWrite decodes and opens encoded, writes the plaintext to w and zeroes it.
func openAndWrite(
	ctx context.Context,
	envelopeUseCase cryptoUseCase.EnvelopeUseCase,
	codec cryptoService.Codec,
	logger *slog.Logger,
	w io.Writer,
	secret string,
	encoded cryptoDomain.EncodedRecord,
) error {
	record, err := codec.DecodeRecord(encoded)
	if err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}

	plaintext, err := envelopeUseCase.Open(ctx, secret, record)
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}
	defer cryptoDomain.Zero(plaintext)

	if _, err := w.Write(plaintext); err != nil {
		return fmt.Errorf("failed to write plaintext: %w", err)
	}

	logger.Info("record opened",
		slog.Int("plaintext_bytes", len(plaintext)),
		slog.Uint64("key_version", uint64(record.KeyVersion)),
	)
	return nil
}

// readAll reads the whole plaintext from r.
func readAll(r io.Reader) ([]byte, error) {
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read plaintext: %w", err)
	}
	return plaintext, nil
}
