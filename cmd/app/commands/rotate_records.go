package commands

import (
	"context"
	"fmt"
	"log/slog"

	recordsUseCase "github.com/allisson/sealbox/internal/records/usecase"
)

// RunRotateRecords rewraps every stored record at fromVersion from the old secret
// to the new one, batch by batch, until no record is left at fromVersion.
// A record that does not open under the old secret aborts the run; batches
// already committed stay rotated and the run can be resumed.
func RunRotateRecords(
	ctx context.Context,
	rotationUseCase recordsUseCase.RotationUseCase,
	logger *slog.Logger,
	oldSecretEnv string,
	newSecretEnv string,
	fromVersion uint,
	batchSize int,
) error {
	if fromVersion == 0 {
		return fmt.Errorf("from-version must be greater than 0")
	}

	if batchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}

	oldSecret, err := lookupSecret("old-secret-env", oldSecretEnv)
	if err != nil {
		return err
	}
	newSecret, err := lookupSecret("new-secret-env", newSecretEnv)
	if err != nil {
		return err
	}

	logger.Info("starting record rotation",
		slog.Uint64("from_version", uint64(fromVersion)),
		slog.Int("batch_size", batchSize),
	)

	totalRotated := 0

	for {
		rotatedCount, err := rotationUseCase.Rotate(ctx, oldSecret, newSecret, fromVersion, batchSize)
		if err != nil {
			return fmt.Errorf("failed to rotate records in batch: %w", err)
		}

		if rotatedCount == 0 {
			break
		}

		totalRotated += rotatedCount
		logger.Info("rotated batch of records",
			slog.Int("rotated_in_batch", rotatedCount),
			slog.Int("total_rotated", totalRotated),
		)
	}

	logger.Info("record rotation completed",
		slog.Int("total_rotated", totalRotated),
		slog.Uint64("from_version", uint64(fromVersion)),
	)

	return nil
}
