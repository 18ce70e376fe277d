// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	validation "github.com/jellydator/validation"

	"github.com/allisson/sealbox/internal/app"
	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	customValidation "github.com/allisson/sealbox/internal/validation"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// lookupSecret reads a secret from the environment variable envName.
// The value itself never appears in errors or logs.
func lookupSecret(flagName, envName string) (string, error) {
	if err := validation.Validate(envName, validation.Required, customValidation.EnvName); err != nil {
		return "", fmt.Errorf("invalid --%s: %w", flagName, err)
	}

	secret, ok := os.LookupEnv(envName)
	if !ok || secret == "" {
		return "", fmt.Errorf("environment variable %s is not set or empty", envName)
	}
	return secret, nil
}

// readEncodedRecord decodes one EncodedRecord JSON document from r.
func readEncodedRecord(r io.Reader) (cryptoDomain.EncodedRecord, error) {
	var encoded cryptoDomain.EncodedRecord

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&encoded); err != nil {
		return cryptoDomain.EncodedRecord{}, fmt.Errorf("failed to read record: %w", err)
	}
	return encoded, nil
}

// writeEncodedRecord writes encoded as a single JSON line to w.
func writeEncodedRecord(w io.Writer, encoded cryptoDomain.EncodedRecord) error {
	if err := json.NewEncoder(w).Encode(encoded); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}
