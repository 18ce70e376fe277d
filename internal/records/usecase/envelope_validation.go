package usecase

import (
	"fmt"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	cryptoService "github.com/allisson/sealbox/internal/crypto/service"
	recordsDomain "github.com/allisson/sealbox/internal/records/domain"
)

// validateEnvelope decodes every field and checks the sizes the envelope
// scheme guarantees. It catches truncated or mangled uploads before they are
// stored, without needing any key.
func validateEnvelope(codec cryptoService.Codec, envelope cryptoDomain.EncodedRecord) error {
	record, err := codec.DecodeRecord(envelope)
	if err != nil {
		return err
	}

	sizes := []struct {
		name string
		got  int
		want int
	}{
		{"nonce", len(record.Nonce), cryptoDomain.NonceSize},
		{"wrapNonce", len(record.WrapNonce), cryptoDomain.NonceSize},
		{"salt", len(record.Salt), cryptoDomain.SaltSize},
		{"wrappedKey", len(record.WrappedKey), cryptoDomain.WrappedKeySize},
	}
	for _, s := range sizes {
		if s.got != s.want {
			return fmt.Errorf("%w: %s must be %d bytes, got %d", recordsDomain.ErrInvalidEnvelope, s.name, s.want, s.got)
		}
	}

	if len(record.Ciphertext) < cryptoDomain.TagSize {
		return fmt.Errorf(
			"%w: ciphertext must be at least %d bytes",
			recordsDomain.ErrInvalidEnvelope,
			cryptoDomain.TagSize,
		)
	}

	return nil
}
