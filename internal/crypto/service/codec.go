package service

import (
	"encoding/base64"
	"fmt"
	"strings"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
)

// Base64Codec implements Codec with standard padded base64 (RFC 4648 section 4).
// Decoding is strict: non-canonical padding, foreign characters and embedded
// line breaks are rejected instead of skipped.
type Base64Codec struct{}

// NewBase64Codec creates a new Base64Codec.
func NewBase64Codec() *Base64Codec {
	return &Base64Codec{}
}

// ToText encodes b as standard base64.
func (c *Base64Codec) ToText(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// FromText decodes standard base64. Returns ErrInvalidEncoding on malformed input.
func (c *Base64Codec) FromText(s string) ([]byte, error) {
	// The decoder skips \r and \n even in strict mode.
	if strings.ContainsAny(s, "\r\n") {
		return nil, fmt.Errorf("%w: line breaks are not allowed", cryptoDomain.ErrInvalidEncoding)
	}

	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidEncoding, err)
	}
	return b, nil
}

// EncodeRecord converts every binary field of record to base64. The algorithm
// is left out for the AES-GCM default.
func (c *Base64Codec) EncodeRecord(record *cryptoDomain.EncryptedRecord) cryptoDomain.EncodedRecord {
	encoded := cryptoDomain.EncodedRecord{
		Ciphertext: c.ToText(record.Ciphertext),
		Nonce:      c.ToText(record.Nonce),
		WrappedKey: c.ToText(record.WrappedKey),
		WrapNonce:  c.ToText(record.WrapNonce),
		Salt:       c.ToText(record.Salt),
		KeyVersion: record.KeyVersion,
	}
	if record.Algorithm != "" && record.Algorithm != cryptoDomain.AESGCM {
		encoded.Algorithm = string(record.Algorithm)
	}
	return encoded
}

// DecodeRecord reverses EncodeRecord. The error names the first malformed field.
// A missing key version reads as InitialKeyVersion.
func (c *Base64Codec) DecodeRecord(encoded cryptoDomain.EncodedRecord) (*cryptoDomain.EncryptedRecord, error) {
	record := &cryptoDomain.EncryptedRecord{KeyVersion: encoded.KeyVersion}

	fields := []struct {
		name  string
		value string
		dst   *[]byte
	}{
		{"ciphertext", encoded.Ciphertext, &record.Ciphertext},
		{"nonce", encoded.Nonce, &record.Nonce},
		{"wrappedKey", encoded.WrappedKey, &record.WrappedKey},
		{"wrapNonce", encoded.WrapNonce, &record.WrapNonce},
		{"salt", encoded.Salt, &record.Salt},
	}

	for _, f := range fields {
		b, err := c.FromText(f.value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.name, err)
		}
		*f.dst = b
	}

	alg, err := cryptoDomain.ParseAlgorithm(encoded.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("field algorithm: %w", err)
	}
	record.Algorithm = alg

	if record.KeyVersion == 0 {
		record.KeyVersion = cryptoDomain.InitialKeyVersion
	}

	return record, nil
}
