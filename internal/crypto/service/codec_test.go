package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	apperrors "github.com/allisson/sealbox/internal/errors"
)

func TestBase64Codec_ToText(t *testing.T) {
	codec := NewBase64Codec()

	assert.Equal(t, "aGVsbG8=", codec.ToText([]byte("hello")))
	assert.Equal(t, "", codec.ToText(nil))
}

func TestBase64Codec_FromText(t *testing.T) {
	codec := NewBase64Codec()

	t.Run("Success", func(t *testing.T) {
		b, err := codec.FromText("aGVsbG8=")
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), b)
	})

	t.Run("Success_RoundTripAllByteValues", func(t *testing.T) {
		data := make([]byte, 256)
		for i := range data {
			data[i] = byte(i)
		}

		b, err := codec.FromText(codec.ToText(data))
		require.NoError(t, err)
		assert.Equal(t, data, b)
	})

	t.Run("Success_RoundTripSizes", func(t *testing.T) {
		for _, size := range []int{0, 1, 2, 3, 1 << 20} {
			t.Run(fmt.Sprintf("%d bytes", size), func(t *testing.T) {
				data := make([]byte, size)
				for i := range data {
					data[i] = byte(i * 7)
				}

				text := codec.ToText(data)
				assert.Equal(t, 0, len(text)%4)

				b, err := codec.FromText(text)
				require.NoError(t, err)
				assert.Len(t, b, size)
				assert.True(t, bytes.Equal(data, b))
			})
		}
	})

	t.Run("Success_EmptyText", func(t *testing.T) {
		b, err := codec.FromText("")
		require.NoError(t, err)
		assert.Empty(t, b)
	})

	tests := []struct {
		name  string
		input string
	}{
		{"invalid characters", "not*base64!"},
		{"missing padding", "aGVsbG8"},
		{"url-safe alphabet", "-_-_"},
		{"non-canonical trailing bits", "aGVsbG9="},
		{"embedded newline", "aGVs\nbG8="},
		{"trailing carriage return", "aGVsbG8=\r"},
	}

	for _, tt := range tests {
		t.Run("Error_"+tt.name, func(t *testing.T) {
			b, err := codec.FromText(tt.input)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, cryptoDomain.ErrInvalidEncoding)
			assert.ErrorIs(t, err, apperrors.ErrDecode)
		})
	}
}

func TestBase64Codec_Record(t *testing.T) {
	codec := NewBase64Codec()
	record := &cryptoDomain.EncryptedRecord{
		Ciphertext: []byte("ciphertext-bytes"),
		Nonce:      make([]byte, cryptoDomain.NonceSize),
		WrappedKey: make([]byte, cryptoDomain.WrappedKeySize),
		WrapNonce:  make([]byte, cryptoDomain.NonceSize),
		Salt:       make([]byte, cryptoDomain.SaltSize),
		KeyVersion: 3,
		Algorithm:  cryptoDomain.AESGCM,
	}

	t.Run("Success_RoundTrip", func(t *testing.T) {
		encoded := codec.EncodeRecord(record)
		assert.Empty(t, encoded.Algorithm)
		assert.Equal(t, uint(3), encoded.KeyVersion)

		decoded, err := codec.DecodeRecord(encoded)
		require.NoError(t, err)
		assert.Equal(t, record, decoded)
	})

	t.Run("Success_ChaCha20AlgorithmIsCarried", func(t *testing.T) {
		chacha := *record
		chacha.Algorithm = cryptoDomain.ChaCha20

		encoded := codec.EncodeRecord(&chacha)
		assert.Equal(t, "chacha20-poly1305", encoded.Algorithm)

		decoded, err := codec.DecodeRecord(encoded)
		require.NoError(t, err)
		assert.Equal(t, cryptoDomain.ChaCha20, decoded.Algorithm)
	})

	t.Run("Success_JSONShape", func(t *testing.T) {
		data, err := json.Marshal(codec.EncodeRecord(record))
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(data, &fields))
		assert.ElementsMatch(
			t,
			[]string{"ciphertext", "nonce", "wrappedKey", "wrapNonce", "salt", "keyVersion"},
			keysOf(fields),
		)
	})

	t.Run("Success_MissingKeyVersionDefaultsToInitial", func(t *testing.T) {
		encoded := codec.EncodeRecord(record)
		encoded.KeyVersion = 0

		decoded, err := codec.DecodeRecord(encoded)
		require.NoError(t, err)
		assert.Equal(t, cryptoDomain.InitialKeyVersion, decoded.KeyVersion)
	})

	t.Run("Error_NamesMalformedField", func(t *testing.T) {
		encoded := codec.EncodeRecord(record)
		encoded.WrapNonce = "@@@"

		decoded, err := codec.DecodeRecord(encoded)
		assert.Nil(t, decoded)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidEncoding)
		assert.Contains(t, err.Error(), "wrapNonce")
	})

	t.Run("Error_UnknownAlgorithm", func(t *testing.T) {
		encoded := codec.EncodeRecord(record)
		encoded.Algorithm = "rot13"

		_, err := codec.DecodeRecord(encoded)
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
