package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	cryptoService "github.com/allisson/sealbox/internal/crypto/service"
	cryptoServiceMocks "github.com/allisson/sealbox/internal/crypto/service/mocks"
	apperrors "github.com/allisson/sealbox/internal/errors"
	"github.com/allisson/sealbox/internal/testutil"
)

const (
	testSecret    = "correct horse battery staple"
	testNewSecret = "tr0ub4dor&3"
)

func newTestEnvelopeUseCase(
	t *testing.T,
	random cryptoService.RandomSource,
	alg cryptoDomain.Algorithm,
) EnvelopeUseCase {
	t.Helper()
	provider := cryptoService.NewCryptoProvider(cryptoService.NewAEADManager(random))
	kdf, err := cryptoService.NewKeyDerivation(provider, random, cryptoDomain.DefaultKDFIterations)
	require.NoError(t, err)
	return NewEnvelopeUseCase(kdf, provider, random, alg)
}

// TestEnvelopeUseCase_EndToEnd walks a record through seal, open and rotation.
func TestEnvelopeUseCase_EndToEnd(t *testing.T) {
	ctx := context.Background()
	uc := newTestEnvelopeUseCase(t, cryptoService.NewSystemRandom(), cryptoDomain.AESGCM)
	plaintext := []byte("top secret note")

	record, err := uc.Seal(ctx, testSecret, plaintext)
	require.NoError(t, err)
	assert.Len(t, record.Salt, cryptoDomain.SaltSize)
	assert.Len(t, record.Nonce, cryptoDomain.NonceSize)
	assert.Len(t, record.WrapNonce, cryptoDomain.NonceSize)
	assert.Len(t, record.WrappedKey, cryptoDomain.WrappedKeySize)
	assert.Len(t, record.Ciphertext, len(plaintext)+cryptoDomain.TagSize)
	assert.Equal(t, cryptoDomain.InitialKeyVersion, record.KeyVersion)
	assert.Equal(t, cryptoDomain.AESGCM, record.Algorithm)

	t.Run("open with the correct secret", func(t *testing.T) {
		opened, err := uc.Open(ctx, testSecret, record)
		require.NoError(t, err)
		assert.Equal(t, plaintext, opened)
	})

	t.Run("open with a wrong secret", func(t *testing.T) {
		opened, err := uc.Open(ctx, "wrong horse battery staple", record)
		assert.Nil(t, opened)
		assert.ErrorIs(t, err, apperrors.ErrAuthentication)
	})

	t.Run("open with an altered salt", func(t *testing.T) {
		altered := *record
		altered.Salt = bytes.Clone(record.Salt)
		altered.Salt[0] ^= 0x01

		opened, err := uc.Open(ctx, testSecret, &altered)
		assert.Nil(t, opened)
		assert.ErrorIs(t, err, apperrors.ErrAuthentication)
	})

	t.Run("rotation preserves the payload", func(t *testing.T) {
		rotated, err := uc.Rewrap(ctx, testSecret, testNewSecret, record)
		require.NoError(t, err)

		assert.Equal(t, record.Ciphertext, rotated.Ciphertext)
		assert.Equal(t, record.Nonce, rotated.Nonce)
		assert.NotEqual(t, record.Salt, rotated.Salt)
		assert.NotEqual(t, record.WrappedKey, rotated.WrappedKey)
		assert.Equal(t, record.KeyVersion+1, rotated.KeyVersion)

		opened, err := uc.Open(ctx, testNewSecret, rotated)
		require.NoError(t, err)
		assert.Equal(t, plaintext, opened)

		_, err = uc.Open(ctx, testSecret, rotated)
		assert.ErrorIs(t, err, apperrors.ErrAuthentication)
	})

	t.Run("rotation with a wrong old secret", func(t *testing.T) {
		rotated, err := uc.Rewrap(ctx, "nope", testNewSecret, record)
		assert.Nil(t, rotated)
		assert.ErrorIs(t, err, apperrors.ErrAuthentication)
	})
}

func TestEnvelopeUseCase_Seal(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ChaCha20", func(t *testing.T) {
		uc := newTestEnvelopeUseCase(t, cryptoService.NewSystemRandom(), cryptoDomain.ChaCha20)

		record, err := uc.Seal(ctx, testSecret, []byte("payload"))
		require.NoError(t, err)
		assert.Equal(t, cryptoDomain.ChaCha20, record.Algorithm)

		opened, err := uc.Open(ctx, testSecret, record)
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), opened)
	})

	t.Run("Success_EmptyAndLargePayloads", func(t *testing.T) {
		uc := newTestEnvelopeUseCase(t, cryptoService.NewSystemRandom(), cryptoDomain.AESGCM)

		for _, size := range []int{0, 1, 1 << 20} {
			plaintext := bytes.Repeat([]byte{0xA5}, size)

			record, err := uc.Seal(ctx, testSecret, plaintext)
			require.NoError(t, err)

			opened, err := uc.Open(ctx, testSecret, record)
			require.NoError(t, err)
			assert.Equal(t, size, len(opened))
			assert.True(t, bytes.Equal(plaintext, opened))
		}
	})

	t.Run("Success_FreshSaltAndNoncesPerSeal", func(t *testing.T) {
		uc := newTestEnvelopeUseCase(t, cryptoService.NewSystemRandom(), cryptoDomain.AESGCM)

		r1, err := uc.Seal(ctx, testSecret, []byte("same"))
		require.NoError(t, err)
		r2, err := uc.Seal(ctx, testSecret, []byte("same"))
		require.NoError(t, err)

		assert.NotEqual(t, r1.Salt, r2.Salt)
		assert.NotEqual(t, r1.Nonce, r2.Nonce)
		assert.NotEqual(t, r1.Ciphertext, r2.Ciphertext)
	})

	t.Run("Success_DeterministicWithSeededRandom", func(t *testing.T) {
		uc1 := newTestEnvelopeUseCase(t, testutil.NewSeededRandom(42), cryptoDomain.AESGCM)
		uc2 := newTestEnvelopeUseCase(t, testutil.NewSeededRandom(42), cryptoDomain.AESGCM)

		r1, err := uc1.Seal(ctx, testSecret, []byte("payload"))
		require.NoError(t, err)
		r2, err := uc2.Seal(ctx, testSecret, []byte("payload"))
		require.NoError(t, err)

		assert.Equal(t, r1, r2)
	})

	t.Run("Error_EmptySecret", func(t *testing.T) {
		uc := newTestEnvelopeUseCase(t, cryptoService.NewSystemRandom(), cryptoDomain.AESGCM)

		record, err := uc.Seal(ctx, "", []byte("payload"))
		assert.Nil(t, record)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_CancelledContext", func(t *testing.T) {
		kdf := cryptoServiceMocks.NewMockKeyDeriver(t)
		provider := cryptoServiceMocks.NewMockCryptoProvider(t)
		uc := NewEnvelopeUseCase(kdf, provider, cryptoService.NewSystemRandom(), cryptoDomain.AESGCM)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		record, err := uc.Seal(cancelled, testSecret, []byte("payload"))
		assert.Nil(t, record)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Error_KeyDeriverFailure", func(t *testing.T) {
		kdf := cryptoServiceMocks.NewMockKeyDeriver(t)
		provider := cryptoServiceMocks.NewMockCryptoProvider(t)
		uc := NewEnvelopeUseCase(kdf, provider, cryptoService.NewSystemRandom(), cryptoDomain.AESGCM)

		kdfErr := errors.New("kdf failure")
		kdf.EXPECT().
			Derive(testSecret, []byte(nil)).
			Return(nil, nil, kdfErr).
			Once()

		_, err := uc.Seal(ctx, testSecret, []byte("payload"))
		assert.ErrorIs(t, err, kdfErr)
	})

	// The seal path draws salt (16), data key (32), payload nonce (12) and
	// wrap nonce (12) in that order; each budget fails one of the draws.
	for _, budget := range []int{0, 16, 48, 60} {
		t.Run("Error_RandomnessUnavailable", func(t *testing.T) {
			uc := newTestEnvelopeUseCase(t, testutil.NewFailingRandom(budget), cryptoDomain.AESGCM)

			record, err := uc.Seal(ctx, testSecret, []byte("payload"))
			assert.Nil(t, record)
			assert.ErrorIs(t, err, apperrors.ErrRandomnessUnavailable, "budget %d", budget)
		})
	}
}

func TestEnvelopeUseCase_Open(t *testing.T) {
	ctx := context.Background()
	uc := newTestEnvelopeUseCase(t, cryptoService.NewSystemRandom(), cryptoDomain.AESGCM)

	record, err := uc.Seal(ctx, testSecret, []byte("top secret note"))
	require.NoError(t, err)

	tamper := map[string]func(r *cryptoDomain.EncryptedRecord){
		"ciphertext": func(r *cryptoDomain.EncryptedRecord) { r.Ciphertext[0] ^= 0x01 },
		"nonce":      func(r *cryptoDomain.EncryptedRecord) { r.Nonce[0] ^= 0x01 },
		"wrappedKey": func(r *cryptoDomain.EncryptedRecord) { r.WrappedKey[10] ^= 0x01 },
		"wrapNonce":  func(r *cryptoDomain.EncryptedRecord) { r.WrapNonce[11] ^= 0x01 },
		"tag":        func(r *cryptoDomain.EncryptedRecord) { r.Ciphertext[len(r.Ciphertext)-1] ^= 0x80 },
	}

	for field, mutate := range tamper {
		t.Run("Error_Tampered_"+field, func(t *testing.T) {
			tampered := &cryptoDomain.EncryptedRecord{
				Ciphertext: bytes.Clone(record.Ciphertext),
				Nonce:      bytes.Clone(record.Nonce),
				WrappedKey: bytes.Clone(record.WrappedKey),
				WrapNonce:  bytes.Clone(record.WrapNonce),
				Salt:       bytes.Clone(record.Salt),
				KeyVersion: record.KeyVersion,
				Algorithm:  record.Algorithm,
			}
			mutate(tampered)

			plaintext, err := uc.Open(ctx, testSecret, tampered)
			assert.Nil(t, plaintext)
			assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
		})
	}

	t.Run("Error_AlgorithmMismatch", func(t *testing.T) {
		mismatched := *record
		mismatched.Algorithm = cryptoDomain.ChaCha20

		_, err := uc.Open(ctx, testSecret, &mismatched)
		assert.ErrorIs(t, err, apperrors.ErrAuthentication)
	})

	t.Run("Error_InvalidSaltSize", func(t *testing.T) {
		short := *record
		short.Salt = record.Salt[:8]

		_, err := uc.Open(ctx, testSecret, &short)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidSaltSize)
	})

	t.Run("Error_NilSalt", func(t *testing.T) {
		kdf := cryptoServiceMocks.NewMockKeyDeriver(t)
		provider := cryptoServiceMocks.NewMockCryptoProvider(t)
		mocked := NewEnvelopeUseCase(kdf, provider, cryptoService.NewSystemRandom(), cryptoDomain.AESGCM)

		unsalted := *record
		unsalted.Salt = nil

		plaintext, err := mocked.Open(ctx, testSecret, &unsalted)
		assert.Nil(t, plaintext)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidSaltSize)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.NotErrorIs(t, err, apperrors.ErrAuthentication)
	})

	t.Run("Error_InvalidNonceSize", func(t *testing.T) {
		short := *record
		short.WrapNonce = record.WrapNonce[:4]

		_, err := uc.Open(ctx, testSecret, &short)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidNonceSize)
	})

	t.Run("Error_NilRecord", func(t *testing.T) {
		_, err := uc.Open(ctx, testSecret, nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidRecord)
	})

	t.Run("Success_UsesRecordSalt", func(t *testing.T) {
		kdf := cryptoServiceMocks.NewMockKeyDeriver(t)
		provider := cryptoServiceMocks.NewMockCryptoProvider(t)
		mocked := NewEnvelopeUseCase(kdf, provider, cryptoService.NewSystemRandom(), cryptoDomain.AESGCM)

		derivedErr := errors.New("stop here")
		kdf.EXPECT().
			Derive(testSecret, mock.MatchedBy(func(salt []byte) bool {
				return bytes.Equal(salt, record.Salt)
			})).
			Return(nil, nil, derivedErr).
			Once()

		_, err := mocked.Open(ctx, testSecret, record)
		assert.ErrorIs(t, err, derivedErr)
	})
}

func TestEnvelopeUseCase_Rewrap(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_SuccessiveRotations", func(t *testing.T) {
		uc := newTestEnvelopeUseCase(t, cryptoService.NewSystemRandom(), cryptoDomain.ChaCha20)

		record, err := uc.Seal(ctx, "v1", []byte("payload"))
		require.NoError(t, err)

		record, err = uc.Rewrap(ctx, "v1", "v2", record)
		require.NoError(t, err)
		record, err = uc.Rewrap(ctx, "v2", "v3", record)
		require.NoError(t, err)

		assert.Equal(t, uint(3), record.KeyVersion)
		assert.Equal(t, cryptoDomain.ChaCha20, record.Algorithm)

		opened, err := uc.Open(ctx, "v3", record)
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), opened)
	})

	t.Run("Error_NilRecord", func(t *testing.T) {
		uc := newTestEnvelopeUseCase(t, cryptoService.NewSystemRandom(), cryptoDomain.AESGCM)

		_, err := uc.Rewrap(ctx, "a", "b", nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidRecord)
	})

	t.Run("Error_NilSalt", func(t *testing.T) {
		uc := newTestEnvelopeUseCase(t, cryptoService.NewSystemRandom(), cryptoDomain.AESGCM)

		record, err := uc.Seal(ctx, testSecret, []byte("top secret note"))
		require.NoError(t, err)
		record.Salt = nil

		rewrapped, err := uc.Rewrap(ctx, testSecret, testNewSecret, record)
		assert.Nil(t, rewrapped)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidSaltSize)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_ShortSaltRejectedBeforeDerivation", func(t *testing.T) {
		kdf := cryptoServiceMocks.NewMockKeyDeriver(t)
		provider := cryptoServiceMocks.NewMockCryptoProvider(t)
		mocked := NewEnvelopeUseCase(kdf, provider, cryptoService.NewSystemRandom(), cryptoDomain.AESGCM)

		record := &cryptoDomain.EncryptedRecord{Salt: make([]byte, cryptoDomain.SaltSize-1)}

		_, err := mocked.Rewrap(ctx, testSecret, testNewSecret, record)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidSaltSize)
	})

	t.Run("Success_EmptyPayloadSurvivesCodec", func(t *testing.T) {
		uc := newTestEnvelopeUseCase(t, cryptoService.NewSystemRandom(), cryptoDomain.AESGCM)
		codec := cryptoService.NewBase64Codec()

		record, err := uc.Seal(ctx, testSecret, []byte{})
		require.NoError(t, err)

		decoded, err := codec.DecodeRecord(codec.EncodeRecord(record))
		require.NoError(t, err)
		assert.Equal(t, record, decoded)

		rewrapped, err := uc.Rewrap(ctx, testSecret, testNewSecret, decoded)
		require.NoError(t, err)

		opened, err := uc.Open(ctx, testNewSecret, rewrapped)
		require.NoError(t, err)
		assert.Empty(t, opened)
	})

	t.Run("Error_EmptyNewSecret", func(t *testing.T) {
		uc := newTestEnvelopeUseCase(t, cryptoService.NewSystemRandom(), cryptoDomain.AESGCM)

		record, err := uc.Seal(ctx, testSecret, []byte("payload"))
		require.NoError(t, err)

		_, err = uc.Rewrap(ctx, testSecret, "", record)
		assert.ErrorIs(t, err, cryptoDomain.ErrEmptySecret)
	})

	t.Run("Error_CancelledContext", func(t *testing.T) {
		kdf := cryptoServiceMocks.NewMockKeyDeriver(t)
		provider := cryptoServiceMocks.NewMockCryptoProvider(t)
		uc := NewEnvelopeUseCase(kdf, provider, cryptoService.NewSystemRandom(), cryptoDomain.AESGCM)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := uc.Rewrap(cancelled, "a", "b", &cryptoDomain.EncryptedRecord{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
