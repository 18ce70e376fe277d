package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	"github.com/allisson/sealbox/internal/crypto/service"
	cryptoServiceMocks "github.com/allisson/sealbox/internal/crypto/service/mocks"
	apperrors "github.com/allisson/sealbox/internal/errors"
	"github.com/allisson/sealbox/internal/testutil"
)

func newRealKDF(t *testing.T) *service.KeyDerivationService {
	t.Helper()
	random := service.NewSystemRandom()
	kdf, err := service.NewKeyDerivation(
		service.NewCryptoProvider(service.NewAEADManager(random)),
		random,
		cryptoDomain.DefaultKDFIterations,
	)
	require.NoError(t, err)
	return kdf
}

func rawKey(t *testing.T, key cryptoDomain.SymmetricKey) []byte {
	t.Helper()
	var out []byte
	require.NoError(t, key.Use(func(raw []byte) error {
		out = append([]byte(nil), raw...)
		return nil
	}))
	return out
}

func TestNewKeyDerivation(t *testing.T) {
	provider := cryptoServiceMocks.NewMockCryptoProvider(t)

	t.Run("Success", func(t *testing.T) {
		kdf, err := service.NewKeyDerivation(provider, service.NewSystemRandom(), 200_000)
		require.NoError(t, err)
		assert.Equal(t, 200_000, kdf.Iterations())
	})

	t.Run("Error_IterationsBelowMinimum", func(t *testing.T) {
		kdf, err := service.NewKeyDerivation(provider, service.NewSystemRandom(), 1000)
		assert.Nil(t, kdf)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidIterations)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestKeyDerivationService_Derive(t *testing.T) {
	t.Run("Success_GeneratesSalt", func(t *testing.T) {
		kdf := newRealKDF(t)

		key, salt, err := kdf.Derive("correct horse battery staple", nil)
		require.NoError(t, err)
		defer key.Destroy()

		assert.Len(t, salt, cryptoDomain.SaltSize)
		assert.Len(t, rawKey(t, key), cryptoDomain.KeySize)
	})

	t.Run("Success_Deterministic", func(t *testing.T) {
		kdf := newRealKDF(t)
		salt := make([]byte, cryptoDomain.SaltSize)

		key1, salt1, err := kdf.Derive("secret", salt)
		require.NoError(t, err)
		key2, _, err := kdf.Derive("secret", salt)
		require.NoError(t, err)

		assert.Equal(t, salt, salt1)
		assert.Equal(t, rawKey(t, key1), rawKey(t, key2))
	})

	t.Run("Success_DifferentSecretOrSaltDiffers", func(t *testing.T) {
		kdf := newRealKDF(t)
		salt := make([]byte, cryptoDomain.SaltSize)
		otherSalt := make([]byte, cryptoDomain.SaltSize)
		otherSalt[0] = 1

		base, _, err := kdf.Derive("secret", salt)
		require.NoError(t, err)
		otherSecret, _, err := kdf.Derive("secret2", salt)
		require.NoError(t, err)
		otherSaltKey, _, err := kdf.Derive("secret", otherSalt)
		require.NoError(t, err)

		assert.NotEqual(t, rawKey(t, base), rawKey(t, otherSecret))
		assert.NotEqual(t, rawKey(t, base), rawKey(t, otherSaltKey))
	})

	t.Run("Success_PassesConfiguredParameters", func(t *testing.T) {
		provider := cryptoServiceMocks.NewMockCryptoProvider(t)
		kdf, err := service.NewKeyDerivation(provider, testutil.NewSeededRandom(1), 150_000)
		require.NoError(t, err)

		salt := make([]byte, cryptoDomain.SaltSize)
		provider.EXPECT().
			DeriveKey([]byte("secret"), salt, 150_000, cryptoDomain.KeySize).
			Return(make([]byte, cryptoDomain.KeySize), nil).
			Once()

		key, gotSalt, err := kdf.Derive("secret", salt)
		require.NoError(t, err)
		assert.NotNil(t, key)
		assert.Equal(t, salt, gotSalt)
	})

	t.Run("Error_EmptySecret", func(t *testing.T) {
		provider := cryptoServiceMocks.NewMockCryptoProvider(t)
		kdf, err := service.NewKeyDerivation(provider, service.NewSystemRandom(), cryptoDomain.MinKDFIterations)
		require.NoError(t, err)

		key, salt, err := kdf.Derive("", nil)
		assert.Nil(t, key)
		assert.Nil(t, salt)
		assert.ErrorIs(t, err, cryptoDomain.ErrEmptySecret)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_InvalidSaltSize", func(t *testing.T) {
		provider := cryptoServiceMocks.NewMockCryptoProvider(t)
		kdf, err := service.NewKeyDerivation(provider, service.NewSystemRandom(), cryptoDomain.MinKDFIterations)
		require.NoError(t, err)

		for _, size := range []int{0, 8, 15, 17, 32} {
			_, _, err := kdf.Derive("secret", make([]byte, size))
			assert.ErrorIs(t, err, cryptoDomain.ErrInvalidSaltSize, "salt size %d", size)
		}
	})

	t.Run("Error_RandomnessUnavailable", func(t *testing.T) {
		provider := cryptoServiceMocks.NewMockCryptoProvider(t)
		kdf, err := service.NewKeyDerivation(provider, testutil.NewFailingRandom(0), cryptoDomain.MinKDFIterations)
		require.NoError(t, err)

		_, _, err = kdf.Derive("secret", nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrRandomnessUnavailable)
		assert.ErrorIs(t, err, apperrors.ErrRandomnessUnavailable)
	})

	t.Run("Error_ProviderFailure", func(t *testing.T) {
		provider := cryptoServiceMocks.NewMockCryptoProvider(t)
		kdf, err := service.NewKeyDerivation(provider, service.NewSystemRandom(), cryptoDomain.MinKDFIterations)
		require.NoError(t, err)

		providerErr := errors.New("provider failure")
		provider.EXPECT().
			DeriveKey(mock.Anything, mock.Anything, cryptoDomain.MinKDFIterations, cryptoDomain.KeySize).
			Return(nil, providerErr).
			Once()

		_, _, err = kdf.Derive("secret", nil)
		assert.ErrorIs(t, err, providerErr)
	})
}
