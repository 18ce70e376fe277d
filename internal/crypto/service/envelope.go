package service

import (
	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
)

// EnvelopeService implements Envelope. The data key and the payload always
// share the cipher's algorithm.
type EnvelopeService struct {
	cipher SymmetricCipher
	random RandomSource
}

// NewEnvelope creates a new EnvelopeService.
func NewEnvelope(cipher SymmetricCipher, random RandomSource) *EnvelopeService {
	return &EnvelopeService{cipher: cipher, random: random}
}

// GenerateDataKey returns a fresh random 256-bit DataKey.
func (e *EnvelopeService) GenerateDataKey() (*cryptoDomain.DataKey, error) {
	raw, err := randomBytes(e.random, cryptoDomain.KeySize)
	if err != nil {
		return nil, err
	}
	return cryptoDomain.NewDataKey(raw)
}

// Wrap seals the DataKey under masterKey. The result is WrappedKeySize bytes.
func (e *EnvelopeService) Wrap(
	dataKey *cryptoDomain.DataKey,
	masterKey *cryptoDomain.MasterKey,
) (wrapped, nonce []byte, err error) {
	if dataKey == nil || masterKey == nil {
		return nil, nil, cryptoDomain.ErrInvalidKeySize
	}

	err = dataKey.Use(func(raw []byte) error {
		wrapped, nonce, err = e.cipher.Encrypt(raw, masterKey)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return wrapped, nonce, nil
}

// Unwrap recovers the DataKey sealed under masterKey. A wrong master key or a
// tampered wrapped key yields ErrDecryptionFailed.
func (e *EnvelopeService) Unwrap(
	wrapped, nonce []byte,
	masterKey *cryptoDomain.MasterKey,
) (*cryptoDomain.DataKey, error) {
	if masterKey == nil {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	raw, err := e.cipher.Decrypt(wrapped, nonce, masterKey)
	if err != nil {
		return nil, err
	}

	return cryptoDomain.NewDataKey(raw)
}

// Rewrap unwraps with oldKey and wraps again with newKey under a fresh nonce.
// The DataKey never leaves this call and is destroyed before it returns.
func (e *EnvelopeService) Rewrap(
	wrapped, nonce []byte,
	oldKey, newKey *cryptoDomain.MasterKey,
) (newWrapped, newNonce []byte, err error) {
	dataKey, err := e.Unwrap(wrapped, nonce, oldKey)
	if err != nil {
		return nil, nil, err
	}
	defer dataKey.Destroy()

	return e.Wrap(dataKey, newKey)
}
