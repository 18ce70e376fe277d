package usecase

import (
	"bytes"
	"context"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	cryptoService "github.com/allisson/sealbox/internal/crypto/service"
)

type envelopeUseCase struct {
	keyDeriver cryptoService.KeyDeriver
	provider   cryptoService.CryptoProvider
	random     cryptoService.RandomSource
	algorithm  cryptoDomain.Algorithm
}

// suite returns the cipher and envelope services bound to alg. Records carry
// their own algorithm, so Open and Rewrap follow the record, not the default.
func (e *envelopeUseCase) suite(alg cryptoDomain.Algorithm) (cryptoService.SymmetricCipher, cryptoService.Envelope) {
	if alg == "" {
		alg = cryptoDomain.AESGCM
	}
	cipher := cryptoService.NewCipher(e.provider, alg)
	return cipher, cryptoService.NewEnvelope(cipher, e.random)
}

// Seal encrypts plaintext and returns a new record at InitialKeyVersion.
func (e *envelopeUseCase) Seal(
	ctx context.Context,
	secret string,
	plaintext []byte,
) (*cryptoDomain.EncryptedRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	masterKey, salt, err := e.keyDeriver.Derive(secret, nil)
	if err != nil {
		return nil, err
	}
	defer masterKey.Destroy()

	cipher, envelope := e.suite(e.algorithm)

	dataKey, err := envelope.GenerateDataKey()
	if err != nil {
		return nil, err
	}
	defer dataKey.Destroy()

	ciphertext, nonce, err := cipher.Encrypt(plaintext, dataKey)
	if err != nil {
		return nil, err
	}

	wrappedKey, wrapNonce, err := envelope.Wrap(dataKey, masterKey)
	if err != nil {
		return nil, err
	}

	return &cryptoDomain.EncryptedRecord{
		Ciphertext: ciphertext,
		Nonce:      nonce,
		WrappedKey: wrappedKey,
		WrapNonce:  wrapNonce,
		Salt:       salt,
		KeyVersion: cryptoDomain.InitialKeyVersion,
		Algorithm:  e.algorithm,
	}, nil
}

// Open decrypts the record payload.
func (e *envelopeUseCase) Open(
	ctx context.Context,
	secret string,
	record *cryptoDomain.EncryptedRecord,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkRecord(record); err != nil {
		return nil, err
	}

	masterKey, _, err := e.keyDeriver.Derive(secret, record.Salt)
	if err != nil {
		return nil, err
	}
	defer masterKey.Destroy()

	cipher, envelope := e.suite(record.Algorithm)

	dataKey, err := envelope.Unwrap(record.WrappedKey, record.WrapNonce, masterKey)
	if err != nil {
		return nil, err
	}
	defer dataKey.Destroy()

	return cipher.Decrypt(record.Ciphertext, record.Nonce, dataKey)
}

// Rewrap re-wraps the record's DataKey under newSecret.
func (e *envelopeUseCase) Rewrap(
	ctx context.Context,
	oldSecret, newSecret string,
	record *cryptoDomain.EncryptedRecord,
) (*cryptoDomain.EncryptedRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkRecord(record); err != nil {
		return nil, err
	}

	oldKey, _, err := e.keyDeriver.Derive(oldSecret, record.Salt)
	if err != nil {
		return nil, err
	}
	defer oldKey.Destroy()

	newKey, newSalt, err := e.keyDeriver.Derive(newSecret, nil)
	if err != nil {
		return nil, err
	}
	defer newKey.Destroy()

	_, envelope := e.suite(record.Algorithm)

	wrappedKey, wrapNonce, err := envelope.Rewrap(record.WrappedKey, record.WrapNonce, oldKey, newKey)
	if err != nil {
		return nil, err
	}

	keyVersion := record.KeyVersion
	if keyVersion == 0 {
		keyVersion = cryptoDomain.InitialKeyVersion
	}

	return &cryptoDomain.EncryptedRecord{
		Ciphertext: bytes.Clone(record.Ciphertext),
		Nonce:      bytes.Clone(record.Nonce),
		WrappedKey: wrappedKey,
		WrapNonce:  wrapNonce,
		Salt:       newSalt,
		KeyVersion: keyVersion + 1,
		Algorithm:  record.Algorithm,
	}, nil
}

// NewEnvelopeUseCase creates a new EnvelopeUseCase. New records are sealed with algorithm.
func NewEnvelopeUseCase(
	keyDeriver cryptoService.KeyDeriver,
	provider cryptoService.CryptoProvider,
	random cryptoService.RandomSource,
	algorithm cryptoDomain.Algorithm,
) EnvelopeUseCase {
	return &envelopeUseCase{
		keyDeriver: keyDeriver,
		provider:   provider,
		random:     random,
		algorithm:  algorithm,
	}
}

// checkRecord rejects records that cannot be opened before any key is derived.
// A nil salt would otherwise make the deriver generate a fresh one.
func checkRecord(record *cryptoDomain.EncryptedRecord) error {
	if record == nil {
		return cryptoDomain.ErrInvalidRecord
	}
	if len(record.Salt) != cryptoDomain.SaltSize {
		return cryptoDomain.ErrInvalidSaltSize
	}
	return nil
}
