package service

import (
	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
)

// KeyDerivationService implements KeyDeriver with a fixed work factor.
//
// The work factor is not stored in records, so every process that reads a
// record must be configured with the same iteration count that sealed it.
type KeyDerivationService struct {
	provider   CryptoProvider
	random     RandomSource
	iterations int
}

// NewKeyDerivation creates a new KeyDerivationService. Returns ErrInvalidIterations
// when iterations is below MinKDFIterations.
func NewKeyDerivation(
	provider CryptoProvider,
	random RandomSource,
	iterations int,
) (*KeyDerivationService, error) {
	if iterations < cryptoDomain.MinKDFIterations {
		return nil, cryptoDomain.ErrInvalidIterations
	}
	return &KeyDerivationService{
		provider:   provider,
		random:     random,
		iterations: iterations,
	}, nil
}

// Iterations returns the configured work factor.
func (k *KeyDerivationService) Iterations() int {
	return k.iterations
}

// Derive derives a MasterKey from secret and salt. When salt is nil a fresh
// SaltSize salt is generated and returned; otherwise salt is returned unchanged.
// Derivation is deterministic: the same secret, salt and iteration count always
// produce the same key.
func (k *KeyDerivationService) Derive(secret string, salt []byte) (*cryptoDomain.MasterKey, []byte, error) {
	if secret == "" {
		return nil, nil, cryptoDomain.ErrEmptySecret
	}

	if salt == nil {
		generated, err := randomBytes(k.random, cryptoDomain.SaltSize)
		if err != nil {
			return nil, nil, err
		}
		salt = generated
	} else if len(salt) != cryptoDomain.SaltSize {
		return nil, nil, cryptoDomain.ErrInvalidSaltSize
	}

	secretBytes := []byte(secret)
	defer cryptoDomain.Zero(secretBytes)

	raw, err := k.provider.DeriveKey(secretBytes, salt, k.iterations, cryptoDomain.KeySize)
	if err != nil {
		return nil, nil, err
	}

	masterKey, err := cryptoDomain.NewMasterKey(raw)
	if err != nil {
		return nil, nil, err
	}

	return masterKey, salt, nil
}
