package service

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
)

// CryptoProviderService implements CryptoProvider with PBKDF2-HMAC-SHA256 for key derivation
// and the AEADManager for ciphers.
type CryptoProviderService struct {
	aeadManager AEADManager
}

// NewCryptoProvider creates a new CryptoProviderService.
func NewCryptoProvider(aeadManager AEADManager) *CryptoProviderService {
	return &CryptoProviderService{aeadManager: aeadManager}
}

// DeriveKey runs PBKDF2-HMAC-SHA256. Iterations below MinKDFIterations are rejected.
func (p *CryptoProviderService) DeriveKey(secret, salt []byte, iterations, keyLen int) ([]byte, error) {
	if iterations < cryptoDomain.MinKDFIterations {
		return nil, cryptoDomain.ErrInvalidIterations
	}
	if keyLen <= 0 {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	return pbkdf2.Key(secret, salt, iterations, keyLen, sha256.New), nil
}

// CreateCipher delegates to the AEADManager.
func (p *CryptoProviderService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	return p.aeadManager.CreateCipher(key, alg)
}
