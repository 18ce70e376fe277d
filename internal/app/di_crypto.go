package app

import (
	"fmt"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	cryptoService "github.com/allisson/sealbox/internal/crypto/service"
	cryptoUseCase "github.com/allisson/sealbox/internal/crypto/usecase"
)

// RandomSource returns the process-wide secure random source.
func (c *Container) RandomSource() cryptoService.RandomSource {
	c.randomSourceInit.Do(func() {
		c.randomSource = cryptoService.NewSystemRandom()
	})
	return c.randomSource
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager(c.RandomSource())
	})
	return c.aeadManager
}

// CryptoProvider returns the KDF and cipher factory.
func (c *Container) CryptoProvider() cryptoService.CryptoProvider {
	c.cryptoProvInit.Do(func() {
		c.cryptoProv = cryptoService.NewCryptoProvider(c.AEADManager())
	})
	return c.cryptoProv
}

// Codec returns the base64 record codec.
func (c *Container) Codec() cryptoService.Codec {
	c.codecInit.Do(func() {
		c.codec = cryptoService.NewBase64Codec()
	})
	return c.codec
}

// KeyDeriver returns the PBKDF2 key derivation service configured with KDF_ITERATIONS.
func (c *Container) KeyDeriver() (cryptoService.KeyDeriver, error) {
	var err error
	c.keyDeriverInit.Do(func() {
		c.keyDeriver, err = c.initKeyDeriver()
		if err != nil {
			c.setInitError("keyDeriver", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("keyDeriver"); storedErr != nil {
		return nil, storedErr
	}
	return c.keyDeriver, nil
}

// EnvelopeUseCase returns the client-side envelope use case.
func (c *Container) EnvelopeUseCase() (cryptoUseCase.EnvelopeUseCase, error) {
	var err error
	c.envelopeUseCaseInit.Do(func() {
		c.envelopeUseCase, err = c.initEnvelopeUseCase()
		if err != nil {
			c.setInitError("envelopeUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("envelopeUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.envelopeUseCase, nil
}

// initKeyDeriver creates the key derivation service.
func (c *Container) initKeyDeriver() (cryptoService.KeyDeriver, error) {
	keyDeriver, err := cryptoService.NewKeyDerivation(
		c.CryptoProvider(),
		c.RandomSource(),
		c.config.KDFIterations,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create key deriver: %w", err)
	}
	return keyDeriver, nil
}

// initEnvelopeUseCase creates the envelope use case with all its dependencies.
func (c *Container) initEnvelopeUseCase() (cryptoUseCase.EnvelopeUseCase, error) {
	algorithm, err := cryptoDomain.ParseAlgorithm(c.config.CipherAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("invalid cipher algorithm %q: %w", c.config.CipherAlgorithm, err)
	}

	keyDeriver, err := c.KeyDeriver()
	if err != nil {
		return nil, err
	}

	baseUseCase := cryptoUseCase.NewEnvelopeUseCase(keyDeriver, c.CryptoProvider(), c.RandomSource(), algorithm)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for envelope use case: %w", err)
		}
		return cryptoUseCase.NewEnvelopeUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
