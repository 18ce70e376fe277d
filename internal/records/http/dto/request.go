// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	customValidation "github.com/allisson/sealbox/internal/validation"
)

// EnvelopeRequest carries an encoded record exactly as the client produced it.
// It is the body of both POST /v1/records and PUT /v1/records/:id.
type EnvelopeRequest struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
	WrappedKey string `json:"wrappedKey"`
	WrapNonce  string `json:"wrapNonce"`
	Salt       string `json:"salt"`
	KeyVersion uint   `json:"keyVersion"`
	Algorithm  string `json:"algorithm"`
}

// Validate checks field presence, encoding and decoded sizes.
func (r *EnvelopeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Ciphertext,
			validation.Required,
			customValidation.Base64,
			customValidation.DecodedLength(cryptoDomain.TagSize, 0),
		),
		validation.Field(&r.Nonce,
			validation.Required,
			customValidation.Base64,
			customValidation.DecodedLength(cryptoDomain.NonceSize, cryptoDomain.NonceSize),
		),
		validation.Field(&r.WrappedKey,
			validation.Required,
			customValidation.Base64,
			customValidation.DecodedLength(cryptoDomain.WrappedKeySize, cryptoDomain.WrappedKeySize),
		),
		validation.Field(&r.WrapNonce,
			validation.Required,
			customValidation.Base64,
			customValidation.DecodedLength(cryptoDomain.NonceSize, cryptoDomain.NonceSize),
		),
		validation.Field(&r.Salt,
			validation.Required,
			customValidation.Base64,
			customValidation.DecodedLength(cryptoDomain.SaltSize, cryptoDomain.SaltSize),
		),
		validation.Field(&r.Algorithm, customValidation.Algorithm),
	)
}

// ToEncodedRecord converts the request into the domain envelope.
func (r *EnvelopeRequest) ToEncodedRecord() cryptoDomain.EncodedRecord {
	return cryptoDomain.EncodedRecord{
		Ciphertext: r.Ciphertext,
		Nonce:      r.Nonce,
		WrappedKey: r.WrappedKey,
		WrapNonce:  r.WrapNonce,
		Salt:       r.Salt,
		KeyVersion: r.KeyVersion,
		Algorithm:  r.Algorithm,
	}
}
