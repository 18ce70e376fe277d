package validation

import (
	"regexp"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	apperrors "github.com/allisson/sealbox/internal/errors"
)

var envNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Algorithm validates an AEAD algorithm name. Empty is accepted and means AES-GCM.
var Algorithm = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_algorithm_type", "must be a string")
	}
	if _, err := cryptoDomain.ParseAlgorithm(s); err != nil {
		return validation.NewError(
			"validation_algorithm",
			"must be one of: "+string(cryptoDomain.AESGCM)+", "+string(cryptoDomain.ChaCha20),
		)
	}
	return nil
})

// EnvName validates an environment variable name such as SEALBOX_SECRET.
var EnvName = validation.Match(envNameRegex).
	ErrorObject(validation.NewError("validation_env_name", "must be a valid environment variable name"))
