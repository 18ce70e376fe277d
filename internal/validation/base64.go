// Package validation provides custom validation rules for the application.
package validation

import (
	"encoding/base64"
	"strings"

	validation "github.com/jellydator/validation"
)

// Base64 validates that a string is strict, padded standard base64.
// Line breaks are rejected even though the stdlib decoder would skip them.
var Base64 = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_base64_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if strings.ContainsAny(s, "\r\n") {
		return validation.NewError("validation_base64", "must be valid base64-encoded data")
	}
	if _, err := base64.StdEncoding.Strict().DecodeString(s); err != nil {
		return validation.NewError("validation_base64", "must be valid base64-encoded data")
	}
	return nil
})

// DecodedLength validates that a base64 string decodes to between min and max
// bytes. A max of 0 means no upper bound. Malformed input is left to Base64.
func DecodedLength(min, max int) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, ok := value.(string)
		if !ok || s == "" {
			return nil
		}
		b, err := base64.StdEncoding.Strict().DecodeString(s)
		if err != nil {
			return nil
		}
		if len(b) < min || (max > 0 && len(b) > max) {
			if min == max {
				return validation.NewError("validation_decoded_length", "must decode to exactly {{.min}} bytes").
					SetParams(map[string]interface{}{"min": min})
			}
			return validation.NewError("validation_decoded_length", "must decode to at least {{.min}} bytes").
				SetParams(map[string]interface{}{"min": min})
		}
		return nil
	})
}
