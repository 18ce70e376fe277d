package domain

// Algorithm represents the AEAD construction used to seal payloads and wrap data keys.
//
// Both supported algorithms provide Authenticated Encryption with Associated Data,
// so confidentiality, integrity and authenticity come from a single primitive.
//
// Algorithm selection guidelines:
//   - Use AESGCM on CPUs with AES-NI hardware acceleration (the default)
//   - Use ChaCha20 on mobile devices or systems without AES-NI
type Algorithm string

const (
	// AESGCM represents AES-256-GCM: 256-bit key, 12-byte nonce, 16-byte tag.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents ChaCha20-Poly1305: 256-bit key, 12-byte nonce, 16-byte tag.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// Sizes, in bytes, of every binary field that crosses the persistence boundary.
const (
	// KeySize is the size of master keys and data keys (256 bits).
	KeySize = 32

	// SaltSize is the size of the key derivation salt.
	SaltSize = 16

	// NonceSize is the AEAD nonce size for both supported algorithms.
	NonceSize = 12

	// TagSize is the AEAD authentication tag appended to every ciphertext.
	TagSize = 16

	// WrappedKeySize is the size of a data key sealed under a master key.
	WrappedKeySize = KeySize + TagSize
)

const (
	// MinKDFIterations is the lowest PBKDF2 work factor accepted.
	MinKDFIterations = 100_000

	// DefaultKDFIterations is the PBKDF2 work factor used when none is configured.
	// Changing it makes existing records undecryptable, since the record format
	// does not carry the iteration count.
	DefaultKDFIterations = MinKDFIterations

	// InitialKeyVersion is the key version assigned to a freshly sealed record.
	InitialKeyVersion uint = 1
)

// ParseAlgorithm converts a configuration or wire string into an Algorithm.
// An empty string selects the default AESGCM.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case "", AESGCM:
		return AESGCM, nil
	case ChaCha20:
		return ChaCha20, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
