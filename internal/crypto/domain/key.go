// Package domain defines the core cryptographic models for client-side envelope encryption.
//
// A low-entropy secret and a salt derive a MasterKey. Each record gets a random
// DataKey that seals the payload; the DataKey is then wrapped under the MasterKey.
// Rotating the MasterKey re-wraps the small DataKey and never touches the payload.
//
// Key material lives in scoped values that must be destroyed on every exit path:
//
//	key, salt, err := kdf.Derive(secret, nil)
//	if err != nil {
//	    return err
//	}
//	defer key.Destroy()
//
// Destroy overwrites the buffer in place. Go is garbage collected, so copies the
// runtime or compiler makes behind our back cannot be wiped; guaranteed erasure
// needs a runtime with explicit memory ownership.
package domain

// SymmetricKey is a 256-bit key usable by the AEAD cipher.
// Both MasterKey and DataKey satisfy it.
type SymmetricKey interface {
	// Use lends the raw key bytes to fn. fn must not retain the slice.
	Use(fn func(raw []byte) error) error

	// Destroy zeroes the key material. It is safe to call more than once.
	Destroy()
}

// keyMaterial owns a raw key buffer and wipes it on Destroy. Keys are scoped
// to a single operation and are not meant to be shared between goroutines.
type keyMaterial struct {
	raw       []byte
	destroyed bool
}

// Use lends the raw key bytes to fn.
func (k *keyMaterial) Use(fn func(raw []byte) error) error {
	if k.destroyed {
		return ErrKeyDestroyed
	}
	return fn(k.raw)
}

// Destroy zeroes the key material.
func (k *keyMaterial) Destroy() {
	Zero(k.raw)
	k.raw = nil
	k.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (k *keyMaterial) Destroyed() bool {
	return k.destroyed
}

func checkKeySize(raw []byte) error {
	if len(raw) != KeySize {
		Zero(raw)
		return ErrInvalidKeySize
	}
	return nil
}

// MasterKey is derived from a secret and a salt. It only ever acts as the
// wrapping key: the envelope API accepts it for wrap/unwrap and never exports it.
type MasterKey struct {
	keyMaterial
}

// NewMasterKey takes ownership of raw (no copy). raw is zeroed when it has the wrong size.
func NewMasterKey(raw []byte) (*MasterKey, error) {
	if err := checkKeySize(raw); err != nil {
		return nil, err
	}
	return &MasterKey{keyMaterial: keyMaterial{raw: raw}}, nil
}

// DataKey is the per-record key that seals the payload. It exists in plaintext
// only until it is wrapped under a MasterKey.
type DataKey struct {
	keyMaterial
}

// NewDataKey takes ownership of raw (no copy). raw is zeroed when it has the wrong size.
func NewDataKey(raw []byte) (*DataKey, error) {
	if err := checkKeySize(raw); err != nil {
		return nil, err
	}
	return &DataKey{keyMaterial: keyMaterial{raw: raw}}, nil
}
