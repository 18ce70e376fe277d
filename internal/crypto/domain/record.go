package domain

// EncryptedRecord is the unit handed to the persistence collaborator, with
// every field as raw bytes. Ciphertext and Nonce never change after sealing;
// rotation replaces WrappedKey, WrapNonce and Salt and bumps KeyVersion.
type EncryptedRecord struct {
	Ciphertext []byte    // Payload sealed under the DataKey, tag appended
	Nonce      []byte    // Nonce used for the payload
	WrappedKey []byte    // DataKey sealed under the MasterKey, tag appended
	WrapNonce  []byte    // Nonce used for the wrapped DataKey
	Salt       []byte    // KDF salt binding the secret to the MasterKey
	KeyVersion uint      // Incremented on every rotation
	Algorithm  Algorithm // AEAD algorithm for both payload and key wrap
}

// EncodedRecord is the text form of EncryptedRecord. Binary fields are standard
// base64. The JSON shape is stable; algorithm is omitted for the AES-GCM default.
type EncodedRecord struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
	WrappedKey string `json:"wrappedKey"`
	WrapNonce  string `json:"wrapNonce"`
	Salt       string `json:"salt"`
	KeyVersion uint   `json:"keyVersion,omitempty"`
	Algorithm  string `json:"algorithm,omitempty"`
}
