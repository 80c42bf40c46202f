package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver stretches a low-entropy password and a random salt into a
// fixed-size symmetric key.
//
// Implementations must be deterministic: the same password and salt always
// produce the same key.
type KeyDeriver interface {
	// DeriveKey returns a KeySize-byte key for password and salt.
	DeriveKey(password, salt []byte) []byte
}

// EnvelopeCipher seals and opens self-contained encrypted envelopes.
//
// Envelope layout: salt (16 bytes) ‖ nonce (12 bytes) ‖ AES-GCM ciphertext.
// Every call to Seal draws a fresh salt and nonce, so the key is derived per
// envelope and two seals of the same input never produce the same bytes.
type EnvelopeCipher interface {
	// Seal encrypts plaintext under a key derived from password.
	// Fails only with ErrRandomnessUnavailable or an internal cipher error.
	Seal(plaintext, password []byte) ([]byte, error)

	// Open decrypts an envelope produced by Seal.
	// Returns ErrMalformedEnvelope if the input is shorter than
	// MinEnvelopeSize and ErrAuthenticationFailure if the password is wrong
	// or the envelope was tampered with (the two cases are indistinguishable).
	Open(envelope, password []byte) ([]byte, error)
}
