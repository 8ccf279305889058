// Package vault seals share documents with a password so they can be stored
// at rest. The envelope format follows the usual keystore layout: scrypt
// derives an AES-256-GCM key and the envelope id is bound as additional data.
package vault

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/scrypt"
)

const (
	keyHeaderKDF = "scrypt"
	cipherName   = "aes-256-gcm"
	version      = 1
	dklen        = 32
)

// ScryptN is the N parameter of Scrypt encryption algorithm, using 2^18 per recommendation for standard security.
// For testing, a smaller value can be used to speed up execution.
var ScryptN = 1 << 18

// ScryptP is the P parameter of Scrypt encryption algorithm, using 1 per recommendation.
var ScryptP = 1

// MaxScryptN is the largest N Open accepts from an envelope. ScryptN is
// accepted too when it is larger.
var MaxScryptN = 1 << 20

const (
	scryptR    = 8
	maxScryptP = 16
)

var (
	// ErrInvalidPassword is returned when the password for decryption is incorrect.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrNotSealed is returned by Open when the input is not an envelope.
	ErrNotSealed = errors.New("not a sealed document")
)

// KDFParamsError reports an envelope whose scrypt parameters are outside
// the range Open will run.
type KDFParamsError struct {
	Param string
	Value int
}

func (e *KDFParamsError) Error() string {
	return fmt.Sprintf("%v: unsupported scrypt %s %d", ErrNotSealed, e.Param, e.Value)
}

func (e *KDFParamsError) Unwrap() error { return ErrNotSealed }

// Envelope is the top-level structure of a sealed document.
type Envelope struct {
	ID      string     `json:"id"`
	Version int        `json:"version"`
	Crypto  CryptoJSON `json:"crypto"`
}

// CryptoJSON contains the cryptographic parameters.
type CryptoJSON struct {
	Cipher     string           `json:"cipher"`
	CipherText []byte           `json:"ciphertext"`
	KDF        string           `json:"kdf"`
	KDFParams  ScryptParamsJSON `json:"kdfparams"`
}

// ScryptParamsJSON contains the parameters for the scrypt KDF.
type ScryptParamsJSON struct {
	N     int    `json:"n"`
	R     int    `json:"r"`
	P     int    `json:"p"`
	Dklen int    `json:"dklen"`
	Salt  []byte `json:"salt"`
}

// Seal encrypts plain under password and returns the JSON envelope.
func Seal(plain []byte, password string) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("empty password")
	}

	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}

	derivedKey, err := scrypt.Key([]byte(password), salt, ScryptN, scryptR, ScryptP, dklen)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	cipherText, err := gcmEncrypt(plain, derivedKey, []byte(id))
	if err != nil {
		return nil, err
	}

	envelope := &Envelope{
		ID:      id,
		Version: version,
		Crypto: CryptoJSON{
			Cipher:     cipherName,
			CipherText: cipherText,
			KDF:        keyHeaderKDF,
			KDFParams: ScryptParamsJSON{
				N:     ScryptN,
				R:     scryptR,
				P:     ScryptP,
				Dklen: dklen,
				Salt:  salt,
			},
		},
	}

	return json.MarshalIndent(envelope, "", "  ")
}

// IsSealed reports whether data looks like an envelope produced by Seal.
func IsSealed(data []byte) bool {
	_, err := parse(data)
	return err == nil
}

// Open decrypts an envelope using password.
func Open(data []byte, password string) ([]byte, error) {
	envelope, err := parse(data)
	if err != nil {
		return nil, err
	}

	if envelope.Crypto.KDF != keyHeaderKDF {
		return nil, fmt.Errorf("unsupported KDF: %s", envelope.Crypto.KDF)
	}
	if envelope.Crypto.Cipher != cipherName {
		return nil, fmt.Errorf("unsupported cipher: %s", envelope.Crypto.Cipher)
	}

	// Re-derive the key from the password and stored salt
	kdfParams := envelope.Crypto.KDFParams
	if err := kdfParams.check(); err != nil {
		return nil, err
	}
	derivedKey, err := scrypt.Key([]byte(password), kdfParams.Salt, kdfParams.N, kdfParams.R, kdfParams.P, kdfParams.Dklen)
	if err != nil {
		return nil, err
	}

	// A wrong password derives a wrong key and GCM authentication fails.
	plain, err := gcmDecrypt(envelope.Crypto.CipherText, derivedKey, []byte(envelope.ID))
	if err != nil {
		return nil, ErrInvalidPassword
	}
	return plain, nil
}

func parse(data []byte) (*Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSealed, err)
	}
	if envelope.Version != version || envelope.ID == "" || len(envelope.Crypto.CipherText) == 0 {
		return nil, ErrNotSealed
	}
	if _, err := uuid.Parse(envelope.ID); err != nil {
		return nil, fmt.Errorf("%w: bad id: %v", ErrNotSealed, err)
	}
	return &envelope, nil
}

// check bounds the work and memory scrypt.Key is asked for.
func (p ScryptParamsJSON) check() error {
	maxN := MaxScryptN
	if ScryptN > maxN {
		maxN = ScryptN
	}
	switch {
	case p.N <= 1 || p.N > maxN || p.N&(p.N-1) != 0:
		return &KDFParamsError{Param: "n", Value: p.N}
	case p.R != scryptR:
		return &KDFParamsError{Param: "r", Value: p.R}
	case p.P < 1 || p.P > maxScryptP:
		return &KDFParamsError{Param: "p", Value: p.P}
	case p.Dklen != dklen:
		return &KDFParamsError{Param: "dklen", Value: p.Dklen}
	}
	return nil
}
