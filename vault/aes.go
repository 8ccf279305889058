package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

func gcmEncrypt(plaintext []byte, key []byte, additionalData []byte) (cipherText []byte, err error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	// Never use more than 2^32 random nonces with a given key because of the risk of a repeat.
	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// Prepend the nonce to the ciphertext.
	return aesgcm.Seal(nonce, nonce, plaintext, additionalData), nil
}

func gcmDecrypt(cipherText []byte, key []byte, additionalData []byte) (plainText []byte, err error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := aesgcm.NonceSize()
	if len(cipherText) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, actualCipherText := cipherText[:nonceSize], cipherText[nonceSize:]
	return aesgcm.Open(nil, nonce, actualCipherText, additionalData)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
