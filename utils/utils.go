package utils

import (
	"encoding/hex"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// Sha3Hash converts a message to a hash value using SHA3-256.
func Sha3Hash(message []byte) []byte {
	sum := sha3.Sum256(message)
	return sum[:]
}

// Fingerprint returns the hex SHA3-256 digest of the big-endian bytes of n.
// It identifies a recovered secret without printing it.
func Fingerprint(n *big.Int) string {
	return hex.EncodeToString(Sha3Hash(n.Bytes()))
}
