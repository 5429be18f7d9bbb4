// Package id generates the numeric entity identifiers used across the
// tracker. Users, tickets, comments and assignments all share the same
// 15-digit decimal ID space.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// digits excludes zero so identifiers never carry a leading zero
	// regardless of position.
	digits = "123456789"

	// Length is the fixed length of every entity identifier.
	Length = 15
)

// Generate creates a random 15-digit numeric ID. Each digit is drawn
// independently from crypto/rand.
func Generate() (string, error) {
	result := make([]byte, Length)
	digitCount := big.NewInt(int64(len(digits)))

	for i := 0; i < Length; i++ {
		num, err := rand.Int(rand.Reader, digitCount)
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		result[i] = digits[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random numeric ID and panics on error.
// Use this only when you're certain the generation won't fail.
func MustGenerate() string {
	id, err := Generate()
	if err != nil {
		panic(err)
	}
	return id
}

// ValidFormat reports whether s is a well-formed entity ID: exactly 15
// ASCII decimal digits. It says nothing about whether the ID exists.
func ValidFormat(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
