package main

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned for passwords that are not valid UTF-8.
var ErrInvalidEncoding = errors.New("password is not valid UTF-8")

// HashPassword returns the padded standard base64 encoding of the SHA-256
// digest of password. The result is unsalted and always 44 characters long.
func HashPassword(password string) (string, error) {
	if !utf8.ValidString(password) {
		return "", ErrInvalidEncoding
	}

	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}
