package utils

import (
	"crypto/rand"
	"math/big"
)

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

// GenerateStrongPassword returns a 12-character random password drawn from
// crypto/rand for newly created student accounts.
func GenerateStrongPassword() (string, error) {
	password := make([]byte, 12)
	for i := range password {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordCharset))))
		if err != nil {
			return "", err
		}
		password[i] = passwordCharset[n.Int64()]
	}
	return string(password), nil
}
