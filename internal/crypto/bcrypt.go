// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedHash is returned by [PasswordHasher.Verify] when the stored hash
// cannot be interpreted as a bcrypt hash.
var ErrMalformedHash = errors.New("malformed password hash")

// ErrPasswordTooLong is returned by [PasswordHasher.Hash] for passwords that
// exceed the 72 byte bcrypt input limit.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a [PasswordHasher] backed by bcrypt. Costs outside
// [bcrypt.MinCost, bcrypt.MaxCost] fall back to [bcrypt.DefaultCost].
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

func (b *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

func (b *bcryptHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}
