// Package password wraps bcrypt hashing behind an explicitly constructed
// Hasher so the cost factor is injected once instead of read from globals.
package password

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("password must not be empty")

type Hasher struct {
	cost      int
	dummyHash string
}

// NewHasher builds a Hasher with the given bcrypt cost. A cost of 0 selects
// bcrypt.DefaultCost. The dummy hash is generated up front so login misses
// can burn a comparison of the same cost as a real verification.
func NewHasher(cost int) (*Hasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cost)
	if err != nil {
		return nil, err
	}

	return &Hasher{cost: cost, dummyHash: string(dummy)}, nil
}

// Hash generates a salted one-way hash. The output embeds the algorithm
// identifier, cost and salt, so Verify needs nothing but the hash itself.
func (h *Hasher) Hash(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptyPassword
	}

	out, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// Verify reports whether raw matches hash. A malformed hash is not an error,
// it simply does not match.
func (h *Hasher) Verify(raw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}

// VerifyDummy compares raw against a throwaway hash, always failing. Lookup
// misses call this so they cost as much as a password mismatch.
func (h *Hasher) VerifyDummy(raw string) {
	_ = bcrypt.CompareHashAndPassword([]byte(h.dummyHash), []byte(raw))
}
