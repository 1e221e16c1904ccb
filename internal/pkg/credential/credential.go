package credential

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type Mode string

const (
	ModePlain  Mode = "plain"
	ModeBcrypt Mode = "bcrypt"
)

var ErrMismatch = errors.New("credential mismatch")

// Hasher turns a password into its stored form and checks candidates
// against it.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(stored, candidate string) error
}

func New(mode Mode) (Hasher, error) {
	switch mode {
	case ModePlain, "":
		return Plain{}, nil
	case ModeBcrypt:
		return Bcrypt{Cost: bcrypt.DefaultCost}, nil
	}
	return nil, fmt.Errorf("unknown credential mode %q", mode)
}

// Plain stores passwords as given. Prototype-grade, kept for the seeded demo directory.
type Plain struct{}

func (Plain) Hash(password string) (string, error) {
	return password, nil
}

func (Plain) Compare(stored, candidate string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) != 1 {
		return ErrMismatch
	}
	return nil
}

type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (Bcrypt) Compare(stored, candidate string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)); err != nil {
		return ErrMismatch
	}
	return nil
}
