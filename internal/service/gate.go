package service

import (
	"crypto/subtle"
	"strings"

	"github.com/itchan-dev/threadfeed/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

type Gate interface {
	Authorize(supplied string) error
}

// WriteGate guards every mutating operation with one shared secret.
// The secret is either plaintext or a bcrypt hash of it.
type WriteGate struct {
	secret   []byte
	isBcrypt bool
}

func NewWriteGate(secret string) *WriteGate {
	return &WriteGate{
		secret:   []byte(secret),
		isBcrypt: isBcryptHash(secret),
	}
}

func isBcryptHash(s string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// Authorize has no side effects. An empty configured secret rejects everyone.
func (g *WriteGate) Authorize(supplied string) error {
	if len(g.secret) == 0 || supplied == "" {
		return errors.Unauthorized()
	}

	if g.isBcrypt {
		if bcrypt.CompareHashAndPassword(g.secret, []byte(supplied)) != nil {
			return errors.Unauthorized()
		}
		return nil
	}

	if subtle.ConstantTimeCompare(g.secret, []byte(supplied)) != 1 {
		return errors.Unauthorized()
	}
	return nil
}
