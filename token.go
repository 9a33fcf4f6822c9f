// Package idtoken provides an identity token: an opaque value that only
// compares equal to itself and to its duplicates.
//
// Every call to New returns a token that differs from every other token
// minted in the process. The only way to obtain a token equal to an existing
// one is to duplicate it:
//
//	x := idtoken.New()
//	y := idtoken.New()
//
//	x.Equal(x.Duplicate()) // true
//	x.Equal(y)             // false
//
// Tokens are plain comparable values. They can be copied freely, compared
// with ==, and used as map keys.
package idtoken

import (
	"fmt"

	"github.com/google/uuid"
)

// A Token is an identity marker. Its only observable property is equality
// with other tokens.
//
// The zero Token is not a minted token and never equals one.
type Token struct {
	seq uint64
	rnd uuid.UUID
}

// New mints a token that is distinct from every token minted before or after
// it in this process. It is safe for concurrent use.
func New() Token {
	return getGenerator().Generate()
}

// Duplicate returns a token with the same identity as t. It does not consume
// a new identity.
func (t Token) Duplicate() Token {
	return t
}

// Equal reports whether t and other carry the same identity.
func (t Token) Equal(other Token) bool {
	return t == other
}

// IsZero reports whether t is the zero Token.
func (t Token) IsZero() bool {
	return t == Token{}
}

// String renders the token for debugging. The rendering cannot be turned
// back into a token.
func (t Token) String() string {
	if t.rnd != uuid.Nil {
		return t.rnd.String()
	}

	return fmt.Sprintf("0x%016X", t.seq)
}

// Equal reports whether a and b carry the same identity.
func Equal(a, b Token) bool {
	return a.Equal(b)
}
