package blocks

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	pinToken     = "P???"
	genericToken = "???"
)

// TokenKind distinguishes literal text from the two placeholder kinds.
type TokenKind int

const (
	TokenLiteral TokenKind = iota
	TokenPinSlot
	TokenGenericSlot
)

func (k TokenKind) String() string {
	switch k {
	case TokenPinSlot:
		return "pin"
	case TokenGenericSlot:
		return "generic"
	default:
		return "literal"
	}
}

// Token is one element of a scanned template content string.
// Text is set for literals; Slot is the zero-based index among slots of the
// same kind for pin and generic tokens.
type Token struct {
	Kind TokenKind
	Text string
	Slot int
}

func (t Token) String() string {
	if t.Kind == TokenLiteral {
		return fmt.Sprintf("literal(%q)", t.Text)
	}
	return fmt.Sprintf("%s(%d)", t.Kind, t.Slot)
}

// Template contents come from a small fixed palette, so scanned streams are
// cached per content string. The cache is safe for concurrent use.
var tokenCache = mustTokenCache(256)

func mustTokenCache(size int) *lru.Cache[string, []Token] {
	c, err := lru.New[string, []Token](size)
	if err != nil {
		panic(err)
	}
	return c
}

// Tokenize scans content left to right into literal and slot tokens.
//
// "P???" is matched before "???" at every position, so a "???" preceded by
// "P" is consumed as a pin slot and never counted as a generic slot.
// Pin and generic slots are numbered independently in order of appearance.
func Tokenize(content string) []Token {
	toks := tokenize(content)
	out := make([]Token, len(toks))
	copy(out, toks)
	return out
}

// tokenize returns the cached stream; callers must not modify it.
func tokenize(content string) []Token {
	if toks, ok := tokenCache.Get(content); ok {
		return toks
	}
	toks := scan(content)
	tokenCache.Add(content, toks)
	return toks
}

func scan(content string) []Token {
	var (
		toks    []Token
		lit     strings.Builder
		pins    int
		generic int
	)
	flush := func() {
		if lit.Len() > 0 {
			toks = append(toks, Token{Kind: TokenLiteral, Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(content); {
		rest := content[i:]
		switch {
		case strings.HasPrefix(rest, pinToken):
			flush()
			toks = append(toks, Token{Kind: TokenPinSlot, Slot: pins})
			pins++
			i += len(pinToken)
		case strings.HasPrefix(rest, genericToken):
			flush()
			toks = append(toks, Token{Kind: TokenGenericSlot, Slot: generic})
			generic++
			i += len(genericToken)
		default:
			lit.WriteByte(content[i])
			i++
		}
	}
	flush()
	return toks
}
