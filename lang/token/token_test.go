package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		require.NotEmpty(t, tok.String(), "token %d", tok)
	}
}

func TestLookup(t *testing.T) {
	require.Equal(t, LET, Lookup("let"))
	require.Equal(t, FN, Lookup("fn"))
	require.Equal(t, TRUE, Lookup("true"))
	require.Equal(t, IDENT, Lookup("x"))
	require.Equal(t, IDENT, Lookup("letter"))
}

func TestIsBinaryOp(t *testing.T) {
	for _, tok := range []Token{PLUS, MINUS, STAR, SLASH, LT, GT, GE, LE, EQEQ, NEQ} {
		require.True(t, tok.IsBinaryOp(), tok.String())
	}
	require.False(t, LPAREN.IsBinaryOp())
	require.False(t, LET.IsBinaryOp())
	require.False(t, DOT.IsBinaryOp())
}
