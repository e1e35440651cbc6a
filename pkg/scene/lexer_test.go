package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, l *Lexer) []Token {
	t.Helper()
	var tokens []Token
	for {
		tok, err := l.ReadToken()
		require.NoError(t, err)
		tokens = append(tokens, tok)
		if tok.Type == StopToken {
			return tokens
		}
	}
}

func TestLexerTokenStream(t *testing.T) {
	source := `
# This is a comment
# This is another comment
new material sky_material(
    diffuse(image("my file.pfm")),
    <5.0, 500.0, 300.0>
) # Comment at the end of the line
`
	tokens := readAll(t, NewLexer(source))

	wantKeywords := []KeywordEnum{KeywordNew, KeywordMaterial}
	for i, kw := range wantKeywords {
		assert.Equal(t, KeywordToken, tokens[i].Type)
		assert.Equal(t, kw, tokens[i].Keyword)
	}

	assert.Equal(t, IdentifierToken, tokens[2].Type)
	assert.Equal(t, "sky_material", tokens[2].Identifier)

	assert.Equal(t, SymbolToken, tokens[3].Type)
	assert.Equal(t, '(', tokens[3].Symbol)

	assert.Equal(t, KeywordToken, tokens[4].Type)
	assert.Equal(t, KeywordDiffuse, tokens[4].Keyword)

	assert.Equal(t, KeywordToken, tokens[6].Type)
	assert.Equal(t, KeywordImage, tokens[6].Keyword)

	assert.Equal(t, LiteralStringToken, tokens[8].Type)
	assert.Equal(t, "my file.pfm", tokens[8].Str)

	assert.Equal(t, LiteralNumberToken, tokens[13].Type)
	assert.InDelta(t, 5.0, tokens[13].Number, 1e-12)
	assert.Equal(t, LiteralNumberToken, tokens[15].Type)
	assert.InDelta(t, 500.0, tokens[15].Number, 1e-12)
	assert.Equal(t, LiteralNumberToken, tokens[17].Type)
	assert.InDelta(t, 300.0, tokens[17].Number, 1e-12)

	assert.Equal(t, StopToken, tokens[len(tokens)-1].Type)
}

func TestLexerSourceLocations(t *testing.T) {
	l := NewLexer("plane\n  sphere")

	tok, err := l.ReadToken()
	require.NoError(t, err)
	assert.Equal(t, SourceLocation{Line: 1, Column: 1}, tok.Location)

	tok, err = l.ReadToken()
	require.NoError(t, err)
	assert.Equal(t, SourceLocation{Line: 2, Column: 3}, tok.Location)
}

func TestLexerUnreadToken(t *testing.T) {
	l := NewLexer("sphere(identity, mat)")

	first, err := l.ReadToken()
	require.NoError(t, err)
	l.UnreadToken(first)

	again, err := l.ReadToken()
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestLexerRejectsInvalidCharacter(t *testing.T) {
	l := NewLexer("@")
	_, err := l.ReadToken()
	require.Error(t, err)
	var grammarErr *GrammarError
	assert.ErrorAs(t, err, &grammarErr)
}

func TestLexerRejectsUnterminatedString(t *testing.T) {
	l := NewLexer(`"never closed`)
	_, err := l.ReadToken()
	require.Error(t, err)
	var grammarErr *GrammarError
	assert.ErrorAs(t, err, &grammarErr)
}
