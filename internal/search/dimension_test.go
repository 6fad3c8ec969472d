package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolTable_IsBijection(t *testing.T) {
	seen := make(map[Dimension]bool)
	for _, s := range Symbols() {
		d, ok := SymbolToDimension(s)
		require.True(t, ok, "symbol %q", s)
		assert.False(t, seen[d], "dimension %s mapped twice", d)
		seen[d] = true

		back, ok := DimensionToSymbol(d)
		require.True(t, ok)
		assert.Equal(t, s, back)
	}
	assert.Len(t, seen, 5)
}

func TestSymbolToDimension_Known(t *testing.T) {
	tests := map[byte]Dimension{
		'@': DimensionAuthor,
		'~': DimensionChangedLines,
		'=': DimensionChanges,
		':': DimensionFiles,
		'#': DimensionSha,
	}
	for symbol, want := range tests {
		got, ok := SymbolToDimension(symbol)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestSymbolToDimension_Unknown(t *testing.T) {
	for _, s := range []byte{'!', 'a', ' ', '$'} {
		_, ok := SymbolToDimension(s)
		assert.False(t, ok, "symbol %q", s)
	}
}

func TestDimensionToSymbol_NoSymbol(t *testing.T) {
	for _, d := range []Dimension{DimensionMessage, DimensionBranch, DimensionSince, DimensionBefore, DimensionAfter} {
		_, ok := DimensionToSymbol(d)
		assert.False(t, ok, "dimension %s", d)
	}
}

func TestDimension_Valid(t *testing.T) {
	assert.True(t, DimensionChangedLines.Valid())
	assert.False(t, Dimension("committer").Valid())
	assert.False(t, Dimension("").Valid())
}
