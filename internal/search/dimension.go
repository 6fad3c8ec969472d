package search

// Dimension names one axis a commit search can filter on.
type Dimension string

const (
	DimensionMessage      Dimension = "message"
	DimensionAuthor       Dimension = "author"
	DimensionChangedLines Dimension = "changedLines"
	DimensionChanges      Dimension = "changes"
	DimensionFiles        Dimension = "files"
	DimensionSha          Dimension = "sha"
	DimensionBranch       Dimension = "branch"
	DimensionSince        Dimension = "since"
	DimensionBefore       Dimension = "before"
	DimensionAfter        Dimension = "after"
)

// Valid reports whether d is one of the known dimensions.
func (d Dimension) Valid() bool {
	switch d {
	case DimensionMessage, DimensionAuthor, DimensionChangedLines, DimensionChanges, DimensionFiles,
		DimensionSha, DimensionBranch, DimensionSince, DimensionBefore, DimensionAfter:
		return true
	}
	return false
}

// symbolTable is the fixed prefix symbol mapping. Must stay a bijection.
var symbolTable = [...]struct {
	symbol    byte
	dimension Dimension
}{
	{'@', DimensionAuthor},
	{'~', DimensionChangedLines},
	{'=', DimensionChanges},
	{':', DimensionFiles},
	{'#', DimensionSha},
}

// SymbolToDimension maps a prefix symbol to its dimension.
// The boolean is false when symbol is not a recognised prefix.
func SymbolToDimension(symbol byte) (Dimension, bool) {
	for _, e := range symbolTable {
		if e.symbol == symbol {
			return e.dimension, true
		}
	}
	return "", false
}

// DimensionToSymbol maps a dimension to its prefix symbol.
// The boolean is false for dimensions that have no symbol (message, branch, dates).
func DimensionToSymbol(d Dimension) (byte, bool) {
	for _, e := range symbolTable {
		if e.dimension == d {
			return e.symbol, true
		}
	}
	return 0, false
}

// Symbols returns every prefix symbol in table order.
func Symbols() []byte {
	out := make([]byte, 0, len(symbolTable))
	for _, e := range symbolTable {
		out = append(out, e.symbol)
	}
	return out
}
