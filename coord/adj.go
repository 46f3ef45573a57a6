// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package coord

// Adj is an adjacency pair: two neighbours of a node, symmetric about it.
type Adj int

//go:generate go tool stringer -linecomment -type=Adj
const (
	//  - -
	// # @ #
	//  - -
	LR = Adj(0) // -

	//  # -
	// - @ -
	//  - #
	ULDR = Adj(1) // \

	//  - #
	// - @ -
	//  # -
	DLUR = Adj(2) // /

	//  # #
	// - @ -
	//  - -
	U2 = Adj(3) // ^

	//  - -
	// - @ -
	//  # #
	D2 = Adj(4) // v
)

// Unit offsets of each adjacency pair, indexed by Dir.
var adjOffset = [...][2]Coord{
	LR:   {{R: -1, UL: 0}, {R: 1, UL: 0}},
	ULDR: {{R: 0, UL: 1}, {R: 0, UL: -1}},
	DLUR: {{R: -1, UL: -1}, {R: 1, UL: 1}},
	U2:   {{R: 0, UL: 1}, {R: 1, UL: 1}},
	D2:   {{R: -1, UL: -1}, {R: 0, UL: -1}},
}

// Adjs lists every adjacency pair.
var Adjs = []Adj{LR, ULDR, DLUR, U2, D2}

// ParseAdj decodes an adjacency character.
func ParseAdj(ch byte) (adj Adj, ok bool) {
	ok = true
	switch ch {
	case '-':
		adj = LR
	case '\\':
		adj = ULDR
	case '/':
		adj = DLUR
	case '^':
		adj = U2
	case 'v':
		adj = D2
	default:
		ok = false
	}
	return
}
