// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package coord

// Dir selects one member of an adjacency pair.
type Dir int

//go:generate go tool stringer -linecomment -type=Dir
const (
	L = Dir(0) // <
	R = Dir(1) // >
)

// Neg returns the opposite direction.
func (d Dir) Neg() Dir {
	if d == L {
		return R
	}
	return L
}

// ParseDir decodes a direction character, the inverse of Dir.String. The
// isolang grammar never spells a direction on its own, so the parser does not
// use it; it is kept for tools that read coordinates written by String.
func ParseDir(ch byte) (dir Dir, ok bool) {
	switch ch {
	case '<':
		return L, true
	case '>':
		return R, true
	}
	return
}
