package cell

import (
	"fmt"
	"strings"
)

// Kind selects the cell type of a run.
type Kind int

const (
	KIND_NARROW = Kind(0) // 8-bit cells, byte I/O.
	KIND_WIDE   = Kind(1) // 32-bit cells, UTF-8 I/O.
)

var kindNames = map[string]Kind{
	"u8":     KIND_NARROW,
	"narrow": KIND_NARROW,
	"u32":    KIND_WIDE,
	"wide":   KIND_WIDE,
}

func (kind Kind) String() string {
	switch kind {
	case KIND_NARROW:
		return "u8"
	case KIND_WIDE:
		return "u32"
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}

// ParseKind decodes a cell kind name.
func ParseKind(name string) (kind Kind, err error) {
	kind, ok := kindNames[strings.ToLower(name)]
	if !ok {
		err = ErrKind(name)
	}
	return
}

func (kind Kind) MarshalText() ([]byte, error) {
	return []byte(kind.String()), nil
}

func (kind *Kind) UnmarshalText(text []byte) (err error) {
	*kind, err = ParseKind(string(text))
	return
}
