package cell

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"math"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Wide is a 32-bit cell. Each cell is one Unicode scalar of input or output.
type Wide uint32

func (a Wide) One() Wide {
	return 1
}

func (a Wide) IsZero() bool {
	return a == 0
}

func (a Wide) Add(b Wide, policy Overflow) (Wide, error) {
	v, err := add(uint64(a), uint64(b), math.MaxUint32, policy)
	return Wide(v), err
}

func (a Wide) Sub(b Wide, policy Overflow) (Wide, error) {
	v, err := sub(uint64(a), uint64(b), math.MaxUint32, policy)
	return Wide(v), err
}

func (a Wide) Mul(b Wide, policy Overflow) (Wide, error) {
	v, err := mul(uint64(a), uint64(b), math.MaxUint32, policy)
	return Wide(v), err
}

func (a Wide) Div(b Wide) (Wide, error) {
	v, err := div(uint64(a), uint64(b))
	return Wide(v), err
}

func (a Wide) Magnitude() int {
	return clampMagnitude(uint64(a))
}

func (Wide) FromUint32(v uint32) Wide {
	return Wide(v)
}

func (a Wide) Uint32() uint32 {
	return uint32(a)
}

// Scalar reports whether the cell holds a Unicode scalar value.
func (a Wide) Scalar() bool {
	return a <= utf8.MaxRune && utf8.ValidRune(rune(a))
}

// Bytes returns the UTF-8 encoding, or nothing if the cell is not a scalar.
func (a Wide) Bytes() []byte {
	if !a.Scalar() {
		return nil
	}
	return utf8.AppendRune(nil, rune(a))
}

// String returns the character, or nothing if the cell is not a scalar.
func (a Wide) String() string {
	return string(a.Bytes())
}

// Stream yields one cell per UTF-8 encoded scalar. Malformed input ends the
// sequence with an ErrDecode error.
func (Wide) Stream(r io.Reader) iter.Seq2[Wide, error] {
	return func(yield func(Wide, error) bool) {
		br := bufio.NewReader(transform.NewReader(r, encoding.UTF8Validator))
		for {
			ch, _, err := br.ReadRune()
			if err == io.EOF {
				return
			}
			if errors.Is(err, encoding.ErrInvalidUTF8) {
				yield(0, errors.Join(ErrDecode, err))
				return
			}
			if err != nil {
				yield(0, errors.Join(ErrStream, err))
				return
			}
			if !yield(Wide(ch), nil) {
				return
			}
		}
	}
}
