package cell

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"math"
)

// Narrow is an 8-bit cell. Each cell is one byte of input or output.
type Narrow uint8

func (a Narrow) One() Narrow {
	return 1
}

func (a Narrow) IsZero() bool {
	return a == 0
}

func (a Narrow) Add(b Narrow, policy Overflow) (Narrow, error) {
	v, err := add(uint64(a), uint64(b), math.MaxUint8, policy)
	return Narrow(v), err
}

func (a Narrow) Sub(b Narrow, policy Overflow) (Narrow, error) {
	v, err := sub(uint64(a), uint64(b), math.MaxUint8, policy)
	return Narrow(v), err
}

func (a Narrow) Mul(b Narrow, policy Overflow) (Narrow, error) {
	v, err := mul(uint64(a), uint64(b), math.MaxUint8, policy)
	return Narrow(v), err
}

func (a Narrow) Div(b Narrow) (Narrow, error) {
	v, err := div(uint64(a), uint64(b))
	return Narrow(v), err
}

func (a Narrow) Magnitude() int {
	return clampMagnitude(uint64(a))
}

func (Narrow) FromUint32(v uint32) Narrow {
	return Narrow(v)
}

func (a Narrow) Uint32() uint32 {
	return uint32(a)
}

// Bytes returns the raw byte.
func (a Narrow) Bytes() []byte {
	return []byte{byte(a)}
}

// String returns the byte as a Latin-1 character.
func (a Narrow) String() string {
	return string(rune(a))
}

// Stream yields one cell per input byte.
func (Narrow) Stream(r io.Reader) iter.Seq2[Narrow, error] {
	return func(yield func(Narrow, error) bool) {
		br := bufio.NewReader(r)
		for {
			b, err := br.ReadByte()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(0, errors.Join(ErrStream, err))
				return
			}
			if !yield(Narrow(b), nil) {
				return
			}
		}
	}
}
