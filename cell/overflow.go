package cell

import (
	"fmt"
	"strings"
)

// Overflow is the policy applied when arithmetic leaves the cell range.
type Overflow int

const (
	OVERFLOW_WRAP     = Overflow(0) // Modular arithmetic.
	OVERFLOW_SATURATE = Overflow(1) // Clamp to 0 or the maximum.
	OVERFLOW_FAIL     = Overflow(2) // Report ErrOverflow or ErrUnderflow.
)

var overflowNames = map[Overflow]string{
	OVERFLOW_WRAP:     "wrap",
	OVERFLOW_SATURATE: "saturate",
	OVERFLOW_FAIL:     "fail",
}

func (policy Overflow) String() string {
	name, ok := overflowNames[policy]
	if !ok {
		return fmt.Sprintf("Overflow(%d)", int(policy))
	}
	return name
}

// ParseOverflow decodes an overflow policy name.
func ParseOverflow(name string) (policy Overflow, err error) {
	name = strings.ToLower(name)
	for policy, known := range overflowNames {
		if known == name {
			return policy, nil
		}
	}
	err = ErrOverflowPolicy(name)
	return
}

func (policy Overflow) MarshalText() ([]byte, error) {
	return []byte(policy.String()), nil
}

func (policy *Overflow) UnmarshalText(text []byte) (err error) {
	*policy, err = ParseOverflow(string(text))
	return
}

// overflow resolves a result above max.
func (policy Overflow) overflow(value, max uint64) (uint64, error) {
	switch policy {
	case OVERFLOW_SATURATE:
		return max, nil
	case OVERFLOW_FAIL:
		return 0, ErrOverflow
	}
	return value & max, nil
}
