package runner

import (
	"fmt"
	"strings"
)

// Fault is the policy applied to arithmetic errors at run time.
type Fault int

const (
	FAULT_HALT   = Fault(0) // Stop with the error.
	FAULT_IGNORE = Fault(1) // Treat the instruction as a no-op.
)

var faultNames = map[Fault]string{
	FAULT_HALT:   "halt",
	FAULT_IGNORE: "ignore",
}

func (fault Fault) String() string {
	name, ok := faultNames[fault]
	if !ok {
		return fmt.Sprintf("Fault(%d)", int(fault))
	}
	return name
}

// ParseFault decodes a fault policy name.
func ParseFault(name string) (fault Fault, err error) {
	name = strings.ToLower(name)
	for fault, known := range faultNames {
		if known == name {
			return fault, nil
		}
	}
	err = ErrFault(name)
	return
}

func (fault Fault) MarshalText() ([]byte, error) {
	return []byte(fault.String()), nil
}

func (fault *Fault) UnmarshalText(text []byte) (err error) {
	*fault, err = ParseFault(string(text))
	return
}
