package ins

// ModKind is the kind of an instruction modifier.
type ModKind int

//go:generate go tool stringer -linecomment -type=ModKind
const (
	MOD_INVERT = ModKind(0) // !
	MOD_COND   = ModKind(1) // ?
	MOD_SKIP   = ModKind(2) // #
)

// Mod is a modifier, applied to the instruction written before it.
type Mod struct {
	Kind        ModKind
	RandomMaybe bool // Apply the modifier only half of the time.
}

// Modify applies a modifier to an instruction.
func (in Ins) Modify(mod Mod) (out Ins, err error) {
	switch mod.Kind {
	case MOD_INVERT:
		out, err = in.Invert()
		if err != nil {
			return
		}
	case MOD_COND:
		out = IfNotZero(in)
	case MOD_SKIP:
		out = Noop()
	}

	if mod.RandomMaybe {
		out = RandomlyChoose(in, out)
	}

	return
}

func (mod Mod) String() string {
	if mod.RandomMaybe && mod.Kind != MOD_SKIP {
		return mod.Kind.String() + MOD_SKIP.String()
	}
	return mod.Kind.String()
}
