package components

import "fmt"

// Kind identifies which of the three cyclic factions an agent belongs to.
type Kind uint8

const (
	KindRock Kind = iota
	KindPaper
	KindScissors
)

// NumKinds is the number of factions.
const NumKinds = 3

// Kinds lists every faction in declaration order.
var Kinds = [NumKinds]Kind{KindRock, KindPaper, KindScissors}

// preyOf maps a kind to the kind it beats.
var preyOf = [NumKinds]Kind{
	KindRock:     KindScissors,
	KindPaper:    KindRock,
	KindScissors: KindPaper,
}

// threatOf maps a kind to the kind that beats it.
var threatOf = [NumKinds]Kind{
	KindRock:     KindPaper,
	KindPaper:    KindScissors,
	KindScissors: KindRock,
}

var kindNames = [NumKinds]string{
	KindRock:     "rock",
	KindPaper:    "paper",
	KindScissors: "scissors",
}

// Prey returns the kind that k converts on contact.
func (k Kind) Prey() Kind { return preyOf[k] }

// Threat returns the kind that converts k on contact.
func (k Kind) Threat() Kind { return threatOf[k] }

// Beats reports whether k converts other.
func (k Kind) Beats(other Kind) bool { return preyOf[k] == other }

// Valid reports whether k is one of the three factions.
func (k Kind) Valid() bool { return k < NumKinds }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind converts a faction name back to a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// MarshalText implements encoding.TextMarshaler so snapshots and CSV output
// carry faction names instead of raw integers.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Tribe holds an agent's current faction. It is mutated in place when the
// agent is converted, so converting never changes the entity's archetype.
type Tribe struct {
	Kind Kind
}
