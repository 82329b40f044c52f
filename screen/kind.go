package screen

type kindTag uint8

const (
	tagOther kindTag = iota
	tagChat
	tagInGame
)

// Kind classifies a screen. The zero value is KindOther("").
type Kind struct {
	tag  kindTag
	name string
}

// Predefined kinds.
var (
	KindChat   = Kind{tag: tagChat}
	KindInGame = Kind{tag: tagInGame}
)

// KindOther returns a kind for screens outside the predefined ones,
// distinguished by name.
func KindOther(name string) Kind {
	return Kind{tag: tagOther, name: name}
}

// Equal reports whether k and o are the same kind.
func (k Kind) Equal(o Kind) bool {
	return k == o
}

// Name returns the name of a KindOther kind, or "" for the others.
func (k Kind) Name() string {
	return k.name
}

func (k Kind) String() string {
	switch k.tag {
	case tagChat:
		return "chat"
	case tagInGame:
		return "in-game"
	default:
		if k.name == "" {
			return "other"
		}
		return "other(" + k.name + ")"
	}
}
