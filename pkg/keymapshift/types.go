package keymapshift

type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// Layout is identified by its Label alone; two layouts with the same label are the same layout.
type Layout struct {
	Label     string
	Direction Direction
}

type LayoutMap struct {
	Layout  Layout
	Forward map[uint16]string
}

// Snapshot is one consistent, ordered capture of the installed layouts.
// Its order is the rotation order. It must not be modified once built.
type Snapshot []LayoutMap

func (s Snapshot) Index(label string) (int, bool) {
	for i, lm := range s {
		if lm.Layout.Label == label {
			return i, true
		}
	}
	return -1, false
}
