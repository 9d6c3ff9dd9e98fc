package nativebuild

// State is the position of a Driver in its clean-then-build sequence.
type State int

const (
	Idle State = iota
	Cleaning
	Building
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Cleaning:
		return "cleaning"
	case Building:
		return "building"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}
