package collections

type cursorState int

const (
	cursorNotStarted cursorState = iota
	cursorPositioned
	cursorConsumed
)

// removalGuard tracks the last element handed out by an iterator so that it
// can be removed exactly once.
type removalGuard[V any] struct {
	state cursorState
	last  V
}

func (g *removalGuard[V]) returned(v V) {
	g.last = v
	g.state = cursorPositioned
}

// take hands out the element to remove and marks it consumed.
func (g *removalGuard[V]) take() (v V, err error) {
	if g.state != cursorPositioned {
		return v, ErrIllegalState
	}
	g.state = cursorConsumed
	return g.last, nil
}
