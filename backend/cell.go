package backend

// Cell is one terminal cell. A wide rune occupies its own cell plus a
// continuation cell with Rune 0.
type Cell struct {
	Rune  rune
	Style Style
}
