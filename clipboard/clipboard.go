// Package clipboard abstracts the cut/copy/paste target used by text
// editing widgets. The core ships an in-memory implementation; hosts with
// a system clipboard plug in their own.
package clipboard

// Clipboard stores one text payload.
type Clipboard interface {
	// Read returns the stored text, or the empty string when nothing was
	// written yet.
	Read() (string, error)
	// Write replaces the stored text.
	Write(text string) error
	// Available reports whether writes actually land anywhere.
	Available() bool
}

// MemoryClipboard keeps the payload in process memory. The zero value is
// ready to use; a nil receiver degrades to a silent no-op clipboard.
type MemoryClipboard struct {
	text string
}

// Read returns the stored text.
func (c *MemoryClipboard) Read() (string, error) {
	if c == nil {
		return "", nil
	}
	return c.text, nil
}

// Write replaces the stored text.
func (c *MemoryClipboard) Write(text string) error {
	if c == nil {
		return nil
	}
	c.text = text
	return nil
}

// Available reports true: memory writes always land.
func (c *MemoryClipboard) Available() bool {
	return true
}

// UnavailableClipboard is the null clipboard for hosts without one.
// Reads are empty, writes vanish.
type UnavailableClipboard struct{}

// Read returns the empty string.
func (UnavailableClipboard) Read() (string, error) {
	return "", nil
}

// Write discards the text.
func (UnavailableClipboard) Write(string) error {
	return nil
}

// Available reports false.
func (UnavailableClipboard) Available() bool {
	return false
}
