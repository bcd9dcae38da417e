package bridge

import (
	"strconv"
	"strings"
)

// Path identifies a field by the sequence of field names (and decimal
// collection indices) leading from the inspected root. Paths are the widget
// identity keys of an inspector tree: they must be unique within one
// enumeration snapshot and stable across enumerations of an unchanged value.
//
// Field names must not contain '.', which is reserved as the segment
// separator in the string form.
type Path []string

// ParsePath splits a dot-joined path string.
func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	return strings.Split(s, ".")
}

// String returns the dot-joined form.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Child returns a new path extended by one segment. The receiver is not
// modified.
func (p Path) Child(segment string) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = segment
	return child
}

// Index returns a new path extended by a decimal collection index.
func (p Path) Index(i int) Path {
	return p.Child(strconv.Itoa(i))
}

// Parent returns the path without its final segment, or nil for the root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Leaf returns the final segment, or the empty string for the root.
func (p Path) Leaf() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Equal reports whether two paths have identical segments.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether p starts with the given prefix.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}
