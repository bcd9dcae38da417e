package inspector

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Options tune inspector behavior that is policy rather than contract.
// Hosts load them from a TOML fragment or start from DefaultOptions.
type Options struct {
	// FloatPrecision fixes the displayed decimals of number fields.
	// Negative keeps the shortest exact form.
	FloatPrecision int `toml:"float_precision"`

	// DropdownThreshold is the variant count above which an enum field
	// gets a dropdown instead of a radio group.
	DropdownThreshold int `toml:"dropdown_threshold"`

	// ExclusiveSections makes top-level sections an exclusive accordion:
	// opening one closes its siblings.
	ExclusiveSections bool `toml:"exclusive_sections"`

	// CollectionPageSize bounds how many collection elements and dropdown
	// options are visible at once.
	CollectionPageSize int `toml:"collection_page_size"`

	// ShowDocs includes field doc strings in snapshots.
	ShowDocs bool `toml:"show_docs"`
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		FloatPrecision:     -1,
		DropdownThreshold:  4,
		CollectionPageSize: 16,
		ShowDocs:           true,
	}
}

// LoadOptions reads a TOML fragment over the defaults. Keys absent from
// the fragment keep their default values.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	if r == nil {
		return opts, nil
	}
	if _, err := toml.NewDecoder(r).Decode(&opts); err != nil {
		return DefaultOptions(), fmt.Errorf("decode inspector options: %w", err)
	}
	if opts.CollectionPageSize <= 0 {
		opts.CollectionPageSize = DefaultOptions().CollectionPageSize
	}
	if opts.DropdownThreshold < 0 {
		opts.DropdownThreshold = 0
	}
	return opts, nil
}
