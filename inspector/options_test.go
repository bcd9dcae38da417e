package inspector

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadOptions_FragmentOverDefaults(t *testing.T) {
	frag := `
dropdown_threshold = 1
exclusive_sections = true
show_docs = false
`
	got, err := LoadOptions(strings.NewReader(frag))
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	want := Options{
		FloatPrecision:     -1,
		DropdownThreshold:  1,
		ExclusiveSections:  true,
		CollectionPageSize: 16,
		ShowDocs:           false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOptions_NilReaderKeepsDefaults(t *testing.T) {
	got, err := LoadOptions(nil)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if diff := cmp.Diff(DefaultOptions(), got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOptions_SanitizesBadValues(t *testing.T) {
	got, err := LoadOptions(strings.NewReader("collection_page_size = 0\ndropdown_threshold = -3\n"))
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if got.CollectionPageSize != DefaultOptions().CollectionPageSize {
		t.Fatalf("page size = %d, want default %d", got.CollectionPageSize, DefaultOptions().CollectionPageSize)
	}
	if got.DropdownThreshold != 0 {
		t.Fatalf("threshold = %d, want 0", got.DropdownThreshold)
	}
}

func TestLoadOptions_MalformedTOML(t *testing.T) {
	if _, err := LoadOptions(strings.NewReader("dropdown_threshold = [")); err == nil {
		t.Fatal("expected an error for malformed TOML")
	}
}
