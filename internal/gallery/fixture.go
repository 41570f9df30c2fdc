package gallery

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/toastui/internal/errors"
	"github.com/vango-dev/toastui/pkg/toast"
)

//go:embed default.yaml
var defaultFixture []byte

// idSpace namespaces the name-based UUIDs given to toasts without an id.
var idSpace = uuid.MustParse("6f1d3c52-0b7e-4d3a-9a39-5c2b8e4f7a10")

var validID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidID reports whether id uses only letters, digits, '-' and '_', which
// keeps it safe in element ids, URLs and object keys.
func ValidID(id string) bool {
	return validID.MatchString(id)
}

// derivedID is stable for a given position and content, so re-rendering or
// re-publishing an unchanged fixture reuses the same ids.
func derivedID(i int, t *Toast) string {
	name := fmt.Sprintf("%d\x00%s\x00%s\x00%s", i, t.Title, t.Description, t.Action)
	return uuid.NewSHA1(idSpace, []byte(name)).String()
}

// Toast states mirrored into data-state.
const (
	StateOpen   = "open"
	StateClosed = "closed"
)

// Toast is one entry of a fixture.
type Toast struct {
	ID          string `yaml:"id,omitempty" json:"id"`
	Variant     string `yaml:"variant,omitempty" json:"variant,omitempty"`
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Action      string `yaml:"action,omitempty" json:"action,omitempty"`
	Class       string `yaml:"class,omitempty" json:"class,omitempty"`
	State       string `yaml:"state,omitempty" json:"state,omitempty"`
}

// Fixture is a titled list of toasts.
type Fixture struct {
	Title  string  `yaml:"title,omitempty"`
	Toasts []Toast `yaml:"toasts"`
}

// Default returns the built-in fixture.
func Default() (*Fixture, error) {
	return Parse(defaultFixture)
}

// Load reads the fixture at path, or the built-in one when path is empty.
func Load(path string) (*Fixture, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E130").
			WithDetail("Cannot read " + path).
			Wrap(err)
	}
	return Parse(data)
}

// Parse decodes and normalizes a YAML fixture. Unknown fields, unknown
// variants or states, malformed ids and duplicate ids are rejected.
func Parse(data []byte) (*Fixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, errors.New("E130").
			WithSuggestion("Check the fixture is valid YAML with a top-level 'toasts' list").
			Wrap(err)
	}
	if err := f.normalize(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) normalize() error {
	seen := make(map[string]bool, len(f.Toasts))
	for i := range f.Toasts {
		t := &f.Toasts[i]
		if t.ID == "" {
			t.ID = derivedID(i, t)
		}
		if !ValidID(t.ID) {
			return errors.New("E130").
				WithDetailf("toasts[%d]: invalid toast id %q", i, t.ID).
				WithSuggestion("Use only letters, digits, '-' and '_' in ids")
		}
		if seen[t.ID] {
			return errors.New("E130").WithDetailf("duplicate toast id %q", t.ID)
		}
		seen[t.ID] = true

		if t.Variant == "" {
			t.Variant = string(toast.VariantDefault)
		}
		if _, ok := toast.ParseVariant(t.Variant); !ok {
			return errors.New("E130").
				WithDetailf("toasts[%d]: unknown variant %q", i, t.Variant).
				WithSuggestion(fmt.Sprintf("Use one of %v", toast.Variants()))
		}

		switch t.State {
		case "":
			t.State = StateOpen
		case StateOpen, StateClosed:
		default:
			return errors.New("E130").WithDetailf("toasts[%d]: unknown state %q", i, t.State)
		}
	}
	return nil
}

// Find returns the toast with the given id.
func (f *Fixture) Find(id string) (Toast, bool) {
	for _, t := range f.Toasts {
		if t.ID == id {
			return t, true
		}
	}
	return Toast{}, false
}

// Open returns the toasts whose state is open.
func (f *Fixture) Open() []Toast {
	var open []Toast
	for _, t := range f.Toasts {
		if t.State == StateOpen {
			open = append(open, t)
		}
	}
	return open
}
