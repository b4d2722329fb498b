package script

// Notes:
// - the attribute names are part of a markup/runtime contract; the table
//   pins both the Go constants and their use inside the embedded script

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-pageexport/internal/assets"
)

// ---------------------------------------------------------------------------
// Attribute Protocol
// ---------------------------------------------------------------------------

func TestAttributes_MatchRuntime(t *testing.T) {
	t.Parallel()

	gen, err := New(assets.NewEmbeddedLoader())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	src := gen.Source()

	tests := []struct {
		attr    string
		want    string
		dataset string
	}{
		{AttrAutoplay, "data-autoplay", `"autoplay"`},
		{AttrInterval, "data-interval", `"interval"`},
		{AttrTransition, "data-transition", "dataset.transition"},
		{AttrDuration, "data-duration", `"duration"`},
		{AttrPauseOnHover, "data-pause-on-hover", `"pauseOnHover"`},
		{AttrLoop, "data-loop", `"loop"`},
		{AttrTotal, "data-total", `"total"`},
		{AttrCurrent, "data-current", "dataset.current"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if tt.attr != tt.want {
				t.Errorf("attribute = %q, want %q", tt.attr, tt.want)
			}
			if !strings.Contains(src, tt.dataset) {
				t.Errorf("runtime does not read %s", tt.dataset)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Generator
// ---------------------------------------------------------------------------

func TestGenerator_Tag(t *testing.T) {
	t.Parallel()

	gen, err := New(assets.NewEmbeddedLoader())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tag := gen.Tag()
	if !strings.HasPrefix(tag, "<script>") || !strings.HasSuffix(tag, "</script>") {
		t.Errorf("Tag() not wrapped in a script element")
	}
	if strings.Count(tag, "</script>") != 1 {
		t.Errorf("Tag() contains an early closing tag")
	}
	if !strings.Contains(tag, "IntersectionObserver") {
		t.Errorf("Tag() missing reveal wiring")
	}
}

type failingLoader struct{ assets.Loader }

func (failingLoader) LoadScript(name string) (string, error) {
	return "", assets.ErrScriptNotFound
}

func TestNew_MissingScript(t *testing.T) {
	t.Parallel()

	_, err := New(failingLoader{assets.NewEmbeddedLoader()})
	if !errors.Is(err, assets.ErrScriptNotFound) {
		t.Errorf("New() error = %v, want ErrScriptNotFound", err)
	}
}
