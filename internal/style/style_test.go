package style

// Notes:
// - every builder is checked for the nil and disabled cases first
// - defaults are asserted through the exact declaration text

import (
	"strings"
	"testing"

	"github.com/alnah/go-pageexport/internal/model"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter *model.Filter
		want   string
	}{
		{name: "nil", filter: nil, want: ""},
		{name: "disabled ignores parameters", filter: &model.Filter{Enabled: false, Blur: 8, Grayscale: 100}, want: ""},
		{name: "enabled but neutral", filter: &model.Filter{Enabled: true}, want: ""},
		{name: "blur only", filter: &model.Filter{Enabled: true, Blur: 4}, want: "filter: blur(4px);"},
		{
			name:   "combined in fixed order",
			filter: &model.Filter{Enabled: true, Sepia: 30, Brightness: 80, Grayscale: 150},
			want:   "filter: brightness(80%) grayscale(100%) sepia(30%);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Filter(tt.filter); got != tt.want {
				t.Errorf("Filter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGradient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		gradient *model.Gradient
		want     string
	}{
		{name: "nil", gradient: nil, want: ""},
		{name: "disabled", gradient: &model.Gradient{From: "red", To: "blue"}, want: ""},
		{
			name:     "defaults",
			gradient: &model.Gradient{Enabled: true},
			want:     "background-image: linear-gradient(to bottom, rgba(0,0,0,0.6), rgba(0,0,0,0));",
		},
		{
			name:     "custom with opacity",
			gradient: &model.Gradient{Enabled: true, Direction: "45deg", From: "#111", To: "#eee", Opacity: 0.5},
			want:     "background-image: linear-gradient(45deg, #111, #eee); opacity: 0.5;",
		},
		{
			name:     "strips declaration breakers",
			gradient: &model.Gradient{Enabled: true, From: "red;} body{display:none", To: "blue"},
			want:     "background-image: linear-gradient(to bottom, red bodydisplay:none, blue);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Gradient(tt.gradient); got != tt.want {
				t.Errorf("Gradient() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextShadow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		shadow *model.TextShadow
		want   string
	}{
		{name: "nil", shadow: nil, want: ""},
		{name: "disabled", shadow: &model.TextShadow{X: 2, Y: 2, Blur: 10}, want: ""},
		{name: "default blur and color", shadow: &model.TextShadow{Enabled: true, X: 2, Y: 2}, want: "text-shadow: 2px 2px 4px rgba(0,0,0,0.5);"},
		{name: "custom", shadow: &model.TextShadow{Enabled: true, X: 1, Y: -1, Blur: 0.5, Color: "#000"}, want: "text-shadow: 1px -1px 0.5px #000;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TextShadow(tt.shadow); got != tt.want {
				t.Errorf("TextShadow() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnimation(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		if got := Animation(&model.Animation{Kind: model.AnimationZoomIn}); got != "" {
			t.Errorf("Animation() = %q, want empty", got)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		got := Animation(&model.Animation{Enabled: true})
		for _, want := range []string{
			"animation-name: pe-fade-in;",
			"animation-duration: 0.8s;",
			"animation-delay: 0s;",
			"animation-timing-function: ease-out;",
			"animation-fill-mode: both;",
			"animation-play-state: paused;",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("Animation() = %q, missing %q", got, want)
			}
		}
	})

	t.Run("unknown kind falls back", func(t *testing.T) {
		t.Parallel()

		got := Animation(&model.Animation{Enabled: true, Kind: "spin", Duration: 1.5})
		if !strings.Contains(got, "pe-fade-in") || !strings.Contains(got, "1.5s") {
			t.Errorf("Animation() = %q", got)
		}
	})
}

func TestPositionClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pos  model.Position
		want string
	}{
		{model.Position{Vertical: "top", Horizontal: "left"}, "items-start justify-start text-left"},
		{model.Position{}, "items-center justify-center text-center"},
		{model.Position{Vertical: "bottom", Horizontal: "right"}, "items-end justify-end text-right"},
		{model.Position{Vertical: "middle", Horizontal: "center"}, "items-center justify-center text-center"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := PositionClasses(tt.pos); got != tt.want {
				t.Errorf("PositionClasses(%+v) = %q, want %q", tt.pos, got, tt.want)
			}
		})
	}
}

func TestCompose_OrderIndependent(t *testing.T) {
	t.Parallel()

	s := model.Section{
		Filter:     &model.Filter{Enabled: true, Blur: 2},
		Gradient:   &model.Gradient{Enabled: false},
		TextShadow: &model.TextShadow{Enabled: true},
	}

	first := Compose(s)
	second := Set{
		TextShadow: TextShadow(s.TextShadow),
		Position:   PositionClasses(s.Position),
		Gradient:   Gradient(s.Gradient),
		Animation:  Animation(s.Animation),
		Filter:     Filter(s.Filter),
	}
	if first != second {
		t.Errorf("Compose() = %+v, want %+v", first, second)
	}
	if first.Gradient != "" {
		t.Errorf("disabled gradient produced %q", first.Gradient)
	}
}

func TestFontStack(t *testing.T) {
	t.Parallel()

	if got := FontStack(""); got != SystemFontStack {
		t.Errorf("FontStack(\"\") = %q, want system stack", got)
	}
	if got := FontStack("Playfair Display"); !strings.HasPrefix(got, "'Playfair Display', ") {
		t.Errorf("FontStack() = %q", got)
	}
	if got := FontStack("x;}</style>"); strings.ContainsAny(got, ";}<>") {
		t.Errorf("FontStack() = %q, not escaped", got)
	}
}

func TestHeightValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode string
		want string
	}{
		{"", "100vh"},
		{"full", "100vh"},
		{"large", "75vh"},
		{"medium", "50vh"},
		{"auto", ""},
		{"640px", "640px"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			t.Parallel()

			if got := HeightValue(tt.mode); got != tt.want {
				t.Errorf("HeightValue(%q) = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}
