package assets

import (
	"errors"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "base", wantErr: false},
		{name: "hyphenated", input: "dark-theme", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "slash", input: "styles/base", wantErr: true},
		{name: "backslash", input: `styles\base`, wantErr: true},
		{name: "traversal", input: "..", wantErr: true},
		{name: "extension", input: "base.css", wantErr: true},
		{name: "null byte", input: "base\x00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", tt.input, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAssetName(%q) unexpected error = %v", tt.input, err)
			}
		})
	}
}
