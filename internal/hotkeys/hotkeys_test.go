package hotkeys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stformane/hudnotes/internal/app/settings"
	"github.com/stformane/hudnotes/internal/hotkeys"
)

func TestParseBinding(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    []string
		wantErr bool
	}{
		{"standard binding", "Ctrl+Alt+H", []string{"h", "ctrl", "alt"}, false},
		{"lowercase input", "ctrl+alt+q", []string{"q", "ctrl", "alt"}, false},
		{"whitespace tolerated", " Ctrl + Alt + T ", []string{"t", "ctrl", "alt"}, false},
		{"digit key", "Ctrl+Alt+1", []string{"1", "ctrl", "alt"}, false},
		{"named key", "Ctrl+Shift+Space", []string{"space", "ctrl", "shift"}, false},
		{"modifier aliases", "Control+Win+K", []string{"k", "ctrl", "cmd"}, false},
		{"no modifier", "H", nil, true},
		{"no key", "Ctrl+Alt", nil, true},
		{"two keys", "Ctrl+A+B", nil, true},
		{"unknown key", "Ctrl+Alt+Foo", nil, true},
		{"empty token", "Ctrl++H", nil, true},
		{"empty string", "", nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := hotkeys.ParseBinding(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("should accept every default binding", func(t *testing.T) {
		for action, binding := range settings.DefaultHotkeys() {
			assert.NoError(t, hotkeys.Validate(binding), action)
		}
	})
	t.Run("should reject a bare modifier", func(t *testing.T) {
		assert.Error(t, hotkeys.Validate("Ctrl+Alt"))
	})
}
