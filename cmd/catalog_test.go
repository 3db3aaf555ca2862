package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/keydrill/internal/catalog"
)

func TestListShortcuts(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		difficulty string
		want       string
		wantErr    string
	}{
		{name: "all", want: "33 shortcuts"},
		{name: "advanced", category: "advanced", want: "4 shortcuts"},
		{name: "easy history", category: "history", difficulty: "easy", want: "3 shortcuts"},
		{name: "hard only", difficulty: "hard", want: "14 shortcuts"},
		{name: "unknown category", category: "bogus", wantErr: "unknown category"},
		{name: "unknown difficulty", difficulty: "bogus", wantErr: "invalid difficulty"},
		{name: "empty result", category: "cursor", difficulty: "hard", wantErr: "no shortcuts match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := listShortcuts(&out, catalog.Default(), tt.category, tt.difficulty)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestPrintShortcuts(t *testing.T) {
	var out bytes.Buffer
	printShortcuts(&out, catalog.Default().Search("yank"))

	got := out.String()
	assert.Contains(t, got, "Ctrl + Y")
	assert.Contains(t, got, "Line Editing")
	assert.Contains(t, got, "1 shortcuts")
}
