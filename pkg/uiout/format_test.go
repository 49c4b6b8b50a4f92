package uiout

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"term", FormatTerminal, false},
		{"Terminal", FormatTerminal, false},
		{"text", FormatText, false},
		{"cli", FormatText, false},
		{"json", FormatJSON, false},
		{"mi", FormatJSON, false},
		{"xml", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", FormatAuto.String())
	assert.Equal(t, "term", FormatTerminal.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "unknown", Format(42).String())
}

func TestDetectFormatNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatText, DetectFormat(os.Stdout))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	out, err := New(FormatAuto, &buf, Options{})
	require.NoError(t, err)
	assert.False(t, out.IsMILike(), "non-file writers default to text")

	out, err = New(FormatJSON, &buf, Options{})
	require.NoError(t, err)
	assert.True(t, out.IsMILike())

	out, err = New(FormatTerminal, &buf, Options{})
	require.NoError(t, err)
	assert.False(t, out.IsMILike())

	_, err = New(Format(9), &buf, Options{})
	assert.Error(t, err)
}

func TestFormatCoreAddr(t *testing.T) {
	assert.Equal(t, "0x00401000", FormatCoreAddr(0x401000, 32))
	assert.Equal(t, "0x0000000000401000", FormatCoreAddr(0x401000, 64))
	assert.Equal(t, "0x0000000000401000", FormatCoreAddr(0x401000, 0))
}
