package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sugawarayuuta/sonnet"
)

var sample = Timings{
	Init:    1500 * time.Millisecond,
	Recolor: 250 * time.Millisecond,
	Cleanup: 30 * time.Millisecond,
	All:     1781 * time.Millisecond,
}

// TestParseFormat tests the configuration-name mapping.
func TestParseFormat(t *testing.T) {
	for _, name := range []string{"none", "human", "tdl", "json"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}
	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

// TestRenderGoldens tests each format's exact output.
func TestRenderGoldens(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		want   string
	}{
		{name: "none", format: None, want: ""},
		{
			name:   "human",
			format: Human,
			want: "Initialization took 1500 ms.\n" +
				"Cole-Vishkin took 250 ms.\n" +
				"Cleanup took 30 ms.\n" +
				"<All> took 1781 ms.\n",
		},
		{name: "tdl", format: TDL, want: "1500\t250\t30\t1781\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, tt.format, sample))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

// TestRenderJSON tests the json format field-by-field rather than as one
// string, so key order stays an implementation detail.
func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, JSON, sample))

	var got map[string]int64
	require.NoError(t, sonnet.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]int64{
		"init_ms":    1500,
		"recolor_ms": 250,
		"cleanup_ms": 30,
		"all_ms":     1781,
	}, got)
}
