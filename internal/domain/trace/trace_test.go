package trace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line    string
		want    Op
		wantErr string
	}{
		{line: "get a", want: Op{Kind: KindGet, Key: "a"}},
		{line: "GET a", want: Op{Kind: KindGet, Key: "a"}},
		{line: "put a 1", want: Op{Kind: KindPut, Key: "a", Value: "1"}},
		{line: "put  k   hello   world ", want: Op{Kind: KindPut, Key: "k", Value: "hello   world"}},
		{line: "", wantErr: "empty operation"},
		{line: "get", wantErr: "usage: get"},
		{line: "get a b", wantErr: "usage: get"},
		{line: "put a", wantErr: "usage: put"},
		{line: "del a", wantErr: "unknown operation"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, ErrInvalidTrace)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_SkipsCommentsAndTracksLines(t *testing.T) {
	input := `# warm up
put 1 1

put 2 2
get 1
`
	ops, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Op{
		{Line: 2, Kind: KindPut, Key: "1", Value: "1"},
		{Line: 4, Kind: KindPut, Key: "2", Value: "2"},
		{Line: 5, Kind: KindGet, Key: "1"},
	}, ops)
}

func TestParse_ReportsLineNumber(t *testing.T) {
	_, err := Parse(strings.NewReader("put a 1\nfrob b\n"))
	require.ErrorIs(t, err, ErrInvalidTrace)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParse_AcceptsLongLines(t *testing.T) {
	value := strings.Repeat("x", 70000)
	ops, err := Parse(strings.NewReader("put k " + value + "\nget k\n"))
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, value, ops[0].Value)
}

func TestParse_RejectsLinesOverMaxLineSize(t *testing.T) {
	_, err := Parse(strings.NewReader("put k " + strings.Repeat("x", MaxLineSize) + "\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read trace")
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "put a 1", Op{Kind: KindPut, Key: "a", Value: "1"}.String())
	assert.Equal(t, "get a", Op{Kind: KindGet, Key: "a"}.String())
}
