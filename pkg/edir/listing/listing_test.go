package listing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhenriksen/edir/pkg/edir/snapshot"
)

func snapOf(names ...string) *snapshot.Snapshot {
	s := &snapshot.Snapshot{Dir: "/tmp/x"}
	for i, n := range names {
		s.Entries = append(s.Entries, snapshot.Entry{Name: n, Index: i})
	}
	return s
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snapOf("a.txt", "b with spaces.txt", "sub")))

	want := "0000    a.txt\n" +
		"0001    b with spaces.txt\n" +
		"0002    sub\n"
	assert.Equal(t, want, buf.String())
}

func TestWritePadsBeyondFourDigits(t *testing.T) {
	s := &snapshot.Snapshot{}
	s.Entries = append(s.Entries, snapshot.Entry{Name: "big", Index: 12345})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, s))
	assert.Equal(t, "12345    big\n", buf.String())
}

func TestParseRoundTrip(t *testing.T) {
	snap := snapOf("a.txt", "b.txt", "c d.txt")
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snap))

	recs, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	for i, rec := range recs {
		assert.Equal(t, i, rec.Index)
		assert.Equal(t, snap.Entries[i].Name, rec.Name)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Record
	}{
		{
			name:  "empty input yields no records",
			input: "",
			want:  nil,
		},
		{
			name:  "single record",
			input: "0000    a.txt\n",
			want:  []Record{{Index: 0, Name: "a.txt"}},
		},
		{
			name:  "surrounding whitespace is trimmed from the name",
			input: "0001       spaced.txt   \n",
			want:  []Record{{Index: 1, Name: "spaced.txt"}},
		},
		{
			name:  "interior spaces survive",
			input: "0002    two words.txt\n",
			want:  []Record{{Index: 2, Name: "two words.txt"}},
		},
		{
			name:  "unpadded index accepted",
			input: "7 x\n",
			want:  []Record{{Index: 7, Name: "x"}},
		},
		{
			name:  "missing trailing newline",
			input: "0000    last",
			want:  []Record{{Index: 0, Name: "last"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, recs)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "blank line", input: "0000    a.txt\n\n0001    b.txt\n"},
		{name: "no index field", input: "justaname\n"},
		{name: "non-digit index", input: "12ab    x.txt\n"},
		{name: "negative index", input: "-1    x.txt\n"},
		{name: "index only", input: "0000\n"},
		{name: "empty name", input: "0000        \n"},
		{name: "index overflow", input: "99999999999999999999 x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}
