package textio

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, r io.Reader, maxLine int) []string {
	t.Helper()
	sc := NewLineScanner(r, maxLine)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	return lines
}

func TestNewLineScanner_Terminators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr", "a\rb\rc", []string{"a", "b", "c"}},
		{"mixed", "a\r\n\rb\nc", []string{"a", "", "b", "c"}},
		{"blank lines count", "a\n\n\nb", []string{"a", "", "", "b"}},
		{"cr at end", "a\r", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readLines(t, strings.NewReader(tt.input), 1024))
		})
	}
}

func TestNewLineScanner_CRLFAcrossReads(t *testing.T) {
	// one byte per Read forces "\r" and "\n" into separate buffers
	r := iotestOneByte(strings.NewReader("first\r\nsecond\r\n"))
	assert.Equal(t, []string{"first", "second"}, readLines(t, r, 1024))
}

func TestNewLineScanner_TerminatorsAcrossReads(t *testing.T) {
	r := iotestOneByte(strings.NewReader("ab\rcd\r\n\ref\n\r"))
	assert.Equal(t, []string{"ab", "cd", "", "ef", ""}, readLines(t, r, 1024))
}

func TestNewLineScanner_LongLinesScanInLinearTime(t *testing.T) {
	const size = 8 << 20
	long := strings.Repeat("x", size-6) + "userId"
	input := long + "\n" + long + "\r\nshort"

	start := time.Now()
	lines := readLines(t, strings.NewReader(input), 16<<20)
	elapsed := time.Since(start)

	require.Len(t, lines, 3)
	assert.Len(t, lines[0], size)
	assert.True(t, strings.HasSuffix(lines[1], "userId"))
	assert.Equal(t, "short", lines[2])
	assert.Less(t, elapsed, 5*time.Second, "two 8 MiB lines took %v", elapsed)
}

func TestNewLineScanner_UTF8BOMDropped(t *testing.T) {
	lines := readLines(t, strings.NewReader("\xEF\xBB\xBFName\nx"), 1024)
	assert.Equal(t, []string{"Name", "x"}, lines)
}

func TestNewLineScanner_UTF16LE(t *testing.T) {
	// "hi\nyo" in UTF-16LE with BOM
	raw := []byte{0xFF, 0xFE, 'h', 0, 'i', 0, '\n', 0, 'y', 0, 'o', 0}
	lines := readLines(t, strings.NewReader(string(raw)), 1024)
	assert.Equal(t, []string{"hi", "yo"}, lines)
}

func TestNewLineScanner_UTF16BE(t *testing.T) {
	raw := []byte{0xFE, 0xFF, 0, 'o', 0, 'k'}
	lines := readLines(t, strings.NewReader(string(raw)), 1024)
	assert.Equal(t, []string{"ok"}, lines)
}

func TestNewLineScanner_InvalidBytesSubstituted(t *testing.T) {
	lines := readLines(t, strings.NewReader("user\xffId=1\n"), 1024)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "user"))
	assert.True(t, strings.HasSuffix(lines[0], "Id=1"))
	assert.Contains(t, lines[0], "�")
}

func TestNewLineScanner_TooLong(t *testing.T) {
	sc := NewLineScanner(strings.NewReader(strings.Repeat("x", 100)+"\n"), 16)
	for sc.Scan() {
	}
	assert.True(t, errors.Is(sc.Err(), bufio.ErrTooLong))
}

type oneByteReader struct{ r io.Reader }

func (o oneByteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return o.r.Read(p[:1])
}

func iotestOneByte(r io.Reader) io.Reader { return oneByteReader{r: r} }
