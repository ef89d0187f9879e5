package textio

import (
	"bufio"
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewReader wraps r so that reads yield valid UTF-8.
// A leading BOM selects UTF-8 or UTF-16 and is stripped; without one the
// content is treated as UTF-8.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// NewLineScanner returns a scanner over the decoded lines of r.
// "\n", "\r\n" and a lone "\r" terminate lines; terminators are not part of
// the returned tokens. maxLine bounds the length of one line; longer lines
// make Scan stop with bufio.ErrTooLong.
func NewLineScanner(r io.Reader, maxLine int) *bufio.Scanner {
	sc := bufio.NewScanner(NewReader(r))
	initial := 64 * 1024
	if maxLine < initial {
		initial = maxLine
	}
	sc.Buffer(make([]byte, 0, initial), maxLine)
	sc.Split(newLineSplitter())
	return sc
}

// newLineSplitter returns a bufio.SplitFunc that resumes the terminator
// search where the previous call stopped. bufio.Scanner passes the whole
// pending line again after every read, so each byte is searched once.
func newLineSplitter() bufio.SplitFunc {
	searched := 0

	return func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if searched > len(data) {
			searched = 0
		}

		if i := bytes.IndexAny(data[searched:], "\r\n"); i >= 0 {
			i += searched
			switch {
			case data[i] == '\n':
				searched = 0
				return i + 1, data[:i], nil
			case i+1 < len(data):
				searched = 0
				if data[i+1] == '\n' {
					return i + 2, data[:i], nil
				}
				return i + 1, data[:i], nil
			case atEOF:
				searched = 0
				return i + 1, data[:i], nil
			default:
				// "\r" at the end of the buffer: a "\n" may follow.
				searched = i
				return 0, nil, nil
			}
		}

		if atEOF {
			searched = 0
			return len(data), data, nil
		}
		searched = len(data)
		return 0, nil, nil
	}
}
