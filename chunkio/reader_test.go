package chunkio

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aglyzov/findany/bytebuf"
)

// readAll drains the reader, returning each line as a string.
func readAll(t *testing.T, r *Reader) []string {
	t.Helper()
	var line bytebuf.Buffer
	var out []string
	for {
		v, err := r.ReadLine(&line, '\n')
		if err == io.EOF {
			if !v.Empty() {
				t.Fatalf("EOF must come with an empty view, got %q", v.Bytes())
			}
			return out
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out = append(out, string(v.Bytes()))
	}
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		in    string
		lines []string
	}{
		{"", nil},
		{"\n", []string{"\n"}},
		{"a\n", []string{"a\n"}},
		{"a", []string{"a"}},
		{"a\nb\n", []string{"a\n", "b\n"}},
		{"a\nb", []string{"a\n", "b"}},
		{"\n\n\n", []string{"\n", "\n", "\n"}},
		{"alpha\r\nbeta\r\n", []string{"alpha\r\n", "beta\r\n"}},
		{"a\x00b\nc\n", []string{"a\x00b\n", "c\n"}},
	}
	// every chunk size exercises a different refill pattern
	for _, size := range []int{1, 2, 3, 7, 64, DefaultChunkSize} {
		for _, test := range tests {
			r := NewReaderSize(strings.NewReader(test.in), size)
			got := readAll(t, r)
			if len(got) != len(test.lines) {
				t.Errorf("size %d, input %q: got %d lines, want %d", size, test.in, len(got), len(test.lines))
				continue
			}
			for i := range got {
				if got[i] != test.lines[i] {
					t.Errorf("size %d, input %q: line %d = %q, want %q", size, test.in, i, got[i], test.lines[i])
				}
			}
			if r.Consumed() != int64(len(test.in)) {
				t.Errorf("size %d, input %q: consumed %d, want %d", size, test.in, r.Consumed(), len(test.in))
			}
		}
	}
}

func TestReadLine_LongerThanChunk(t *testing.T) {
	long := strings.Repeat("x", 1000) + "\n"
	r := NewReaderSize(strings.NewReader(long+"tail\n"), 16)

	lines := readAll(t, r)
	if len(lines) != 2 || lines[0] != long || lines[1] != "tail\n" {
		t.Fatalf("long line not reassembled: %d lines", len(lines))
	}
}

func TestReadLine_EOFIsSticky(t *testing.T) {
	r := NewReader(strings.NewReader("a\n"))
	var line bytebuf.Buffer

	if _, err := r.ReadLine(&line, '\n'); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		v, err := r.ReadLine(&line, '\n')
		if err != io.EOF || !v.Empty() {
			t.Fatalf("call %d after EOF: view=%q err=%v", i, v.Bytes(), err)
		}
	}
}

// shortReader returns one byte per Read call, then an error.
type shortReader struct {
	data string
	err  error
}

func (s *shortReader) Read(p []byte) (int, error) {
	if s.data == "" {
		return 0, s.err
	}
	p[0] = s.data[0]
	s.data = s.data[1:]
	return 1, nil
}

func TestReadLine_OneBytePerRead(t *testing.T) {
	r := NewReader(&shortReader{data: "ab\ncd", err: io.EOF})
	lines := readAll(t, r)
	if len(lines) != 2 || lines[0] != "ab\n" || lines[1] != "cd" {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestReadLine_Error(t *testing.T) {
	boom := errors.New("boom")
	r := NewReader(&shortReader{data: "ab", err: boom})
	var line bytebuf.Buffer

	_, err := r.ReadLine(&line, '\n')
	if !errors.Is(err, boom) {
		t.Fatalf("expected underlying error, got %v", err)
	}
}

func TestReadLine_AltDelimiter(t *testing.T) {
	r := NewReaderSize(strings.NewReader("a\x00b\x00c"), 2)
	var line bytebuf.Buffer
	var got []string
	for {
		v, err := r.ReadLine(&line, 0)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, string(v.Bytes()))
	}
	want := []string{"a\x00", "b\x00", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %d segments, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, got[i], want[i])
		}
	}
}
