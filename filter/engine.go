package filter

import (
	"fmt"
	"io"

	"github.com/aglyzov/findany/bytebuf"
	"github.com/aglyzov/findany/chunkio"
	"github.com/aglyzov/findany/trie"
)

// Result reports what a completed scan did.
type Result struct {
	Lines   int64 // lines read from the input
	Emitted int64 // lines written to the output
	Bytes   int64 // input bytes processed
	Index   trie.Stats
}

// Engine scans one stream against a built index. The line and shadow
// buffers are reused across lines, so a single Engine must not be
// shared between goroutines.
type Engine struct {
	tr       *trie.Trie
	fold     bool
	invert   bool
	progress Progress

	line   bytebuf.Buffer
	shadow bytebuf.Buffer
}

// NewEngine returns an engine over tr configured by cfg. The index is
// only read, never modified.
func NewEngine(tr *trie.Trie, cfg Config) *Engine {
	return &Engine{
		tr:       tr,
		fold:     cfg.CaseInsensitive,
		invert:   cfg.Invert,
		progress: cfg.Progress,
	}
}

// Filter streams src through the engine and writes every emitted line
// to dst, byte-identical to the input including the delimiter. Input
// order is preserved. chunkSize 0 means the chunkio default.
func (e *Engine) Filter(src io.Reader, dst io.Writer, chunkSize int) (Result, error) {
	var res Result
	r := chunkio.NewReaderSize(src, chunkSize)
	for {
		v, err := r.ReadLine(&e.line, '\n')
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, fmt.Errorf("%w: %v", ErrRead, err)
		}

		needle := v
		if e.fold {
			needle = bytebuf.ToLower(v.Bytes(), &e.shadow)
		}
		needle = needle.TrimTrailing('\n').TrimTrailing('\r')

		matched := e.tr.ContainsAnywhere(needle.Bytes())
		if matched != e.invert {
			if _, err := dst.Write(v.Bytes()); err != nil {
				return res, fmt.Errorf("%w: %v", ErrWrite, err)
			}
			res.Emitted++
		}

		res.Lines++
		res.Bytes += int64(v.Len())
		if e.progress != nil {
			e.progress.Add(v.Len())
		}
	}
	if e.progress != nil {
		e.progress.Finish()
	}
	res.Index = e.tr.Stats()
	return res, nil
}
