package filter

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// outBufferSize is the write-side buffer in front of the output sink.
const outBufferSize = 256 * 1024

// Run executes the whole pipeline described by cfg: build the index,
// open the input and output, scan, flush. File handles are closed on
// both success and failure paths. Output bytes pass through verbatim;
// Go performs no text-mode translation on any platform.
func Run(cfg Config) (Result, error) {
	tr, err := BuildIndex(cfg)
	if err != nil {
		return Result{}, err
	}

	src := io.Reader(os.Stdin)
	if cfg.InputPath != "" {
		f, err := os.Open(cfg.InputPath)
		if err != nil {
			return Result{}, accessError(cfg.InputPath, err)
		}
		defer f.Close()
		src = f
	}

	dst := io.Writer(os.Stdout)
	if cfg.OutputPath != "" {
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return Result{}, accessError(cfg.OutputPath, err)
		}
		defer f.Close()
		dst = f
	}

	out := bufio.NewWriterSize(dst, outBufferSize)
	res, err := NewEngine(tr, cfg).Filter(src, out, cfg.ChunkSize)
	if ferr := out.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("%w: %v", ErrWrite, ferr)
	}
	return res, err
}

// InputSize returns the size of the configured input when it is a
// regular file, and 0 when the size is unknown (standard input, pipes,
// devices). Progress reporting uses it as the denominator.
func InputSize(cfg Config) int64 {
	if cfg.InputPath == "" {
		return 0
	}
	fi, err := os.Stat(cfg.InputPath)
	if err != nil || !fi.Mode().IsRegular() {
		return 0
	}
	return fi.Size()
}
