package filter

import (
	"io"
	"os"

	"github.com/aglyzov/findany/bytebuf"
	"github.com/aglyzov/findany/chunkio"
	"github.com/aglyzov/findany/trie"
)

// BuildIndex builds the keyword trie from the configured dictionary:
// the in-memory substring list when present, the dictionary file
// otherwise. Keywords are stripped of a trailing "\n" and "\r", blank
// ones are dropped, and all of them are lowercased first when matching
// case-insensitively.
func BuildIndex(cfg Config) (*trie.Trie, error) {
	if len(cfg.Substrings) > 0 {
		if cfg.DictPath != "" {
			return nil, usageError("substring flags conflict with a dictionary file")
		}
		return indexFromList(cfg.Substrings, cfg.CaseInsensitive), nil
	}
	if cfg.DictPath == "" {
		return nil, usageError("no substrings and no dictionary file")
	}
	return indexFromFile(cfg.DictPath, cfg.CaseInsensitive, cfg.ChunkSize)
}

func indexFromList(keys []string, fold bool) *trie.Trie {
	t := trie.New()
	var shadow bytebuf.Buffer
	for _, k := range keys {
		addKeyword(t, []byte(k), fold, &shadow)
	}
	return t
}

func indexFromFile(path string, fold bool, chunkSize int) (*trie.Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, accessError(path, err)
	}
	defer f.Close()

	t := trie.New()
	r := chunkio.NewReaderSize(f, chunkSize)
	var line, shadow bytebuf.Buffer
	for {
		v, err := r.ReadLine(&line, '\n')
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return nil, accessError(path, err)
		}
		addKeyword(t, v.Bytes(), fold, &shadow)
	}
}

// addKeyword inserts one keyword, folding it through the shadow buffer
// when matching case-insensitively. Empty keywords are ignored by the
// trie itself.
func addKeyword(t *trie.Trie, key []byte, fold bool, shadow *bytebuf.Buffer) {
	key = trimKeyword(key)
	if fold {
		key = bytebuf.ToLower(key, shadow).Bytes()
	}
	t.Add(key)
}

func trimKeyword(key []byte) []byte {
	for len(key) > 0 && key[len(key)-1] == '\n' {
		key = key[:len(key)-1]
	}
	for len(key) > 0 && key[len(key)-1] == '\r' {
		key = key[:len(key)-1]
	}
	return key
}
