package propdb

import (
	"strconv"
	"strings"

	"github.com/MRUIAW/ReplayCraft/lib/backend"
)

// DefaultMaxChunkSize is the default maximum length of a single stored chunk.
// It sits safely below backend.DefaultMaxEntryLen to leave headroom for
// backends with encoding overhead.
const DefaultMaxChunkSize = 30000

// partSuffix separates the base entry-key from the chunk number.
const partSuffix = "_part"

// chunkedStore encodes and decodes one logical text value under a base
// entry-key. Texts longer than maxChunkSize are split into numbered chunk
// entries; the base entry then holds the decimal chunk count instead of the
// value.
type chunkedStore struct {
	backend      backend.IBackend
	maxChunkSize int
}

// partKey derives the backend key of chunk i of the given entry-key.
func partKey(entryKey string, i int) string {
	return entryKey + partSuffix + strconv.Itoa(i)
}

// isChunkCount reports whether a stored base entry holds a chunk-count marker
// rather than a direct value. The marker is a non-empty string of decimal
// digits. A direct value of the same shape is indistinguishable from a
// marker; see the package documentation for this format limitation.
func isChunkCount(meta string) bool {
	if meta == "" {
		return false
	}
	for i := 0; i < len(meta); i++ {
		if meta[i] < '0' || meta[i] > '9' {
			return false
		}
	}
	return true
}

// write stores text under entryKey, splitting it into chunk parts if it
// exceeds the chunk size.
func (c *chunkedStore) write(entryKey string, text string) error {
	if len(text) <= c.maxChunkSize {
		return c.backend.Set(entryKey, text)
	}

	n := (len(text) + c.maxChunkSize - 1) / c.maxChunkSize
	for i := 0; i < n; i++ {
		start := i * c.maxChunkSize
		end := start + c.maxChunkSize
		if end > len(text) {
			end = len(text)
		}
		if err := c.backend.Set(partKey(entryKey, i), text[start:end]); err != nil {
			return err
		}
	}

	return c.backend.Set(entryKey, strconv.Itoa(n))
}

// read returns the text stored under entryKey, reassembling chunked values.
// The boolean return value indicates whether an entry was found.
func (c *chunkedStore) read(entryKey string) (string, bool, error) {
	meta, loaded, err := c.backend.Get(entryKey)
	if err != nil {
		return "", false, err
	}
	if !loaded {
		return "", false, nil
	}

	if !isChunkCount(meta) {
		return meta, true, nil
	}

	n, err := strconv.Atoi(meta)
	if err != nil {
		// digits but out of int range, cannot be a real chunk count
		return meta, true, nil
	}

	var sb strings.Builder
	for i := 0; i < n; i++ {
		// missing parts read as empty text
		part, _, err := c.backend.Get(partKey(entryKey, i))
		if err != nil {
			return "", false, err
		}
		sb.WriteString(part)
	}
	return sb.String(), true, nil
}

// erase removes the entry under entryKey including any chunk parts.
func (c *chunkedStore) erase(entryKey string) error {
	meta, loaded, err := c.backend.Get(entryKey)
	if err != nil {
		return err
	}

	if loaded && isChunkCount(meta) {
		if n, err := strconv.Atoi(meta); err == nil {
			for i := 0; i < n; i++ {
				if err := c.backend.Delete(partKey(entryKey, i)); err != nil {
					return err
				}
			}
		}
	}

	return c.backend.Delete(entryKey)
}

// chunkCount returns how many chunk parts the entry under entryKey owns
// (0 for direct or absent entries).
func (c *chunkedStore) chunkCount(entryKey string) (int, error) {
	meta, loaded, err := c.backend.Get(entryKey)
	if err != nil {
		return 0, err
	}
	if !loaded || !isChunkCount(meta) {
		return 0, nil
	}
	n, err := strconv.Atoi(meta)
	if err != nil {
		return 0, nil
	}
	return n, nil
}
