package server

import (
	"bytes"
	"strconv"
	"sync"
)

// renderCache memoizes serialized responses. The datasets are static for the
// session, so a response is fully determined by format, filter and viewport;
// the key encodes all three.
type renderCache struct {
	mu        sync.Mutex
	responses map[string][]byte
}

func newRenderCache() *renderCache {
	return &renderCache{responses: map[string][]byte{}}
}

func (rc *renderCache) memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

func (rc *renderCache) get(key string) ([]byte, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	buf, ok := rc.responses[key]
	return buf, ok
}

func (rc *renderCache) put(key string, buf []byte) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.responses[key] = buf
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
