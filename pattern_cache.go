package checkkit

import (
	"fmt"
	"regexp"
	"sync"
)

// Process-wide cache of compiled patterns, shared by every engine. A
// given pattern source is compiled at most once for the process
// lifetime; the key space is bounded by the pattern literals authors
// write into code, so entries are never evicted.
var patternCache = struct {
	mu sync.RWMutex
	m  map[string]*regexp.Regexp
}{m: make(map[string]*regexp.Regexp)}

// compilePattern returns the compiled, fully-anchored form of expr,
// compiling and caching it on first use. Concurrent first uses of the
// same source compile it once. An invalid pattern source panics: a
// malformed pattern literal is a bug in the calling code.
func compilePattern(expr string) *regexp.Regexp {
	patternCache.mu.RLock()
	re, ok := patternCache.m[expr]
	patternCache.mu.RUnlock()
	if ok {
		return re
	}

	patternCache.mu.Lock()
	defer patternCache.mu.Unlock()
	if re, ok := patternCache.m[expr]; ok {
		return re
	}

	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		panic(fmt.Errorf("%w %q: %v", ErrInvalidPattern, expr, err))
	}
	patternCache.m[expr] = re
	return re
}
