package pegrat

import (
	"github.com/sirupsen/logrus"
)

// Input wraps an immutable input sequence, the memoization cache
// keyed by (rule identity, offset), a cache-hit counter, and the
// furthest offset any rule attempt reached. This is the packrat core
// that makes recursive-descent matching linear-time over repeated
// sub-expressions.
type Input struct {
	data string
	cfg  *Config
	log  *logrus.Entry

	// cache[ruleID][offset] holds both hits and misses: caching
	// failures is what keeps repeated predicate checks at the same
	// offset from degrading to exponential time.
	cache map[uint64]map[int]*cacheEntry

	hits      int
	maxOffset int
}

type cacheEntry struct {
	match *Match
	ok    bool
}

// NewInput creates a per-parse Input over data. The cache is owned by
// the Input and is discarded with it when parsing completes.
func NewInput(data string, cfg *Config) *Input {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Input{
		data:  data,
		cfg:   cfg,
		log:   logrus.WithField("component", "pegrat.input"),
		cache: make(map[uint64]map[int]*cacheEntry),
	}
}

// Len returns the input's length in code units.
func (in *Input) Len() int { return len(in.data) }

// String returns the original input sequence passed to NewInput.
func (in *Input) String() string { return in.data }

// Slice returns the substring [offset, offset+length).
func (in *Input) Slice(offset, length int) string {
	return in.data[offset : offset+length]
}

// Remainder returns the input from offset to the end, the slice every
// terminal rule matches against.
func (in *Input) Remainder(offset int) string {
	if offset >= len(in.data) {
		return ""
	}
	return in.data[offset:]
}

// MaxOffset is the greatest offset any rule attempt has started from
// or, for a successful match, consumed up to.
func (in *Input) MaxOffset() int { return in.maxOffset }

// ConsumedPrefix is the input up to MaxOffset, used by ParseError to
// render "just after <last ≤40 chars>".
func (in *Input) ConsumedPrefix() string {
	end := in.maxOffset
	if end > len(in.data) {
		end = len(in.data)
	}
	if end < 0 {
		end = 0
	}
	return in.data[:end]
}

// Stats reports cache hits and the furthest offset reached, for
// observability.
type Stats struct {
	Hits      int
	MaxOffset int
	RuleCount int
}

func (in *Input) Stats() Stats {
	return Stats{Hits: in.hits, MaxOffset: in.maxOffset, RuleCount: len(in.cache)}
}

// Match is the engine's single matching entry point: every rule,
// including sub-rules reached recursively, is matched by calling
// in.Match(subrule, offset), never subrule.evaluate directly. That
// indirection is where memoization happens.
func (in *Input) Match(rule Rule, offset int) (*Match, bool) {
	if offset > in.maxOffset {
		in.maxOffset = offset
	}

	id := rule.ID()
	byOffset, ok := in.cache[id]
	if !ok {
		byOffset = make(map[int]*cacheEntry)
		in.cache[id] = byOffset
	}
	if entry, ok := byOffset[offset]; ok {
		in.hits++
		if in.cfg.GetBool("cache.track_stats") {
			in.log.WithFields(logrus.Fields{"rule_id": id, "offset": offset}).Trace("cache hit")
		}
		return entry.match, entry.ok
	}

	m, matched := rule.evaluate(in, offset)
	if matched {
		if end := offset + m.Length(); end > in.maxOffset {
			in.maxOffset = end
		}
	}
	byOffset[offset] = &cacheEntry{match: m, ok: matched}
	return m, matched
}
