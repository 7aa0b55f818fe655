package pegrat

// Parse is the engine's single entry point. It constructs an Input,
// dispatches at the (possibly overridden) root rule, and enforces the
// consume-all policy.
//
// Preconditions enforced as fatal *GrammarError, not ParseError: the
// grammar must have at least one rule, and the effective root name
// must resolve. Everything else a root rule or any of its
// descendants does wrong while resolving an Alias/Super surfaces the
// same way, via a recovered panic (see resolve() in rule_refs.go) —
// grammar misconfiguration bypasses the ordinary parse-failure path
// entirely.
func (g *Grammar) Parse(input string, opts ...ParseOption) (match *Match, err error) {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if len(g.rules) == 0 && len(g.ancestors) == 0 {
		return nil, newGrammarError("grammar %q has no rules defined", g.name)
	}

	rootName := cfg.GetString("parse.root")
	if rootName == "" {
		rootName = g.rootName
	}
	root, ok := g.rule(rootName)
	if !ok {
		return nil, newGrammarError("grammar %q has no rule named %q to use as root", g.name, rootName)
	}

	defer func() {
		if r := recover(); r != nil {
			if gerr, ok := r.(*GrammarError); ok {
				err = gerr
				return
			}
			panic(r)
		}
	}()

	in := NewInput(input, cfg)
	offset := cfg.GetInt("parse.start_offset")

	m, matched := in.Match(root, offset)
	if !matched {
		return nil, newParseError(in)
	}

	if cfg.GetBool("parse.consume_all") && m.Length() != in.Len()-offset {
		return nil, newParseError(in)
	}

	return m, nil
}

// ParseOption configures a single Grammar.Parse call, replacing
// passing a raw *Config so call sites read like
// g.Parse(input, WithRoot("Number")).
type ParseOption func(*Config)

// WithStartOffset overrides the offset parsing begins at (default 0).
func WithStartOffset(offset int) ParseOption {
	return func(c *Config) { c.SetInt("parse.start_offset", offset) }
}

// WithoutConsumeAll disables the requirement that a successful parse
// cover the whole input.
func WithoutConsumeAll() ParseOption {
	return func(c *Config) { c.SetBool("parse.consume_all", false) }
}

// WithRoot overrides which rule name is used as the parse root.
func WithRoot(name string) ParseOption {
	return func(c *Config) { c.SetString("parse.root", name) }
}

// WithCacheStats enables cache-hit trace logging.
func WithCacheStats() ParseOption {
	return func(c *Config) { c.SetBool("cache.track_stats", true) }
}
