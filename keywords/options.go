package keywords

// config holds every optional knob across the five algorithms. A given
// constructor only reads and validates the fields its own contract names;
// the rest sit at their defaults unused. This mirrors the teacher's
// preference for plain constructor functions over an inheritance hierarchy:
// one shared Option type instead of five bespoke option structs.
type config struct {
	window          int
	damping         float64
	maxIterations   int
	tolerance       float64
	ngramSize       int
	dedupThreshold  float64
	maxPhraseLength int
	phraseNormalize bool
	parallel        bool
}

func defaultConfig() config {
	return config{
		window:          2,
		damping:         0.85,
		maxIterations:   100,
		tolerance:       1e-6,
		ngramSize:       3,
		dedupThreshold:  0.9,
		maxPhraseLength: 0,
		phraseNormalize: false,
		parallel:        false,
	}
}

// Option configures an algorithm constructor. Unset options fall back to
// the defaults documented on each algorithm's New function.
type Option func(*config)

// WithWindow sets the co-occurrence window size (TextRank, YAKE). Must be
// >= 2; checked by the constructor that consumes it.
func WithWindow(w int) Option {
	return func(c *config) { c.window = w }
}

// WithDamping sets the TextRank damping factor. Must be in (0, 1].
func WithDamping(d float64) Option {
	return func(c *config) { c.damping = d }
}

// WithMaxIterations bounds TextRank's power iteration. Must be >= 1.
func WithMaxIterations(n int) Option {
	return func(c *config) { c.maxIterations = n }
}

// WithTolerance sets TextRank's convergence tolerance. Must be > 0.
func WithTolerance(tol float64) Option {
	return func(c *config) { c.tolerance = tol }
}

// WithNGramSize sets YAKE's maximum candidate n-gram length. Must be >= 1.
func WithNGramSize(n int) Option {
	return func(c *config) { c.ngramSize = n }
}

// WithDedupThreshold sets YAKE's Levenshtein-similarity deduplication
// threshold. Must be in [0, 1].
func WithDedupThreshold(t float64) Option {
	return func(c *config) { c.dedupThreshold = t }
}

// WithMaxPhraseLength caps phrase length for RAKE and TextRank's phrase
// ranking. 0 (the default) means unbounded.
func WithMaxPhraseLength(n int) Option {
	return func(c *config) { c.maxPhraseLength = n }
}

// WithPhraseNormalization controls whether TextRank's phrase score is the
// sum of its word scores (false, the default, matching RAKE's convention)
// or that sum divided by phrase length (true).
func WithPhraseNormalization(enabled bool) Option {
	return func(c *config) { c.phraseNormalize = enabled }
}

// WithParallel switches construction's heavy loop to a work-stealing
// errgroup-based fan-out. Results are identical to the sequential path;
// only wall-clock construction time changes.
func WithParallel(enabled bool) Option {
	return func(c *config) { c.parallel = enabled }
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) validateWindow() error {
	if c.window < 2 {
		return invalidConfig(ErrInvalidWindow)
	}
	return nil
}

func (c config) validateDamping() error {
	if c.damping <= 0 || c.damping > 1 {
		return invalidConfig(ErrInvalidDamping)
	}
	return nil
}

func (c config) validateMaxIterations() error {
	if c.maxIterations < 1 {
		return invalidConfig(ErrInvalidMaxIter)
	}
	return nil
}

func (c config) validateTolerance() error {
	if c.tolerance <= 0 {
		return invalidConfig(ErrInvalidTolerance)
	}
	return nil
}

func (c config) validateNGramSize() error {
	if c.ngramSize < 1 {
		return invalidConfig(ErrInvalidNGram)
	}
	return nil
}

func (c config) validateDedupThreshold() error {
	if c.dedupThreshold < 0 || c.dedupThreshold > 1 {
		return invalidConfig(ErrInvalidThreshold)
	}
	return nil
}
