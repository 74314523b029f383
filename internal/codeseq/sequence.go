package codeseq

import (
	"log/slog"

	"langprep/internal/logging"
	"langprep/internal/normalize"
	"langprep/internal/unicodeblock"
)

// Sequence is a cleaned, decoded, filtered, and normalized list of code
// points. It is immutable once New returns.
type Sequence struct {
	codes    []rune
	filtered bool
	scrub    ScrubStats
}

// Option customises construction.
type Option func(*builder)

type builder struct {
	normalizer normalize.Normalizer
	blocks     BlockClassifier
	logger     *slog.Logger
	scrub      ScrubOptions
	scriptBias bool
}

// WithNormalizer injects the canonicalization step. Without it the shared
// process-wide normalizer is used.
func WithNormalizer(n normalize.Normalizer) Option {
	return func(b *builder) {
		if n != nil {
			b.normalizer = n
		}
	}
}

// WithBlockClassifier overrides the block lookup used by the script-bias filter.
func WithBlockClassifier(c BlockClassifier) Option {
	return func(b *builder) {
		if c != nil {
			b.blocks = c
		}
	}
}

// WithLogger routes construction diagnostics to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(b *builder) {
		b.logger = logger
	}
}

// WithScrubOptions selects the scrubbing passes.
func WithScrubOptions(opts ScrubOptions) Option {
	return func(b *builder) {
		b.scrub = opts
	}
}

// WithoutScriptBias skips the script-bias filter.
func WithoutScriptBias() Option {
	return func(b *builder) {
		b.scriptBias = false
	}
}

// New builds a Sequence from raw bytes. Decoding failures are returned as-is
// and no Sequence is produced.
func New(data []byte, opts ...Option) (*Sequence, error) {
	b := builder{
		blocks:     unicodeblock.Classifier{},
		scrub:      DefaultScrubOptions(),
		scriptBias: true,
	}
	for _, opt := range opts {
		opt(&b)
	}
	if b.normalizer == nil {
		b.normalizer = normalize.Shared()
	}
	logger := logging.NewComponentLogger(b.logger, "codeseq")

	scrubbed, stats := Scrub(data, b.scrub)
	codes, err := Decode(scrubbed)
	if err != nil {
		logger.Debug("decode failed",
			logging.Int("input_bytes", len(data)),
			logging.Error(err),
		)
		return nil, err
	}
	decoded := len(codes)

	filtered := false
	if b.scriptBias {
		codes, filtered = FilterScriptBias(codes, b.blocks)
	}
	codes = b.normalizer.Normalize(codes)

	logger.Debug("code sequence built",
		logging.Int("input_bytes", len(data)),
		logging.Int("scrubbed_bytes", len(scrubbed)),
		logging.Int("urls_removed", stats.URLs),
		logging.Int("emails_removed", stats.Emails),
		logging.Int("decoded", decoded),
		logging.Bool("script_bias_applied", filtered),
		logging.Int("code_points", len(codes)),
	)
	return &Sequence{codes: codes, filtered: filtered, scrub: stats}, nil
}

// Len returns the number of code points.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.codes)
}

// Codes returns a copy of the code points.
func (s *Sequence) Codes() []rune {
	if s == nil || len(s.codes) == 0 {
		return nil
	}
	out := make([]rune, len(s.codes))
	copy(out, s.codes)
	return out
}

// Bytes re-encodes the sequence as UTF-8.
func (s *Sequence) Bytes() []byte {
	if s == nil {
		return nil
	}
	return Encode(make([]byte, 0, len(s.codes)), s.codes)
}

func (s *Sequence) String() string {
	return string(s.Bytes())
}

// ScriptBiasApplied reports whether Latin-range code points were stripped.
func (s *Sequence) ScriptBiasApplied() bool {
	return s != nil && s.filtered
}

// ScrubStats reports how many spans scrubbing removed.
func (s *Sequence) ScrubStats() ScrubStats {
	if s == nil {
		return ScrubStats{}
	}
	return s.scrub
}

// Ngrams returns the n-gram feature tokens for the sequence.
func (s *Sequence) Ngrams() []string {
	if s == nil {
		return nil
	}
	return ExtractNgrams(s.codes)
}
