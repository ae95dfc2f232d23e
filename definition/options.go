package definition

import "github.com/erraggy/oasdoc/document"

// BuilderOption configures a Builder instance.
// Options are applied when creating a new Builder with New().
type BuilderOption func(*builderConfig)

// builderConfig holds builder configuration applied via options.
type builderConfig struct {
	logger        Logger
	seed          *document.Document
	initSequences bool
}

// defaultBuilderConfig returns a builderConfig that starts from an empty
// document, logs nothing and leaves sequences uninitialized.
func defaultBuilderConfig() *builderConfig {
	return &builderConfig{
		logger: NopLogger{},
	}
}

// WithLogger sets the logger used to report mutations and skipped appends.
// A nil logger restores the default NopLogger.
func WithLogger(logger Logger) BuilderOption {
	return func(cfg *builderConfig) {
		if logger == nil {
			logger = NopLogger{}
		}
		cfg.logger = logger
	}
}

// WithDocument makes the builder write into doc instead of a new empty
// document. The document is mutated in place and not copied.
func WithDocument(doc *document.Document) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.seed = doc
	}
}

// WithInitSequences initializes absent servers, security and tags sections to
// empty arrays before any helper runs, so add.server and friends take effect
// on an empty document.
func WithInitSequences(enabled bool) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.initSequences = enabled
	}
}
