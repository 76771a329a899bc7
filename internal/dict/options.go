package dict

// Option customizes a Decompiler.
type Option interface{ apply(dc *Decompiler) }

// WithLogf enables trace logging of the walk and decode passes.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithVocabulary decodes against voc instead of a fresh built-in vocabulary.
func WithVocabulary(voc *Vocabulary) Option { return vocabOption{voc} }

type withLogfn func(mess string, args ...interface{})
type vocabOption struct{ *Vocabulary }

func (logfn withLogfn) apply(dc *Decompiler) { dc.logfn = logfn }
func (o vocabOption) apply(dc *Decompiler)   { dc.Vocab = o.Vocabulary }

// Options combines any number of options into one.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []Option

func (opts options) apply(dc *Decompiler) {
	for _, opt := range opts {
		opt.apply(dc)
	}
}
