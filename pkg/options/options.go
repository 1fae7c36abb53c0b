// Package options configures the vocabulary index: construction bounds and
// the cheap prefilters applied before edit-distance comparisons.
package options

// DefaultOptions keeps the search bounded on large corpora: only reasonably
// frequent words enter the index, and each lookup compares at most MaxChecks
// entries.
var DefaultOptions = VocabOptions{
	MinFrequency: 10,
	MaxSize:      50000,
	SampleStride: 1,
	BucketSpread: 2,
	MaxChecks:    500,
	TopK:         5,
}

type VocabOptions struct {
	MinFrequency int // minimum corpus count for a word to be indexed
	MaxSize      int // cap on total indexed words (most frequent kept)
	SampleStride int // index every Nth unit; 1 means the full corpus
	BucketSpread int // first-letter ordinal offset searched around the query
	MaxChecks    int // cap on distance computations per lookup
	TopK         int // candidates returned per lookup
}

type Option interface {
	Apply(opts *VocabOptions)
}

type FuncOption struct {
	f func(opts *VocabOptions)
}

func (o FuncOption) Apply(opts *VocabOptions) {
	o.f(opts)
}

func NewFuncOption(f func(opts *VocabOptions)) *FuncOption {
	return &FuncOption{f: f}
}

func WithMinFrequency(minFrequency int) Option {
	return NewFuncOption(func(opts *VocabOptions) {
		opts.MinFrequency = minFrequency
	})
}

func WithMaxSize(maxSize int) Option {
	return NewFuncOption(func(opts *VocabOptions) {
		opts.MaxSize = maxSize
	})
}

func WithSampleStride(stride int) Option {
	return NewFuncOption(func(opts *VocabOptions) {
		if stride < 1 {
			stride = 1
		}
		opts.SampleStride = stride
	})
}

func WithBucketSpread(spread int) Option {
	return NewFuncOption(func(opts *VocabOptions) {
		opts.BucketSpread = spread
	})
}

func WithMaxChecks(maxChecks int) Option {
	return NewFuncOption(func(opts *VocabOptions) {
		opts.MaxChecks = maxChecks
	})
}

func WithTopK(topK int) Option {
	return NewFuncOption(func(opts *VocabOptions) {
		opts.TopK = topK
	})
}
