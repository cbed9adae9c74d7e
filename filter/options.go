package filter

import "io"

// Option configures a Filter.
type Option func(*Filter)

// WithKey deduplicates json lines on the value at a gjson path instead of the whole line.
func WithKey(path string) Option {
	return func(f *Filter) {
		if path != "" {
			f.selectKey = &SelectKey{Path: path}
		}
	}
}

// WithDiscarded copies every dropped line to w.
func WithDiscarded(w io.Writer) Option {
	return func(f *Filter) {
		f.discarded = w
	}
}

// WithBufferSizes sets the input and output buffer sizes. Zero keeps the default.
func WithBufferSizes(read, write int) Option {
	return func(f *Filter) {
		if read > 0 {
			f.readBufferBytes = read
		}
		if write > 0 {
			f.writeBufferBytes = write
		}
	}
}
