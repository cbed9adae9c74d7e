/*
Package filter streams lines from a reader to a writer, emitting each line once.

Lines are split on '\n' only, the delimiter is not part of the line and a final
line without a delimiter is still a line. Every emitted line is followed by
exactly one '\n'. Output keeps the order of first occurrence.
*/
package filter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AustralianCyberSecurityCentre/azul-rmdup.git/dedupe"
	"github.com/AustralianCyberSecurityCentre/azul-rmdup.git/prom"
	st "github.com/AustralianCyberSecurityCentre/azul-rmdup.git/settings"
)

const defaultBufferBytes = 64 * 1024

var (
	ErrRead  = errors.New("failed to read input")
	ErrWrite = errors.New("failed to write output")
)

// Stats summarises one run.
type Stats struct {
	Lines      uint64 `json:"lines"`
	Emitted    uint64 `json:"emitted"`
	Duplicates uint64 `json:"duplicates"`
	Bytes      uint64 `json:"bytes"`
	Hashes     int    `json:"hashes"`
}

// Filter drops lines already seen. It is not safe for concurrent use.
type Filter struct {
	seen             dedupe.Seen
	selectKey        *SelectKey
	discarded        io.Writer
	readBufferBytes  int
	writeBufferBytes int
	pipeline         *Pipeline
	stats            Stats
}

func New(seen dedupe.Seen, opts ...Option) *Filter {
	f := &Filter{
		seen:             seen,
		readBufferBytes:  defaultBufferBytes,
		writeBufferBytes: defaultBufferBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.pipeline = NewPipeline([]LineAction{
		f.selectKey,
		&FilterDuplicates{Seen: seen},
	})
	return f
}

// Stats returns counters accumulated over every Run so far.
func (f *Filter) Stats() Stats {
	s := f.stats
	s.Hashes = f.seen.Len()
	return s
}

// Run copies novel lines from r to w until r is exhausted.
// The seen set is kept between calls, so a second Run continues the same stream.
func (f *Filter) Run(r io.Reader, w io.Writer) (Stats, error) {
	if file, ok := r.(*os.File); ok {
		if fi, err := file.Stat(); err == nil && fi.Mode().IsRegular() {
			fadviseSequential(int(file.Fd()), 0, 0)
		}
	}
	br := bufio.NewReaderSize(r, f.readBufferBytes)
	bw := bufio.NewWriterSize(w, f.writeBufferBytes)

	var long []byte
	line := &Line{}
	for {
		chunk, err := br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			// line longer than the read buffer, accumulate until the delimiter
			long = append(long, chunk...)
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return f.Stats(), fmt.Errorf("%w: %w", ErrRead, err)
		}
		raw := chunk
		if len(long) > 0 {
			long = append(long, chunk...)
			raw = long
		}
		if len(raw) == 0 {
			// clean end of stream
			break
		}
		f.stats.Lines++
		f.stats.Bytes += uint64(len(raw))
		prom.LinesRead.Inc()
		prom.LinesBytesRead.Add(float64(len(raw)))
		if raw[len(raw)-1] == '\n' {
			raw = raw[:len(raw)-1]
		}

		line.Raw = raw
		line.Key = raw
		if reason := f.pipeline.RunLineActions(line); reason != "" {
			f.stats.Duplicates++
			f.logDiscarded(raw, reason)
		} else {
			if err := writeLine(bw, raw); err != nil {
				return f.Stats(), err
			}
			f.stats.Emitted++
			prom.LinesEmitted.Inc()
		}

		long = long[:0]
		if errors.Is(err, io.EOF) {
			break
		}
	}
	if err := bw.Flush(); err != nil {
		return f.Stats(), fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return f.Stats(), nil
}

func writeLine(bw *bufio.Writer, raw []byte) error {
	if _, err := bw.Write(raw); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// logDiscarded records a dropped line, failures here never stop the filter.
func (f *Filter) logDiscarded(raw []byte, reason string) {
	st.Logger.Trace().Str("reason", reason).Int("bytes", len(raw)).Msg("dropped line")
	if f.discarded == nil {
		return
	}
	combined := append(raw[:len(raw):len(raw)], '\n')
	if _, err := f.discarded.Write(combined); err != nil {
		st.Logger.Warn().Err(err).Int("bytes", len(combined)).Msg("could not write discarded line to log")
	}
}
