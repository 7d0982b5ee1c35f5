package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/daniel-garciasoto/mlgo"
	"github.com/daniel-garciasoto/mlgo/source"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Options contains configuration options for FromCSV.
type Options struct {
	// HasHeader skips the first record when true.
	HasHeader bool

	// LabelColumn is the zero-based index of the label column. A
	// negative value selects the last column.
	LabelColumn int

	// Comma is the field delimiter.
	Comma rune

	// MaxRows caps the number of data rows read. Zero means no cap.
	MaxRows int

	// Source resolves the file name to a byte stream. Defaults to the
	// local file system relative to the working directory.
	Source source.Source

	// Logger is used for logging load operations.
	Logger *mlgo.Logger

	// MetricsCollector records load metrics.
	MetricsCollector mlgo.MetricsCollector
}

// DefaultOptions returns the default options for FromCSV.
func DefaultOptions() Options {
	return Options{
		HasHeader:        true,
		LabelColumn:      -1,
		Comma:            ',',
		Source:           source.NewLocal(""),
		Logger:           mlgo.NoopLogger(),
		MetricsCollector: mlgo.NoopMetricsCollector{},
	}
}

// WithLabelColumn selects the zero-based label column.
func WithLabelColumn(col int) func(o *Options) {
	return func(o *Options) {
		o.LabelColumn = col
	}
}

// WithoutHeader treats the first record as data.
func WithoutHeader() func(o *Options) {
	return func(o *Options) {
		o.HasHeader = false
	}
}

// WithComma sets the field delimiter.
func WithComma(comma rune) func(o *Options) {
	return func(o *Options) {
		o.Comma = comma
	}
}

// WithMaxRows caps the number of data rows read.
func WithMaxRows(n int) func(o *Options) {
	return func(o *Options) {
		o.MaxRows = n
	}
}

// WithSource reads the file through the given source instead of the
// local file system.
func WithSource(src source.Source) func(o *Options) {
	return func(o *Options) {
		o.Source = src
	}
}

// WithLogger sets the logger for load operations.
func WithLogger(logger *mlgo.Logger) func(o *Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMetricsCollector sets the collector for load metrics.
func WithMetricsCollector(collector mlgo.MetricsCollector) func(o *Options) {
	return func(o *Options) {
		o.MetricsCollector = collector
	}
}

// LabelEncoding records the mapping from label text to integer id
// assigned during a single FromCSV call. Ids increase in first-seen
// order starting at 0. Numeric label cells bypass the encoding and
// keep their truncated value, so an encoding may be empty even for a
// populated Dataset. The mapping is scoped to one load call and never
// shared.
type LabelEncoding struct {
	ids   map[string]int
	names []string
}

func newLabelEncoding() *LabelEncoding {
	return &LabelEncoding{ids: make(map[string]int)}
}

// Intern returns the id for text, assigning the next free id on first
// sight.
func (e *LabelEncoding) Intern(text string) int {
	if id, ok := e.ids[text]; ok {
		return id
	}

	id := len(e.names)
	e.ids[text] = id
	e.names = append(e.names, text)

	return id
}

// Name returns the original text for id, or "" when id was never
// interned.
func (e *LabelEncoding) Name(id int) string {
	if id < 0 || id >= len(e.names) {
		return ""
	}
	return e.names[id]
}

// Len returns the number of distinct interned labels.
func (e *LabelEncoding) Len() int {
	return len(e.names)
}

// FromCSV loads a Dataset from delimited text. The file name must end
// in .csv, or in .csv.gz, .csv.zst or .csv.lz4 for transparently
// decompressed input. All cells except the label column must parse as
// numbers; the first failure aborts the whole load with a RowError.
// Label cells that parse as numbers are truncated toward zero,
// anything else is interned via the returned LabelEncoding. A file
// with zero data rows fails with ErrNoRows. Failures are always
// explicit errors, never an empty Dataset.
func FromCSV(ctx context.Context, name string, optFns ...func(o *Options)) (*Dataset, *LabelEncoding, error) {
	opts := DefaultOptions()

	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()

	ds, enc, err := readCSV(ctx, name, opts)

	opts.MetricsCollector.RecordLoad(time.Since(start), err)

	rows := 0
	if ds != nil {
		rows = ds.Len()
	}
	opts.Logger.LogLoad(ctx, name, rows, err)

	if err != nil {
		return nil, nil, err
	}

	return ds, enc, nil
}

func readCSV(ctx context.Context, name string, opts Options) (*Dataset, *LabelEncoding, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	rc, err := openReader(ctx, opts.Source, name)
	if err != nil {
		return nil, nil, err
	}
	defer rc.Close()

	cr := csv.NewReader(rc)
	cr.Comma = opts.Comma
	cr.ReuseRecord = true

	if opts.HasHeader {
		if _, err := cr.Read(); err != nil && err != io.EOF {
			return nil, nil, wrapCSVErr(err)
		}
	}

	var (
		features [][]float64
		labels   []int
	)

	enc := newLabelEncoding()
	labelCol := opts.LabelColumn

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, wrapCSVErr(err)
		}

		if labelCol < 0 {
			labelCol = len(record) - 1
		}
		if labelCol >= len(record) {
			return nil, nil, fmt.Errorf("%w: column %d of %d", ErrLabelColumn, labelCol, len(record))
		}

		row := make([]float64, 0, len(record)-1)
		label := 0

		for col, cell := range record {
			if col == labelCol {
				label, err = parseLabel(cell, enc)
				if err != nil {
					line, column := cr.FieldPos(col)
					return nil, nil, &RowError{Line: line, Column: column, Err: err}
				}
				continue
			}

			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				line, column := cr.FieldPos(col)
				return nil, nil, &RowError{Line: line, Column: column, Err: perr}
			}

			row = append(row, v)
		}

		features = append(features, row)
		labels = append(labels, label)

		if opts.MaxRows > 0 && len(features) >= opts.MaxRows {
			break
		}
	}

	if len(features) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", name, ErrNoRows)
	}

	ds, err := New(features, labels)
	if err != nil {
		return nil, nil, err
	}

	return ds, enc, nil
}

// parseLabel converts a label cell to its integer class id. Finite
// numeric cells are truncated toward zero; anything else is interned.
func parseLabel(cell string, enc *LabelEncoding) (int, error) {
	text := strings.TrimSpace(cell)

	if v, err := strconv.ParseFloat(text, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		label := int(v)
		if label < 0 {
			return 0, fmt.Errorf("%w: %d", ErrNegativeLabel, label)
		}
		return label, nil
	}

	return enc.Intern(text), nil
}

// openReader opens name through the source and stacks a decompressor
// for recognized compressed extensions.
func openReader(ctx context.Context, src source.Source, name string) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".csv"):
		return src.Open(ctx, name)

	case strings.HasSuffix(name, ".csv.gz"):
		rc, err := src.Open(ctx, name)
		if err != nil {
			return nil, err
		}

		zr, err := gzip.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, err
		}

		return &readCloser{
			Reader: zr,
			close: func() error {
				return errors.Join(zr.Close(), rc.Close())
			},
		}, nil

	case strings.HasSuffix(name, ".csv.zst"):
		rc, err := src.Open(ctx, name)
		if err != nil {
			return nil, err
		}

		zr, err := zstd.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, err
		}

		return &readCloser{
			Reader: zr,
			close: func() error {
				zr.Close()
				return rc.Close()
			},
		}, nil

	case strings.HasSuffix(name, ".csv.lz4"):
		rc, err := src.Open(ctx, name)
		if err != nil {
			return nil, err
		}

		return &readCloser{
			Reader: lz4.NewReader(rc),
			close:  rc.Close,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, name)
	}
}

// readCloser couples a decompressing reader with the closers that
// release it and the underlying stream.
type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error {
	return r.close()
}

// wrapCSVErr converts encoding/csv parse errors into RowError so every
// load failure shares one shape.
func wrapCSVErr(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &RowError{Line: pe.Line, Column: pe.Column, Err: pe.Err}
	}
	return err
}
