// Package dataset manages an in-memory tabular dataset: the table itself,
// one validated label per column, and the cleaning and splitting operations
// applied on the way to a modeling-ready frame. The label map and the
// table's column set are kept exactly in sync; every structural mutation
// pairs the two.
package dataset

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/leapstack-labs/leapprep/pkg/label"
)

// Split partition names.
const (
	PartitionTrain    = "train"
	PartitionTest     = "test"
	PartitionValidate = "validate"
)

// Null-handling strategies accepted by HandleNulls.
const (
	StrategyDropRows    = "drop_rows"
	StrategyDropColumn  = "drop_column"
	StrategyFillAverage = "fill_average"
)

// Config holds dataset construction options.
type Config struct {
	// Path is the delimited data file to load (Open) or just a display name
	// for frames built in memory.
	Path string
	// Matrix is the compatibility matrix to validate labels against.
	// Nil means label.Default(). Validated on construction.
	Matrix label.Matrix
	// Delimiter is the field separator. Zero means comma.
	Delimiter rune
	// NullValues are the markers treated as null on load.
	NullValues []string
	// Logger is the structured logger (optional, discard if nil).
	Logger *slog.Logger
}

// Dataset owns a table and its column labels. Not safe for concurrent use;
// the design assumes a single writer per instance.
type Dataset struct {
	path         string
	df           dataframe.DataFrame
	matrix       label.Matrix
	labels       map[string]*label.ColumnLabel
	splitIndices map[string][]int
	isSplit      bool
	target       string
	logger       *slog.Logger
}

// Open loads a delimited file into a new Dataset and auto-labels every
// column.
func Open(cfg Config) (*Dataset, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()
	return Read(f, cfg)
}

// Read loads delimited data from r into a new Dataset. The first row is the
// header.
func Read(r io.Reader, cfg Config) (*Dataset, error) {
	opts := []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	}
	if cfg.Delimiter != 0 {
		opts = append(opts, dataframe.WithDelimiter(cfg.Delimiter))
	}
	if len(cfg.NullValues) > 0 {
		opts = append(opts, dataframe.NaNValues(cfg.NullValues))
	}
	df := dataframe.ReadCSV(r, opts...)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", df.Err)
	}
	return New(df, cfg)
}

// New wraps an existing frame in a Dataset, validating the matrix and
// auto-labeling every column.
func New(df dataframe.DataFrame, cfg Config) (*Dataset, error) {
	matrix := cfg.Matrix
	if matrix == nil {
		matrix = label.Default()
	}
	if err := matrix.Validate(); err != nil {
		return nil, fmt.Errorf("invalid compatibility matrix: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	d := &Dataset{
		path:         cfg.Path,
		df:           df,
		matrix:       matrix,
		labels:       make(map[string]*label.ColumnLabel, df.Ncol()),
		splitIndices: make(map[string][]int),
		logger:       logger,
	}
	for _, name := range df.Names() {
		l, err := d.assignLabel(df.Col(name))
		if err != nil {
			return nil, err
		}
		d.labels[name] = l
	}

	logger.Debug("dataset loaded", "path", cfg.Path, "rows", df.Nrow(), "columns", df.Ncol())
	return d, nil
}

// Path returns the dataset's source path.
func (d *Dataset) Path() string { return d.path }

// Columns returns the table's column names in order.
func (d *Dataset) Columns() []string { return d.df.Names() }

// Nrow returns the number of rows.
func (d *Dataset) Nrow() int { return d.df.Nrow() }

// Frame returns the underlying dataframe.
func (d *Dataset) Frame() dataframe.DataFrame { return d.df }

// Label returns the label for a column.
func (d *Dataset) Label(col string) (*label.ColumnLabel, error) {
	if err := d.checkColumn(col); err != nil {
		return nil, err
	}
	return d.labels[col], nil
}

// Target returns the supervised-learning target column, if set.
func (d *Dataset) Target() string { return d.target }

// IsSplit reports whether the dataset has been split.
func (d *Dataset) IsSplit() bool { return d.isSplit }

// SplitIndices returns the row indices of a partition. The second return is
// false if the partition does not exist (no split yet, or no validate set).
func (d *Dataset) SplitIndices(partition string) ([]int, bool) {
	idx, ok := d.splitIndices[partition]
	return idx, ok
}

// SetTarget marks a column as the supervised-learning target.
func (d *Dataset) SetTarget(col string) error {
	if err := d.checkColumn(col); err != nil {
		return err
	}
	d.target = col
	return nil
}

// WriteCSV writes the table, header included, to w.
func (d *Dataset) WriteCSV(w io.Writer) error {
	return d.df.WriteCSV(w, dataframe.WriteHeader(true))
}

// String renders the dataset summary: path, split state, and one
// "name - label" line per column in table order.
func (d *Dataset) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Path: %s\nIs split: %t\n\n", d.path, d.isSplit)
	for _, name := range d.df.Names() {
		fmt.Fprintf(&b, "%s - %s\n", name, d.labels[name])
	}
	return b.String()
}

// checkColumn fails with ColumnNotFoundError if the column is not in the
// table. The label map's key set is the table's column set, so the map is
// authoritative.
func (d *Dataset) checkColumn(col string) error {
	if _, ok := d.labels[col]; ok {
		return nil
	}
	return &ColumnNotFoundError{Column: col}
}

// DropColumns removes columns and their labels. All names are validated
// before any mutation.
func (d *Dataset) DropColumns(cols ...string) error {
	for _, col := range cols {
		if err := d.checkColumn(col); err != nil {
			return err
		}
	}
	for _, col := range cols {
		nd := d.df.Drop(col)
		if nd.Err != nil {
			return fmt.Errorf("failed to drop column %q: %w", col, nd.Err)
		}
		d.df = nd
		delete(d.labels, col)
	}
	d.logger.Debug("dropped columns", "columns", cols)
	return nil
}

// AddColumns appends every column of the given frame, auto-labeling each.
// Labels are inferred before the table is touched so a frame that cannot be
// labeled (an all-null column, say) leaves the dataset unchanged.
func (d *Dataset) AddColumns(toAdd dataframe.DataFrame) error {
	names := toAdd.Names()
	for _, name := range names {
		if _, exists := d.labels[name]; exists {
			return fmt.Errorf("column %q already exists in the dataset", name)
		}
	}
	newLabels := make(map[string]*label.ColumnLabel, len(names))
	for _, name := range names {
		l, err := d.assignLabel(toAdd.Col(name))
		if err != nil {
			return err
		}
		newLabels[name] = l
	}
	nd := d.df.CBind(toAdd)
	if nd.Err != nil {
		return fmt.Errorf("failed to add columns: %w", nd.Err)
	}
	d.df = nd
	for name, l := range newLabels {
		d.labels[name] = l
	}
	d.logger.Debug("added columns", "columns", names)
	return nil
}

// AddSeries appends a single column, auto-labeling it.
func (d *Dataset) AddSeries(s series.Series) error {
	if _, exists := d.labels[s.Name]; exists {
		return fmt.Errorf("column %q already exists in the dataset", s.Name)
	}
	l, err := d.assignLabel(s)
	if err != nil {
		return err
	}
	nd := d.df.Mutate(s)
	if nd.Err != nil {
		return fmt.Errorf("failed to add column %q: %w", s.Name, nd.Err)
	}
	d.df = nd
	d.labels[s.Name] = l
	d.logger.Debug("added column", "column", s.Name)
	return nil
}

// DropRows removes rows by index.
func (d *Dataset) DropRows(indices []int) error {
	n := d.df.Nrow()
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= n {
			return fmt.Errorf("row index %d out of range [0, %d)", i, n)
		}
		drop[i] = true
	}
	keep := make([]int, 0, n-len(drop))
	for i := 0; i < n; i++ {
		if !drop[i] {
			keep = append(keep, i)
		}
	}
	nd := d.df.Subset(keep)
	if nd.Err != nil {
		return fmt.Errorf("failed to drop rows: %w", nd.Err)
	}
	d.df = nd
	return nil
}

// DropNullRows removes every row where the given column is null.
func (d *Dataset) DropNullRows(col string) error {
	if err := d.checkColumn(col); err != nil {
		return err
	}
	var nulls []int
	for i, isNA := range d.df.Col(col).IsNaN() {
		if isNA {
			nulls = append(nulls, i)
		}
	}
	if len(nulls) == 0 {
		return nil
	}
	return d.DropRows(nulls)
}

// HandleNulls resolves null values in a column with one of the accepted
// strategies. Strategies are mutually exclusive; anything unrecognized fails
// with UnknownNullStrategyError.
func (d *Dataset) HandleNulls(col, strategy string) error {
	if err := d.checkColumn(col); err != nil {
		return err
	}
	switch strategy {
	case StrategyDropRows:
		return d.DropNullRows(col)
	case StrategyDropColumn:
		return d.DropColumns(col)
	case StrategyFillAverage:
		return d.fillAverage(col)
	default:
		return &UnknownNullStrategyError{Strategy: strategy}
	}
}

// fillAverage replaces nulls with the column mean, skipping nulls when
// computing it. Int columns are filled with the rounded mean so the stored
// values keep matching the label's type.
func (d *Dataset) fillAverage(col string) error {
	l := d.labels[col]
	t := l.Type()
	if t != label.TypeInt && t != label.TypeFloat {
		return fmt.Errorf("fill_average requires a numeric column, but %q is %s", col, t)
	}

	vals := d.df.Col(col).Float()
	var sum float64
	var count int
	for _, v := range vals {
		if !math.IsNaN(v) {
			sum += v
			count++
		}
	}
	if count == 0 {
		return fmt.Errorf("column %q has no non-null values to average", col)
	}
	mean := sum / float64(count)

	var filled series.Series
	if t == label.TypeInt {
		ints := make([]int, len(vals))
		for i, v := range vals {
			if math.IsNaN(v) {
				v = math.Round(mean)
			}
			ints[i] = int(v)
		}
		filled = series.New(ints, series.Int, col)
	} else {
		floats := make([]float64, len(vals))
		for i, v := range vals {
			if math.IsNaN(v) {
				v = mean
			}
			floats[i] = v
		}
		filled = series.New(floats, series.Float, col)
	}

	nd := d.df.Mutate(filled)
	if nd.Err != nil {
		return fmt.Errorf("failed to fill column %q: %w", col, nd.Err)
	}
	d.df = nd
	d.logger.Debug("filled nulls with average", "column", col, "mean", mean)
	return nil
}

// DummyOptions controls ToDummies.
type DummyOptions struct {
	// DropOriginal removes the source column after encoding.
	DropOriginal bool
	// DropFirst omits the first dummy column, useful for certain models.
	DropFirst bool
	// Prefix for dummy names; empty means the column name.
	Prefix string
	// PrefixSep separates prefix and value; empty means "_".
	PrefixSep string
}

// ToDummies one-hot encodes a column into 0/1 int columns, one per distinct
// non-null value in sorted order, appended through AddColumns so labels stay
// in sync.
func (d *Dataset) ToDummies(col string, opts DummyOptions) error {
	if err := d.checkColumn(col); err != nil {
		return err
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = col
	}
	sep := opts.PrefixSep
	if sep == "" {
		sep = "_"
	}

	s := d.df.Col(col)
	recs := s.Records()
	mask := s.IsNaN()

	seen := make(map[string]bool)
	var values []string
	for i, rec := range recs {
		if mask[i] || seen[rec] {
			continue
		}
		seen[rec] = true
		values = append(values, rec)
	}
	sort.Strings(values)
	if opts.DropFirst && len(values) > 0 {
		values = values[1:]
	}

	if len(values) > 0 {
		dummies := make([]series.Series, len(values))
		for vi, v := range values {
			ints := make([]int, len(recs))
			for i, rec := range recs {
				if !mask[i] && rec == v {
					ints[i] = 1
				}
			}
			dummies[vi] = series.New(ints, series.Int, prefix+sep+v)
		}
		if err := d.AddColumns(dataframe.New(dummies...)); err != nil {
			return err
		}
	}

	if opts.DropOriginal {
		return d.DropColumns(col)
	}
	return nil
}

// Split partitions row indices into train/test and optionally validate sets
// with a seeded shuffle. The validate partition exists only when its
// fraction is positive.
func (d *Dataset) Split(test, validate float64, seed int64) error {
	if test < 0 || validate < 0 || test+validate >= 1 {
		return fmt.Errorf("invalid split fractions: test=%v, validate=%v (must be non-negative and sum below 1)", test, validate)
	}

	n := d.df.Nrow()
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	testSize := int(test * float64(n))
	valSize := int(validate * float64(n))

	d.splitIndices = map[string][]int{
		PartitionTest:  perm[:testSize],
		PartitionTrain: perm[testSize+valSize:],
	}
	if validate > 0 {
		d.splitIndices[PartitionValidate] = perm[testSize : testSize+valSize]
	}
	d.isSplit = true

	d.logger.Debug("dataset split",
		"train", len(d.splitIndices[PartitionTrain]),
		"test", testSize,
		"validate", valSize,
		"seed", seed)
	return nil
}
