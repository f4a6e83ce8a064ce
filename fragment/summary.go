package fragment

import (
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/bio-fragsize/encoding/bamprovider"
)

// Field selects what SummaryResult.Write prints.
type Field int

const (
	// FieldAll prints all four statistics, one labeled line each.
	FieldAll Field = iota
	// FieldMin prints the minimum size.
	FieldMin
	// FieldMax prints the maximum size.
	FieldMax
	// FieldMean prints the running mean.
	FieldMean
	// FieldCount prints the number of records.
	FieldCount
)

// SelectField converts a set of command-line switches into a Field. At most
// one switch may be set; no switch means FieldAll.
func SelectField(wantMin, wantMax, wantMean, wantCount bool) (Field, error) {
	field := FieldAll
	n := 0
	for _, c := range []struct {
		set   bool
		field Field
	}{{wantMin, FieldMin}, {wantMax, FieldMax}, {wantMean, FieldMean}, {wantCount, FieldCount}} {
		if c.set {
			field = c.field
			n++
		}
	}
	if n > 1 {
		return FieldAll, errors.E(errors.Invalid,
			fmt.Sprintf("summary: at most one of min, max, mean and count may be selected, but got %d", n))
	}
	return field, nil
}

// SummaryResult holds the statistics of a set of fragment sizes. All fields
// are zero if no record was observed. Note that this is indistinguishable
// from a run where every size was zero.
type SummaryResult struct {
	Min, Max, Mean, Count uint64
}

// Write prints the result to w. For FieldAll it prints the lines "min: N",
// "max: N", "mean: N" and "reads: N". Otherwise it prints the selected value
// alone.
func (r SummaryResult) Write(w io.Writer, field Field) error {
	var err error
	switch field {
	case FieldAll:
		_, err = fmt.Fprintf(w, "min: %d\nmax: %d\nmean: %d\nreads: %d\n", r.Min, r.Max, r.Mean, r.Count)
	case FieldMin:
		_, err = fmt.Fprintf(w, "%d\n", r.Min)
	case FieldMax:
		_, err = fmt.Fprintf(w, "%d\n", r.Max)
	case FieldMean:
		_, err = fmt.Fprintf(w, "%d\n", r.Mean)
	case FieldCount:
		_, err = fmt.Fprintf(w, "%d\n", r.Count)
	default:
		err = errors.E(errors.Invalid, fmt.Sprintf("summary: unknown field %d", field))
	}
	return err
}

// summaryState is the running state of a non-empty Summary.
type summaryState struct {
	min, max, mean, count uint64
}

// Summary computes SummaryResult in one pass and O(1) space. The zero value
// is an empty summary.
type Summary struct {
	state *summaryState
}

// Add adds one fragment size.
func (s *Summary) Add(size uint64) {
	st := s.state
	if st == nil {
		s.state = &summaryState{min: size, max: size, mean: size, count: 1}
		return
	}
	if size < st.min {
		st.min = size
	}
	if size > st.max {
		st.max = size
	}
	st.count++
	// mean += (size - mean) / count, truncated toward zero.
	if size >= st.mean {
		st.mean += (size - st.mean) / st.count
	} else {
		st.mean -= (st.mean - size) / st.count
	}
}

// Result returns the statistics of the sizes added so far.
func (s *Summary) Result() SummaryResult {
	if s.state == nil {
		return SummaryResult{}
	}
	return SummaryResult{Min: s.state.min, Max: s.state.max, Mean: s.state.mean, Count: s.state.count}
}

// Summarize computes the statistics of all the records in iter. It closes
// iter.
func Summarize(iter bamprovider.Iterator) (SummaryResult, error) {
	var s Summary
	for iter.Scan() {
		s.Add(Size(iter.Record()))
	}
	if err := iter.Close(); err != nil {
		return SummaryResult{}, err
	}
	return s.Result(), nil
}
