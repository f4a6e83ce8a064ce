package fragment

import (
	"fmt"

	"github.com/grailbio/base/errors"
	gbam "github.com/grailbio/bio-fragsize/encoding/bam"
	"github.com/grailbio/bio-fragsize/encoding/bamprovider"
	"github.com/grailbio/hts/sam"
)

// Filter is a two-sided threshold on the fragment size. Both bounds are
// inclusive. The upper bound is optional.
type Filter struct {
	// Above is the lower bound.
	Above uint64
	// Below is the upper bound. It is meaningful only if HasBelow is set.
	Below uint64
	// HasBelow enables the upper bound.
	HasBelow bool
}

// Validate checks that the filter can keep at least one size.
func (f Filter) Validate() error {
	if f.HasBelow && f.Below < f.Above {
		return errors.E(errors.Invalid,
			fmt.Sprintf("fragment filter: upper bound %d is smaller than lower bound %d", f.Below, f.Above))
	}
	return nil
}

// Keep reports whether a fragment of the given size passes the filter.
func (f Filter) Keep(size uint64) bool {
	if size < f.Above {
		return false
	}
	return !f.HasBelow || size <= f.Below
}

// KeepRecord reports whether the record passes the filter.
func (f Filter) KeepRecord(r *sam.Record) bool {
	return f.Keep(Size(r))
}

// FilterRecords writes every record in iter that passes the filter to w, in
// input order. It closes iter, but not w. Any read or write error aborts the
// run.
func FilterRecords(iter bamprovider.Iterator, w gbam.Writer, f Filter) (Stats, error) {
	var (
		stats Stats
		err   errors.Once
	)
	for iter.Scan() {
		rec := iter.Record()
		stats.Records++
		if !f.KeepRecord(rec) {
			stats.Dropped++
			continue
		}
		if e := w.Write(rec); e != nil {
			err.Set(errors.E(e, "write record", rec.Name))
			break
		}
		stats.Written++
	}
	err.Set(iter.Close())
	return stats, err.Err()
}
