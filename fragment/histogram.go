package fragment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/biogo/store/llrb"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/bio-fragsize/encoding/bamprovider"
)

// bucket is the count for one fragment size. It is stored in an llrb.Tree
// ordered by size.
type bucket struct {
	size uint64
	n    uint64
}

// Compare compares two buckets by size, for use in llrb.
func (b *bucket) Compare(c llrb.Comparable) int {
	b2 := c.(*bucket)
	switch {
	case b.size < b2.size:
		return -1
	case b.size > b2.size:
		return 1
	}
	return 0
}

// Histogram counts fragment sizes in [0, ceiling]. Only sizes that have been
// observed have a bucket.
type Histogram struct {
	ceiling uint64
	buckets llrb.Tree
	dropped uint64
}

// NewHistogram creates an empty histogram. Sizes larger than ceiling are
// ignored by Add.
func NewHistogram(ceiling int64) (*Histogram, error) {
	if ceiling < 0 {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("histogram: negative ceiling %d", ceiling))
	}
	return &Histogram{ceiling: uint64(ceiling)}, nil
}

// Ceiling returns the largest size counted by the histogram.
func (h *Histogram) Ceiling() uint64 { return h.ceiling }

// Add increments the bucket for size. It is a no-op if size exceeds the
// ceiling.
func (h *Histogram) Add(size uint64) {
	if size > h.ceiling {
		h.dropped++
		return
	}
	if c := h.buckets.Get(&bucket{size: size}); c != nil {
		c.(*bucket).n++
		return
	}
	h.buckets.Insert(&bucket{size: size, n: 1})
}

// Count returns the number of times size was added.
func (h *Histogram) Count(size uint64) uint64 {
	if c := h.buckets.Get(&bucket{size: size}); c != nil {
		return c.(*bucket).n
	}
	return 0
}

// Len returns the number of populated buckets.
func (h *Histogram) Len() int { return h.buckets.Len() }

// Dropped returns the number of sizes ignored because they exceeded the
// ceiling.
func (h *Histogram) Dropped() uint64 { return h.dropped }

// Do calls fn for each populated bucket in ascending size order.
func (h *Histogram) Do(fn func(size, n uint64)) {
	h.buckets.Do(func(c llrb.Comparable) bool {
		b := c.(*bucket)
		fn(b.size, b.n)
		return false
	})
}

// Write prints the histogram to w as CSV with header "size,n", one row per
// populated bucket, in ascending size order.
func (h *Histogram) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"size", "n"}); err != nil {
		return err
	}
	var err error
	h.Do(func(size, n uint64) {
		if err == nil {
			err = cw.Write([]string{strconv.FormatUint(size, 10), strconv.FormatUint(n, 10)})
		}
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// BuildHistogram adds the size of every record in iter to h. It closes iter.
func BuildHistogram(iter bamprovider.Iterator, h *Histogram) error {
	for iter.Scan() {
		h.Add(Size(iter.Record()))
	}
	return iter.Close()
}
