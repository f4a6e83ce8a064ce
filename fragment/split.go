package fragment

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	gbam "github.com/grailbio/bio-fragsize/encoding/bam"
	"github.com/grailbio/bio-fragsize/encoding/bamprovider"
	"github.com/grailbio/hts/sam"
)

// Splitter routes records to one sink per range.
type Splitter struct {
	ranges Ranges
	sinks  []gbam.Writer
	multi  bool
	// counts[i] is the number of records written to sinks[i].
	counts []int64
}

// NewSplitter creates a Splitter. sinks[i] receives the records for
// ranges[i]. If multi is false, a record is written to the first range that
// contains its size. If multi is true, it is written to every such range. The
// splitter takes ownership of the sinks; call Close to close them.
func NewSplitter(ranges Ranges, sinks []gbam.Writer, multi bool) (*Splitter, error) {
	if len(ranges) != len(sinks) {
		return nil, errors.E(errors.Invalid,
			fmt.Sprintf("splitter: %d ranges, but %d sinks", len(ranges), len(sinks)))
	}
	return &Splitter{
		ranges: ranges,
		sinks:  sinks,
		multi:  multi,
		counts: make([]int64, len(ranges)),
	}, nil
}

// Route writes r to the matching sinks and returns the number of writes. A
// record that matches no range is silently dropped.
func (s *Splitter) Route(r *sam.Record) (int, error) {
	size := Size(r)
	n := 0
	for i, rng := range s.ranges {
		if !rng.Contains(size) {
			continue
		}
		if err := s.sinks[i].Write(r); err != nil {
			return n, errors.E(err, fmt.Sprintf("write record %s to range %v", r.Name, rng))
		}
		s.counts[i]++
		n++
		if !s.multi {
			break
		}
	}
	return n, nil
}

// Counts returns the number of records written to each range, in range order.
func (s *Splitter) Counts() []int64 {
	return s.counts
}

// Close closes all the sinks. It returns the first error encountered.
func (s *Splitter) Close() error {
	var err errors.Once
	for i, w := range s.sinks {
		log.Debug.Printf("range %v: %d records", s.ranges[i], s.counts[i])
		err.Set(w.Close())
	}
	return err.Err()
}

// Split routes every record in iter through s. It closes iter, but not s.
func Split(iter bamprovider.Iterator, s *Splitter) (Stats, error) {
	var (
		stats Stats
		err   errors.Once
	)
	for iter.Scan() {
		stats.Records++
		n, e := s.Route(iter.Record())
		stats.Written += int64(n)
		if e != nil {
			err.Set(e)
			break
		}
		if n == 0 {
			stats.Dropped++
		}
	}
	err.Set(iter.Close())
	return stats, err.Err()
}
