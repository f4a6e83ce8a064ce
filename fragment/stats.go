package fragment

import "fmt"

// Stats counts records seen by one of the drivers in this package.
type Stats struct {
	// Records is the number of records read from the input.
	Records int64
	// Written is the number of record writes. With multimembership
	// splitting, one record may be written more than once.
	Written int64
	// Dropped is the number of records that were not written anywhere.
	Dropped int64
}

// Merge adds the field values of the two Stats objects and creates new Stats.
func (s Stats) Merge(o Stats) Stats {
	s.Records += o.Records
	s.Written += o.Written
	s.Dropped += o.Dropped
	return s
}

// String returns a one-line description suitable for logging.
func (s Stats) String() string {
	return fmt.Sprintf("%d records read, %d written, %d dropped", s.Records, s.Written, s.Dropped)
}
