package interval

import (
	"io"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	gbam "github.com/grailbio/bio-fragsize/encoding/bam"
	"github.com/grailbio/bio-fragsize/encoding/bamprovider"
	"github.com/grailbio/bio-fragsize/fragment"
	"github.com/grailbio/hts/sam"
)

// BEDPE3 is the interval covered by one sequenced fragment. Start and End
// use the 0-based coordinates of the alignment records.
type BEDPE3 struct {
	Chrom      string
	Start, End uint64
}

// Selected reports whether r represents its fragment, i.e., it is the first
// read of a proper pair.
func Selected(r *sam.Record) bool {
	return gbam.IsFirstOfProperPair(r)
}

// FromRecord computes the fragment interval of r. It fails if r's reference
// cannot be resolved in header.
func FromRecord(header *sam.Header, r *sam.Record) (BEDPE3, error) {
	chrom, err := bamprovider.RefName(header, r.Ref.ID())
	if err != nil {
		return BEDPE3{}, errors.E(err, "bedpe", r.Name)
	}
	start := r.Pos
	if r.MatePos < start {
		start = r.MatePos
	}
	if start < 0 {
		start = 0
	}
	s := uint64(start)
	return BEDPE3{Chrom: chrom, Start: s, End: s + fragment.Size(r)}, nil
}

// Convert writes one BEDPE3 line for every selected record in iter to w. It
// closes iter. If w reports a broken pipe, i.e., the reader went away,
// Convert stops and returns nil.
func Convert(iter bamprovider.Iterator, header *sam.Header, w io.Writer) (fragment.Stats, error) {
	var (
		stats fragment.Stats
		err   errors.Once
		out   = tsv.NewWriter(w)
	)
	for iter.Scan() {
		r := iter.Record()
		stats.Records++
		if !Selected(r) {
			stats.Dropped++
			continue
		}
		iv, e := FromRecord(header, r)
		if e != nil {
			err.Set(e)
			break
		}
		out.WriteString(iv.Chrom)
		out.WriteString(strconv.FormatUint(iv.Start, 10))
		out.WriteString(strconv.FormatUint(iv.End, 10))
		if e := out.EndLine(); e != nil {
			if IsBrokenPipe(e) {
				log.Debug.Printf("bedpe: output closed after %d intervals", stats.Written)
				return stats, iter.Close()
			}
			err.Set(errors.E(e, "bedpe: write"))
			break
		}
		stats.Written++
	}
	if err.Err() == nil {
		if e := out.Flush(); e != nil && !IsBrokenPipe(e) {
			err.Set(errors.E(e, "bedpe: flush"))
		}
	}
	err.Set(iter.Close())
	return stats, err.Err()
}
