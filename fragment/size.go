package fragment

import "github.com/grailbio/hts/sam"

// SizeOf returns the absolute value of a signed template length. The result is
// widened to uint64, so the absolute value of the most negative int does not
// overflow.
func SizeOf(tlen int) uint64 {
	if tlen >= 0 {
		return uint64(tlen)
	}
	return uint64(-(tlen + 1)) + 1
}

// Size returns the fragment size of the record, i.e., |r.TempLen|.
func Size(r *sam.Record) uint64 {
	return SizeOf(r.TempLen)
}
