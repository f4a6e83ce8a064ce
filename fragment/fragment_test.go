package fragment_test

import (
	"fmt"
	"testing"

	"github.com/grailbio/hts/sam"
	"github.com/stretchr/testify/require"
)

// memSink is a gbam.Writer that keeps the records in memory.
type memSink struct {
	recs   []*sam.Record
	closed bool
	err    error
}

func (s *memSink) Write(r *sam.Record) error {
	if s.err != nil {
		return s.err
	}
	s.recs = append(s.recs, r)
	return nil
}

func (s *memSink) Close() error {
	s.closed = true
	return nil
}

func (s *memSink) names() []string {
	names := []string{}
	for _, r := range s.recs {
		names = append(names, r.Name)
	}
	return names
}

func newHeader(t *testing.T) *sam.Header {
	chr1, err := sam.NewReference("chr1", "", "", 1000000, nil, nil)
	require.NoError(t, err)
	header, err := sam.NewHeader(nil, []*sam.Reference{chr1})
	require.NoError(t, err)
	return header
}

// newRecord creates a properly paired R1 record with the given template length.
func newRecord(t *testing.T, header *sam.Header, name string, tlen int) *sam.Record {
	ref := header.Refs()[0]
	r, err := sam.NewRecord(name, ref, ref, 1000, 1100, tlen, 60,
		[]sam.CigarOp{sam.NewCigarOp(sam.CigarMatch, 4)},
		[]byte("ACGT"), []byte{30, 30, 30, 30}, nil)
	require.NoError(t, err)
	r.Flags = sam.Paired | sam.ProperPair | sam.Read1
	return r
}

// newRecords creates one record per tlen, named "r0", "r1", ...
func newRecords(t *testing.T, header *sam.Header, tlens ...int) []*sam.Record {
	recs := make([]*sam.Record, len(tlens))
	for i, tlen := range tlens {
		recs[i] = newRecord(t, header, fmt.Sprintf("r%d", i), tlen)
	}
	return recs
}
