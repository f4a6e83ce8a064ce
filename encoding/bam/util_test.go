package bam

import (
	"testing"

	"github.com/grailbio/hts/sam"
	"github.com/stretchr/testify/assert"
)

func TestIsFirstOfProperPair(t *testing.T) {
	tests := []struct {
		flags sam.Flags
		want  bool
	}{
		{sam.Paired | sam.ProperPair | sam.Read1, true},
		{sam.ProperPair | sam.Read1 | sam.Reverse, true},
		{sam.Paired | sam.ProperPair | sam.Read2, false},
		{sam.Paired | sam.Read1, false},
		{sam.ProperPair, false},
		{0, false},
	}
	for _, test := range tests {
		r := &sam.Record{Flags: test.flags}
		assert.Equalf(t, test.want, IsFirstOfProperPair(r), "flags: %v", test.flags)
	}
}

func TestFileType(t *testing.T) {
	assert.Equal(t, BAM, GuessFileType("foo.bam"))
	assert.Equal(t, SAM, GuessFileType("/tmp/foo.sam"))
	assert.Equal(t, Unknown, GuessFileType("foo.cram"))
	assert.Equal(t, Unknown, GuessFileType("-"))
	assert.Equal(t, SAM, ParseFileType("SAM"))
	assert.Equal(t, BAM, ParseFileType("bam"))
	assert.Equal(t, Unknown, ParseFileType("pam"))
	assert.Equal(t, "sam", SAM.String())
}
