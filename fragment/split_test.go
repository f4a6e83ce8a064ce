package fragment_test

import (
	"testing"

	"github.com/grailbio/base/errors"
	gbam "github.com/grailbio/bio-fragsize/encoding/bam"
	"github.com/grailbio/bio-fragsize/encoding/bamprovider"
	"github.com/grailbio/bio-fragsize/fragment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// overlapping ranges: [0,150] and [50,300].
var overlapping = fragment.Ranges{{Min: 0, Max: 150}, {Min: 50, Max: 300}}

func newSplitter(t *testing.T, multi bool) (*fragment.Splitter, []*memSink) {
	sinks := []*memSink{{}, {}}
	s, err := fragment.NewSplitter(overlapping, []gbam.Writer{sinks[0], sinks[1]}, multi)
	require.NoError(t, err)
	return s, sinks
}

func TestSplitFirstMatch(t *testing.T) {
	header := newHeader(t)
	s, sinks := newSplitter(t, false)
	recs := newRecords(t, header, 100, -200, 400, 10, -150)
	stats, err := fragment.Split(bamprovider.NewFakeProvider(header, recs).NewIterator(), s)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.Equal(t, []string{"r0", "r3", "r4"}, sinks[0].names())
	assert.Equal(t, []string{"r1"}, sinks[1].names())
	assert.Equal(t, fragment.Stats{Records: 5, Written: 4, Dropped: 1}, stats)
	assert.Equal(t, []int64{3, 1}, s.Counts())
	assert.True(t, sinks[0].closed)
	assert.True(t, sinks[1].closed)
}

func TestSplitMulti(t *testing.T) {
	header := newHeader(t)
	s, sinks := newSplitter(t, true)
	recs := newRecords(t, header, 100, -200, 400, 10, -150)
	stats, err := fragment.Split(bamprovider.NewFakeProvider(header, recs).NewIterator(), s)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.Equal(t, []string{"r0", "r3", "r4"}, sinks[0].names())
	assert.Equal(t, []string{"r0", "r1", "r4"}, sinks[1].names())
	assert.Equal(t, fragment.Stats{Records: 5, Written: 6, Dropped: 1}, stats)
}

func TestSplitNoMatch(t *testing.T) {
	header := newHeader(t)
	s, sinks := newSplitter(t, true)
	n, err := s.Route(newRecord(t, header, "big", 400))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, sinks[0].recs)
	assert.Empty(t, sinks[1].recs)
}

func TestSplitWriteError(t *testing.T) {
	header := newHeader(t)
	s, sinks := newSplitter(t, false)
	sinks[0].err = errors.E("disk full")
	_, err := fragment.Split(bamprovider.NewFakeProvider(header, newRecords(t, header, 100)).NewIterator(), s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestNewSplitterMismatch(t *testing.T) {
	_, err := fragment.NewSplitter(overlapping, []gbam.Writer{&memSink{}}, false)
	assert.Error(t, err)
}
