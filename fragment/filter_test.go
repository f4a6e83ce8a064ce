package fragment_test

import (
	"errors"
	"testing"

	"github.com/grailbio/bio-fragsize/encoding/bamprovider"
	"github.com/grailbio/bio-fragsize/fragment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterKeep(t *testing.T) {
	tests := []struct {
		f    fragment.Filter
		size uint64
		want bool
	}{
		{fragment.Filter{}, 0, true},
		{fragment.Filter{}, 1 << 40, true},
		{fragment.Filter{Above: 100}, 99, false},
		{fragment.Filter{Above: 100}, 100, true},
		{fragment.Filter{Above: 100}, 101, true},
		{fragment.Filter{Above: 100, Below: 200, HasBelow: true}, 99, false},
		{fragment.Filter{Above: 100, Below: 200, HasBelow: true}, 100, true},
		{fragment.Filter{Above: 100, Below: 200, HasBelow: true}, 200, true},
		{fragment.Filter{Above: 100, Below: 200, HasBelow: true}, 201, false},
		{fragment.Filter{Below: 0, HasBelow: true}, 0, true},
		{fragment.Filter{Below: 0, HasBelow: true}, 1, false},
	}
	for _, test := range tests {
		assert.Equalf(t, test.want, test.f.Keep(test.size), "filter: %+v, size: %d", test.f, test.size)
	}
}

func TestFilterIgnoresSign(t *testing.T) {
	header := newHeader(t)
	filters := []fragment.Filter{
		{},
		{Above: 120},
		{Below: 119, HasBelow: true},
		{Above: 50, Below: 150, HasBelow: true},
	}
	for _, f := range filters {
		for _, tlen := range []int{0, 1, 119, 120, 121, 150, 1000} {
			pos := newRecord(t, header, "pos", tlen)
			neg := newRecord(t, header, "neg", -tlen)
			assert.Equalf(t, f.KeepRecord(pos), f.KeepRecord(neg), "filter: %+v, tlen: %d", f, tlen)
		}
	}
}

func TestFilterValidate(t *testing.T) {
	assert.NoError(t, fragment.Filter{}.Validate())
	assert.NoError(t, fragment.Filter{Above: 10, Below: 10, HasBelow: true}.Validate())
	assert.Error(t, fragment.Filter{Above: 11, Below: 10, HasBelow: true}.Validate())
	// Below is ignored unless HasBelow is set.
	assert.NoError(t, fragment.Filter{Above: 11, Below: 10}.Validate())
}

func TestFilterRecordsIdentity(t *testing.T) {
	header := newHeader(t)
	for _, tlens := range [][]int{
		{},
		{0},
		{-300, 0, 5, 120, 1 << 20, -7},
	} {
		recs := newRecords(t, header, tlens...)
		sink := &memSink{}
		stats, err := fragment.FilterRecords(bamprovider.NewFakeProvider(header, recs).NewIterator(), sink, fragment.Filter{})
		require.NoError(t, err)
		require.Len(t, sink.recs, len(recs))
		for i := range recs {
			assert.Equal(t, recs[i].Name, sink.recs[i].Name)
			assert.Equal(t, recs[i].TempLen, sink.recs[i].TempLen)
		}
		assert.Equal(t, fragment.Stats{Records: int64(len(recs)), Written: int64(len(recs))}, stats)
	}
}

func TestFilterRecords(t *testing.T) {
	header := newHeader(t)
	recs := newRecords(t, header, 50, -119, 120, -121, 300, 80)
	sink := &memSink{}
	f := fragment.Filter{Above: 80, Below: 120, HasBelow: true}
	stats, err := fragment.FilterRecords(bamprovider.NewFakeProvider(header, recs).NewIterator(), sink, f)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2", "r5"}, sink.names())
	assert.Equal(t, fragment.Stats{Records: 6, Written: 3, Dropped: 3}, stats)
}

func TestFilterRecordsWriteError(t *testing.T) {
	header := newHeader(t)
	recs := newRecords(t, header, 50, 60)
	sink := &memSink{err: errors.New("disk full")}
	_, err := fragment.FilterRecords(bamprovider.NewFakeProvider(header, recs).NewIterator(), sink, fragment.Filter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestFilterRecordsReadError(t *testing.T) {
	sink := &memSink{}
	_, err := fragment.FilterRecords(bamprovider.NewErrorIterator(errors.New("corrupt")), sink, fragment.Filter{})
	assert.EqualError(t, err, "corrupt")
	assert.Empty(t, sink.recs)
}
