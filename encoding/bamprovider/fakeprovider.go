package bamprovider

import (
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// fakeProvider is only for unittests. It yields the given records.
type fakeProvider struct {
	header   *sam.Header
	recs     []*sam.Record
	iterated bool
}

type fakeIterator struct {
	recs []*sam.Record
	rec  *sam.Record
}

// NewFakeProvider creates a provider that returns "header" in response to a
// GetHeader() call, and recs, in order, from the iterator. Like the real
// provider, it can be iterated only once.
func NewFakeProvider(header *sam.Header, recs []*sam.Record) Provider {
	return &fakeProvider{header: header, recs: recs}
}

// GetHeader implements the Provider interface. It returns the header passed to
// the constructor.
func (b *fakeProvider) GetHeader() (*sam.Header, error) {
	return b.header, nil
}

// Close implements the Provider interface.
func (b *fakeProvider) Close() error {
	return nil
}

// NewIterator implements the Provider interface.
func (b *fakeProvider) NewIterator() Iterator {
	if b.iterated {
		return NewErrorIterator(errors.New("fake provider: the input can be iterated only once"))
	}
	b.iterated = true
	return &fakeIterator{recs: b.recs}
}

// Err implements the Iterator interface.
func (i *fakeIterator) Err() error {
	return nil
}

// Close implements the Iterator interface.
func (i *fakeIterator) Close() error {
	return nil
}

// Scan implements the Iterator interface.
func (i *fakeIterator) Scan() bool {
	if len(i.recs) == 0 {
		return false
	}
	i.rec = i.recs[0]
	i.recs = i.recs[1:]
	return true
}

// Record implements the Iterator interface.
func (i *fakeIterator) Record() *sam.Record {
	// Return a copy so that the code under test cannot alter the
	// original test input data.
	copy := sam.GetFromFreePool()
	*copy = *i.rec
	return copy
}
