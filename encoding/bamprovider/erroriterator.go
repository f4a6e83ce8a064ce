package bamprovider

import (
	"github.com/grailbio/hts/sam"
)

// errorIterator stands in for a real iterator when the input cannot be
// scanned, e.g., it failed to open or it has already been iterated. Drivers
// treat it like any other iterator and pick up the error from Close.
type errorIterator struct {
	err error
}

func (i *errorIterator) Scan() bool   { return false }
func (i *errorIterator) Err() error   { return i.err }
func (i *errorIterator) Close() error { return i.err }

func (i *errorIterator) Record() *sam.Record {
	panic("bamprovider: Record called on an iterator that has no record")
}

// NewErrorIterator creates an Iterator that yields no record and reports err
// from Err and Close. StreamProvider returns one from NewIterator when the
// input fails to open or is iterated a second time.
func NewErrorIterator(err error) Iterator {
	return &errorIterator{err: err}
}
