// Package bamprovider provides utilities for scanning a BAM or SAM stream
// sequentially.
//
// The Provider is an interface for reading the header and the records of a
// single alignment input, which is either a file or the standard input. The
// input is resolved once, by ParseInput, into an Input value.
package bamprovider
