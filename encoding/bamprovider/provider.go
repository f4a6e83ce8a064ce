package bamprovider

import (
	"io"

	gbam "github.com/grailbio/bio-fragsize/encoding/bam"
	"github.com/grailbio/hts/sam"
)

// StdinPath is the command-line pathname that denotes the standard input.
const StdinPath = "-"

// InputKind distinguishes a named file from the standard input.
type InputKind int

const (
	// FilePath reads from a named file. The path may be any pathname accepted
	// by github.com/grailbio/base/file.
	FilePath InputKind = iota
	// StandardStream reads from the standard input.
	StandardStream
)

// Input identifies the source of alignment records.
type Input struct {
	Kind InputKind
	// Path is the pathname of the file. It is empty for StandardStream.
	Path string
}

// ParseInput resolves a command-line argument into an Input. StdinPath means
// the standard input; anything else is a file path.
func ParseInput(arg string) Input {
	if arg == StdinPath {
		return Input{Kind: StandardStream}
	}
	return Input{Kind: FilePath, Path: arg}
}

// String returns the path, or "(stdin)".
func (in Input) String() string {
	if in.Kind == StandardStream {
		return "(stdin)"
	}
	return in.Path
}

// FileType returns the container format of the input. The standard input is
// always read as BAM unless ProviderOpts.Format says otherwise.
func (in Input) FileType() gbam.FileType {
	if in.Kind == StandardStream {
		return gbam.BAM
	}
	if t := gbam.GuessFileType(in.Path); t != gbam.Unknown {
		return t
	}
	return gbam.BAM
}

// ProviderOpts defines options for NewProvider.
type ProviderOpts struct {
	// Format overrides the container format guessed from the input.
	Format gbam.FileType

	// Stdin, if non-nil, replaces os.Stdin for StandardStream inputs.
	Stdin io.Reader

	// Parallelism is the number of decompression goroutines used by the BAM
	// decoder. Values <= 0 mean 1.
	Parallelism int
}

// Provider reads the header and the records of one alignment input. Thread
// compatible.
type Provider interface {
	// GetHeader returns the header of the input. The callee must not modify
	// the returned header object.
	//
	// REQUIRES: Close has not been called.
	GetHeader() (*sam.Header, error)

	// NewIterator returns an iterator over all the records in the input, in
	// input order. Inputs are read exactly once: a second call returns an
	// iterator that yields no record and reports an error.
	//
	// REQUIRES: Close has not been called.
	NewIterator() Iterator

	// Close must be called exactly once. It returns any error encountered
	// by the provider, or any iterator created by the provider.
	//
	// REQUIRES: All the iterators created by NewIterator have been closed.
	Close() error
}

// Iterator iterates over sam.Records in input order. Thread compatible.
type Iterator interface {
	// Scan returns where there are any records remaining in the iterator,
	// and if so, advances the iterator to the next record. If the iterator
	// reaches the end of the input, Scan() returns false.  If an error
	// occurs, Scan() returns false and the error can be retrieved by
	// calling Err().
	//
	// REQUIRES: Close has not been called.
	Scan() bool

	// Record returns the current record in the iterator. This must be
	// called only after a call to Scan() returns true.
	//
	// REQUIRES: Close has not been called.
	Record() *sam.Record

	// Err returns the error encoutered during iteration, or nil if no error
	// occurred.  An io.EOF error will be translated to nil.
	Err() error

	// Close must be called exactly once. It returns the value of Err().
	Close() error
}

func mergeOpts(optList []ProviderOpts) ProviderOpts {
	opts := ProviderOpts{}
	for _, o := range optList {
		if o.Format != gbam.Unknown {
			opts.Format = o.Format
		}
		if o.Stdin != nil {
			opts.Stdin = o.Stdin
		}
		if o.Parallelism > 0 {
			opts.Parallelism = o.Parallelism
		}
	}
	return opts
}

// NewProvider creates a Provider object that reads the given input. The
// container format is autodetected from the path unless opts say otherwise.
func NewProvider(in Input, optList ...ProviderOpts) Provider {
	opts := mergeOpts(optList)
	format := opts.Format
	if format == gbam.Unknown {
		format = in.FileType()
	}
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}
	return &StreamProvider{
		Input:       in,
		Format:      format,
		Stdin:       opts.Stdin,
		Parallelism: parallelism,
	}
}
