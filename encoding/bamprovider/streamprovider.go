package bamprovider

import (
	"io"
	"os"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	gbam "github.com/grailbio/bio-fragsize/encoding/bam"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// recordReader is implemented by both hts sam.Reader and hts bam.Reader.
type recordReader interface {
	Header() *sam.Header
	Read() (*sam.Record, error)
}

// StreamProvider implements Provider for a BAM or SAM stream. The input is
// opened lazily by the first call to GetHeader or NewIterator, and is read
// sequentially; no index is needed.
type StreamProvider struct {
	// Input is the source of the records.
	Input Input
	// Format is the container format of the input. Must be BAM or SAM.
	Format gbam.FileType
	// Stdin, if non-nil, replaces os.Stdin.
	Stdin io.Reader
	// Parallelism is passed to the BAM decoder.
	Parallelism int

	in       file.File // nil for stdin.
	bamr     *bam.Reader
	reader   recordReader
	header   *sam.Header
	opened   bool
	iterated bool
	nActive  int
	err      error
}

type streamIterator struct {
	provider *StreamProvider
	rec      *sam.Record
	nRecs    int64
	err      error
	done     bool
}

func (p *StreamProvider) setErr(err error) {
	if err != nil && p.err == nil {
		p.err = err
	}
}

// open prepares the reader. It is idempotent; a failed open is remembered in
// p.err.
func (p *StreamProvider) open() error {
	if p.opened {
		return p.err
	}
	p.opened = true

	var r io.Reader
	switch p.Input.Kind {
	case StandardStream:
		r = p.Stdin
		if r == nil {
			r = os.Stdin
		}
	default:
		ctx := vcontext.Background()
		in, err := file.Open(ctx, p.Input.Path)
		if err != nil {
			p.setErr(errors.Wrapf(err, "open %v", p.Input))
			return p.err
		}
		p.in = in
		r = in.Reader(ctx)
	}

	var err error
	switch p.Format {
	case gbam.SAM:
		p.reader, err = sam.NewReader(r)
	case gbam.BAM:
		p.bamr, err = bam.NewReader(r, p.Parallelism)
		if err == nil {
			p.reader = p.bamr
		}
	default:
		err = errors.Errorf("unsupported file type %v", p.Format)
	}
	if err != nil {
		p.setErr(errors.Wrapf(err, "%v: failed to open %v", p.Input, p.Format))
		return p.err
	}
	p.header = p.reader.Header()
	log.Debug.Printf("%v: opened as %v, %d references", p.Input, p.Format, len(p.header.Refs()))
	return nil
}

// GetHeader implements the Provider interface.
func (p *StreamProvider) GetHeader() (*sam.Header, error) {
	if err := p.open(); err != nil {
		return nil, err
	}
	return p.header, nil
}

// NewIterator implements the Provider interface.
func (p *StreamProvider) NewIterator() Iterator {
	if err := p.open(); err != nil {
		return NewErrorIterator(err)
	}
	if p.iterated {
		return NewErrorIterator(errors.Errorf("%v: the input can be iterated only once", p.Input))
	}
	p.iterated = true
	p.nActive++
	return &streamIterator{provider: p}
}

// Close implements the Provider interface.
func (p *StreamProvider) Close() error {
	if p.nActive > 0 {
		log.Panicf("%d iterators still active for %v", p.nActive, p.Input)
	}
	if p.bamr != nil {
		p.setErr(p.bamr.Close())
		p.bamr = nil
	}
	if p.in != nil {
		p.setErr(p.in.Close(vcontext.Background()))
		p.in = nil
	}
	p.reader = nil
	return p.err
}

// Scan implements the Iterator interface.
func (i *streamIterator) Scan() bool {
	if i.done || i.err != nil {
		return false
	}
	rec, err := i.provider.reader.Read()
	if err != nil {
		if err != io.EOF {
			i.err = errors.Wrapf(err, "%v: failed to read record #%d", i.provider.Input, i.nRecs)
		}
		i.done = true
		i.rec = nil
		return false
	}
	i.rec = rec
	i.nRecs++
	return true
}

// Record implements the Iterator interface.
func (i *streamIterator) Record() *sam.Record {
	return i.rec
}

// Err implements the Iterator interface.
func (i *streamIterator) Err() error {
	return i.err
}

// Close implements the Iterator interface.
func (i *streamIterator) Close() error {
	if i.provider == nil {
		log.Panicf("iterator closed twice")
	}
	p := i.provider
	p.nActive--
	p.setErr(i.err)
	i.provider = nil
	log.Debug.Printf("%v: read %d records", p.Input, i.nRecs)
	return i.err
}
