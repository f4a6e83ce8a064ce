package cmd

import (
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	gbam "github.com/grailbio/bio-fragsize/encoding/bam"
	"github.com/grailbio/bio-fragsize/encoding/bamprovider"
	"github.com/grailbio/bio-fragsize/fragment"
	"github.com/grailbio/hts/sam"
)

type filterOpts struct {
	// above is the inclusive lower bound.
	above int64
	// below is the inclusive upper bound. Negative means unbounded.
	below int64
	// out is the output path, or "-" for stdout.
	out string
	// parallelism is the number of BAM compression goroutines.
	parallelism int
}

func (o filterOpts) filter() (fragment.Filter, error) {
	if o.above < 0 {
		return fragment.Filter{}, errors.E(errors.Invalid, fmt.Sprintf("filter: negative lower bound %d", o.above))
	}
	f := fragment.Filter{Above: uint64(o.above)}
	if o.below >= 0 {
		f.Below = uint64(o.below)
		f.HasBelow = true
	}
	return f, f.Validate()
}

func filter(opts filterOpts, arg string, stdin io.Reader, stdout io.Writer) error {
	f, err := opts.filter()
	if err != nil {
		return err
	}
	return withInput(arg, stdin, func(in bamprovider.Input, p bamprovider.Provider, header *sam.Header) error {
		format := gbam.Unknown
		if opts.out == gbam.StdoutPath {
			format = in.FileType()
		}
		w, err := gbam.NewWriter(opts.out, header, gbam.WriterOpts{
			Format:      format,
			Stdout:      stdout,
			Parallelism: opts.parallelism,
		})
		if err != nil {
			return err
		}
		var e errors.Once
		stats, err := fragment.FilterRecords(p.NewIterator(), w, f)
		e.Set(err)
		e.Set(w.Close())
		log.Printf("filter %v: %v", in, stats)
		return e.Err()
	})
}
