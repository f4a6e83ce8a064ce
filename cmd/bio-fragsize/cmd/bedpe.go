package cmd

import (
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bio-fragsize/encoding/bamprovider"
	"github.com/grailbio/bio-fragsize/interval"
	"github.com/grailbio/hts/sam"
)

type bedpeOpts struct {
	// out is the output path, or "-" for stdout.
	out string
}

func bedpe(opts bedpeOpts, arg string, stdin io.Reader, stdout io.Writer) error {
	ctx := vcontext.Background()
	return withInput(arg, stdin, func(in bamprovider.Input, p bamprovider.Provider, header *sam.Header) error {
		out, err := createTextOutput(ctx, opts.out, stdout)
		if err != nil {
			return err
		}
		var e errors.Once
		stats, err := interval.Convert(p.NewIterator(), header, out.Writer())
		e.Set(err)
		if err := out.Close(ctx); err != nil && !interval.IsBrokenPipe(err) {
			e.Set(err)
		}
		log.Printf("bedpe %v: %v", in, stats)
		return e.Err()
	})
}
