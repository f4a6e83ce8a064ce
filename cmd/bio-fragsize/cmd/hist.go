package cmd

import (
	"io"

	"github.com/grailbio/base/log"
	"github.com/grailbio/bio-fragsize/encoding/bamprovider"
	"github.com/grailbio/bio-fragsize/fragment"
	"github.com/grailbio/hts/sam"
)

type histOpts struct {
	// below is the largest size counted.
	below int64
}

func hist(opts histOpts, arg string, stdin io.Reader, stdout io.Writer) error {
	h, err := fragment.NewHistogram(opts.below)
	if err != nil {
		return err
	}
	if err := withInput(arg, stdin, func(in bamprovider.Input, p bamprovider.Provider, _ *sam.Header) error {
		if err := fragment.BuildHistogram(p.NewIterator(), h); err != nil {
			return err
		}
		log.Printf("hist %v: %d sizes, %d records above %d", in, h.Len(), h.Dropped(), h.Ceiling())
		return nil
	}); err != nil {
		return err
	}
	return h.Write(stdout)
}
