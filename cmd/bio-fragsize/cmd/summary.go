package cmd

import (
	"io"

	"github.com/grailbio/bio-fragsize/encoding/bamprovider"
	"github.com/grailbio/bio-fragsize/fragment"
	"github.com/grailbio/hts/sam"
)

type summaryOpts struct {
	min, max, mean, count bool
}

func summary(opts summaryOpts, arg string, stdin io.Reader, stdout io.Writer) error {
	field, err := fragment.SelectField(opts.min, opts.max, opts.mean, opts.count)
	if err != nil {
		return err
	}
	var res fragment.SummaryResult
	if err := withInput(arg, stdin, func(_ bamprovider.Input, p bamprovider.Provider, _ *sam.Header) error {
		var err error
		res, err = fragment.Summarize(p.NewIterator())
		return err
	}); err != nil {
		return err
	}
	return res.Write(stdout, field)
}
