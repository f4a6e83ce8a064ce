package cmd

import (
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/bio-fragsize/encoding/bamprovider"
	"github.com/grailbio/hts/sam"
)

// withInput opens the input named by arg, calls fn with its header, and
// closes the input. stdin replaces os.Stdin when arg is "-". fn must close
// every iterator it creates.
func withInput(arg string, stdin io.Reader, fn func(in bamprovider.Input, p bamprovider.Provider, header *sam.Header) error) error {
	in := bamprovider.ParseInput(arg)
	p := bamprovider.NewProvider(in, bamprovider.ProviderOpts{Stdin: stdin})
	var err errors.Once
	header, e := p.GetHeader()
	if e != nil {
		err.Set(e)
	} else {
		err.Set(fn(in, p, header))
	}
	err.Set(p.Close())
	return err.Err()
}
