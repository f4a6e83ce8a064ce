package cmd

import (
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	gbam "github.com/grailbio/bio-fragsize/encoding/bam"
	"github.com/grailbio/bio-fragsize/encoding/bamprovider"
	"github.com/grailbio/bio-fragsize/fragment"
	"github.com/grailbio/hts/sam"
)

type splitOpts struct {
	// ranges is the comma-separated list of bounds.
	ranges string
	// prefix is prepended to the range suffix to name each output.
	prefix string
	// multi writes a record to every range that contains it.
	multi bool
	// parallelism is the number of BAM compression goroutines per output.
	parallelism int
}

// openSinks creates one writer per range. On error, it closes the writers
// created so far.
func openSinks(ranges fragment.Ranges, prefix, inputPath string, header *sam.Header, parallelism int) ([]gbam.Writer, error) {
	sinks := make([]gbam.Writer, 0, len(ranges))
	for _, r := range ranges {
		path := fragment.OutputPath(prefix, r, inputPath)
		w, err := gbam.NewWriter(path, header, gbam.WriterOpts{Parallelism: parallelism})
		if err != nil {
			for _, s := range sinks {
				if e := s.Close(); e != nil {
					log.Error.Printf("split: close: %v", e)
				}
			}
			return nil, err
		}
		log.Debug.Printf("split: range %v -> %s", r, path)
		sinks = append(sinks, w)
	}
	return sinks, nil
}

func split(opts splitOpts, arg string) error {
	if opts.prefix == "" {
		return errors.E(errors.Invalid, "split: -prefix is required")
	}
	ranges, err := fragment.ParseRangesFlag(opts.ranges)
	if err != nil {
		return err
	}
	if bamprovider.ParseInput(arg).Kind != bamprovider.FilePath {
		return errors.E(errors.Invalid, "split: the input must be a file, since it provides the output extension")
	}
	return withInput(arg, nil, func(in bamprovider.Input, p bamprovider.Provider, header *sam.Header) error {
		sinks, err := openSinks(ranges, opts.prefix, in.Path, header, opts.parallelism)
		if err != nil {
			return err
		}
		s, err := fragment.NewSplitter(ranges, sinks, opts.multi)
		if err != nil {
			return err
		}
		var e errors.Once
		stats, err := fragment.Split(p.NewIterator(), s)
		e.Set(err)
		e.Set(s.Close())
		log.Printf("split %v: %v", in, stats)
		return e.Err()
	})
}
