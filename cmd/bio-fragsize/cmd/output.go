package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/klauspost/compress/gzip"
)

// textOutput is a destination for text output: a file, or stdout for "-".
// Files whose name ends with ".gz" are gzip-compressed.
type textOutput struct {
	w   io.Writer
	out file.File
	gz  *gzip.Writer
}

func createTextOutput(ctx context.Context, path string, stdout io.Writer) (*textOutput, error) {
	if path == "-" {
		return &textOutput{w: stdout}, nil
	}
	out, err := file.Create(ctx, path)
	if err != nil {
		return nil, errors.E(err, "create", path)
	}
	o := &textOutput{w: out.Writer(ctx), out: out}
	if strings.HasSuffix(path, ".gz") {
		o.gz = gzip.NewWriter(o.w)
		o.w = o.gz
	}
	return o, nil
}

// Writer returns the writer for the uncompressed text.
func (o *textOutput) Writer() io.Writer { return o.w }

// Close flushes the compressor and closes the file. Stdout is left open.
func (o *textOutput) Close(ctx context.Context) error {
	var err errors.Once
	if o.gz != nil {
		err.Set(o.gz.Close())
	}
	if o.out != nil {
		err.Set(o.out.Close(ctx))
	}
	return err.Err()
}
