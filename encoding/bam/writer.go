// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package bam

import (
	"bufio"
	"io"
	"os"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
)

// StdoutPath is the output pathname that denotes standard output.
const StdoutPath = "-"

// Writer is a sink of sam.Records. Thread compatible.
type Writer interface {
	// Write appends the record to the sink.
	Write(r *sam.Record) error
	// Close flushes the buffered data and releases the underlying file. It
	// must be called exactly once.
	Close() error
}

// WriterOpts defines options for NewWriter.
type WriterOpts struct {
	// Format is the container format to write. If Unknown, the format is
	// guessed from the pathname, and BAM is used when the pathname doesn't
	// tell.
	Format FileType

	// Stdout, if non-nil, replaces os.Stdout when the path is StdoutPath.
	Stdout io.Writer

	// Parallelism is the number of compression goroutines used by the BAM
	// encoder. Values <= 0 mean 1.
	Parallelism int
}

type writer struct {
	path string
	out  file.File // nil when writing to stdout.
	buf  *bufio.Writer
	bamw *bam.Writer
	samw *sam.Writer
}

// NewWriter creates a sink that writes records to path, preceded by the
// header. If path is StdoutPath, records are written to the standard output.
// The caller must call Close on the returned object.
func NewWriter(path string, header *sam.Header, opts WriterOpts) (Writer, error) {
	format := opts.Format
	if format == Unknown {
		format = GuessFileType(path)
	}
	if format == Unknown {
		format = BAM
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = 1
	}
	ctx := vcontext.Background()
	w := &writer{path: path}
	var dst io.Writer
	if path == StdoutPath {
		dst = opts.Stdout
		if dst == nil {
			dst = os.Stdout
		}
	} else {
		out, err := file.Create(ctx, path)
		if err != nil {
			return nil, errors.E(err, "create", path)
		}
		w.out = out
		dst = out.Writer(ctx)
	}
	w.buf = bufio.NewWriterSize(dst, 1<<20)

	var err error
	switch format {
	case SAM:
		w.samw, err = sam.NewWriter(w.buf, header, sam.FlagDecimal)
	default:
		w.bamw, err = bam.NewWriter(w.buf, header, opts.Parallelism)
	}
	if err != nil {
		if w.out != nil {
			_ = w.out.Close(ctx)
		}
		return nil, errors.E(err, "write header", path)
	}
	return w, nil
}

// Write implements the Writer interface.
func (w *writer) Write(r *sam.Record) error {
	if w.samw != nil {
		return w.samw.Write(r)
	}
	return w.bamw.Write(r)
}

// Close implements the Writer interface.
func (w *writer) Close() error {
	var err errors.Once
	if w.bamw != nil {
		err.Set(w.bamw.Close())
	}
	err.Set(w.buf.Flush())
	if w.out != nil {
		err.Set(w.out.Close(vcontext.Background()))
	}
	if e := err.Err(); e != nil {
		return errors.E(e, "close", w.path)
	}
	return nil
}
