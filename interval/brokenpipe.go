package interval

import (
	goerrors "errors"
	"io"

	"golang.org/x/sys/unix"
)

// IsBrokenPipe reports whether err is caused by writing to a pipe or socket
// whose reader has gone away, as happens with "bio-fragsize bedpe x.bam | head".
func IsBrokenPipe(err error) bool {
	return err != nil && (goerrors.Is(err, unix.EPIPE) || goerrors.Is(err, io.ErrClosedPipe))
}
