package format

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	if _, err := fmt.Fprintf(ew.w, format, args...); err != nil {
		ew.err = errors.Wrap(err, "format: write")
	}
}
