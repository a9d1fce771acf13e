package engine

import (
	"bufio"
	"io"
	"strings"

	"github.com/arthur-debert/pipecolor/pkg/errors"
)

// Run copies lines from r to w, colorizing each one. Lines keep their
// original terminators and are emitted strictly in input order, one
// write per input line; nothing beyond the current line is buffered.
func (e *Engine) Run(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	lines := 0
	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			text, eol := splitLineEnd(raw)
			if _, werr := bw.WriteString(e.ColorizeLine(text)); werr != nil {
				return errors.Wrap(werr, errors.ErrFileAccess, "failed to write output")
			}
			if _, werr := bw.WriteString(eol); werr != nil {
				return errors.Wrap(werr, errors.ErrFileAccess, "failed to write output")
			}
			// Flush per line so the filter stays useful on live streams
			// (tail -f and friends)
			if werr := bw.Flush(); werr != nil {
				return errors.Wrap(werr, errors.ErrFileAccess, "failed to flush output")
			}
			lines++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, errors.ErrFileAccess, "failed to read input")
		}
	}

	e.logger.Debug().Int("lines", lines).Msg("Stream complete")

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to flush output")
	}
	return nil
}

// splitLineEnd separates a raw line from its terminator so escape
// sequences never wrap the newline itself
func splitLineEnd(raw string) (string, string) {
	if strings.HasSuffix(raw, "\r\n") {
		return raw[:len(raw)-2], "\r\n"
	}
	if strings.HasSuffix(raw, "\n") {
		return raw[:len(raw)-1], "\n"
	}
	return raw, ""
}
