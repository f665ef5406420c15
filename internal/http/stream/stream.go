package stream

import (
	"errors"
	"io"
	"strings"

	"tinyhttpd/internal/errs"
)

var DELIMITER = []byte{0x0D, 0x0A, 0x0D, 0x0A}

// ReadHeaderBlock consumes r one byte at a time until the accumulated text
// ends with CRLF CRLF and returns it including the terminator. No byte past
// the terminator is read, so anything that follows stays in r.
//
// Bytes are decoded as Latin-1. Failures are I/O class *errs.ServerError:
// io.EOF when the stream ends before any byte, io.ErrUnexpectedEOF when it
// ends inside the block.
func ReadHeaderBlock(r io.Reader) (string, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReader{r: r}
	}

	var raw strings.Builder
	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && raw.Len() > 0 {
				err = io.ErrUnexpectedEOF
			}
			return "", errs.FromIO(err)
		}

		raw.WriteRune(rune(b))
		if b == '\n' && strings.HasSuffix(raw.String(), string(DELIMITER)) {
			return raw.String(), nil
		}
	}
}

type byteReader struct {
	r   io.Reader
	buf [1]byte
	err error
}

func (br *byteReader) ReadByte() (byte, error) {
	for br.err == nil {
		n, err := br.r.Read(br.buf[:])
		br.err = err
		if n == 1 {
			return br.buf[0], nil
		}
	}
	return 0, br.err
}
