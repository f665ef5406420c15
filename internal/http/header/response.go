package header

import (
	"io"
	"strconv"
	"strings"

	"tinyhttpd/internal/errs"
)

const (
	contentLength = "Content-Length"
	statusPrefix  = "HTTP/1.1 "
)

type Response struct {
	status  string
	headers *Header
	body    []byte
}

func NewResponse() *Response {
	headers := New()
	headers.Set("Content-Type", "text/html")
	return &Response{
		status:  "200 OK",
		headers: headers,
	}
}

func (resp *Response) Status() string {
	return resp.status
}

func (resp *Response) SetStatus(status string) {
	resp.status = status
}

// SetBody replaces the body and recomputes Content-Length from it. It is the
// only way Content-Length gets written.
func (resp *Response) SetBody(body []byte) {
	resp.body = append([]byte(nil), body...)
	resp.headers.Set(contentLength, strconv.Itoa(len(resp.body)))
}

func (resp *Response) Body() []byte {
	return resp.body
}

func (resp *Response) Value(key string) string {
	return resp.headers.Value(key)
}

// Set ignores Content-Length; use SetBody.
func (resp *Response) Set(key string, value string) {
	if isContentLength(key) {
		return
	}
	resp.headers.Set(key, value)
}

func (resp *Response) Remove(key string) {
	if isContentLength(key) {
		return
	}
	resp.headers.Remove(key)
}

func (resp *Response) Keys() []string {
	return resp.headers.Keys()
}

// Finalize composes the status line, the header block, the empty separator
// line and the body. It does not modify resp.
func (resp *Response) Finalize() []byte {
	size := len(statusPrefix) + len(resp.status) + 2 + resp.headers.size() + 2 + len(resp.body)

	buf := make([]byte, 0, size)
	buf = append(buf, statusPrefix...)
	buf = append(buf, resp.status...)
	buf = append(buf, '\r', '\n')
	buf = resp.headers.appendTo(buf)
	buf = append(buf, '\r', '\n')
	if len(resp.body) > 0 {
		buf = append(buf, resp.body...)
	}
	return buf
}

// WriteTo writes the serialized response. Write failures come back as an
// I/O class *errs.ServerError.
func (resp *Response) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(resp.Finalize())
	if err != nil {
		return int64(n), errs.FromIO(err)
	}
	return int64(n), nil
}

func isContentLength(key string) bool {
	return strings.EqualFold(strings.TrimSpace(key), contentLength)
}
