package header

import "strings"

// ClientRequest is a parsed request head. It is not modified after parsing.
type ClientRequest struct {
	method  Method
	target  string
	version string
	headers *Header
	body    []byte
}

// ParseRequest parses a header block as produced by the connection framer.
// Errors are always one of errs.HTTPMethod, errs.HTTPVersion or errs.Headers.
func ParseRequest(raw string) (*ClientRequest, error) {
	lines := strings.Split(raw, crlf)

	method, target, version, err := parseStartLine(lines[0])
	if err != nil {
		return nil, err
	}

	headers := New()
	if err = parseHeaderLines(lines[1:], headers); err != nil {
		return nil, err
	}

	return &ClientRequest{
		method:  method,
		target:  target,
		version: version,
		headers: headers,
		body:    []byte{},
	}, nil
}

func (req *ClientRequest) Method() Method {
	return req.method
}

func (req *ClientRequest) Target() string {
	return req.target
}

// HTTPVersion is the version without the "HTTP/" prefix, e.g. "1.1".
func (req *ClientRequest) HTTPVersion() string {
	return req.version
}

func (req *ClientRequest) Value(key string) string {
	return req.headers.Value(key)
}

// Headers returns a copy so callers cannot mutate the parsed request.
func (req *ClientRequest) Headers() *Header {
	return req.headers.Clone()
}

func (req *ClientRequest) Body() []byte {
	return req.body
}
