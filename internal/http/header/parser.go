package header

import (
	"regexp"
	"strings"

	"tinyhttpd/internal/errs"
)

const crlf = "\r\n"

var versionToken = regexp.MustCompile(`^HTTP/(\d+(?:\.\d+)?)$`)

// parseStartLine splits "METHOD target HTTP/x.y" on single spaces. The method
// is checked before anything else so an unknown verb always reports
// HTTPMethod regardless of what follows it.
func parseStartLine(startLine string) (method Method, target, version string, err error) {
	firstSpace := strings.IndexByte(startLine, ' ')
	if firstSpace == -1 {
		if _, err = ParseMethod(startLine); err != nil {
			return 0, "", "", err
		}
		return 0, "", "", errs.HTTPVersion
	}

	method, err = ParseMethod(startLine[:firstSpace])
	if err != nil {
		return 0, "", "", err
	}

	rest := startLine[firstSpace+1:]
	secondSpace := strings.IndexByte(rest, ' ')
	if secondSpace <= 0 {
		return 0, "", "", errs.HTTPVersion
	}

	target = rest[:secondSpace]
	match := versionToken.FindStringSubmatch(rest[secondSpace+1:])
	if match == nil {
		return 0, "", "", errs.HTTPVersion
	}

	return method, target, match[1], nil
}

// parseHeaderLines fills h from "key: value" lines, skipping empty ones.
func parseHeaderLines(lines []string, h *Header) error {
	for _, line := range lines {
		if line == "" {
			continue
		}

		colonIdx := strings.IndexByte(line, ':')
		if colonIdx == -1 {
			return errs.Headers
		}

		key := strings.TrimSpace(line[:colonIdx])
		value := strings.TrimSpace(line[colonIdx+1:])
		h.Set(key, value)
	}
	return nil
}
