package header

import (
	"io"
	"sort"
	"strings"
)

type Header struct {
	entries map[string]string
}

func New() *Header {
	return &Header{entries: make(map[string]string, 16)}
}

// Set stores value under key as given; names are case-sensitive and a
// repeated key overwrites the previous value.
func (h *Header) Set(key string, value string) {
	if h.entries == nil {
		h.entries = make(map[string]string, 16)
	}
	h.entries[key] = value
}

func (h *Header) Value(key string) string {
	return h.entries[key]
}

func (h *Header) Lookup(key string) (string, bool) {
	val, ok := h.entries[key]
	return val, ok
}

func (h *Header) Remove(key string) {
	delete(h.entries, key)
}

func (h *Header) Len() int {
	return len(h.entries)
}

// Keys returns the header names in ascending order.
func (h *Header) Keys() []string {
	keys := make([]string, 0, len(h.entries))
	for key := range h.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (h *Header) Clone() *Header {
	c := &Header{entries: make(map[string]string, len(h.entries))}
	for key, val := range h.entries {
		c.entries[key] = val
	}
	return c
}

func (h *Header) appendTo(buf []byte) []byte {
	for _, key := range h.Keys() {
		buf = append(buf, key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, h.entries[key]...)
		buf = append(buf, '\r', '\n')
	}
	return buf
}

func (h *Header) size() int {
	size := 0
	for key, val := range h.entries {
		size += len(key) + 2 + len(val) + 2
	}
	return size
}

// WriteTo renders every entry as "key: value\r\n" in key order.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h.appendTo(make([]byte, 0, h.size())))
	return int64(n), err
}

func (h *Header) String() string {
	var sb strings.Builder
	_, _ = h.WriteTo(&sb)
	return sb.String()
}
