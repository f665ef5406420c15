package header

// ResponseHeader is the part of a Response that middlewares may touch.
type ResponseHeader interface {
	Value(key string) string
	Set(key string, value string)
	Remove(key string)
	Finalize() []byte
}

var _ ResponseHeader = (*Response)(nil)
