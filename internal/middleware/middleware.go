package middleware

import (
	"tinyhttpd/internal/http/header"
)

type ResponseMiddleware interface {
	HandleResponse(header header.ResponseHeader) error
}
