package stream

import (
	"io"
	"log"

	"tinyhttpd/internal/http/header"
	"tinyhttpd/internal/middleware"
)

// Respond runs the response middlewares in order and writes resp to w.
// A middleware error aborts before anything is written.
func Respond(w io.Writer, resp *header.Response, mws ...middleware.ResponseMiddleware) error {
	for _, m := range mws {
		if err := m.HandleResponse(resp); err != nil {
			log.Printf("Cannot apply middleware: %s\n", err)
			return err
		}
	}

	_, err := resp.WriteTo(w)
	return err
}
