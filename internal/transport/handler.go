package transport

import (
	"bufio"
	"errors"
	"io"
	"log"
	"net"

	"tinyhttpd/internal/errs"
	"tinyhttpd/internal/http/header"
	"tinyhttpd/internal/http/stream"
	"tinyhttpd/internal/middleware"

	"github.com/google/uuid"
)

var responseBody = []byte("test\n")

type httpHandler struct {
	badRequestResponse bool
	middlewares        []middleware.ResponseMiddleware
}

func newHTTPHandler(badRequestResponse bool, mws ...middleware.ResponseMiddleware) *httpHandler {
	return &httpHandler{
		badRequestResponse: badRequestResponse,
		middlewares:        mws,
	}
}

func (hh *httpHandler) handler(conn net.Conn) {
	id := uuid.NewString()
	defer hh.closeConnection(id, conn)

	if err := hh.serve(id, bufio.NewReader(conn), conn); err != nil {
		if errors.Is(err, io.EOF) {
			log.Printf("[%s] connection from %s closed before sending a request", id, conn.RemoteAddr())
			return
		}
		log.Printf("[%s] error handling connection from %s: %v", id, conn.RemoteAddr(), err)
	}
}

// serve runs a single request/response exchange. Connections are never kept
// alive, so it returns after the first response. Errors are *errs.ServerError.
func (hh *httpHandler) serve(id string, r io.Reader, w io.Writer) error {
	raw, err := stream.ReadHeaderBlock(r)
	if err != nil {
		return errs.Wrap(err)
	}

	req, err := header.ParseRequest(raw)
	if err != nil {
		if hh.badRequestResponse {
			if werr := hh.badRequest(w); werr != nil {
				log.Printf("[%s] failed to write 400 Bad Request: %v", id, werr)
			}
		}
		return errs.Wrap(err)
	}

	log.Printf("[%s] %s %s HTTP/%s", id, req.Method(), req.Target(), req.HTTPVersion())

	resp := header.NewResponse()
	resp.SetBody(responseBody)
	if err = stream.Respond(w, resp, hh.middlewares...); err != nil {
		return errs.Wrap(err)
	}
	return nil
}

func (hh *httpHandler) badRequest(w io.Writer) error {
	resp := header.NewResponse()
	resp.SetStatus("400 Bad Request")
	resp.Set("Connection", "close")
	resp.SetBody([]byte("Bad Request\n"))
	return stream.Respond(w, resp, hh.middlewares...)
}

func (hh *httpHandler) closeConnection(id string, conn net.Conn) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		log.Printf("[%s] error closing connection: %v", id, err)
	}
}
