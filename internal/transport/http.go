package transport

import (
	"errors"
	"log"
	"net"

	"tinyhttpd/internal/config"
	"tinyhttpd/internal/middleware"
)

type httpServer struct {
	handler *httpHandler
	address string
}

func NewHTTPServer(conf config.Config) Transport {
	return &httpServer{
		handler: newHTTPHandler(conf.BadRequestResponse(), middleware.NewServerName()),
		address: net.JoinHostPort(conf.Host(), conf.Port()),
	}
}

func (ht *httpServer) Listen() (net.Listener, error) {
	return net.Listen("tcp", ht.address)
}

// Serve handles one connection at a time on the calling goroutine; the next
// connection is not accepted until the current exchange is finished.
func (ht *httpServer) Serve(listener net.Listener) error {
	log.Printf("HTTP server is listening on %s", listener.Addr())
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			log.Printf("Error accepting connection: %v", err)
			continue
		}

		ht.handler.handler(conn)
	}
}
