package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tinyhttpd/internal/config"
	"tinyhttpd/internal/transport"
	"tinyhttpd/internal/version"

	"golang.org/x/sync/errgroup"
)

type Bootstrap struct {
	Config     config.Config
	Server     transport.Transport
	SignalChan chan os.Signal
}

func New(conf config.Config) (*Bootstrap, error) {
	if conf == nil {
		return nil, errors.New("config is required")
	}

	return &Bootstrap{
		Config:     conf,
		Server:     transport.NewHTTPServer(conf),
		SignalChan: make(chan os.Signal, 1),
	}, nil
}

func startPprof(ctx context.Context, pprofPort string) error {
	pprofAddr := net.JoinHostPort("localhost", pprofPort)
	srv := &http.Server{Addr: pprofAddr, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	log.Printf("Starting pprof server on http://%s/debug/pprof/", pprofAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("pprof server error: %w", err)
	}
	return nil
}

// Run serves until a service fails or SIGINT/SIGTERM arrives. A signal is a
// clean shutdown and returns nil.
func (b *Bootstrap) Run() error {
	ln, err := b.Server.Listen()
	if err != nil {
		return fmt.Errorf("failed to start http server: %w", err)
	}

	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		err := b.Server.Serve(ln)
		if errors.Is(err, net.ErrClosed) {
			return nil
		}
		return fmt.Errorf("error when serving http server: %w", err)
	})

	if b.Config.PprofEnabled() {
		g.Go(func() error {
			return startPprof(gctx, b.Config.PprofPort())
		})
	}

	log.Printf("%s started", version.GetVersion())

	g.Go(func() error {
		select {
		case sig := <-b.SignalChan:
			log.Printf("Received signal %s, initiating graceful shutdown", sig)
			cancel()
		case <-gctx.Done():
		}
		if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			log.Printf("Error closing listener: %v", err)
		}
		return nil
	})

	return g.Wait()
}
