package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
)

const SHUTDOWN_TIMEOUT = 5 * time.Second

type GigMapHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewGigMapHttpServer(router *Router, muxRouter *mux.Router, addr string) *GigMapHttpServer {
	return &GigMapHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
	}
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *GigMapHttpServer) Run(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[GigMapHttpServer] Listening on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("[GigMapHttpServer] Shutting down the server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
