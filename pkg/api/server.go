package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/jackc/pgx/v4"
	"github.com/picochain/go-node/internal/log"
	"github.com/picochain/go-node/pkg/config"
	"github.com/picochain/go-node/pkg/node"
)

func NewServer(cfg *config.Config, n *node.Node, conn *pgx.Conn) (*Server, error) {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(NodeMiddleware(n))

	router.Post("/transactions", submitTransaction)
	router.Get("/chain", getChain)
	router.Get("/blocks", listBlocks)
	router.Get("/blocks/{index}", getBlock)
	router.Get("/utxo", listUnspentOutputs)
	router.Get("/pool", getPool)

	if conn != nil {
		router.Group(func(r chi.Router) {
			r.Use(DatabaseMiddleware(conn))
			r.Get("/archive/blocks", listArchivedBlocks)
		})
	}

	return &Server{
		config: cfg,
		router: router,
		httpServer: http.Server{
			Addr:    cfg.Http.ServerAddr,
			Handler: router,
		},
	}, nil
}

type Server struct {
	config     *config.Config
	router     chi.Router
	httpServer http.Server
}

func (s *Server) Router() chi.Router {
	return s.router
}

func (s *Server) ListenAndServe() error {
	log.Infow("Starting API Server",
		"listen_addr", s.config.Http.ServerAddr,
	)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
