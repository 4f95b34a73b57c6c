package api

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v4"
	"github.com/picochain/go-node/pkg/node"
)

type ctxKey string

const (
	DbConnCtxKey ctxKey = "db"
	NodeCtxKey   ctxKey = "node"
)

func DatabaseMiddleware(conn *pgx.Conn) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), DbConnCtxKey, conn)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NodeMiddleware(n *node.Node) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), NodeCtxKey, n)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
