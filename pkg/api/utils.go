package api

import (
	"encoding/json"
	"net/http"

	"github.com/jackc/pgx/v4"
	"github.com/picochain/go-node/pkg/node"
)

func GetDbConn(r *http.Request) *pgx.Conn {
	conn, ok := r.Context().Value(DbConnCtxKey).(*pgx.Conn)
	if !ok {
		panic("GetDbConn panic")
	}
	return conn
}

func GetNode(r *http.Request) *node.Node {
	return r.Context().Value(NodeCtxKey).(*node.Node)
}

func JsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	data, _ := json.Marshal(payload)
	_, _ = w.Write(data)
}

func ErrResponse(w http.ResponseWriter, code int, err error) {
	JsonResponse(w, code, struct {
		Error string `json:"error"`
	}{Error: err.Error()})
}
