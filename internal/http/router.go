package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/money-dungeon-web/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/{$}", handler.Home)
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/", handler.NotFound)
	return mux
}
