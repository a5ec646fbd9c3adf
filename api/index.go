package handler

import (
	"net/http"
	"sync"

	"autocare/config"
	"autocare/di"
	"autocare/shared/logger"
	autocareHTTP "autocare/transport/http"
)

var (
	server *autocareHTTP.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The dependency graph is built on the first request and
// reused by warm invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.UseJSONOutput(cfg)
		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
