package handler

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Pinger é a capacidade mínima que o healthcheck precisa do banco
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// HealthcheckHandler executa um probe trivial no banco. A resposta é sempre
// 200; o campo ok indica se a dependência respondeu.
func HealthcheckHandler(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := pinger.Ping(r.Context()); err != nil {
			logrus.WithError(err).Warn("Healthcheck falhou ao consultar o banco")
			_ = json.NewEncoder(w).Encode(HealthResponse{OK: false, Error: err.Error()})
			return
		}

		_ = json.NewEncoder(w).Encode(HealthResponse{OK: true})
	}
}
