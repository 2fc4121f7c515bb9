package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-server-api/internal/usecases/delivering"
	"github.com/vfg2006/ad-server-api/pkg/apiErrors"
)

// GetAd retorna o criativo a ser renderizado pelo cliente. A resposta é
// determinística: chamadas repetidas devolvem sempre o mesmo descritor.
func GetAd(service delivering.Deliverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.GetAd()); err != nil {
			logrus.Error("Erro ao enviar resposta do anúncio:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta")
		}
	}
}
