package handler

import (
	"net/http"

	"github.com/vfg2006/ad-server-api/internal/usecases/reporting"
	"github.com/vfg2006/ad-server-api/pkg/apiErrors"
)

// GetAvgRevenue retorna a receita média por publisher em ordem decrescente.
// Falha de banco vira 500 com corpo genérico fixo; o detalhe nunca sai na resposta.
func GetAvgRevenue(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := service.AvgRevenueByPublisher()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Database query failed")
			return
		}

		writeReport(w, results)
	}
}

// GetCTR retorna o CTR por publisher em ordem decrescente
func GetCTR(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := service.CTRByPublisher()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Database query failed")
			return
		}

		writeReport(w, results)
	}
}

func writeReport(w http.ResponseWriter, results any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta")
	}
}
