package handler

import (
	"io"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-server-api/internal/domain"
	"github.com/vfg2006/ad-server-api/internal/usecases/tracking"
	"github.com/vfg2006/ad-server-api/pkg/apiErrors"
)

type ClickEventResult struct {
	ID        int64     `json:"id"`
	ClickedAt time.Time `json:"clicked_at"`
}

type ClickResponse struct {
	Success bool             `json:"success"`
	Event   ClickEventResult `json:"event"`
}

// TrackClick recebe o evento de clique do cliente e delega a persistência ao
// serviço de tracking. Todos os campos do corpo são opcionais no transporte;
// a validação de ad_id acontece no serviço.
func TrackClick(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.ClickInput

		// Corpo vazio é aceito: vira input zerado e cai na validação de ad_id
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil && err != io.EOF {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido")
			return
		}

		reqCtx := tracking.RequestContext{
			RemoteAddr:   clientAddress(r),
			UserAgent:    r.UserAgent(),
			ForwardedFor: r.Header.Get("X-Forwarded-For"),
		}

		event, err := service.RecordClick(input, reqCtx)
		if err != nil {
			handleClickError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(ClickResponse{
			Success: true,
			Event: ClickEventResult{
				ID:        event.ID,
				ClickedAt: event.ClickedAt,
			},
		})
		if err != nil {
			logrus.Error("Erro ao enviar resposta do clique:", err)
		}
	}
}

// handleClickError traduz os erros do serviço de tracking para a resposta HTTP
func handleClickError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tracking.ErrMissingAdID):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ad_id is required")

	default:
		// Erro de armazenamento: o detalhe fica no log do serviço
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Database operation failed")
	}
}

// clientAddress extrai o endereço do chamador sem a porta atribuída pelo TCP
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
