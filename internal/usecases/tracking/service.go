// Package tracking implementa a ingestão de eventos de clique
package tracking

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-server-api/infrastructure/repository"
	"github.com/vfg2006/ad-server-api/internal/domain"
)

// Valor aplicado quando nem o corpo da requisição nem o transporte informam o campo
const unknownValue = "unknown"

// RequestContext carrega o que o transporte sabe sobre o chamador e que o
// corpo da requisição pode não trazer: endereço remoto e cabeçalhos relevantes
type RequestContext struct {
	RemoteAddr   string
	UserAgent    string
	ForwardedFor string
}

type Tracker interface {
	RecordClick(input domain.ClickInput, reqCtx RequestContext) (*domain.ClickEvent, error)
}

type Service struct {
	clickRepo repository.ClickEventRepository
}

func NewService(clickRepo repository.ClickEventRepository) Tracker {
	return &Service{
		clickRepo: clickRepo,
	}
}

// RecordClick valida e persiste exatamente um evento por chamada.
// ad_id ausente é rejeitado sem escrita (a variante que substituía "unknown"
// não é suportada). Não há deduplicação: chamadas repetidas com o mesmo
// payload são cliques independentes e cada uma gera sua própria linha.
func (s *Service) RecordClick(input domain.ClickInput, reqCtx RequestContext) (*domain.ClickEvent, error) {
	if input.AdID == "" {
		return nil, ErrMissingAdID
	}

	event := &domain.ClickEvent{
		AdID:      input.AdID,
		UserAgent: resolveUserAgent(input, reqCtx),
		IPAddress: resolveIPAddress(input, reqCtx),
	}

	created, err := s.clickRepo.Insert(event)
	if err != nil {
		logrus.WithError(err).WithField("ad_id", input.AdID).Error("Erro ao gravar evento de clique")
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return created, nil
}

// resolveUserAgent aplica a precedência: corpo > cabeçalho User-Agent > "unknown"
func resolveUserAgent(input domain.ClickInput, reqCtx RequestContext) string {
	if input.UserAgent != "" {
		return input.UserAgent
	}
	if reqCtx.UserAgent != "" {
		return reqCtx.UserAgent
	}
	return unknownValue
}

// resolveIPAddress aplica a precedência: corpo > endereço remoto do
// transporte > cabeçalho X-Forwarded-For > "unknown"
func resolveIPAddress(input domain.ClickInput, reqCtx RequestContext) string {
	if input.IPAddress != "" {
		return input.IPAddress
	}
	if reqCtx.RemoteAddr != "" {
		return reqCtx.RemoteAddr
	}
	if reqCtx.ForwardedFor != "" {
		return reqCtx.ForwardedFor
	}
	return unknownValue
}
