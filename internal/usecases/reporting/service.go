// Package reporting calcula os agregados de leitura sobre publishers e reports
package reporting

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-server-api/infrastructure/repository"
	"github.com/vfg2006/ad-server-api/internal/domain"
)

type Reporter interface {
	AvgRevenueByPublisher() ([]domain.PublisherAvgRevenue, error)
	CTRByPublisher() ([]domain.PublisherCTR, error)
}

type Service struct {
	reportRepo repository.ReportRepository
}

func NewService(reportRepo repository.ReportRepository) Reporter {
	return &Service{
		reportRepo: reportRepo,
	}
}

// AvgRevenueByPublisher retorna a receita média por publisher, em ordem
// decrescente. Sem linhas qualificadas o resultado é uma lista vazia, não erro.
func (s *Service) AvgRevenueByPublisher() ([]domain.PublisherAvgRevenue, error) {
	results, err := s.reportRepo.AvgRevenueByPublisher()
	if err != nil {
		// O detalhe do driver fica no log; o chamador recebe só o erro genérico
		logrus.WithError(err).Error("Erro ao consultar receita média por publisher")
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return results, nil
}

// CTRByPublisher retorna o CTR médio por publisher, em ordem decrescente
func (s *Service) CTRByPublisher() ([]domain.PublisherCTR, error) {
	results, err := s.reportRepo.CTRByPublisher()
	if err != nil {
		logrus.WithError(err).Error("Erro ao consultar CTR por publisher")
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return results, nil
}
