// Package delivering entrega o criativo de anúncio ao cliente
package delivering

import (
	"github.com/vfg2006/ad-server-api/internal/config"
	"github.com/vfg2006/ad-server-api/internal/domain"
)

type Deliverer interface {
	GetAd() domain.Ad
}

// Service é um stub determinístico: sempre devolve o mesmo criativo, definido
// na configuração. Não há seleção, rotação nem segmentação — mas o formato
// (image, destination, ad_id) é contrato, porque o ad_id retornado aqui
// precisa voltar intacto na ingestão de cliques.
type Service struct {
	ad domain.Ad
}

func NewService(cfg *config.Config) Deliverer {
	return &Service{
		ad: domain.Ad{
			Image:       cfg.Ad.Image,
			Destination: cfg.Ad.Destination,
			AdID:        cfg.Ad.ID,
		},
	}
}

func (s *Service) GetAd() domain.Ad {
	return s.ad
}
