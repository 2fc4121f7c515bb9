package delivering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-server-api/internal/config"
)

func TestService_GetAd(t *testing.T) {
	cfg := &config.Config{
		Ad: config.Ad{
			Image:       "https://via.placeholder.com/300x250?text=Ad+Creative",
			Destination: "https://www.google.com",
			ID:          "ad-001",
		},
	}

	service := NewService(cfg)

	ad := service.GetAd()
	assert.Equal(t, "https://via.placeholder.com/300x250?text=Ad+Creative", ad.Image)
	assert.Equal(t, "https://www.google.com", ad.Destination)
	assert.Equal(t, "ad-001", ad.AdID)

	// O stub é determinístico: chamadas repetidas devolvem o mesmo descritor
	assert.Equal(t, ad, service.GetAd())
	assert.Equal(t, ad, service.GetAd())
}
