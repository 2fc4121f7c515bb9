package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-server-api/internal/config"
	"github.com/vfg2006/ad-server-api/internal/usecases/delivering"
)

func TestGetAd(t *testing.T) {
	cfg := &config.Config{
		Ad: config.Ad{
			Image:       "https://via.placeholder.com/300x250?text=Ad+Creative",
			Destination: "https://www.google.com",
			ID:          "ad-001",
		},
	}

	handler := GetAd(delivering.NewService(cfg))

	expected := `{
		"image":"https://via.placeholder.com/300x250?text=Ad+Creative",
		"destination":"https://www.google.com",
		"ad_id":"ad-001"
	}`

	// Chamadas repetidas devolvem sempre o mesmo criativo
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/ad", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, expected, rec.Body.String())
	}
}
