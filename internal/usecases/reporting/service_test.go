package reporting

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-server-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-server-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_AvgRevenueByPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportRepo := mocks.NewMockReportRepository(ctrl)
	service := NewService(mockReportRepo)

	t.Run("Retorna publishers ordenados por receita média decrescente", func(t *testing.T) {
		// FoodDaily (média 41.38) já foi cortado pelo HAVING na query
		expected := []domain.PublisherAvgRevenue{
			{PublisherID: 3, Name: "TravelNow", AvgRevenue: "200.00"},
			{PublisherID: 1, Name: "TechMedia", AvgRevenue: "135.63"},
		}

		mockReportRepo.EXPECT().
			AvgRevenueByPublisher().
			Return(expected, nil)

		results, err := service.AvgRevenueByPublisher()
		assert.NoError(t, err)
		assert.Equal(t, expected, results)
	})

	t.Run("Sem linhas qualificadas retorna lista vazia, não erro", func(t *testing.T) {
		mockReportRepo.EXPECT().
			AvgRevenueByPublisher().
			Return([]domain.PublisherAvgRevenue{}, nil)

		results, err := service.AvgRevenueByPublisher()
		assert.NoError(t, err)
		assert.Empty(t, results)
		assert.NotNil(t, results)
	})

	t.Run("Falha de banco propaga como erro de armazenamento", func(t *testing.T) {
		mockReportRepo.EXPECT().
			AvgRevenueByPublisher().
			Return(nil, errors.New("connection reset by peer"))

		results, err := service.AvgRevenueByPublisher()
		assert.Nil(t, results)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

func TestService_CTRByPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportRepo := mocks.NewMockReportRepository(ctrl)
	service := NewService(mockReportRepo)

	t.Run("Retorna publishers ordenados por CTR decrescente", func(t *testing.T) {
		// Razão de somas: publisher sem impressions aparece com 0
		expected := []domain.PublisherCTR{
			{PublisherID: 3, Name: "TravelNow", AvgCTR: "4.00"},
			{PublisherID: 1, Name: "TechMedia", AvgCTR: "2.28"},
			{PublisherID: 2, Name: "FoodDaily", AvgCTR: "1.11"},
		}

		mockReportRepo.EXPECT().
			CTRByPublisher().
			Return(expected, nil)

		results, err := service.CTRByPublisher()
		assert.NoError(t, err)
		assert.Equal(t, expected, results)
	})

	t.Run("Falha de banco propaga como erro de armazenamento", func(t *testing.T) {
		mockReportRepo.EXPECT().
			CTRByPublisher().
			Return(nil, errors.New("driver: bad connection"))

		results, err := service.CTRByPublisher()
		assert.Nil(t, results)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}
