package tracking

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-server-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-server-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_RecordClick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClickRepo := mocks.NewMockClickEventRepository(ctrl)
	service := NewService(mockClickRepo)

	clickedAt := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    domain.ClickInput
		reqCtx   RequestContext
		setup    func()
		validate func(t *testing.T, event *domain.ClickEvent, err error)
	}{
		{
			name:  "Clique válido - resolve user_agent e ip a partir do transporte",
			input: domain.ClickInput{AdID: "ad-001"},
			reqCtx: RequestContext{
				RemoteAddr: "203.0.113.5",
				UserAgent:  "TestAgent/1.0",
			},
			setup: func() {
				mockClickRepo.EXPECT().
					Insert(gomock.Any()).
					DoAndReturn(func(e *domain.ClickEvent) (*domain.ClickEvent, error) {
						assert.Equal(t, "ad-001", e.AdID)
						assert.Equal(t, "TestAgent/1.0", e.UserAgent)
						assert.Equal(t, "203.0.113.5", e.IPAddress)
						e.ID = 1
						e.ClickedAt = clickedAt
						return e, nil
					})
			},
			validate: func(t *testing.T, event *domain.ClickEvent, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), event.ID)
				assert.Equal(t, clickedAt, event.ClickedAt)
			},
		},
		{
			name: "Corpo da requisição tem precedência sobre o transporte",
			input: domain.ClickInput{
				AdID:      "ad-002",
				UserAgent: "CustomAgent/2.0",
				IPAddress: "198.51.100.7",
			},
			reqCtx: RequestContext{
				RemoteAddr: "203.0.113.5",
				UserAgent:  "TestAgent/1.0",
			},
			setup: func() {
				mockClickRepo.EXPECT().
					Insert(gomock.Any()).
					DoAndReturn(func(e *domain.ClickEvent) (*domain.ClickEvent, error) {
						assert.Equal(t, "CustomAgent/2.0", e.UserAgent)
						assert.Equal(t, "198.51.100.7", e.IPAddress)
						e.ID = 2
						e.ClickedAt = clickedAt
						return e, nil
					})
			},
			validate: func(t *testing.T, event *domain.ClickEvent, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(2), event.ID)
			},
		},
		{
			name:  "Sem endereço remoto cai no X-Forwarded-For",
			input: domain.ClickInput{AdID: "ad-003"},
			reqCtx: RequestContext{
				ForwardedFor: "192.0.2.44",
			},
			setup: func() {
				mockClickRepo.EXPECT().
					Insert(gomock.Any()).
					DoAndReturn(func(e *domain.ClickEvent) (*domain.ClickEvent, error) {
						assert.Equal(t, "192.0.2.44", e.IPAddress)
						assert.Equal(t, "unknown", e.UserAgent)
						e.ID = 3
						e.ClickedAt = clickedAt
						return e, nil
					})
			},
			validate: func(t *testing.T, event *domain.ClickEvent, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "Sem nenhuma origem de dados os campos viram unknown",
			input:  domain.ClickInput{AdID: "ad-004"},
			reqCtx: RequestContext{},
			setup: func() {
				mockClickRepo.EXPECT().
					Insert(gomock.Any()).
					DoAndReturn(func(e *domain.ClickEvent) (*domain.ClickEvent, error) {
						assert.Equal(t, "unknown", e.UserAgent)
						assert.Equal(t, "unknown", e.IPAddress)
						e.ID = 4
						e.ClickedAt = clickedAt
						return e, nil
					})
			},
			validate: func(t *testing.T, event *domain.ClickEvent, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "ad_id ausente rejeita sem gravar",
			input:  domain.ClickInput{UserAgent: "TestAgent/1.0"},
			reqCtx: RequestContext{RemoteAddr: "203.0.113.5"},
			setup:  func() {}, // nenhuma chamada ao repositório é esperada
			validate: func(t *testing.T, event *domain.ClickEvent, err error) {
				assert.Nil(t, event)
				assert.ErrorIs(t, err, ErrMissingAdID)
			},
		},
		{
			name:   "Falha de banco propaga como erro de armazenamento",
			input:  domain.ClickInput{AdID: "ad-005"},
			reqCtx: RequestContext{RemoteAddr: "203.0.113.5"},
			setup: func() {
				mockClickRepo.EXPECT().
					Insert(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, event *domain.ClickEvent, err error) {
				assert.Nil(t, event)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			event, err := service.RecordClick(tt.input, tt.reqCtx)
			tt.validate(t, event, err)
		})
	}
}

// Submissões repetidas com payload idêntico são cliques independentes: cada
// chamada grava uma linha própria com id distinto. Não há deduplicação.
func TestService_RecordClick_NoIdempotency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClickRepo := mocks.NewMockClickEventRepository(ctrl)
	service := NewService(mockClickRepo)

	nextID := int64(0)
	mockClickRepo.EXPECT().
		Insert(gomock.Any()).
		Times(2).
		DoAndReturn(func(e *domain.ClickEvent) (*domain.ClickEvent, error) {
			nextID++
			e.ID = nextID
			e.ClickedAt = time.Now()
			return e, nil
		})

	input := domain.ClickInput{AdID: "ad-001"}
	reqCtx := RequestContext{RemoteAddr: "203.0.113.5", UserAgent: "TestAgent/1.0"}

	first, err := service.RecordClick(input, reqCtx)
	assert.NoError(t, err)

	second, err := service.RecordClick(input, reqCtx)
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
