// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-server-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-server-api/internal/domain"
)

const (
	clickEventsTable = "click_events"
)

type ClickEventRepository interface {
	Insert(event *domain.ClickEvent) (*domain.ClickEvent, error)
}

type clickEventRepository struct {
	conn *postgres.Connection
}

func NewClickEventRepository(conn *postgres.Connection) ClickEventRepository {
	return &clickEventRepository{
		conn: conn,
	}
}

// Insert grava exatamente um evento de clique por chamada. Não há deduplicação:
// submissões repetidas geram linhas distintas, cada uma com seu próprio id.
// O banco atribui id e clicked_at no momento do insert.
func (r *clickEventRepository) Insert(event *domain.ClickEvent) (*domain.ClickEvent, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(clickEventsTable).
		Columns("ad_id", "user_agent", "ip_address").
		Values(event.AdID, event.UserAgent, event.IPAddress).
		Suffix("RETURNING id, clicked_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&event.ID, &event.ClickedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar o insert: %w", err)
	}

	return event, nil
}
