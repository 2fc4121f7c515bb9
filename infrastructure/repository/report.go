package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-server-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-server-api/internal/domain"
)

const (
	publishersTable = "publishers p"

	// Publishers com receita média abaixo deste valor ficam fora do relatório
	avgRevenueThreshold = 100
)

type ReportRepository interface {
	AvgRevenueByPublisher() ([]domain.PublisherAvgRevenue, error)
	CTRByPublisher() ([]domain.PublisherCTR, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

// AvgRevenueByPublisher calcula a média simples de revenue sobre todas as
// linhas de report de cada publisher. O HAVING corta publishers com média
// menor ou igual ao threshold, e o arredondamento para 2 casas é feito pelo
// banco, que devolve o valor como string decimal.
func (r *reportRepository) AvgRevenueByPublisher() ([]domain.PublisherAvgRevenue, error) {
	query, args, err := squirrel.
		Select(
			"p.id AS publisher_id",
			"p.name",
			"ROUND(AVG(r.revenue)::numeric, 2) AS avg_revenue",
		).
		From(publishersTable).
		Join("reports r ON r.publisher_id = p.id").
		GroupBy("p.id", "p.name").
		Having(fmt.Sprintf("AVG(r.revenue) > %d", avgRevenueThreshold)).
		OrderBy("avg_revenue DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.PublisherAvgRevenue{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	results := make([]domain.PublisherAvgRevenue, 0)
	for rows.Next() {
		var item domain.PublisherAvgRevenue
		if err := rows.Scan(&item.PublisherID, &item.Name, &item.AvgRevenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear avg_revenue: %w", err)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return results, nil
}

// CTRByPublisher calcula o CTR como razão de somas:
// 100 * SUM(clicks) / SUM(impressions) por publisher. O NULLIF protege contra
// divisão por zero e o LEFT JOIN mantém publishers sem report no resultado,
// ambos com CTR 0.
func (r *reportRepository) CTRByPublisher() ([]domain.PublisherCTR, error) {
	query, args, err := squirrel.
		Select(
			"p.id AS publisher_id",
			"p.name",
			"COALESCE(ROUND(100 * SUM(r.clicks)::numeric / NULLIF(SUM(r.impressions), 0), 2), 0) AS avg_ctr",
		).
		From(publishersTable).
		LeftJoin("reports r ON r.publisher_id = p.id").
		GroupBy("p.id", "p.name").
		OrderBy("avg_ctr DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.PublisherCTR{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	results := make([]domain.PublisherCTR, 0)
	for rows.Next() {
		var item domain.PublisherCTR
		if err := rows.Scan(&item.PublisherID, &item.Name, &item.AvgCTR); err != nil {
			return nil, fmt.Errorf("erro ao escanear avg_ctr: %w", err)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return results, nil
}
