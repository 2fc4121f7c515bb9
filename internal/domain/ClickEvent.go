// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// ClickEvent representa um clique registrado em um criativo de anúncio.
// A linha é append-only: id e clicked_at são atribuídos pelo banco no insert.
type ClickEvent struct {
	ID        int64     `json:"id"`
	AdID      string    `json:"ad_id"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	ClickedAt time.Time `json:"clicked_at"`
}

// ClickInput contém os campos opcionais enviados pelo cliente no corpo da requisição
type ClickInput struct {
	AdID      string `json:"ad_id"`
	UserAgent string `json:"user_agent"`
	IPAddress string `json:"ip_address"`
}
