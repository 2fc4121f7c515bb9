package domain

// Ad descreve o criativo entregue ao cliente. O ad_id retornado aqui é o
// mesmo identificador que o cliente envia de volta no rastreamento de cliques.
type Ad struct {
	Image       string `json:"image"`
	Destination string `json:"destination"`
	AdID        string `json:"ad_id"`
}
