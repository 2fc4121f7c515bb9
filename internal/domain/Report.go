package domain

// Publisher é dado de referência carregado por processo externo; esta API apenas lê
type Publisher struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PublisherAvgRevenue é uma linha do relatório de receita média por publisher.
// AvgRevenue é uma string decimal já arredondada para 2 casas pelo banco.
type PublisherAvgRevenue struct {
	PublisherID int    `json:"publisher_id"`
	Name        string `json:"name"`
	AvgRevenue  string `json:"avg_revenue"`
}

// PublisherCTR é uma linha do relatório de CTR médio por publisher
type PublisherCTR struct {
	PublisherID int    `json:"publisher_id"`
	Name        string `json:"name"`
	AvgCTR      string `json:"avg_ctr"`
}
