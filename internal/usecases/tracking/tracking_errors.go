package tracking

import "errors"

// Erros específicos para o contexto de rastreamento de cliques
var (
	// Erro de validação: é a única regra obrigatória da ingestão. A mensagem
	// em inglês faz parte do contrato da API e chega ao cliente como está.
	ErrMissingAdID = errors.New("ad_id is required")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao gravar evento de clique no banco de dados")
)
