package reporting

import "errors"

// Erros específicos para o contexto de relatórios
var (
	ErrDatabaseOperation = errors.New("erro ao consultar relatórios no banco de dados")
)
