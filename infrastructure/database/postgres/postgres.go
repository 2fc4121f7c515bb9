package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-server-api/internal/config"
)

type Conn interface {
	Queryer
	Begin(context.Context) (*sql.Tx, error)
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// WaitForDatabase segura a inicialização até o banco responder a um probe
// trivial, com o número de tentativas e o intervalo vindos da configuração.
// Esgotadas as tentativas, o último erro sobe e o chamador encerra o processo.
// É um gate apenas de startup: falhas por requisição não passam por aqui.
func (c *Connection) WaitForDatabase(ctx context.Context, attempts int, delay time.Duration) error {
	var err error

	for remaining := attempts; remaining > 0; remaining-- {
		if _, err = c.DB.ExecContext(ctx, "SELECT 1"); err == nil {
			return nil
		}

		if remaining == 1 {
			break
		}

		logrus.Infof("Aguardando banco de dados... %d tentativas restantes", remaining-1)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return err
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if err := tx.Rollback(); err != nil {
			return err
		}
		return err
	}

	return tx.Commit()
}
