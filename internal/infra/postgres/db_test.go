package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	pgx.Tx
}

func TestConn(t *testing.T) {
	t.Parallel()

	var pool DBTX = &fakeTx{}
	assert.Same(t, pool, Conn(context.Background(), pool))

	tx := &fakeTx{}
	ctx := context.WithValue(context.Background(), txKey{}, pgx.Tx(tx))
	assert.Same(t, tx, Conn(ctx, pool))
}

func TestWithinTxReusesOuterTx(t *testing.T) {
	t.Parallel()

	tx := &fakeTx{}
	ctx := context.WithValue(context.Background(), txKey{}, pgx.Tx(tx))

	called := false
	err := (&Transactor{}).WithinTx(ctx, func(inner context.Context) error {
		called = true
		assert.Same(t, tx, Conn(inner, nil))
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
}
