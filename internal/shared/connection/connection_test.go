package connection_test

import (
	"context"
	"testing"

	"restropay/internal/shared/connection"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestTxSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	mock.ExpectBegin()
	tx, err := db.Begin()
	assert.NoError(t, err)

	session := connection.TxSession(gdb, tx)
	assert.Same(t, tx, session.Statement.ConnPool)

	t.Run("chained calls stay on the transaction", func(t *testing.T) {
		chained := session.WithContext(context.Background()).Where("id = ?", "x")
		assert.Same(t, tx, chained.Statement.ConnPool)
	})

	t.Run("base handle keeps the pool", func(t *testing.T) {
		assert.NotSame(t, tx, gdb.Statement.ConnPool)
	})
}
