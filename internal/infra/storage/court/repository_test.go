package court

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingExecutor записывает сгенерированный SQL, не обращаясь к базе
type capturingExecutor struct {
	query string
}

func (c *capturingExecutor) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	c.query = query
	return nil, errors.New("no database")
}

func (c *capturingExecutor) QueryContext(_ context.Context, query string, _ ...interface{}) (*sql.Rows, error) {
	c.query = query
	return nil, errors.New("no database")
}

func (c *capturingExecutor) QueryRowContext(_ context.Context, query string, _ ...interface{}) *sql.Row {
	c.query = query
	return nil
}

func TestGetPrices_QueryMatchesSchema(t *testing.T) {
	executor := &capturingExecutor{}
	repo := NewRepository(executor)

	_, err := repo.GetPrices(context.Background(), 11, 2)
	require.ErrorIs(t, err, ErrExecQuery)

	// Каждая колонка должна существовать в migrations/001_init.sql
	assert.Contains(t, executor.query, "p.price_per_hour")
	assert.Contains(t, executor.query, "s.company_id")
	assert.Contains(t, executor.query, "FROM court_type_prices p")
	assert.Contains(t, executor.query, "JOIN time_slots s ON s.id = p.time_slot_id")
	assert.Contains(t, executor.query, "ORDER BY s.start_time ASC")
}
