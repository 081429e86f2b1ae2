package test_seeder

import (
	"context"
	"fmt"
)

// CountRows conta as linhas de uma das tabelas do schema.
func (ts TestSeeder) CountRows(ctx context.Context, table string) (int, error) {
	var count int
	err := ts.pool.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	return count, err
}

func (ts TestSeeder) SelectPropertyStatus(ctx context.Context, id string) (string, error) {
	var status string
	err := ts.pool.QueryRow(ctx, `SELECT status FROM properties WHERE id = $1`, id).Scan(&status)
	return status, err
}

func (ts TestSeeder) SelectMessageRead(ctx context.Context, id string) (bool, error) {
	var read bool
	err := ts.pool.QueryRow(ctx, `SELECT read FROM messages WHERE id = $1`, id).Scan(&read)
	return read, err
}
