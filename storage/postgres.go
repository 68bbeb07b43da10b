package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const objectsTable = "storage_objects"

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	createObjectsTable = "CREATE TABLE IF NOT EXISTS " + objectsTable + " (" +
		"key TEXT PRIMARY KEY, " +
		"body BYTEA NOT NULL, " +
		"content_type TEXT NOT NULL DEFAULT '', " +
		"updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW())"
)

// PostgresBucket keeps objects as rows, for deployments without an S3 store.
type PostgresBucket struct {
	pool *pgxpool.Pool
}

func NewPostgresBucket(ctx context.Context, connStr string) (*PostgresBucket, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	migrateCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if _, err := pool.Exec(migrateCtx, createObjectsTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("could not create %s table: %w", objectsTable, err)
	}

	return &PostgresBucket{pool: pool}, nil
}

func (b *PostgresBucket) Close() {
	b.pool.Close()
}

func (b *PostgresBucket) Get(ctx context.Context, key string) (*Object, error) {
	query, args, err := selectObjectQuery(key)
	if err != nil {
		return nil, err
	}

	var obj Object
	if err := b.pool.QueryRow(ctx, query, args...).Scan(&obj.Body, &obj.ContentType); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("could not query object %s: %w", key, err)
	}

	return &obj, nil
}

func (b *PostgresBucket) Put(ctx context.Context, key string, obj Object) error {
	query, args, err := upsertObjectQuery(key, obj, time.Now())
	if err != nil {
		return err
	}

	if _, err := b.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("could not store object %s: %w", key, err)
	}
	return nil
}

func selectObjectQuery(key string) (string, []interface{}, error) {
	return psql.Select("body", "content_type").
		From(objectsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func upsertObjectQuery(key string, obj Object, now time.Time) (string, []interface{}, error) {
	body := obj.Body
	if body == nil {
		body = []byte{}
	}
	return psql.Insert(objectsTable).
		Columns("key", "body", "content_type", "updated_at").
		Values(key, body, obj.ContentType, now).
		Suffix("ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, content_type = EXCLUDED.content_type, updated_at = EXCLUDED.updated_at").
		ToSql()
}
