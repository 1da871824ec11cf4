package postgres_adapter

import (
	"context"
	"fmt"
)

// bookmarksDDL - схема таблицы закладок. Применяется при старте, повторный запуск безопасен.
const bookmarksDDL = `
CREATE TABLE IF NOT EXISTS bookmarks (
	user_id         uuid        NOT NULL,
	content_id      text        NOT NULL,
	content_type_id text        NOT NULL DEFAULT '',
	title           text        NOT NULL DEFAULT '',
	first_image     text        NOT NULL DEFAULT '',
	addr            text        NOT NULL DEFAULT '',
	created_at      timestamptz NOT NULL DEFAULT now(),
	PRIMARY KEY (user_id, content_id)
);
CREATE INDEX IF NOT EXISTS bookmarks_user_created_idx ON bookmarks (user_id, created_at DESC);
`

// EnsureSchema создает таблицу закладок, если ее еще нет.
func (r *PostgresBookmarkRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, bookmarksDDL); err != nil {
		return fmt.Errorf("failed to apply bookmarks schema: %w", err)
	}
	return nil
}
