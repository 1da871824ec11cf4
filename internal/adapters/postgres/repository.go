package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wojg58/Thursday/internal/contextkeys"
	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/port"
)

const uniqueViolation = "23505"

// DB - часть *pgxpool.Pool, которой пользуется репозиторий.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var _ DB = (*pgxpool.Pool)(nil)

// PostgresBookmarkRepository - реализация BookmarkRepositoryPort для PostgreSQL.
type PostgresBookmarkRepository struct {
	db DB
}

func NewPostgresBookmarkRepository(db DB) (*PostgresBookmarkRepository, error) {
	if db == nil {
		return nil, errors.New("database pool cannot be nil")
	}
	return &PostgresBookmarkRepository{db: db}, nil
}

var _ port.BookmarkRepositoryPort = (*PostgresBookmarkRepository)(nil)

func (r *PostgresBookmarkRepository) logger(ctx context.Context, method string, fields port.Fields) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresBookmarkRepository",
		"method":    method,
	}).WithFields(fields)
}

// Add вставляет закладку. Повторная вставка той же пары (user, content) не ошибка.
func (r *PostgresBookmarkRepository) Add(ctx context.Context, b domain.Bookmark) (bool, error) {
	repoLogger := r.logger(ctx, "Add", port.Fields{"user_id": b.UserID, "content_id": b.ContentID})

	query := `INSERT INTO bookmarks (user_id, content_id, content_type_id, title, first_image, addr)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, b.UserID, b.ContentID, b.ContentTypeID, b.Title, b.FirstImage, b.Addr)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			repoLogger.Debug("Bookmark already exists, operation considered successful", nil)
			return false, nil
		}
		repoLogger.Error("Failed to add bookmark", err, nil)
		return false, fmt.Errorf("failed to add bookmark: %w", err)
	}

	repoLogger.Debug("Bookmark added", nil)
	return true, nil
}

func (r *PostgresBookmarkRepository) Remove(ctx context.Context, userID uuid.UUID, contentID string) (bool, error) {
	repoLogger := r.logger(ctx, "Remove", port.Fields{"user_id": userID, "content_id": contentID})

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM bookmarks WHERE user_id = $1 AND content_id = $2`, userID, contentID)
	if err != nil {
		repoLogger.Error("Failed to remove bookmark", err, nil)
		return false, fmt.Errorf("failed to remove bookmark: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		repoLogger.Debug("Bookmark to remove did not exist", nil)
		return false, nil
	}
	return true, nil
}

// RemoveMany удаляет закладки одним запросом и возвращает реально удаленные идентификаторы.
func (r *PostgresBookmarkRepository) RemoveMany(ctx context.Context, userID uuid.UUID, contentIDs []string) ([]string, error) {
	repoLogger := r.logger(ctx, "RemoveMany", port.Fields{"user_id": userID, "requested": len(contentIDs)})
	if len(contentIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND content_id = ANY($2) RETURNING content_id`,
		userID, contentIDs)
	if err != nil {
		repoLogger.Error("Failed to remove bookmarks", err, nil)
		return nil, fmt.Errorf("failed to remove bookmarks: %w", err)
	}

	removed, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		repoLogger.Error("Failed to read removed ids", err, nil)
		return nil, fmt.Errorf("failed to read removed ids: %w", err)
	}

	repoLogger.Debug("Bookmarks removed", port.Fields{"removed": len(removed)})
	return removed, nil
}

func (r *PostgresBookmarkRepository) Exists(ctx context.Context, userID uuid.UUID, contentID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM bookmarks WHERE user_id = $1 AND content_id = $2)`,
		userID, contentID).Scan(&exists)
	if err != nil {
		r.logger(ctx, "Exists", port.Fields{"user_id": userID, "content_id": contentID}).Error("Failed to check bookmark", err, nil)
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}
	return exists, nil
}

// orderClause - порядок выдачи. Сортировка по имени идет по корейской ICU-коллации,
// как и listing.SortItems; сервер PostgreSQL должен быть собран с ICU.
func orderClause(sortBy domain.SortKey) string {
	if sortBy == domain.SortName {
		return `ORDER BY title COLLATE "ko-x-icu" ASC, created_at DESC`
	}
	return `ORDER BY created_at DESC, content_id ASC`
}

// pageOf - номер страницы для offset/limit, страницы считаются с 1.
func pageOf(limit, offset int) int {
	if limit <= 0 {
		return 1
	}
	return offset/limit + 1
}

// FindPaginatedByUser возвращает страницу закладок и общее число в одной транзакции.
func (r *PostgresBookmarkRepository) FindPaginatedByUser(ctx context.Context, userID uuid.UUID, sortBy domain.SortKey, limit, offset int) (*domain.PaginatedBookmarks, error) {
	repoLogger := r.logger(ctx, "FindPaginatedByUser", port.Fields{
		"user_id": userID,
		"sort_by": sortBy,
		"limit":   limit,
		"offset":  offset,
	})

	result := &domain.PaginatedBookmarks{
		Bookmarks:    []domain.Bookmark{},
		CurrentPage:  pageOf(limit, offset),
		ItemsPerPage: limit,
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		repoLogger.Error("Failed to begin transaction", err, nil)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM bookmarks WHERE user_id = $1`, userID).Scan(&result.TotalCount); err != nil {
		repoLogger.Error("Failed to count bookmarks", err, nil)
		return nil, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	if result.TotalCount == 0 {
		return result, nil
	}

	dataQuery := `SELECT user_id, content_id, content_type_id, title, first_image, addr, created_at
		FROM bookmarks WHERE user_id = $1 ` + orderClause(sortBy) + ` LIMIT $2 OFFSET $3`
	rows, err := tx.Query(ctx, dataQuery, userID, limit, offset)
	if err != nil {
		repoLogger.Error("Failed to query bookmarks", err, port.Fields{"query": dataQuery})
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}

	bookmarks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Bookmark, error) {
		var b domain.Bookmark
		err := row.Scan(&b.UserID, &b.ContentID, &b.ContentTypeID, &b.Title, &b.FirstImage, &b.Addr, &b.CreatedAt)
		return b, err
	})
	if err != nil {
		repoLogger.Error("Failed to scan bookmark rows", err, nil)
		return nil, fmt.Errorf("failed to scan bookmarks: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		repoLogger.Error("Failed to commit transaction", err, nil)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	result.Bookmarks = bookmarks
	repoLogger.Debug("Bookmarks page loaded", port.Fields{"found_on_page": len(bookmarks), "total_count": result.TotalCount})
	return result, nil
}
