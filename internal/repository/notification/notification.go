package notification

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"tracking-service/internal/entities"
	"tracking-service/internal/repository"
	"tracking-service/internal/service/notification_cache"
)

const table = "notifications"

// postgres ограничивает запрос 65535 параметрами, 8 колонок на строку
const insertChunkSize = 1000

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{"id", "title", "body", "timestamp", "is_read", "role", "type", "reference_id"}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// DeleteAll очищает таблицу. Вызывается внутри транзакции вместе с InsertAll.
func (r *Repository) DeleteAll(ctx context.Context) error {
	query, args, err := qb.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("unexpected notification repository delete error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected notification repository delete error: %w", err)
	}
	return nil
}

func (r *Repository) InsertAll(ctx context.Context, records []entities.Notification) error {
	for start := 0; start < len(records); start += insertChunkSize {
		end := min(start+insertChunkSize, len(records))

		builder := qb.Insert(table).Columns(columns...)
		for i := start; i < end; i++ {
			m := FromDomain(&records[i])
			builder = builder.Values(m.ID, m.Title, m.Body, m.Timestamp, m.IsRead, m.Role, m.Type, m.ReferenceID)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("unexpected notification repository insert error: %w", err)
		}

		if _, err := r.querier.Exec(ctx, query, args...); err != nil {
			if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation, repository.PgErrCheckViolation) {
				return fmt.Errorf("notification batch rejected by constraint: %w: %w", entities.ErrUpstreamData, err)
			}
			return fmt.Errorf("unexpected notification repository insert error: %w", err)
		}
	}
	return nil
}

func (r *Repository) MarkRead(ctx context.Context, id int64) error {
	query, args, err := qb.
		Update(table).
		Set("is_read", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notification_cache.ErrNotificationNotFound
	}
	return nil
}

// ListAll возвращает все записи, новые первыми.
func (r *Repository) ListAll(ctx context.Context) ([]entities.Notification, error) {
	query, args, err := qb.
		Select(columns...).
		From(table).
		OrderBy("timestamp DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.Notification, 0)
	for rows.Next() {
		var m NotificationDB
		if err := rows.Scan(&m.ID, &m.Title, &m.Body, &m.Timestamp, &m.IsRead, &m.Role, &m.Type, &m.ReferenceID); err != nil {
			return nil, fmt.Errorf("unexpected notification repository scan error: %w", err)
		}
		result = append(result, ToDomain(&m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected notification repository rows error: %w", err)
	}
	return result, nil
}
