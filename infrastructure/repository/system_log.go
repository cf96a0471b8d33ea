package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pontogestor/admin-api/infrastructure/database/postgres"
	"github.com/pontogestor/admin-api/internal/domain"
)

const systemLogsTable = "system_logs"

// RecentLogsLimit limita a listagem às entradas mais recentes
const RecentLogsLimit = 100

type SystemLogRepository interface {
	Append(entry *domain.SystemLog) error
	ListRecent(userID int) ([]*domain.SystemLog, error)
}

type systemLogRepository struct {
	conn *postgres.Connection
}

func NewSystemLogRepository(conn *postgres.Connection) SystemLogRepository {
	return &systemLogRepository{
		conn: conn,
	}
}

// Append grava uma entrada de auditoria. Entradas nunca são alteradas ou
// removidas depois de gravadas.
func (r *systemLogRepository) Append(entry *domain.SystemLog) error {
	querySQL, args, err := squirrel.
		Insert(systemLogsTable).
		Columns("id", "action", "details", "type", "user_email", "user_id", "created_at").
		Values(
			entry.ID,
			entry.Action,
			entry.Details,
			entry.Type,
			entry.UserEmail,
			entry.UserID,
			entry.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(querySQL, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *systemLogRepository) ListRecent(userID int) ([]*domain.SystemLog, error) {
	querySQL, args, err := squirrel.
		Select("id, action, details, type, user_email, created_at").
		From(systemLogsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(RecentLogsLimit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(querySQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	logs := make([]*domain.SystemLog, 0)

	for rows.Next() {
		entry := &domain.SystemLog{}
		if err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&entry.Details,
			&entry.Type,
			&entry.UserEmail,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}

		entry.UserID = userID
		logs = append(logs, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
