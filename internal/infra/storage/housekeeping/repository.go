package housekeeping

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// CleaningTask задача уборки номера, создается при выезде гостя
type CleaningTask struct {
	ID        int64
	RoomID    int64
	Reference string // внешний идентификатор задачи (uuid)
	Note      string
	Done      bool
	CreatedAt time.Time
}

// Repository репозиторий задач уборки
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория задач уборки
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает задачу уборки номера
// Вызывается в той же транзакции БД, что и перевод номера в CLEANING:
// сбой не должен оставить номер в статусе CLEANING без задачи уборки
func (r *Repository) Create(ctx context.Context, roomID int64, reference string, note string) (*CleaningTask, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cleaning_tasks").
		Columns("room_id", "reference", "note").
		Values(roomID, reference, note).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	task := &CleaningTask{
		RoomID:    roomID,
		Reference: reference,
		Note:      note,
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&task.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	task.CreatedAt = createdAt.Time

	return task, nil
}

// ListPendingByRoom получает невыполненные задачи уборки номера
func (r *Repository) ListPendingByRoom(ctx context.Context, roomID int64) ([]*CleaningTask, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "room_id", "reference", "note", "done", "created_at").
		From("cleaning_tasks").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"done": false}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPendingByRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPendingByRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tasks := make([]*CleaningTask, 0)
	for rows.Next() {
		var task CleaningTask
		var createdAt sql.NullTime

		if err := rows.Scan(&task.ID, &task.RoomID, &task.Reference, &task.Note, &task.Done, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListPendingByRoom - scan row: %v", ErrScanRow, err)
		}
		task.CreatedAt = createdAt.Time
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPendingByRoom - rows error: %v", ErrScanRow, err)
	}

	return tasks, nil
}

// MarkDone отмечает задачу уборки выполненной
func (r *Repository) MarkDone(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cleaning_tasks").
		Set("done", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkDone - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkDone - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkDone - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
