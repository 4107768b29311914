package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

var roomColumns = []string{
	"id",
	"name",
	"max_guests",
	"base_price",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с номерами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает номер по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку - статус номера будет меняться
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// List получает все номера, отсортированные по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

// ListBookable получает номера, пригодные для бронирования:
// операционный статус AVAILABLE и вместимость не меньше guests
func (r *Repository) ListBookable(ctx context.Context, guests int) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"status": domain.RoomAvailable}).
		Where(squirrel.GtOrEq{"max_guests": guests}).
		OrderBy("base_price ASC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBookable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

// UpdateStatus обновляет статус номера без дополнительных условий
// Административный путь: ручная установка MAINTENANCE/BLOCKED/AVAILABLE
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// UpdateStatusFromBooking обновляет статус номера из жизненного цикла
// бронирования (заезд -> OCCUPIED, выезд -> CLEANING).
// Ручные статусы MAINTENANCE и BLOCKED никогда не перезаписываются:
// в этом случае возвращается ErrRoomManuallyHeld, и вызывающая сторона
// решает, считать ли это ошибкой
func (r *Repository) UpdateStatusFromBooking(ctx context.Context, id int64, status domain.RoomStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": []string{
			string(domain.RoomMaintenance),
			string(domain.RoomBlocked),
		}}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFromBooking - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFromBooking - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFromBooking - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо номера нет, либо его статус зафиксирован вручную
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrRoomManuallyHeld
	}

	return nil
}

// Delete физически удаляет номер
// Зависимые бронирования должны быть удалены до вызова (см. usecase delete_room)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.MaxGuests,
		&room.BasePrice,
		&room.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

func scanRooms(rows *sql.Rows) ([]*domain.Room, error) {
	rooms := make([]*domain.Room, 0)

	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRooms - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRooms - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}
