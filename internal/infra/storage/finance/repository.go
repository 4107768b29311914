package finance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Transaction финансовая транзакция (приход по бронированию)
type Transaction struct {
	ID          int64
	BookingID   int64
	Amount      float64
	PaidAt      time.Time
	Description string
	CreatedAt   time.Time
}

// Repository репозиторий финансовых транзакций
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория транзакций
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// RecordPayment записывает приходную транзакцию по бронированию
// Вызывается в той же транзакции БД, что и создание/обновление бронирования,
// чтобы платеж не потерялся при частичном сбое
func (r *Repository) RecordPayment(ctx context.Context, bookingID int64, amount float64, paidAt time.Time, description string) (*Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("transactions").
		Columns("booking_id", "amount", "paid_at", "description").
		Values(bookingID, amount, paidAt.Format(domain.DateFormat), description).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: RecordPayment - build insert query: %v", ErrBuildQuery, err)
	}

	tx := &Transaction{
		BookingID:   bookingID,
		Amount:      amount,
		PaidAt:      paidAt,
		Description: description,
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&tx.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: RecordPayment - execute insert: %v", ErrExecQuery, err)
	}
	tx.CreatedAt = createdAt.Time

	return tx, nil
}

// GetByBookingID получает все транзакции бронирования
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) ([]*Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "amount", "paid_at", "description", "created_at").
		From("transactions").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("paid_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	transactions := make([]*Transaction, 0)
	for rows.Next() {
		var tx Transaction
		var createdAt sql.NullTime

		if err := rows.Scan(&tx.ID, &tx.BookingID, &tx.Amount, &tx.PaidAt, &tx.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetByBookingID - scan row: %v", ErrScanRow, err)
		}
		tx.CreatedAt = createdAt.Time
		transactions = append(transactions, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - rows error: %v", ErrScanRow, err)
	}

	return transactions, nil
}

// DeleteByBookingID удаляет транзакции бронирования
// Ссылочная зачистка перед физическим удалением бронирования
func (r *Repository) DeleteByBookingID(ctx context.Context, bookingID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("transactions").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByBookingID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByBookingID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByBookingID - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// DeleteByRoomID удаляет транзакции всех бронирований номера
// Используется каскадным удалением номера с force-флагом
func (r *Repository) DeleteByRoomID(ctx context.Context, roomID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("transactions").
		Where(squirrel.Expr("booking_id IN (SELECT id FROM bookings WHERE room_id = ?)", roomID)).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByRoomID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByRoomID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByRoomID - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}
