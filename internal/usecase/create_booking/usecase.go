package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	guestClient "github.com/m04kA/SMC-ReservationService/internal/integrations/guestservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	financeRepo  FinanceRepository
	guestClient  GuestServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	financeRepo FinanceRepository,
	guestClient GuestServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		financeRepo:  financeRepo,
		guestClient:  guestClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликтов дат и запись выполняются в одной сериализуемой
// транзакции: конкурентное создание на те же даты не может пройти между
// проверкой и вставкой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%d, guest=%d, interval=[%s, %s), adults=%d, children=%d",
		req.RoomID, req.GuestID,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat),
		req.Adults, req.Children)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование гостя во внешнем сервисе
	if _, err := uc.guestClient.GetGuest(ctx, req.GuestID); err != nil {
		if errors.Is(err, guestClient.ErrGuestNotFound) {
			uc.logger.Warn("CreateBooking: guest id=%d not found", req.GuestID)
			return nil, ErrGuestNotFound
		}
		uc.logger.Error("CreateBooking: failed to get guest id=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: failed to get guest: %v", ErrInternal, err)
	}

	checkIn := domain.NormalizeDate(req.CheckIn)
	checkOut := domain.NormalizeDate(req.CheckOut)
	now := uc.timeProvider.Now()

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем номер с блокировкой (FOR UPDATE)
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 3.2. Номер в MAINTENANCE или BLOCKED не продается
		if room.IsManuallyHeld() {
			uc.logger.Warn("CreateBooking: room id=%d is not bookable, status=%s", room.ID, room.Status)
			return ErrRoomNotBookable
		}

		// 3.3. Проверяем вместимость
		if !room.CanHost(req.Adults + req.Children) {
			uc.logger.Warn("CreateBooking: room id=%d capacity %d exceeded by %d guests",
				room.ID, room.MaxGuests, req.Adults+req.Children)
			return ErrRoomCapacityExceeded
		}

		// 3.4. Получаем активные бронирования номера с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.FindActiveByRoom(txCtx, req.RoomID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for room=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.5. Проверяем пересечение дат
		conflicts := domain.FindConflicts(checkIn, checkOut, bookings, nil)
		if len(conflicts) > 0 {
			numbers := make([]string, 0, len(conflicts))
			for _, b := range conflicts {
				numbers = append(numbers, b.BookingNumber)
			}
			uc.logger.Warn("CreateBooking: room=%d dates conflict with %v", req.RoomID, numbers)
			return &ConflictError{BookingNumbers: numbers}
		}

		// 3.6. Выделяем номер бронирования (сквозная последовательность в рамках года)
		year := now.Year()
		number, seq, err := uc.bookingRepo.NextBookingNumber(txCtx, year)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to allocate booking number: %v", err)
			return fmt.Errorf("%w: failed to allocate booking number: %v", ErrInternal, err)
		}

		// 3.7. Создаем бронирование
		booking := &domain.Booking{
			BookingNumber: number,
			NumberYear:    year,
			NumberSeq:     seq,
			RoomID:        req.RoomID,
			GuestID:       req.GuestID,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			Adults:        req.Adults,
			Children:      req.Children,
			TotalAmount:   req.TotalAmount,
			PaidAmount:    req.PaidAmount,
			Status:        domain.InitialStatus(req.PaidAmount),
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 3.8. Фиксируем первичную оплату в той же транзакции
		if req.PaidAmount > 0 {
			if _, err := uc.financeRepo.RecordPayment(txCtx, created.ID, req.PaidAmount, now,
				fmt.Sprintf("Initial payment for %s", created.BookingNumber)); err != nil {
				uc.logger.Error("CreateBooking: failed to record payment: %v", err)
				return fmt.Errorf("%w: failed to record payment: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (%s), status=%s",
		result.ID, result.BookingNumber, result.Status)

	return toResponse(result), nil
}

// toResponse конвертирует доменную модель в response
func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		RoomID:        b.RoomID,
		GuestID:       b.GuestID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Adults:        b.Adults,
		Children:      b.Children,
		TotalAmount:   b.TotalAmount,
		PaidAmount:    b.PaidAmount,
		Status:        string(b.Status),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
