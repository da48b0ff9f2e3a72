package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/jellomark/reservation-service/internal/domain"
	"github.com/jellomark/reservation-service/pkg/psqlbuilder"
	"github.com/jellomark/reservation-service/pkg/txmanager"
)

// pq коды ошибок, означающие конфликт интервалов на уровне БД
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

var reservationColumns = []string{
	"id",
	"shop_id",
	"member_id",
	"treatment_id",
	"reservation_date",
	"start_time",
	"end_time",
	"status",
	"memo",
	"rejection_reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую бронь в статусе pending.
// ID генерируется базой (gen_random_uuid). Exclusion constraint
// reservations_no_overlap сторожит пересечения интервалов для активных
// статусов: даже если проверка в приложении проскочила из-за гонки,
// база вернет конфликт, который маппится в ErrTimeConflict.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"shop_id",
			"member_id",
			"treatment_id",
			"reservation_date",
			"start_time",
			"end_time",
			"status",
			"memo",
		).
		Values(
			res.ShopID,
			res.MemberID,
			res.TreatmentID,
			res.Date,
			res.StartTime,
			res.EndTime,
			res.Status,
			res.Memo,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isConflictError(err) {
			return nil, ErrTimeConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByShopAndDate получает все брони салона на дату, по возрастанию времени начала.
// Внутри транзакции добавляет FOR UPDATE: сценарий создания брони читает
// существующие брони с блокировкой, чтобы параллельные создания на ту же
// дату сериализовались.
func (r *Repository) GetByShopAndDate(ctx context.Context, shopID string, date time.Time) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"shop_id": shopID}).
		Where(squirrel.Eq{"reservation_date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByShopAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByShopAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// ListByMember получает брони участника, опционально фильтруя по статусу.
// Сортировка: сначала новые.
func (r *Repository) ListByMember(ctx context.Context, memberID string, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"member_id": memberID}).
		OrderBy("reservation_date DESC, start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByMember - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByMember - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// ListByShopWithFilter получает брони салона с фильтрацией по периоду и статусу
func (r *Repository) ListByShopWithFilter(ctx context.Context, filter domain.ShopReservationsFilter) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"shop_id": filter.ShopID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"reservation_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"reservation_date": filter.EndDate.Format(domain.DateFormat)})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	// Для одного дня сортируем по времени (ASC), для периода - сначала новые
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("reservation_date DESC, start_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByShopWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByShopWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// UpdateStatus обновляет статус брони как compare-and-set: строка меняется
// только если текущий статус равен expected. Проигравший гонку переход
// получает ErrStatusConflict (строка есть, но статус уже другой) либо
// ErrReservationNotFound. Слепой перезаписи статуса здесь нет намеренно.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id string,
	expected, target domain.ReservationStatus,
	rejectionReason *string,
) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("status", target).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": expected}).
		Suffix("RETURNING " + strings.Join(reservationColumns, ", "))

	if rejectionReason != nil {
		updateBuilder = updateBuilder.Set("rejection_reason", *rejectionReason)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, id)
		}
		return nil, fmt.Errorf("%w: UpdateStatus - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// classifyMissedUpdate различает "брони нет" и "статус уже изменен"
func (r *Repository) classifyMissedUpdate(ctx context.Context, id string) error {
	_, err := r.GetByID(ctx, id)
	if errors.Is(err, ErrReservationNotFound) {
		return ErrReservationNotFound
	}
	if err != nil {
		return err
	}
	return ErrStatusConflict
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.ShopID,
		&res.MemberID,
		&res.TreatmentID,
		&res.Date,
		&res.StartTime,
		&res.EndTime,
		&res.Status,
		&res.Memo,
		&res.RejectionReason,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func isConflictError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgExclusionViolation || pqErr.Code == pgUniqueViolation
	}
	return false
}
