package repository

import (
	"context"
	"fmt"
	"strings"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/pagination"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const bookingColumns = `id, booking_reference, confirmation_number, user_id, hotel_id, check_in_date, check_out_date,
	room_type, number_of_rooms, number_of_guests, base_amount_cents, taxes_cents, fees_cents, discount_cents,
	total_amount_cents, status, payment_status, payment_method, guest_name, guest_email, guest_phone,
	special_requests, cancelled_at, cancelled_by, cancellation_reason, checked_in_at, checked_out_at,
	created_at, updated_at, created_by, updated_by, version`

// writeColumns must stay in step with writeArgs.
var writeColumns = []string{
	"booking_reference", "confirmation_number", "user_id", "hotel_id", "check_in_date", "check_out_date",
	"room_type", "number_of_rooms", "number_of_guests", "base_amount_cents", "taxes_cents", "fees_cents",
	"discount_cents", "total_amount_cents", "status", "payment_status", "payment_method", "guest_name",
	"guest_email", "guest_phone", "special_requests", "cancelled_at", "cancelled_by", "cancellation_reason",
	"checked_in_at", "checked_out_at", "created_at", "updated_at", "created_by", "updated_by",
}

var (
	insertBookingSQL = buildInsert()
	updateBookingSQL = buildUpdate()
)

func buildInsert() string {
	placeholders := make([]string, len(writeColumns))
	for i := range writeColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf(`INSERT INTO bookings (%s) VALUES (%s) RETURNING %s`,
		strings.Join(writeColumns, ", "), strings.Join(placeholders, ", "), bookingColumns)
}

// buildUpdate takes id as $1 and the expected version as $2.
func buildUpdate() string {
	sets := make([]string, len(writeColumns))
	for i, col := range writeColumns {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+3)
	}
	return fmt.Sprintf(`UPDATE bookings SET %s, version = version + 1 WHERE id = $1 AND version = $2 RETURNING %s`,
		strings.Join(sets, ", "), bookingColumns)
}

func writeArgs(s booking.Snapshot) []any {
	return []any{
		s.Reference,
		s.ConfirmationNumber,
		s.UserID,
		s.HotelID,
		pgconv.DateToPgtype(s.CheckIn),
		pgconv.DateToPgtype(s.CheckOut),
		pgconv.TextFromString(s.RoomType),
		s.Rooms,
		s.Guests,
		s.BaseCents,
		s.TaxesCents,
		s.FeesCents,
		s.DiscountCents,
		s.TotalCents,
		string(s.Status),
		s.PaymentStatus,
		pgconv.TextFromString(s.PaymentMethod),
		s.GuestName,
		pgconv.TextFromString(s.GuestEmail),
		pgconv.TextFromString(s.GuestPhone),
		pgconv.TextFromString(s.SpecialRequests),
		pgconv.TimePtrToPgtype(s.CancelledAt),
		pgconv.TextFromString(s.CancelledBy),
		pgconv.TextFromString(s.CancellationReason),
		pgconv.TimePtrToPgtype(s.CheckedInAt),
		pgconv.TimePtrToPgtype(s.CheckedOutAt),
		pgconv.TimeToPgtype(s.CreatedAt),
		pgconv.TimeToPgtype(s.UpdatedAt),
		s.CreatedBy,
		s.UpdatedBy,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Reservation, error) {
	var (
		s                                         booking.Snapshot
		status                                    string
		checkIn, checkOut                         pgtype.Date
		roomType, paymentMethod, email, phone     pgtype.Text
		requests, cancelledBy, cancellationReason pgtype.Text
		cancelledAt, checkedInAt, checkedOutAt    pgtype.Timestamptz
		createdAt, updatedAt                      pgtype.Timestamptz
	)
	err := row.Scan(
		&s.ID, &s.Reference, &s.ConfirmationNumber, &s.UserID, &s.HotelID, &checkIn, &checkOut,
		&roomType, &s.Rooms, &s.Guests, &s.BaseCents, &s.TaxesCents, &s.FeesCents, &s.DiscountCents,
		&s.TotalCents, &status, &s.PaymentStatus, &paymentMethod, &s.GuestName, &email, &phone,
		&requests, &cancelledAt, &cancelledBy, &cancellationReason, &checkedInAt, &checkedOutAt,
		&createdAt, &updatedAt, &s.CreatedBy, &s.UpdatedBy, &s.Version,
	)
	if err != nil {
		return nil, err
	}

	s.Status = booking.Status(status)
	s.CheckIn = pgconv.TimeFromDate(checkIn)
	s.CheckOut = pgconv.TimeFromDate(checkOut)
	s.RoomType = pgconv.StringFromText(roomType)
	s.PaymentMethod = pgconv.StringFromText(paymentMethod)
	s.GuestEmail = pgconv.StringFromText(email)
	s.GuestPhone = pgconv.StringFromText(phone)
	s.SpecialRequests = pgconv.StringFromText(requests)
	s.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	s.CancelledBy = pgconv.StringFromText(cancelledBy)
	s.CancellationReason = pgconv.StringFromText(cancellationReason)
	s.CheckedInAt = pgconv.TimePtrFromPgtype(checkedInAt)
	s.CheckedOutAt = pgconv.TimePtrFromPgtype(checkedOutAt)
	s.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	s.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return booking.Reconstruct(s), nil
}

// BookingRepository is the Postgres primary store. Save needs db to be a transaction.
type BookingRepository struct {
	db     DBTX
	logger zerolog.Logger
}

var _ shared.BookingRepository = (*BookingRepository)(nil)

func NewBookingRepository(db DBTX, logger zerolog.Logger) *BookingRepository {
	return &BookingRepository{db: db, logger: logger}
}

func (r *BookingRepository) findOne(ctx context.Context, msg, where string, arg any) (*booking.Reservation, error) {
	res, err := scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE `+where, arg))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
	}
	return res, nil
}

func (r *BookingRepository) findMany(ctx context.Context, msg, sql string, args ...any) ([]*booking.Reservation, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
	}
	defer rows.Close()

	out := make([]*booking.Reservation, 0)
	for rows.Next() {
		res, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
	}
	return out, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*booking.Reservation, error) {
	return r.findOne(ctx, "failed to find booking by id", "id = $1", id)
}

func (r *BookingRepository) FindByReference(ctx context.Context, reference string) (*booking.Reservation, error) {
	return r.findOne(ctx, "failed to find booking by reference", "booking_reference = $1", reference)
}

func (r *BookingRepository) FindAll(ctx context.Context, page pagination.Request) (pagination.Page[*booking.Reservation], error) {
	total, err := r.Count(ctx)
	if err != nil {
		return pagination.Page[*booking.Reservation]{}, err
	}
	items, err := r.findMany(ctx, "failed to list bookings",
		`SELECT `+bookingColumns+` FROM bookings ORDER BY id LIMIT $1 OFFSET $2`, page.Size, page.Offset())
	if err != nil {
		return pagination.Page[*booking.Reservation]{}, err
	}
	return pagination.NewPage(items, page, total), nil
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to count bookings", err)
	}
	return n, nil
}

func (r *BookingRepository) FindByUser(ctx context.Context, userID int64) ([]*booking.Reservation, error) {
	return r.findMany(ctx, "failed to list bookings by user",
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
}

func (r *BookingRepository) FindByHotel(ctx context.Context, hotelID int64) ([]*booking.Reservation, error) {
	return r.findMany(ctx, "failed to list bookings by hotel",
		`SELECT `+bookingColumns+` FROM bookings WHERE hotel_id = $1 ORDER BY check_in_date, id`, hotelID)
}

func (r *BookingRepository) LockScope(ctx context.Context, userID, hotelID int64) error {
	key := fmt.Sprintf("booking-scope:%d:%d", userID, hotelID)
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to lock booking scope", err)
	}
	return nil
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, q shared.OverlapQuery) ([]*booking.Reservation, error) {
	return r.findMany(ctx, "failed to find overlapping bookings",
		`SELECT `+bookingColumns+` FROM bookings
		WHERE user_id = $1 AND hotel_id = $2 AND status <> 'CANCELLED' AND id <> $3
		  AND check_in_date < $5 AND $4 < check_out_date
		ORDER BY check_in_date, id`,
		q.UserID, q.HotelID, q.ExcludeID, pgconv.DateToPgtype(q.CheckIn), pgconv.DateToPgtype(q.CheckOut))
}

func (r *BookingRepository) exists(ctx context.Context, msg, where string, arg any) (bool, error) {
	var ok bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE `+where+`)`, arg).Scan(&ok); err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
	}
	return ok, nil
}

func (r *BookingRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	return r.exists(ctx, "failed to check booking reference", "booking_reference = $1", reference)
}

func (r *BookingRepository) ExistsByConfirmationNumber(ctx context.Context, confirmationNumber string) (bool, error) {
	return r.exists(ctx, "failed to check confirmation number", "confirmation_number = $1", confirmationNumber)
}

// Save runs inside a savepoint so a constraint violation leaves the transaction
// usable for a retry or a follow-up read.
func (r *BookingRepository) Save(ctx context.Context, res *booking.Reservation) (*booking.Reservation, error) {
	if _, err := r.db.Exec(ctx, `SAVEPOINT booking_write`); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to open savepoint", err)
	}

	write := r.update
	if res.IsNew() {
		write = r.insert
	}
	saved, err := write(ctx, res)
	if err != nil {
		if _, rbErr := r.db.Exec(ctx, `ROLLBACK TO SAVEPOINT booking_write`); rbErr != nil {
			r.logger.Warn().Err(rbErr).Msg("rollback to savepoint failed")
		}
		return nil, err
	}

	if _, err := r.db.Exec(ctx, `RELEASE SAVEPOINT booking_write`); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to release savepoint", err)
	}
	return saved, nil
}

func (r *BookingRepository) insert(ctx context.Context, res *booking.Reservation) (*booking.Reservation, error) {
	saved, err := scanBooking(r.db.QueryRow(ctx, insertBookingSQL, writeArgs(res.Snapshot())...))
	if err != nil {
		return nil, r.writeErr("failed to insert booking", err)
	}
	return saved, nil
}

func (r *BookingRepository) update(ctx context.Context, res *booking.Reservation) (*booking.Reservation, error) {
	snap := res.Snapshot()
	args := append([]any{snap.ID, snap.Version}, writeArgs(snap)...)

	saved, err := scanBooking(r.db.QueryRow(ctx, updateBookingSQL, args...))
	if err == nil {
		return saved, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, r.writeErr("failed to update booking", err)
	}

	found, err := r.exists(ctx, "failed to check booking", "id = $1", snap.ID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return nil, infra.NewRepoErr(infra.KindVersionConflict, fmt.Sprintf("booking %d changed since version %d", snap.ID, snap.Version))
}

func (r *BookingRepository) writeErr(msg string, err error) error {
	switch pgconv.ErrorCode(err) {
	case pgconv.CodeUniqueViolation:
		return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, msg, err)
	case pgconv.CodeExclusionViolation:
		return infra.WrapRepoErr(r.logger, infra.KindExclusionViolation, msg, err)
	default:
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
	}
}
