package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/observability"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/rs/zerolog"
)

const (
	maxGenerationAttempts = 5
	SystemActor           = "system"
)

var (
	ErrBookingNotFound         = shared.ErrNotFound
	ErrConcurrentModification  = shared.ErrConcurrentModification
	ErrGenerationExhausted     = errs.ErrGenerationExhausted
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)

type CreateBookingInput struct {
	UserID          int64
	HotelID         int64
	CheckIn         time.Time
	CheckOut        time.Time
	RoomType        string
	Rooms           int
	Guests          int
	DiscountCents   int64
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	SpecialRequests string
	PaymentMethod   string
}

func (in CreateBookingInput) params() booking.NewReservationParams {
	return booking.NewReservationParams{
		UserID:        in.UserID,
		HotelID:       in.HotelID,
		CheckIn:       in.CheckIn,
		CheckOut:      in.CheckOut,
		RoomType:      in.RoomType,
		Rooms:         in.Rooms,
		Guests:        in.Guests,
		DiscountCents: in.DiscountCents,
		Guest: booking.GuestContact{
			Name:  in.GuestName,
			Email: in.GuestEmail,
			Phone: in.GuestPhone,
		},
		SpecialRequests: in.SpecialRequests,
		PaymentMethod:   in.PaymentMethod,
	}
}

// SearchIndexer receives every committed booking.
type SearchIndexer interface {
	Index(ctx context.Context, r *booking.Reservation) error
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput, actor string) (*booking.Reservation, error)
	Update(ctx context.Context, id int64, p booking.Patch, actor string) (*booking.Reservation, error)
	Cancel(ctx context.Context, id int64, reason, actor string) (*booking.Reservation, error)
	CheckIn(ctx context.Context, id int64, actor string) (*booking.Reservation, error)
	CheckOut(ctx context.Context, id int64, actor string) (*booking.Reservation, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
	ids      booking.IdentifierGenerator
	indexer  SearchIndexer
	cache    shared.Cache
	logger   zerolog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	services *booking.Services,
	ids booking.IdentifierGenerator,
	indexer SearchIndexer,
	cache shared.Cache,
	logger zerolog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		services: services,
		ids:      ids,
		indexer:  indexer,
		cache:    cache,
		logger:   logger.With().Str("component", "booking_commands").Logger(),
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput, actor string) (_ *booking.Reservation, err error) {
	defer func() { observability.ObserveCommand("create", err) }()
	actor = normalizeActor(actor)

	draft, err := booking.NewReservation(c.services, in.params(), booking.Identifiers{}, actor)
	if err != nil {
		return nil, err
	}

	var saved *booking.Reservation
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Bookings()
		if err := repo.LockScope(ctx, draft.UserID(), draft.HotelID()); err != nil {
			return err
		}
		if err := ensureNoOverlap(ctx, repo, draft); err != nil {
			return err
		}
		var err error
		saved, err = c.insertWithFreshIdentifiers(ctx, repo, draft)
		return err
	})
	if err != nil {
		return nil, c.translate(err)
	}

	c.logger.Info().
		Int64("booking_id", saved.ID()).
		Str("reference", saved.Reference()).
		Int64("user_id", saved.UserID()).
		Int64("hotel_id", saved.HotelID()).
		Str("actor", actor).
		Msg("booking created")
	c.afterCommit(ctx, saved)
	return saved, nil
}

// insertWithFreshIdentifiers draws up to maxGenerationAttempts identifier pairs,
// skipping pairs already taken and retrying when the insert hits a unique constraint.
func (c *bookingCommandsImpl) insertWithFreshIdentifiers(ctx context.Context, repo shared.BookingRepository, draft *booking.Reservation) (*booking.Reservation, error) {
	now := c.services.Clock.Now()
	for attempt := 1; attempt <= maxGenerationAttempts; attempt++ {
		ids := c.ids.Generate(now)

		taken, err := identifiersTaken(ctx, repo, ids)
		if err != nil {
			return nil, err
		}
		if taken {
			c.logger.Debug().Int("attempt", attempt).Str("reference", ids.Reference).Msg("generated identifiers already in use")
			continue
		}

		draft.WithIdentifiers(ids)
		saved, err := repo.Save(ctx, draft)
		if err == nil {
			return saved, nil
		}
		if infra.IsKind(err, infra.KindExclusionViolation) {
			return nil, c.constraintConflict(ctx, repo, draft, err)
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, err
		}
		c.logger.Debug().Int("attempt", attempt).Str("reference", ids.Reference).Msg("identifier collision on insert")
	}
	return nil, ErrGenerationExhausted
}

func identifiersTaken(ctx context.Context, repo shared.BookingRepository, ids booking.Identifiers) (bool, error) {
	taken, err := repo.ExistsByReference(ctx, ids.Reference)
	if err != nil || taken {
		return taken, err
	}
	return repo.ExistsByConfirmationNumber(ctx, ids.ConfirmationNumber)
}

func (c *bookingCommandsImpl) Update(ctx context.Context, id int64, p booking.Patch, actor string) (_ *booking.Reservation, err error) {
	defer func() { observability.ObserveCommand("update", err) }()
	actor = normalizeActor(actor)

	var (
		saved  *booking.Reservation
		result booking.PatchResult
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Bookings()
		r, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !r.IsModifiable() {
			return booking.ErrNotModifiable
		}
		if p.TouchesDates() {
			if err := repo.LockScope(ctx, r.UserID(), r.HotelID()); err != nil {
				return err
			}
		}

		result, err = r.ApplyPatch(c.services, p, actor)
		if err != nil {
			return err
		}
		if result.DatesChanged {
			if err := ensureNoOverlap(ctx, repo, r); err != nil {
				return err
			}
		}

		saved, err = repo.Save(ctx, r)
		if infra.IsKind(err, infra.KindExclusionViolation) {
			return c.constraintConflict(ctx, repo, r, err)
		}
		return err
	})
	if err != nil {
		return nil, c.translate(err)
	}

	c.logger.Info().
		Int64("booking_id", id).
		Bool("dates_changed", result.DatesChanged).
		Bool("repriced", result.Repriced).
		Str("actor", actor).
		Msg("booking updated")
	c.afterCommit(ctx, saved)
	return saved, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, id int64, reason, actor string) (*booking.Reservation, error) {
	return c.transition(ctx, "cancel", id, actor, func(r *booking.Reservation, now time.Time, actor string) error {
		return r.Cancel(now, actor, reason)
	})
}

func (c *bookingCommandsImpl) CheckIn(ctx context.Context, id int64, actor string) (*booking.Reservation, error) {
	return c.transition(ctx, "check_in", id, actor, (*booking.Reservation).CheckIn)
}

func (c *bookingCommandsImpl) CheckOut(ctx context.Context, id int64, actor string) (*booking.Reservation, error) {
	return c.transition(ctx, "check_out", id, actor, (*booking.Reservation).CheckOut)
}

func (c *bookingCommandsImpl) transition(
	ctx context.Context,
	command string,
	id int64,
	actor string,
	apply func(r *booking.Reservation, now time.Time, actor string) error,
) (_ *booking.Reservation, err error) {
	defer func() { observability.ObserveCommand(command, err) }()
	actor = normalizeActor(actor)

	var saved *booking.Reservation
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Bookings()
		r, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(r, c.services.Clock.Now(), actor); err != nil {
			return err
		}
		saved, err = repo.Save(ctx, r)
		return err
	})
	if err != nil {
		return nil, c.translate(err)
	}

	c.logger.Info().
		Int64("booking_id", id).
		Str("status", saved.Status().String()).
		Str("actor", actor).
		Msg("booking " + strings.ReplaceAll(command, "_", "-"))
	c.afterCommit(ctx, saved)
	return saved, nil
}

// afterCommit refreshes derived stores. Failures are logged; the primary write stands.
func (c *bookingCommandsImpl) afterCommit(ctx context.Context, r *booking.Reservation) {
	ctx = context.WithoutCancel(ctx)

	if err := c.indexer.Index(ctx, r); err != nil {
		c.logger.Warn().Err(err).Int64("booking_id", r.ID()).Msg("failed to index booking, next sync will catch up")
	}
	if err := c.cache.Del(ctx, queries.BookingCacheKeys(r)...); err != nil {
		c.logger.Warn().Err(err).Int64("booking_id", r.ID()).Msg("failed to invalidate booking cache")
	}
}

// constraintConflict names the booking that won a race the advisory lock did not
// cover. The store rejected r with cause; the rival row is visible to the next read.
func (c *bookingCommandsImpl) constraintConflict(ctx context.Context, repo shared.BookingRepository, r *booking.Reservation, cause error) error {
	err := ensureNoOverlap(ctx, repo, r)

	var dup *booking.DuplicateBookingError
	if errors.As(err, &dup) {
		dup.Cause = cause
		return dup
	}
	if err != nil {
		c.logger.Warn().Err(err).Int64("user_id", r.UserID()).Int64("hotel_id", r.HotelID()).Msg("failed to look up conflicting booking")
	}
	return &booking.DuplicateBookingError{Cause: cause}
}

func (c *bookingCommandsImpl) translate(err error) error {
	if errors.Is(err, booking.ErrDuplicateBooking) {
		return err
	}

	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrBookingNotFound
	case infra.IsKind(err, infra.KindVersionConflict):
		return errs.Mark(err, ErrConcurrentModification)
	case infra.IsKind(err, infra.KindExclusionViolation):
		return &booking.DuplicateBookingError{Cause: err}
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var repoErr infra.RepositoryError
	if errors.As(err, &repoErr) {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return err
}

func normalizeActor(actor string) string {
	if actor = strings.TrimSpace(actor); actor == "" {
		return SystemActor
	}
	return actor
}
