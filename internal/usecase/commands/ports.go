package commands

import (
	"context"
	"log/slog"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/clock"
	"hotel-board/internal/usecase/queries"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

type ReservationCommands interface {
	ImportReservation(ctx context.Context, snapshot reservation.ExternalReservation) (*ImportResult, error)
	AcceptReservationChanges(ctx context.Context, req AcceptReservationRequest) (*reservation.Reservation, error)
	CreateReservation(ctx context.Context, req CreateReservationRequest) (*reservation.Reservation, error)
	CancelReservation(ctx context.Context, req CancelReservationRequest) (*reservation.Reservation, error)
	CreateRoomClose(ctx context.Context, req CreateRoomCloseRequest) (*reservation.Reservation, error)
	UpdateReservationPrices(ctx context.Context, req UpdateReservationPricesRequest) (*reservation.Reservation, error)
	MoveReservation(ctx context.Context, req MoveReservationRequest) (*reservation.Reservation, error)
	UpdateReservationGuest(ctx context.Context, req UpdateReservationGuestRequest) (*reservation.Reservation, error)
	UpdateRoomClose(ctx context.Context, req UpdateRoomCloseRequest) (*reservation.Reservation, error)
	DeleteRoomClose(ctx context.Context, req DeleteRoomCloseRequest) (*reservation.Reservation, error)
	AcceptHoldReservation(ctx context.Context, req AcceptHoldReservationRequest) (*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	uow          shared.UnitOfWork
	houses       shared.HouseRepository
	prices       shared.PriceRepository
	changelog    shared.ChangelogRepository
	priceQueries queries.PriceQueries
	factory      *reservation.Factory
	clock        clock.Clock
	logger       *slog.Logger
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	houses shared.HouseRepository,
	prices shared.PriceRepository,
	changelog shared.ChangelogRepository,
	priceQueries queries.PriceQueries,
	factory *reservation.Factory,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:          uow,
		houses:       houses,
		prices:       prices,
		changelog:    changelog,
		priceQueries: priceQueries,
		factory:      factory,
		clock:        clk,
		logger:       logger,
	}
}

// record writes a changelog entry. The change is already committed, so a
// failure here is only logged.
func (uc *reservationUseCaseImpl) record(ctx context.Context, res *reservation.Reservation, action readmodel.ChangelogAction, actor uuid.UUID) {
	uc.recordMessage(ctx, res, action, actor, "")
}

func (uc *reservationUseCaseImpl) recordMessage(ctx context.Context, res *reservation.Reservation, action readmodel.ChangelogAction, actor uuid.UUID, msg string) {
	entry := readmodel.ChangelogEntry{
		HouseID:       res.HouseID,
		ReservationID: res.ID,
		Action:        action,
		StaffID:       actor,
		Message:       msg,
		CreatedAt:     uc.clock.Now(),
	}
	if err := uc.changelog.Record(ctx, entry); err != nil {
		uc.logger.WarnContext(ctx, "failed to write changelog",
			slog.Int64("house_id", res.HouseID),
			slog.Int64("reservation_id", res.ID),
			slog.String("action", string(action)),
			slog.String("error", err.Error()))
	}
}
