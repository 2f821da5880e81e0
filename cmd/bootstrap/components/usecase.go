package components

import (
	"roombook/internal/domain/booking"
	"roombook/internal/pkg/clock"
	"roombook/internal/pkg/config"
	"roombook/internal/pkg/jwt"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"
	"roombook/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBusinessHours,
	func(s *jwt.Service) shared.TokenValidator { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRoomCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewReservationQueries,
	),
)

func NewBusinessHours(cfg config.Config) (booking.BusinessHours, error) {
	return booking.NewBusinessHours(cfg.Booking.OpenHour, cfg.Booking.CloseHour)
}
