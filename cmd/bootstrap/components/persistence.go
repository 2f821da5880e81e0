package components

import (
	"roombook/internal/infra/memory"
	"roombook/internal/infra/postgres"
	"roombook/internal/pkg/config"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		newStores,
		func(s *stores) commands.RoomRepository { return s.rooms },
		func(s *stores) commands.ReservationRepository { return s.reservations },
		func(s *stores) commands.UserRepository { return s.users },
		func(s *stores) queries.RoomReadStore { return s.roomViews },
		func(s *stores) queries.ReservationReadStore { return s.reservationViews },
	),
)

// stores bundles one backend's adapters so the write and read sides
// always come from the same driver.
type stores struct {
	rooms            commands.RoomRepository
	reservations     commands.ReservationRepository
	users            commands.UserRepository
	roomViews        queries.RoomReadStore
	reservationViews queries.ReservationReadStore
}

func newStores(cfg config.Config, pool *pgxpool.Pool) *stores {
	if cfg.Storage.Driver == "memory" {
		rooms := memory.NewRoomStore()
		reservations := memory.NewReservationStore(rooms)
		return &stores{
			rooms:            rooms,
			reservations:     reservations,
			users:            memory.NewUserStore(),
			roomViews:        memory.NewRoomReadStore(rooms),
			reservationViews: memory.NewReservationReadStore(reservations),
		}
	}

	return &stores{
		rooms:            postgres.NewRoomRepository(pool),
		reservations:     postgres.NewReservationRepository(pool),
		users:            postgres.NewUserRepository(pool),
		roomViews:        postgres.NewRoomReadStore(pool),
		reservationViews: postgres.NewReservationReadStore(pool),
	}
}
