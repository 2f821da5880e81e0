package bootstrap

import (
	"context"
	"log/slog"

	"roombook/internal/domain/room"
	"roombook/internal/domain/user"
	"roombook/internal/pkg/config"
	"roombook/internal/pkg/password"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedDemoData),
)

type demoRoom struct {
	name        string
	location    string
	capacity    int
	description string
	imageURL    string
	amenities   []string
}

var demoRooms = []demoRoom{
	{
		name:        "Executive Boardroom",
		location:    "Floor 1",
		capacity:    20,
		description: "Luxurious Modern Space",
		imageURL:    "https://images.unsplash.com/photo-1497366811353-6870744d04b2?auto=format&fit=crop&w=800&q=80",
		amenities:   []string{"Projector", "Video Conference", "Whiteboard"},
	},
	{
		name:        "Creative Space",
		location:    "Floor 2",
		capacity:    8,
		description: "Informal Brainstorming Room",
		imageURL:    "https://images.unsplash.com/photo-1497366216548-37526070297c?auto=format&fit=crop&w=800&q=80",
		amenities:   []string{"Whiteboard", "Smart TV", "Standing Desks"},
	},
	{
		name:        "Training Room",
		location:    "Ground Floor",
		capacity:    30,
		description: "Large Training Space",
		imageURL:    "https://images.unsplash.com/photo-1497366754035-f200968a6e72?auto=format&fit=crop&w=800&q=80",
		amenities:   []string{"Dual Projectors", "Sound System", "Training PCs"},
	},
}

type demoUser struct {
	email    string
	password string
	role     user.Role
}

var demoUsers = []demoUser{
	{email: "admin@example.com", password: "admin-password", role: user.RoleAdmin},
	{email: "member@example.com", password: "member-password", role: user.RoleMember},
}

// SeedDemoData fills an empty installation with the demo catalog and two
// login accounts. It only runs when SEED_DEMO_DATA is set and never
// touches a store that already has rows.
func SeedDemoData(
	cfg config.Config,
	users commands.UserRepository,
	rooms commands.RoomRepository,
	roomViews queries.RoomReadStore,
	logger *slog.Logger,
) error {
	if !cfg.Storage.SeedDemo {
		return nil
	}

	ctx := context.Background()

	for _, d := range demoUsers {
		email, err := user.NewEmail(d.email)
		if err != nil {
			return err
		}
		if _, err := users.FindByEmail(ctx, email); err == nil {
			continue
		}
		hash, err := password.Hash(d.password)
		if err != nil {
			return err
		}
		if err := users.Create(ctx, user.NewUser(email, hash, d.role)); err != nil {
			return err
		}
		logger.Info("seeded demo user", "email", d.email, "role", d.role.String())
	}

	existing, err := roomViews.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, d := range demoRooms {
		entity, err := room.NewRoom(d.name, d.location, d.capacity, d.description, d.imageURL, d.amenities)
		if err != nil {
			return err
		}
		if err := rooms.Create(ctx, entity); err != nil {
			return err
		}
		logger.Info("seeded demo room", "name", d.name)
	}

	return nil
}
