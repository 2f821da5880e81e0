//go:build unit

package room_test

import (
	"testing"

	"roombook/internal/domain/room"
	"roombook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RoomBuilder)
	errIs  error
}

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Executive Boardroom", actual.Name())
		assert.Equal(t, "Floor 1", actual.Location())
		assert.Equal(t, 20, actual.Capacity())
		assert.Equal(t, []string{"Projector", "Whiteboard"}, actual.Amenities())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.RoomBuilder) { b.WithName("") },
				errIs:  room.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.RoomBuilder) { b.WithName("   ") },
				errIs:  room.ErrEmptyName,
			},
			{
				name:   "empty location",
				mutate: func(b *builder.RoomBuilder) { b.WithLocation("") },
				errIs:  room.ErrEmptyLocation,
			},
			{
				name:   "zero capacity",
				mutate: func(b *builder.RoomBuilder) { b.WithCapacity(0) },
				errIs:  room.ErrInvalidCapacity,
			},
			{
				name:   "negative capacity",
				mutate: func(b *builder.RoomBuilder) { b.WithCapacity(-3) },
				errIs:  room.ErrInvalidCapacity,
			},
			{
				name:   "capacity of one",
				mutate: func(b *builder.RoomBuilder) { b.WithCapacity(1) },
			},
		})
	})

	t.Run("trims name and location", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().WithName("  Lab  ").WithLocation("  Floor 3  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Lab", actual.Name())
		assert.Equal(t, "Floor 3", actual.Location())
	})

	t.Run("drops blank amenities", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().WithAmenities([]string{" TV ", "", "  "}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, []string{"TV"}, actual.Amenities())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		r1, err1 := builder.NewRoomBuilder().BuildDomain()
		r2, err2 := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, r1.ID(), r2.ID())
	})
}

func TestRoomUpdate(t *testing.T) {
	newRoom := func(t *testing.T) *room.Room {
		t.Helper()
		r, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		return r
	}

	t.Run("nil fields keep current values", func(t *testing.T) {
		r := newRoom(t)
		err := r.Update(nil, nil, nil, nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Executive Boardroom", r.Name())
		assert.Equal(t, 20, r.Capacity())
		assert.Equal(t, []string{"Projector", "Whiteboard"}, r.Amenities())
	})

	t.Run("set fields are applied", func(t *testing.T) {
		r := newRoom(t)
		name := "War Room"
		capacity := 6
		err := r.Update(&name, nil, &capacity, nil, nil, []string{"Phone"})
		require.NoError(t, err)
		assert.Equal(t, "War Room", r.Name())
		assert.Equal(t, "Floor 1", r.Location())
		assert.Equal(t, 6, r.Capacity())
		assert.Equal(t, []string{"Phone"}, r.Amenities())
	})

	t.Run("invalid update leaves entity untouched", func(t *testing.T) {
		r := newRoom(t)
		bad := ""
		capacity := 50
		err := r.Update(&bad, nil, &capacity, nil, nil, nil)
		require.ErrorIs(t, err, room.ErrEmptyName)
		assert.Equal(t, "Executive Boardroom", r.Name())
		assert.Equal(t, 20, r.Capacity())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewRoomBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
