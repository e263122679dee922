package memory

import (
	"context"
	"testing"
	"time"

	"parkease/internal/domain"
	"parkease/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func newSpot(name, address, city string, distance *float64) *domain.ParkingSpot {
	return &domain.ParkingSpot{
		Name:           name,
		Address:        address,
		City:           city,
		Price:          8.50,
		AvailableSpots: 45,
		Distance:       distance,
		Source:         domain.SpotSourceLocal,
	}
}

func newReservation(userID, spotID int64, date time.Time, start string) *domain.Reservation {
	return &domain.Reservation{
		UserID:        userID,
		ParkingSpotID: spotID,
		Date:          date,
		StartTime:     start,
		Duration:      2,
		VehicleType:   "sedan",
		LicensePlate:  "ABC-123",
		TotalPrice:    17.00,
		Status:        domain.ReservationPending,
	}
}

func TestSpotStore_MonotonicIDs(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	spots := store.ParkingSpots()

	a := newSpot("A", "1 First St", "Tampa", nil)
	b := newSpot("B", "2 Second St", "Tampa", nil)
	require.NoError(t, spots.Create(ctx, a))
	require.NoError(t, spots.Create(ctx, b))
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	// Deleted ids are never reused.
	deleted, err := spots.Delete(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	c := newSpot("C", "3 Third St", "Tampa", nil)
	require.NoError(t, spots.Create(ctx, c))
	assert.Equal(t, int64(3), c.ID)
}

func TestSpotStore_GetByID_NotFound(t *testing.T) {
	store := NewStore()
	_, err := store.ParkingSpots().GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSpotStore_Search(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	spots := store.ParkingSpots()

	require.NoError(t, spots.Create(ctx, newSpot("Garage", "123 Main Street", "City Center", f(0.3))))
	require.NoError(t, spots.Create(ctx, newSpot("Lot", "456 Park Avenue", "Downtown", f(0.5))))
	require.NoError(t, spots.Create(ctx, newSpot("Main Plaza", "9 Main Court", "Tampa", nil)))

	// Case-insensitive match against city.
	out, err := spots.Search(ctx, "DOWN")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Lot", out[0].Name)

	// Substring match against address too; no-distance spots sort last.
	out, err = spots.Search(ctx, "main")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Garage", out[0].Name)
	assert.Equal(t, "Main Plaza", out[1].Name)

	out, err = spots.Search(ctx, "nowhere")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSpotStore_Update_Partial(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	spots := store.ParkingSpots()

	spot := newSpot("Garage", "123 Main Street", "City Center", f(0.3))
	require.NoError(t, spots.Create(ctx, spot))

	price := 9.75
	updated, err := spots.Update(ctx, spot.ID, repository.SpotPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 9.75, updated.Price)
	// Untouched fields survive.
	assert.Equal(t, "Garage", updated.Name)
	assert.Equal(t, "City Center", updated.City)

	_, err = spots.Update(ctx, 99, repository.SpotPatch{Price: &price})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// Deleting a spot takes its reservations and favorites with it.
func TestSpotStore_Delete_Cascades(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	spots := store.ParkingSpots()
	reservations := store.Reservations()
	favorites := store.Favorites()

	keep := newSpot("Keep", "1 First St", "Tampa", nil)
	drop := newSpot("Drop", "2 Second St", "Tampa", nil)
	require.NoError(t, spots.Create(ctx, keep))
	require.NoError(t, spots.Create(ctx, drop))

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	onKeep := newReservation(1, keep.ID, date, "09:00")
	onDrop := newReservation(1, drop.ID, date, "10:00")
	require.NoError(t, reservations.Create(ctx, onKeep))
	require.NoError(t, reservations.Create(ctx, onDrop))
	require.NoError(t, favorites.Create(ctx, &domain.Favorite{UserID: 1, ParkingSpotID: drop.ID}))

	deleted, err := spots.Delete(ctx, drop.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	left, err := reservations.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, keep.ID, left[0].ParkingSpotID)

	favs, err := favorites.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, favs)

	// Second delete reports a miss.
	deleted, err = spots.Delete(ctx, drop.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSpotStore_UpsertExternal(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	spots := store.ParkingSpots()

	extID := "ext-17"
	first := &domain.ParkingSpot{
		Name:       "Orlando Airport Lot",
		Address:    "1 Jet Way",
		City:       "Orlando",
		Price:      12,
		Source:     domain.SpotSourceAPI,
		ExternalID: &extID,
	}
	require.NoError(t, spots.UpsertExternal(ctx, first))
	firstID := first.ID

	// Same external id updates in place instead of inserting.
	second := &domain.ParkingSpot{
		Name:       "Orlando Airport Lot",
		Address:    "1 Jet Way",
		City:       "Orlando",
		Price:      14,
		Source:     domain.SpotSourceAPI,
		ExternalID: &extID,
	}
	require.NoError(t, spots.UpsertExternal(ctx, second))
	assert.Equal(t, firstID, second.ID)

	all, err := spots.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, float64(14), all[0].Price)
}

func TestUserStore_DuplicateUsernameOrEmail(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	users := store.Users()

	require.NoError(t, users.Create(ctx, &domain.User{
		Username: "john.doe", PasswordHash: "x", Name: "John Doe", Email: "john.doe@example.com",
	}))

	err := users.Create(ctx, &domain.User{
		Username: "john.doe", PasswordHash: "x", Name: "Other", Email: "other@example.com",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	err = users.Create(ctx, &domain.User{
		Username: "other", PasswordHash: "x", Name: "Other", Email: "john.doe@example.com",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	u, err := users.GetByUsername(ctx, "john.doe")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
}

func TestReservationStore_ListFiltersByUser(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	reservations := store.Reservations()

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, reservations.Create(ctx, newReservation(1, 1, date, "09:00")))
	require.NoError(t, reservations.Create(ctx, newReservation(2, 1, date, "10:00")))
	require.NoError(t, reservations.Create(ctx, newReservation(1, 2, date, "11:00")))

	all, err := reservations.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	userID := int64(1)
	mine, err := reservations.List(ctx, &userID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, int64(1), mine[0].ID)
	assert.Equal(t, int64(3), mine[1].ID)
}

func TestReservationStore_Update_PreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	reservations := store.Reservations()

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	res := newReservation(1, 1, date, "09:00")
	res.CreatedAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, reservations.Create(ctx, res))

	status := domain.ReservationConfirmed
	updated, err := reservations.Update(ctx, res.ID, repository.ReservationPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationConfirmed, updated.Status)
	assert.Equal(t, res.CreatedAt, updated.CreatedAt)
	assert.Equal(t, res.ID, updated.ID)

	_, err = reservations.Update(ctx, 99, repository.ReservationPatch{Status: &status})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReservationStore_ListActive(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	reservations := store.Reservations()

	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	past := newReservation(1, 1, today.AddDate(0, 0, -1), "09:00")
	past.Status = domain.ReservationConfirmed
	pending := newReservation(1, 1, today.AddDate(0, 0, 1), "09:00")
	later := newReservation(1, 1, today.AddDate(0, 0, 2), "09:00")
	later.Status = domain.ReservationConfirmed
	soon := newReservation(1, 1, today.AddDate(0, 0, 1), "10:00")
	soon.Status = domain.ReservationConfirmed
	sameDayEarlier := newReservation(1, 1, today.AddDate(0, 0, 1), "08:00")
	sameDayEarlier.Status = domain.ReservationConfirmed

	for _, r := range []*domain.Reservation{past, pending, later, soon, sameDayEarlier} {
		require.NoError(t, reservations.Create(ctx, r))
	}

	active, err := reservations.ListActive(ctx, today)
	require.NoError(t, err)
	require.Len(t, active, 3)
	// Ordered by date, then start time.
	assert.Equal(t, sameDayEarlier.ID, active[0].ID)
	assert.Equal(t, soon.ID, active[1].ID)
	assert.Equal(t, later.ID, active[2].ID)
}

func TestReservationStore_ListByDateRange(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	reservations := store.Reservations()

	day := func(d int) time.Time { return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC) }
	require.NoError(t, reservations.Create(ctx, newReservation(1, 1, day(10), "09:00")))
	require.NoError(t, reservations.Create(ctx, newReservation(1, 1, day(15), "09:00")))
	require.NoError(t, reservations.Create(ctx, newReservation(1, 1, day(20), "09:00")))

	// Bounds are inclusive.
	out, err := reservations.ListByDateRange(ctx, day(10), day(15))
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestReservationStore_ListBySpot(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	reservations := store.Reservations()

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, reservations.Create(ctx, newReservation(1, 1, date, "10:00")))
	require.NoError(t, reservations.Create(ctx, newReservation(1, 2, date, "09:00")))
	require.NoError(t, reservations.Create(ctx, newReservation(2, 1, date.AddDate(0, 0, -1), "09:00")))

	out, err := reservations.ListBySpot(ctx, 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	// Date-ordered, earliest first.
	assert.Equal(t, int64(3), out[0].ID)
	assert.Equal(t, int64(1), out[1].ID)
}

func TestReservationStore_GetByPaymentIntent(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	reservations := store.Reservations()

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	res := newReservation(1, 1, date, "09:00")
	require.NoError(t, reservations.Create(ctx, res))

	intentID := "pi_123"
	_, err := reservations.Update(ctx, res.ID, repository.ReservationPatch{PaymentIntentID: &intentID})
	require.NoError(t, err)

	found, err := reservations.GetByPaymentIntent(ctx, "pi_123")
	require.NoError(t, err)
	assert.Equal(t, res.ID, found.ID)

	_, err = reservations.GetByPaymentIntent(ctx, "pi_missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFavoriteStore_DuplicatePair(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	favorites := store.Favorites()

	require.NoError(t, favorites.Create(ctx, &domain.Favorite{UserID: 1, ParkingSpotID: 2}))

	err := favorites.Create(ctx, &domain.Favorite{UserID: 1, ParkingSpotID: 2})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	// Same spot for another user is fine.
	require.NoError(t, favorites.Create(ctx, &domain.Favorite{UserID: 2, ParkingSpotID: 2}))

	exists, err := favorites.Exists(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = favorites.Exists(ctx, 1, 3)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFavoriteStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	favorites := store.Favorites()

	fav := &domain.Favorite{UserID: 1, ParkingSpotID: 2}
	require.NoError(t, favorites.Create(ctx, fav))

	deleted, err := favorites.Delete(ctx, fav.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = favorites.Delete(ctx, fav.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
