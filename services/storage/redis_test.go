package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madeasy/models"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, mr, func() {
		client.Close()
		mr.Close()
	}
}

func sampleDraft() models.BookingDraft {
	d := models.NewBookingDraft()
	d.CurrentStep = models.StepExtras
	d.LastStepCompleted = 3
	d.ServiceType = models.ServiceDeep
	d.Schedule.Date = "2026-10-20"
	d.Schedule.Time = "09:00 AM"
	d.Location.Address = "Kilimani, Nairobi"
	d.Location.PropertyType = models.PropertyApartment
	d.Location.Bedrooms = 4
	d.Location.Bathrooms = 3
	d.Extras.Laundry = true
	d.BasePrice = 5900
	d.ExtrasPrice = 1500
	d.TotalPrice = 7400
	d.EstimatedDuration = "3-4 hours"
	return d
}

func TestRedisDraftStore_RoundTrip(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewRedisDraftStore(client, NewCodec(""), 24*time.Hour)
	ctx := context.Background()
	at := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, "madEasy_booking:s1", NewEnvelope(sampleDraft(), at)))

	env, err := store.Load(ctx, "madEasy_booking:s1")
	require.NoError(t, err)
	assert.Equal(t, sampleDraft(), env.Data)
	assert.Equal(t, at.UnixMilli(), env.Timestamp)
}

func TestRedisDraftStore_MissingKey(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewRedisDraftStore(client, NewCodec(""), time.Hour)
	_, err := store.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRedisDraftStore_MalformedPayload(t *testing.T) {
	client, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, mr.Set("broken", "{not json"))

	store := NewRedisDraftStore(client, NewCodec(""), time.Hour)
	_, err := store.Load(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrMalformedDraft)
}

func TestRedisDraftStore_ClearAndTTL(t *testing.T) {
	client, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewRedisDraftStore(client, NewCodec("secret"), time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", NewEnvelope(sampleDraft(), time.Now())))
	require.NoError(t, store.Save(ctx, "b", NewEnvelope(sampleDraft(), time.Now())))
	assert.Equal(t, time.Hour, mr.TTL("a"))

	require.NoError(t, store.Clear(ctx, "a"))
	_, err := store.Load(ctx, "a")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	mr.FastForward(2 * time.Hour)
	_, err = store.Load(ctx, "b")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
