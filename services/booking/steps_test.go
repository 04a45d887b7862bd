package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"madeasy/models"
)

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111111111111111"))
	assert.Equal(t, "4111 11", FormatCardNumber("4111-11"))
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("41111111111111119999"))
	assert.Equal(t, "", FormatCardNumber("abcd"))
}

func TestFormatExpiryDate(t *testing.T) {
	assert.Equal(t, "1", FormatExpiryDate("1"))
	assert.Equal(t, "12/", FormatExpiryDate("12"))
	assert.Equal(t, "12/2", FormatExpiryDate("122"))
	assert.Equal(t, "12/28", FormatExpiryDate("12/28"))
	assert.Equal(t, "12/28", FormatExpiryDate("122899"))
}

func TestFormatCVV(t *testing.T) {
	assert.Equal(t, "123", FormatCVV("1a2b3"))
	assert.Equal(t, "1234", FormatCVV("123456"))
}

func TestLastFourDigits(t *testing.T) {
	assert.Equal(t, "1111", LastFourDigits("4111 1111 1111 1111"))
	assert.Equal(t, "****", LastFourDigits(""))
	assert.Equal(t, "12", LastFourDigits("12"))
}

func TestClampRoomCount(t *testing.T) {
	assert.Equal(t, 1, ClampRoomCount(-2))
	assert.Equal(t, 1, ClampRoomCount(0))
	assert.Equal(t, 5, ClampRoomCount(5))
	assert.Equal(t, MaxRooms, ClampRoomCount(11))
}

func TestAvailableDates(t *testing.T) {
	// Thursday
	today := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	dates := AvailableDates(today)

	assert.Equal(t, "2026-10-16", dates[0])
	assert.NotContains(t, dates, "2026-10-18", "Sunday")
	assert.NotContains(t, dates, "2026-10-15", "today")
	assert.Equal(t, "2026-11-14", dates[len(dates)-1])
	for _, d := range dates {
		parsed, err := time.Parse("2006-01-02", d)
		assert.NoError(t, err)
		assert.NotEqual(t, time.Sunday, parsed.Weekday())
	}
	// 30 days hold four Sundays: Oct 18, 25, Nov 1, 8.
	assert.Len(t, dates, 26)
}

func TestTimeSlots(t *testing.T) {
	assert.Len(t, TimeSlots, 9)
	assert.Equal(t, "08:00 AM", TimeSlots[0])
	assert.Equal(t, "04:00 PM", TimeSlots[8])
}

func TestPropertySizeLabel(t *testing.T) {
	assert.Equal(t, "Studio/1BR", PropertySizeLabel(location(1, 1, 0)))
	assert.Equal(t, "2-3 Bedrooms", PropertySizeLabel(location(3, 2, 0)))
	assert.Equal(t, "4+ Bedrooms", PropertySizeLabel(location(3, 3, 0)))
	assert.Equal(t, "4+ Bedrooms", PropertySizeLabel(location(4, 1, 0)))
}

func TestDisplayNames(t *testing.T) {
	assert.Equal(t, "Move-Out Cleaning", ServiceName(models.ServiceMoveOut))
	assert.Equal(t, "Standard Cleaning", ServiceName(models.ServiceCustom))
	assert.Equal(t, "Bi-Weekly", FrequencyLabel(models.FrequencyBiweekly))
	assert.Equal(t, "Townhouse", PropertyLabel(models.PropertyTownhouse))
}

func TestStepTitleAndProgress(t *testing.T) {
	assert.Equal(t, "Service", StepTitle(1))
	assert.Equal(t, "Confirm", StepTitle(7))
	assert.Equal(t, "", StepTitle(0))

	d := models.NewBookingDraft()
	assert.Equal(t, 0.0, Progress(d))
	d.LastStepCompleted = 7
	assert.Equal(t, 100.0, Progress(d))
}

func TestNewCatalogue(t *testing.T) {
	c := NewCatalogue("KES")

	assert.Equal(t, "KES", c.Currency)
	assert.Len(t, c.Services, 4)
	assert.Len(t, c.Extras, len(models.AllExtras))
	assert.Len(t, c.Steps, models.StepCount)
	for _, e := range c.Extras {
		assert.Equal(t, ExtraPrice(e.ID), e.Price)
		assert.NotEmpty(t, e.Title)
	}
	assert.Equal(t, int64(4500), c.Services[1].FromPrice)
}

func TestToggleExtra(t *testing.T) {
	d := models.NewBookingDraft()
	a := ToggleExtra(d, models.ExtraLaundry)
	assert.True(t, a.Toggles[models.ExtraLaundry])

	d = Reduce(d, a)
	assert.False(t, ToggleExtra(d, models.ExtraLaundry).Toggles[models.ExtraLaundry])
}
