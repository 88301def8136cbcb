package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/shenikar/food_rescue_network/internal/models"
	"github.com/shenikar/food_rescue_network/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMapService(t *testing.T) (MapService, *mocks.MockListingStore) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockListingStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewMapService(storeMock, logger), storeMock
}

func TestMarkers_RebuildSkipsCompleted(t *testing.T) {
	svc, storeMock := newTestMapService(t)

	storeMock.EXPECT().
		ListDonations(models.DonationStatus("")).
		Return([]*models.Donation{
			{ID: 1, Status: models.StatusAvailable, Urgency: models.UrgencyLow, FoodType: models.FoodProduce},
			{ID: 2, Status: models.StatusReserved, Urgency: models.UrgencyMedium, FoodType: models.FoodBaked, ReservedBy: "City Harvest"},
			{ID: 3, Status: models.StatusCompleted, Urgency: models.UrgencyHigh, FoodType: models.FoodPrepared},
			{ID: 4, Status: models.StatusInTransit, Urgency: models.UrgencyHigh, FoodType: models.FoodDairy},
		}).Times(1)

	markers := svc.Markers(context.Background())

	require.Len(t, markers, 3)
	ids := []int64{markers[0].DonationID, markers[1].DonationID, markers[2].DonationID}
	assert.Equal(t, []int64{1, 2, 4}, ids)
}

func TestMarkers_StatusStyling(t *testing.T) {
	svc, storeMock := newTestMapService(t)

	storeMock.EXPECT().
		ListDonations(models.DonationStatus("")).
		Return([]*models.Donation{
			{ID: 1, Status: models.StatusAvailable, Urgency: models.UrgencyHigh, FoodType: models.FoodProduce},
			{ID: 2, Status: models.StatusReserved, Urgency: models.UrgencyLow, FoodType: models.FoodBaked},
			{ID: 3, Status: models.StatusInTransit, Urgency: models.UrgencyMedium, FoodType: models.FoodFrozen},
		}).Times(1)

	markers := svc.Markers(context.Background())

	require.Len(t, markers, 3)
	assert.Equal(t, "#28a745", markers[0].Color)
	assert.Equal(t, "food", markers[0].Icon)
	assert.True(t, markers[0].Pulse) // пульсация только у высокой срочности

	assert.Equal(t, "#ffc107", markers[1].Color)
	assert.Equal(t, "hourglass", markers[1].Icon)
	assert.False(t, markers[1].Pulse)

	assert.Equal(t, "#17a2b8", markers[2].Color)
	assert.Equal(t, "truck", markers[2].Icon)
	assert.False(t, markers[2].Pulse)
}

func TestMarkers_PopupMentionsReservation(t *testing.T) {
	svc, storeMock := newTestMapService(t)

	storeMock.EXPECT().
		ListDonations(models.DonationStatus("")).
		Return([]*models.Donation{
			{
				ID:         2,
				DonorName:  "Fresh Harvest Deli",
				Status:     models.StatusReserved,
				Urgency:    models.UrgencyMedium,
				FoodType:   models.FoodPrepared,
				Quantity:   40,
				ReservedBy: "City Harvest",
			},
		}).Times(1)

	markers := svc.Markers(context.Background())

	require.Len(t, markers, 1)
	assert.Contains(t, markers[0].Popup, "Fresh Harvest Deli")
	assert.Contains(t, markers[0].Popup, "40 servings")
	assert.Contains(t, markers[0].Popup, "reserved by City Harvest")
}

func TestMarkers_EmptyStore(t *testing.T) {
	svc, storeMock := newTestMapService(t)

	storeMock.EXPECT().ListDonations(models.DonationStatus("")).Return(nil).Times(1)

	markers := svc.Markers(context.Background())

	assert.Empty(t, markers)
}
