package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shenikar/food_rescue_network/internal/config"
	"github.com/shenikar/food_rescue_network/internal/feed"
	"github.com/shenikar/food_rescue_network/internal/geo"
	"github.com/shenikar/food_rescue_network/internal/models"
	"github.com/shenikar/food_rescue_network/internal/service/mocks"
	webhook_mocks "github.com/shenikar/food_rescue_network/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 8, 6, 12, 0, 0, 0, time.UTC)

// newTestDonationService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestDonationService(t *testing.T) (*donationService, *mocks.MockListingStore, *mocks.MockTransitionScheduler, *webhook_mocks.MockPublisher, *mocks.MockEventArchive) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockListingStore(ctrl)
	schedulerMock := mocks.NewMockTransitionScheduler(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)
	archiveMock := mocks.NewMockEventArchive(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		PickupDelay:   15 * time.Second,
		DeliveryDelay: 30 * time.Second,
		ReserveStrict: false,
	}

	geocoder := geo.NewRandomGeocoder(geo.DefaultBounds(), 1)
	routes := NewRouteService(storeMock, logger)

	svc := NewDonationService(storeMock, geocoder, NewStatsAggregator(), feed.New(feed.DefaultCapacity),
		schedulerMock, publisherMock, archiveMock, routes, logger, cfg)

	ds := svc.(*donationService)
	ds.now = func() time.Time { return testNow }
	return ds, storeMock, schedulerMock, publisherMock, archiveMock
}

func validCreateInput() CreateDonationInput {
	return CreateDonationInput{
		DonorName:     "Fresh Harvest Deli",
		ContactPerson: "Maria Santos",
		Phone:         "(212) 555-0134",
		Address:       "350 5th Ave, New York",
		FoodType:      models.FoodPrepared,
		Quantity:      40,
		Expiry:        "2026-09-15",
		Urgency:       models.UrgencyHigh,
	}
}

func TestCreateDonation_Success(t *testing.T) {
	svc, storeMock, _, publisherMock, archiveMock := newTestDonationService(t)
	ctx := context.Background()

	storeMock.EXPECT().
		InsertDonation(gomock.Any()).
		DoAndReturn(func(d *models.Donation) int64 {
			assert.Equal(t, models.StatusAvailable, d.Status)
			assert.Equal(t, testNow, d.PostedAt)
			return 1
		}).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	archiveMock.EXPECT().RecordEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	donation, err := svc.CreateDonation(ctx, validCreateInput())

	require.NoError(t, err)
	assert.Equal(t, int64(1), donation.ID)
	assert.Equal(t, "Fresh Harvest Deli", donation.DonorName)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), donation.Expiry)

	// Координаты назначены геокодером в пределах зоны покрытия
	coords := geo.Coordinates{Latitude: donation.Latitude, Longitude: donation.Longitude}
	assert.True(t, coords.Valid())

	// Создание отражается в ленте событий
	updates := svc.LiveFeed(ctx)
	require.Len(t, updates, 1)
	assert.Equal(t, "New Prepared Meals donation from Fresh Harvest Deli", updates[0].Message)
}

func TestCreateDonation_SanitizesMarkup(t *testing.T) {
	svc, storeMock, _, publisherMock, archiveMock := newTestDonationService(t)

	input := validCreateInput()
	input.DonorName = `<b>Deli</b>`
	input.Notes = `say "hi" & leave`

	storeMock.EXPECT().InsertDonation(gomock.Any()).Return(int64(1)).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	archiveMock.EXPECT().RecordEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	donation, err := svc.CreateDonation(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "&lt;b&gt;Deli&lt;/b&gt;", donation.DonorName)
	assert.Equal(t, "say &quot;hi&quot; &amp; leave", donation.Notes)
}

func TestCreateDonation_ValidationLeavesStoreUntouched(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateDonationInput)
		field  string
	}{
		{"empty donor", func(in *CreateDonationInput) { in.DonorName = "" }, "donor_name"},
		{"empty contact", func(in *CreateDonationInput) { in.ContactPerson = "" }, "contact_person"},
		{"empty address", func(in *CreateDonationInput) { in.Address = "" }, "address"},
		{"zero quantity", func(in *CreateDonationInput) { in.Quantity = 0 }, "quantity"},
		{"oversized quantity", func(in *CreateDonationInput) { in.Quantity = 10001 }, "quantity"},
		{"unknown food type", func(in *CreateDonationInput) { in.FoodType = "sushi" }, "food_type"},
		{"unknown urgency", func(in *CreateDonationInput) { in.Urgency = "critical" }, "urgency"},
		{"past expiry", func(in *CreateDonationInput) { in.Expiry = "2025-01-01" }, "expiry"},
		{"far future expiry", func(in *CreateDonationInput) { in.Expiry = "2027-08-07" }, "expiry"},
		{"malformed expiry", func(in *CreateDonationInput) { in.Expiry = "soon" }, "expiry"},
		{"short phone", func(in *CreateDonationInput) { in.Phone = "555-123" }, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, storeMock, _, _, _ := newTestDonationService(t)
			storeMock.EXPECT().InsertDonation(gomock.Any()).Times(0) // Хранилище не должно изменяться

			input := validCreateInput()
			tt.mutate(&input)

			_, err := svc.CreateDonation(context.Background(), input)

			require.Error(t, err)
			ve, ok := AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestReserveDonation_SchedulesDeferredTransitions(t *testing.T) {
	svc, storeMock, schedulerMock, publisherMock, archiveMock := newTestDonationService(t)
	ctx := context.Background()

	reserved := &models.Donation{
		ID:         3,
		DonorName:  "Fresh Harvest Deli",
		Quantity:   40,
		Status:     models.StatusReserved,
		ReservedBy: "City Harvest",
	}

	storeMock.EXPECT().
		ReserveDonation(int64(3), "City Harvest", "14:00", false).
		Return(reserved, nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	archiveMock.EXPECT().RecordEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	schedulerMock.EXPECT().Schedule(int64(3), 15*time.Second, gomock.Any()).Times(1)

	donation, err := svc.ReserveDonation(ctx, 3, ReserveInput{Organization: "City Harvest", PickupTime: "14:00"})

	require.NoError(t, err)
	assert.Equal(t, "City Harvest", donation.ReservedBy)

	updates := svc.LiveFeed(ctx)
	require.Len(t, updates, 1)
	assert.Equal(t, "Fresh Harvest Deli donation reserved by City Harvest", updates[0].Message)
}

func TestReserveDonation_StrictModePassedToStore(t *testing.T) {
	svc, storeMock, schedulerMock, publisherMock, archiveMock := newTestDonationService(t)
	svc.cfg.ReserveStrict = true

	storeMock.EXPECT().
		ReserveDonation(int64(3), "City Harvest", "", true).
		Return(&models.Donation{ID: 3, Status: models.StatusReserved, ReservedBy: "City Harvest"}, nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	archiveMock.EXPECT().RecordEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	schedulerMock.EXPECT().Schedule(int64(3), gomock.Any(), gomock.Any()).Times(1)

	_, err := svc.ReserveDonation(context.Background(), 3, ReserveInput{Organization: "City Harvest"})

	require.NoError(t, err)
}

func TestReserveDonation_EmptyOrganization(t *testing.T) {
	svc, storeMock, _, _, _ := newTestDonationService(t)

	storeMock.EXPECT().ReserveDonation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.ReserveDonation(context.Background(), 3, ReserveInput{Organization: "   "})

	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "organization", ve.Field)
}

func TestReserveDonation_StoreRejects(t *testing.T) {
	svc, storeMock, schedulerMock, _, _ := newTestDonationService(t)

	storeMock.EXPECT().
		ReserveDonation(int64(9), "City Harvest", "", false).
		Return(nil, ErrNotFound).Times(1)
	schedulerMock.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.ReserveDonation(context.Background(), 9, ReserveInput{Organization: "City Harvest"})

	require.ErrorIs(t, err, ErrNotFound)
}

func TestAdvanceToInTransit_Success(t *testing.T) {
	svc, storeMock, _, publisherMock, archiveMock := newTestDonationService(t)
	ctx := context.Background()

	storeMock.EXPECT().
		AdvanceDonation(int64(3), models.StatusInTransit).
		Return(&models.Donation{ID: 3, DonorName: "Fresh Harvest Deli", Status: models.StatusInTransit}, nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	archiveMock.EXPECT().RecordEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	err := svc.AdvanceToInTransit(ctx, 3)

	require.NoError(t, err)
	updates := svc.LiveFeed(ctx)
	require.Len(t, updates, 1)
	assert.Equal(t, "Pickup in progress: Fresh Harvest Deli", updates[0].Message)
}

func TestAdvanceToCompleted_MissingDonation(t *testing.T) {
	svc, storeMock, _, _, _ := newTestDonationService(t)

	storeMock.EXPECT().
		AdvanceDonation(int64(42), models.StatusCompleted).
		Return(nil, ErrNotFound).Times(1)

	err := svc.AdvanceToCompleted(context.Background(), 42)

	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, svc.LiveFeed(context.Background()))
}

func TestRegisterOrganization_Success(t *testing.T) {
	svc, storeMock, _, _, _ := newTestDonationService(t)

	storeMock.EXPECT().
		InsertOrganization(gomock.Any()).
		DoAndReturn(func(org *models.Organization) int64 {
			assert.Equal(t, testNow, org.RegisteredAt)
			return 1
		}).Times(1)

	org, err := svc.RegisterOrganization(context.Background(), RegisterOrganizationInput{
		Name:     "City Harvest",
		Type:     "food-bank",
		Contact:  "James Lee",
		Phone:    "(212) 555-0177",
		Address:  "6 St Johns Ln, New York",
		Capacity: 500,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), org.ID)

	updates := svc.LiveFeed(context.Background())
	require.Len(t, updates, 1)
	assert.Equal(t, "City Harvest registered as food-bank", updates[0].Message)
}

func TestRegisterOrganization_InvalidCapacity(t *testing.T) {
	svc, storeMock, _, _, _ := newTestDonationService(t)

	storeMock.EXPECT().InsertOrganization(gomock.Any()).Times(0)

	_, err := svc.RegisterOrganization(context.Background(), RegisterOrganizationInput{Name: "City Harvest", Capacity: 0})

	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "capacity", ve.Field)
}

func TestReservationDefaults_WithRouteEstimate(t *testing.T) {
	svc, storeMock, _, _, _ := newTestDonationService(t)
	origin := &geo.Coordinates{Latitude: 40.7589, Longitude: -73.9851}
	donation := &models.Donation{
		ID:        5,
		Latitude:  40.7505,
		Longitude: -73.9934,
		Address:   "4 Pennsylvania Plaza, New York",
		Status:    models.StatusAvailable,
	}

	// Запись читается дважды: проверка существования и оценка маршрута
	storeMock.EXPECT().GetDonation(int64(5)).Return(donation, nil).Times(2)
	storeMock.EXPECT().
		LatestOrganization().
		Return(&models.Organization{Name: "City Harvest", Contact: "James Lee", Phone: "(212) 555-0177"}, nil).Times(1)

	defaults, err := svc.ReservationDefaults(context.Background(), 5, origin)

	require.NoError(t, err)
	assert.Equal(t, "City Harvest", defaults.Organization)
	assert.Equal(t, "James Lee", defaults.Contact)
	require.NotNil(t, defaults.Route)
	assert.InDelta(t, 1.2, defaults.Route.DistanceKm, 0.15)
	// Предложенное время вывоза сдвинуто на оценку маршрута
	expected := testNow.Add(time.Duration(defaults.Route.EstimatedMinutes) * time.Minute)
	assert.Equal(t, expected, defaults.SuggestedPickupTime)
}

func TestReservationDefaults_NoOriginNoOrganizations(t *testing.T) {
	svc, storeMock, _, _, _ := newTestDonationService(t)

	storeMock.EXPECT().GetDonation(int64(5)).Return(&models.Donation{ID: 5}, nil).Times(1)
	storeMock.EXPECT().LatestOrganization().Return(nil, ErrNotFound).Times(1)

	defaults, err := svc.ReservationDefaults(context.Background(), 5, nil)

	require.NoError(t, err)
	assert.Empty(t, defaults.Organization)
	assert.Nil(t, defaults.Route)
	assert.Equal(t, testNow.Add(30*time.Minute), defaults.SuggestedPickupTime)
}

func TestReservationDefaults_MissingDonation(t *testing.T) {
	svc, storeMock, _, _, _ := newTestDonationService(t)

	storeMock.EXPECT().GetDonation(int64(99)).Return(nil, ErrNotFound).Times(1)

	_, err := svc.ReservationDefaults(context.Background(), 99, nil)

	require.ErrorIs(t, err, ErrNotFound)
}

func TestListDonations_UnknownStatus(t *testing.T) {
	svc, _, _, _, _ := newTestDonationService(t)

	_, err := svc.ListDonations(context.Background(), models.DonationStatus("bogus"))

	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "status", ve.Field)
}

func TestStats_ReflectsRecordedActivity(t *testing.T) {
	svc, storeMock, schedulerMock, publisherMock, archiveMock := newTestDonationService(t)
	ctx := context.Background()

	storeMock.EXPECT().InsertDonation(gomock.Any()).Return(int64(1)).Times(1)
	storeMock.EXPECT().
		ReserveDonation(int64(1), "City Harvest", "", false).
		Return(&models.Donation{ID: 1, DonorName: "Fresh Harvest Deli", Quantity: 40, Status: models.StatusReserved, ReservedBy: "City Harvest"}, nil).Times(1)
	storeMock.EXPECT().ActiveCount().Return(1).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	archiveMock.EXPECT().RecordEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	schedulerMock.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	_, err := svc.CreateDonation(ctx, validCreateInput())
	require.NoError(t, err)
	_, err = svc.ReserveDonation(ctx, 1, ReserveInput{Organization: "City Harvest"})
	require.NoError(t, err)

	stats := svc.Stats(ctx)
	assert.Equal(t, 248, stats.TotalDonations)
	assert.Equal(t, 18240, stats.FoodRescuedKg)
	assert.Equal(t, 15840+48, stats.PeopleServed)
	assert.Equal(t, 1, stats.ActiveDonations)
	assert.InDelta(t, 24.3, stats.CO2SavedTonnes, 0.05)
}

func TestRecentEvents_DelegatesToArchive(t *testing.T) {
	svc, _, _, _, archiveMock := newTestDonationService(t)

	expected := []*models.LifecycleEvent{{ID: 1, DonationID: 3, Kind: models.EventReserved}}
	archiveMock.EXPECT().RecentEvents(gomock.Any(), 5).Return(expected, nil).Times(1)

	events, err := svc.RecentEvents(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, expected, events)
}
