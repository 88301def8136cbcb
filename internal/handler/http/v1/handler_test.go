package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/food_rescue_network/internal/config"
	"github.com/shenikar/food_rescue_network/internal/handler/http/v1/mocks"
	"github.com/shenikar/food_rescue_network/internal/models"
	"github.com/shenikar/food_rescue_network/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockDonationService, *mocks.MockRouteService, *mocks.MockMapService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	donationMock := mocks.NewMockDonationService(ctrl)
	routeMock := mocks.NewMockRouteService(ctrl)
	mapMock := mocks.NewMockMapService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(donationMock, routeMock, mapMock, nil, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return donationMock, routeMock, mapMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func apiKey() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func testDonation(id int64) *models.Donation {
	return &models.Donation{
		ID:            id,
		DonorName:     "Fresh Harvest Deli",
		ContactPerson: "Maria Santos",
		Phone:         "(212) 555-0134",
		Address:       "350 5th Ave, New York",
		Latitude:      40.7484,
		Longitude:     -73.9857,
		FoodType:      models.FoodPrepared,
		Quantity:      40,
		Expiry:        time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Urgency:       models.UrgencyHigh,
		Status:        models.StatusAvailable,
		PostedAt:      time.Now().Add(-10 * time.Minute),
	}
}

func TestCreateDonation_Success(t *testing.T) {
	donationMock, _, _, router := newTestHandler(t)

	reqBody := CreateDonationRequest{
		DonorName:     "Fresh Harvest Deli",
		ContactPerson: "Maria Santos",
		Phone:         "(212) 555-0134",
		Address:       "350 5th Ave, New York",
		FoodType:      "prepared",
		Quantity:      40,
		Expiry:        "2026-09-15",
		Urgency:       "high",
	}
	expected := testDonation(1)

	donationMock.EXPECT().
		CreateDonation(gomock.Any(), gomock.Any()).
		Return(expected, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/donations", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp DonationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Fresh Harvest Deli", resp.DonorName)
	assert.Equal(t, "servings", resp.QuantityUnit)
	assert.Equal(t, "10 minutes ago", resp.PostedAgo)
}

func TestCreateDonation_InvalidJSON(t *testing.T) {
	donationMock, _, _, router := newTestHandler(t)

	donationMock.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/donations", bytes.NewBufferString(`{"donor_name": "test"`), apiKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateDonation_ValidationError(t *testing.T) {
	donationMock, _, _, router := newTestHandler(t)
	reqBody := CreateDonationRequest{ // Отсутствует DonorName
		ContactPerson: "Maria Santos",
		Phone:         "(212) 555-0134",
		Address:       "350 5th Ave, New York",
		FoodType:      "prepared",
		Quantity:      40,
		Expiry:        "2026-09-15",
		Urgency:       "high",
	}

	donationMock.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/donations", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDonation_ServiceValidationError(t *testing.T) {
	donationMock, _, _, router := newTestHandler(t)
	reqBody := CreateDonationRequest{
		DonorName:     "Fresh Harvest Deli",
		ContactPerson: "Maria Santos",
		Phone:         "(212) 555-0134",
		Address:       "350 5th Ave, New York",
		FoodType:      "prepared",
		Quantity:      40,
		Expiry:        "2020-01-01",
		Urgency:       "high",
	}

	donationMock.EXPECT().
		CreateDonation(gomock.Any(), gomock.Any()).
		Return(nil, &service.ValidationError{Field: "expiry", Reason: "date is in the past"}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/donations", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "expiry")
}

func TestCreateDonation_MissingAPIKey(t *testing.T) {
	donationMock, _, _, router := newTestHandler(t)

	donationMock.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CreateDonationRequest{})
	w := makeRequest(router, "POST", "/api/v1/donations", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestGetDonation_Success(t *testing.T) {
	donationMock, _, _, router := newTestHandler(t)
	expected := testDonation(7)

	donationMock.EXPECT().
		GetDonation(gomock.Any(), int64(7)).
		Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/donations/7", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DonationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-09-15", resp.Expiry)
}

func TestGetDonation_NotFound(t *testing.T) {
	donationMock, _, _, router := newTestHandler(t)

	donationMock.EXPECT().
		GetDonation(gomock.Any(), int64(99)).
		Return(nil, fmt.Errorf("service: could not get donation: %w", service.ErrNotFound)).Times(1)

	w := makeRequest(router, "GET", "/api/v1/donations/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDonation_InvalidID(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/donations/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid donation ID")
}

func TestListDonations_StatusFilter(t *testing.T) {
	donationMock, _, _, router := newTestHandler(t)
	expected := []*models.Donation{testDonation(1), testDonation(2)}

	donationMock.EXPECT().
		ListDonations(gomock.Any(), models.StatusAvailable).
		Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/donations?status=available", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []DonationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestListDonations_UnknownStatus(t *testing.T) {
	donationMock, _, _, router := newTestHandler(t)

	donationMock.EXPECT().
		ListDonations(gomock.Any(), models.DonationStatus("bogus")).
		Return(nil, &service.ValidationError{Field: "status", Reason: "unknown status"}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/donations?status=bogus", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReserveDonation_Success(t *testing.T) {
	donationMock, _, _, router := newTestHandler(t)
	reserved := testDonation(3)
	reserved.Status = models.StatusReserved
	reserved.ReservedBy = "City Harvest"

	donationMock.EXPECT().
		ReserveDonation(gomock.Any(), int64(3), service.ReserveInput{Organization: "City Harvest", PickupTime: "14:00"}).
		Return(reserved, nil).Times(1)

	reqBody := ReserveDonationRequest{Organization: "City Harvest", PickupTime: "14:00"}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/donations/3/reserve", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DonationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "reserved", resp.Status)
	assert.Equal(t, "City Harvest", resp.ReservedBy)
}

func TestReserveDonation_Conflict(t *testing.T) {
	donationMock, _, _, router := newTestHandler(t)

	donationMock.EXPECT().
		ReserveDonation(gomock.Any(), int64(3), gomock.Any()).
		Return(nil, fmt.Errorf("service: could not reserve donation: %w", service.ErrNotAvailable)).Times(1)

	reqBody := ReserveDonationRequest{Organization: "City Harvest"}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/donations/3/reserve", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "not available")
}

func TestDonationRoute_Success(t *testing.T) {
	_, routeMock, _, router := newTestHandler(t)

	routeMock.EXPECT().
		RouteToDonation(gomock.Any(), gomock.Any(), int64(5)).
		Return(&service.RouteEstimate{DistanceKm: 1.1, EstimatedMinutes: 3}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/donations/5/route?lat=40.7589&lng=-73.9851", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp service.RouteEstimate
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.InDelta(t, 1.1, resp.DistanceKm, 0.01)
	assert.Equal(t, 3, resp.EstimatedMinutes)
}

func TestDonationRoute_InvalidCoordinates(t *testing.T) {
	_, routeMock, _, router := newTestHandler(t)

	routeMock.EXPECT().RouteToDonation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/donations/5/route?lat=abc&lng=-73.9851", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid origin coordinates")
}

func TestDonationRoute_CoordinatesOutOfRange(t *testing.T) {
	_, routeMock, _, router := newTestHandler(t)

	routeMock.EXPECT().RouteToDonation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/donations/5/route?lat=95.0&lng=-73.9851", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "out of range")
}

func TestPlanRoute_NoOrigin(t *testing.T) {
	_, routeMock, _, router := newTestHandler(t)

	// Без координат и без локатора сервис получает nil и сам
	// помечает маршрут как недоступный
	routeMock.EXPECT().
		PlanRoute(gomock.Any(), gomock.Nil()).
		Return(&service.RoutePlan{LocationUnavailable: true}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/route/plan", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp service.RoutePlan
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.LocationUnavailable)
}

func TestRegisterOrganization_Success(t *testing.T) {
	donationMock, _, _, router := newTestHandler(t)
	expected := &models.Organization{
		ID:       1,
		Name:     "City Harvest",
		Type:     "food-bank",
		Contact:  "James Lee",
		Phone:    "(212) 555-0177",
		Address:  "6 St Johns Ln, New York",
		Capacity: 500,
	}

	donationMock.EXPECT().
		RegisterOrganization(gomock.Any(), gomock.Any()).
		Return(expected, nil).Times(1)

	reqBody := RegisterOrganizationRequest{
		Name:     "City Harvest",
		Type:     "food-bank",
		Contact:  "James Lee",
		Phone:    "(212) 555-0177",
		Address:  "6 St Johns Ln, New York",
		Capacity: 500,
	}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/organizations", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp OrganizationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "City Harvest", resp.Name)
}

func TestMapMarkers(t *testing.T) {
	_, _, mapMock, router := newTestHandler(t)

	mapMock.EXPECT().
		Markers(gomock.Any()).
		Return([]models.Marker{
			{DonationID: 1, Color: "#28a745", Icon: "food", Pulse: true},
			{DonationID: 2, Color: "#ffc107", Icon: "hourglass"},
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/map/markers", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []models.Marker
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.True(t, resp[0].Pulse)
	assert.Equal(t, "#ffc107", resp[1].Color)
}

func TestGetStats(t *testing.T) {
	donationMock, _, _, router := newTestHandler(t)

	donationMock.EXPECT().
		Stats(gomock.Any()).
		Return(models.Stats{TotalDonations: 248, ActiveDonations: 1, CO2SavedTonnes: 24.3}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.Stats
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 248, resp.TotalDonations)
	assert.Equal(t, 1, resp.ActiveDonations)
}

func TestLiveFeed(t *testing.T) {
	donationMock, _, _, router := newTestHandler(t)

	donationMock.EXPECT().
		LiveFeed(gomock.Any()).
		Return([]models.LiveUpdate{{Message: "New Prepared Meals donation from Fresh Harvest Deli"}}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/feed", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []LiveUpdateResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Contains(t, resp[0].Message, "Fresh Harvest Deli")
}

func TestRecentEvents_RequiresAPIKey(t *testing.T) {
	donationMock, _, _, router := newTestHandler(t)

	donationMock.EXPECT().RecentEvents(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/admin/events", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecentEvents_Success(t *testing.T) {
	donationMock, _, _, router := newTestHandler(t)

	donationMock.EXPECT().
		RecentEvents(gomock.Any(), 5).
		Return([]*models.LifecycleEvent{{ID: 1, DonationID: 3, Kind: models.EventReserved}}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/admin/events?limit=5", nil, apiKey())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []models.LifecycleEvent
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, int64(3), resp[0].DonationID)
}

func TestHealthCheck(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
