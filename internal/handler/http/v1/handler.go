package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/food_rescue_network/internal/config"
	"github.com/shenikar/food_rescue_network/internal/geo"
	"github.com/shenikar/food_rescue_network/internal/locate"
	"github.com/shenikar/food_rescue_network/internal/models"
	"github.com/shenikar/food_rescue_network/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	donationService service.DonationService
	routeService    service.RouteService
	mapService      service.MapService
	locator         locate.Locator
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	donationService service.DonationService,
	routeService service.RouteService,
	mapService service.MapService,
	locator locate.Locator,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		donationService: donationService,
		routeService:    routeService,
		mapService:      mapService,
		locator:         locator,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Create a new donation listing
// @Description Post a perishable food donation. Requires API key.
// @Tags Donations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param donation body CreateDonationRequest true "Donation creation request"
// @Success 201 {object} DonationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /donations [post]
func (h *Handler) createDonation(c *gin.Context) {
	var input CreateDonationRequest
	log := h.logger.WithField("method", "createDonation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	donation, err := h.donationService.CreateDonation(c.Request.Context(), DTOToCreateInput(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToDonationResponse(donation, time.Now()))
}

// @Summary Get a list of donation listings
// @Description Get all donations, optionally filtered by status.
// @Tags Donations
// @Accept json
// @Produce json
// @Param status query string false "Status filter" Enums(available, reserved, in-transit, completed)
// @Success 200 {array} DonationResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /donations [get]
func (h *Handler) listDonations(c *gin.Context) {
	log := h.logger.WithField("method", "listDonations")
	status := models.DonationStatus(c.Query("status"))

	donations, err := h.donationService.ListDonations(c.Request.Context(), status)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToDonationResponses(donations, time.Now()))
}

// @Summary Get donation by ID
// @Description Get a single donation listing by its ID.
// @Tags Donations
// @Accept json
// @Produce json
// @Param id path int true "Donation ID"
// @Success 200 {object} DonationResponse
// @Failure 400 {object} map[string]string "Invalid donation ID"
// @Failure 404 {object} map[string]string "Donation not found"
// @Router /donations/{id} [get]
func (h *Handler) getDonation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation ID"})
		return
	}
	log := h.logger.WithField("method", "getDonation").WithField("id", id)

	donation, err := h.donationService.GetDonation(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDonationResponse(donation, time.Now()))
}

// @Summary Reserve a donation pickup
// @Description Reserve a donation for an organization. Requires API key.
// @Tags Donations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Donation ID"
// @Param reservation body ReserveDonationRequest true "Reservation request"
// @Success 200 {object} DonationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Donation not found"
// @Failure 409 {object} map[string]string "Donation is not available"
// @Router /donations/{id}/reserve [post]
func (h *Handler) reserveDonation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation ID"})
		return
	}
	log := h.logger.WithField("method", "reserveDonation").WithField("id", id)

	var input ReserveDonationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	donation, err := h.donationService.ReserveDonation(c.Request.Context(), id, service.ReserveInput{
		Organization: input.Organization,
		PickupTime:   input.PickupTime,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDonationResponse(donation, time.Now()))
}

// @Summary Estimate a route to a donation
// @Description Estimate distance and time from the caller's location to a single donation.
// @Tags Routes
// @Accept json
// @Produce json
// @Param id path int true "Donation ID"
// @Param lat query number false "Origin latitude"
// @Param lng query number false "Origin longitude"
// @Success 200 {object} service.RouteEstimate
// @Failure 400 {object} map[string]string "Invalid donation ID or coordinates"
// @Failure 404 {object} map[string]string "Donation not found"
// @Router /donations/{id}/route [get]
func (h *Handler) donationRoute(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation ID"})
		return
	}
	log := h.logger.WithField("method", "donationRoute").WithField("id", id)

	origin, ok := h.resolveOrigin(c)
	if !ok {
		return
	}

	estimate, err := h.routeService.RouteToDonation(c.Request.Context(), origin, id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, estimate)
}

// @Summary Get reservation form defaults
// @Description Prefill contacts of the latest registered organization and a suggested pickup time.
// @Tags Donations
// @Accept json
// @Produce json
// @Param id path int true "Donation ID"
// @Param lat query number false "Origin latitude"
// @Param lng query number false "Origin longitude"
// @Success 200 {object} service.ReservationDefaults
// @Failure 404 {object} map[string]string "Donation not found"
// @Router /donations/{id}/reservation-defaults [get]
func (h *Handler) reservationDefaults(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation ID"})
		return
	}
	log := h.logger.WithField("method", "reservationDefaults").WithField("id", id)

	origin, ok := h.resolveOrigin(c)
	if !ok {
		return
	}

	defaults, err := h.donationService.ReservationDefaults(c.Request.Context(), id, origin)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, defaults)
}

// @Summary Register a relief organization
// @Description Register an organization that receives donations. Requires API key.
// @Tags Organizations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param organization body RegisterOrganizationRequest true "Organization registration request"
// @Success 201 {object} OrganizationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /organizations [post]
func (h *Handler) registerOrganization(c *gin.Context) {
	var input RegisterOrganizationRequest
	log := h.logger.WithField("method", "registerOrganization")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.donationService.RegisterOrganization(c.Request.Context(), DTOToRegisterInput(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToOrganizationResponse(org))
}

// @Summary Get registered organizations
// @Description Get all registered relief organizations.
// @Tags Organizations
// @Accept json
// @Produce json
// @Success 200 {array} OrganizationResponse
// @Router /organizations [get]
func (h *Handler) listOrganizations(c *gin.Context) {
	log := h.logger.WithField("method", "listOrganizations")

	orgs, err := h.donationService.ListOrganizations(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToOrganizationResponses(orgs))
}

// @Summary Plan a pickup route
// @Description Build a route over up to three available donations ordered by urgency.
// @Tags Routes
// @Accept json
// @Produce json
// @Param lat query number false "Origin latitude"
// @Param lng query number false "Origin longitude"
// @Success 200 {object} service.RoutePlan
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /route/plan [get]
func (h *Handler) planRoute(c *gin.Context) {
	log := h.logger.WithField("method", "planRoute")

	origin, ok := h.resolveOrigin(c)
	if !ok {
		return
	}

	plan, err := h.routeService.PlanRoute(c.Request.Context(), origin)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// @Summary Get map markers
// @Description Get the full marker set: one marker per non-completed donation.
// @Tags Map
// @Accept json
// @Produce json
// @Success 200 {array} models.Marker
// @Router /map/markers [get]
func (h *Handler) mapMarkers(c *gin.Context) {
	c.JSON(http.StatusOK, h.mapService.Markers(c.Request.Context()))
}

// @Summary Get the live feed
// @Description Get recent live feed entries, newest first.
// @Tags Feed
// @Accept json
// @Produce json
// @Success 200 {array} LiveUpdateResponse
// @Router /feed [get]
func (h *Handler) liveFeed(c *gin.Context) {
	updates := h.donationService.LiveFeed(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToLiveUpdateResponses(updates))
}

// @Summary Get network statistics
// @Description Get aggregated network counters.
// @Tags Stats
// @Accept json
// @Produce json
// @Success 200 {object} models.Stats
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.donationService.Stats(c.Request.Context()))
}

// @Summary Get lifecycle event archive tail
// @Description Get recent lifecycle events from the archive. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Number of events" default(20)
// @Success 200 {array} models.LifecycleEvent
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/events [get]
func (h *Handler) recentEvents(c *gin.Context) {
	log := h.logger.WithField("method", "recentEvents")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	events, err := h.donationService.RecentEvents(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// resolveOrigin определяет точку отправления: координаты из запроса,
// иначе местоположение клиента по IP, иначе nil.
// При невалидных координатах пишет ответ 400 и возвращает ok=false.
func (h *Handler) resolveOrigin(c *gin.Context) (*geo.Coordinates, bool) {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" || lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid origin coordinates"})
			return nil, false
		}
		coords := geo.Coordinates{Latitude: lat, Longitude: lng}
		if !coords.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "origin coordinates out of range"})
			return nil, false
		}
		return &coords, true
	}

	if h.locator == nil {
		return nil, true
	}
	pos := h.locator.Locate(c.Request.Context(), c.ClientIP())
	return &pos.Coordinates, true
}

// respondError отображает таксономию ошибок сервиса на HTTP-статусы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	if ve, ok := service.AsValidationError(err); ok {
		log.WithError(err).Warn("Validation failed in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Record not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrNotAvailable), errors.Is(err, service.ErrStatusRegression):
		log.WithError(err).Warn("Conflicting status transition")
		c.JSON(http.StatusConflict, gin.H{"error": "donation is not available"})
	case errors.Is(err, service.ErrLocationUnavailable):
		log.WithError(err).Warn("Origin location unavailable")
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin location unavailable"})
	default:
		log.WithError(err).Error("Internal service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
