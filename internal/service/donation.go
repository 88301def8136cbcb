package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/food_rescue_network/internal/config"
	"github.com/shenikar/food_rescue_network/internal/feed"
	"github.com/shenikar/food_rescue_network/internal/geo"
	"github.com/shenikar/food_rescue_network/internal/models"
	"github.com/shenikar/food_rescue_network/internal/validation"
	"github.com/shenikar/food_rescue_network/internal/webhook"
	"github.com/sirupsen/logrus"
)

// Ограничения количества в одном пожертвовании
const (
	minQuantity = 1
	maxQuantity = 10000
)

// minPickupLead - минимальный запас времени до вывоза, когда маршрут не посчитан
const minPickupLead = 30 * time.Minute

// ListingStore определяет контракт хранилища записей.
// Хранилище единолично владеет записями пожертвований и организаций.
type ListingStore interface {
	InsertDonation(donation *models.Donation) int64
	GetDonation(id int64) (*models.Donation, error)
	ReserveDonation(id int64, reservedBy, pickupTime string, strict bool) (*models.Donation, error)
	AdvanceDonation(id int64, next models.DonationStatus) (*models.Donation, error)
	ListDonations(status models.DonationStatus) []*models.Donation
	ActiveCount() int
	InsertOrganization(org *models.Organization) int64
	ListOrganizations() []*models.Organization
	LatestOrganization() (*models.Organization, error)
}

// EventArchive определяет контракт архива событий жизненного цикла.
// Архив только дописывается: источником истины остается хранилище в памяти.
type EventArchive interface {
	RecordEvent(ctx context.Context, event *models.LifecycleEvent) error
	RecentEvents(ctx context.Context, limit int) ([]*models.LifecycleEvent, error)
}

// TransitionScheduler определяет контракт отложенных переходов статусов
type TransitionScheduler interface {
	Schedule(id int64, delay time.Duration, fn func())
	Cancel(id int64)
}

// CreateDonationInput - входные данные создания пожертвования
type CreateDonationInput struct {
	DonorName     string
	ContactPerson string
	Phone         string
	Address       string
	FoodType      models.FoodType
	Quantity      int
	Expiry        string
	Urgency       models.Urgency
	Notes         string
}

// ReserveInput - входные данные резервирования вывоза
type ReserveInput struct {
	Organization string
	PickupTime   string
}

// RegisterOrganizationInput - входные данные регистрации организации
type RegisterOrganizationInput struct {
	Name        string
	Type        string
	Contact     string
	Phone       string
	Address     string
	Capacity    int
	Preferences string
}

// ReservationDefaults - предзаполнение формы резервирования:
// контакты последней зарегистрированной организации и предложенное время вывоза
type ReservationDefaults struct {
	Organization        string         `json:"organization,omitempty"`
	Contact             string         `json:"contact,omitempty"`
	Phone               string         `json:"phone,omitempty"`
	SuggestedPickupTime time.Time      `json:"suggested_pickup_time"`
	Route               *RouteEstimate `json:"route,omitempty"`
}

// DonationService определяет контракт бизнес-логики жизненного цикла пожертвований
type DonationService interface {
	CreateDonation(ctx context.Context, input CreateDonationInput) (*models.Donation, error)
	GetDonation(ctx context.Context, id int64) (*models.Donation, error)
	ListDonations(ctx context.Context, status models.DonationStatus) ([]*models.Donation, error)
	ReserveDonation(ctx context.Context, id int64, input ReserveInput) (*models.Donation, error)
	AdvanceToInTransit(ctx context.Context, id int64) error
	AdvanceToCompleted(ctx context.Context, id int64) error
	RegisterOrganization(ctx context.Context, input RegisterOrganizationInput) (*models.Organization, error)
	ListOrganizations(ctx context.Context) ([]*models.Organization, error)
	ReservationDefaults(ctx context.Context, id int64, origin *geo.Coordinates) (*ReservationDefaults, error)
	Stats(ctx context.Context) models.Stats
	LiveFeed(ctx context.Context) []models.LiveUpdate
	RecentEvents(ctx context.Context, limit int) ([]*models.LifecycleEvent, error)
}

type donationService struct {
	store     ListingStore
	geocoder  geo.Geocoder
	stats     *StatsAggregator
	feed      *feed.Feed
	scheduler TransitionScheduler
	publisher webhook.Publisher
	archive   EventArchive
	routes    RouteService
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

// NewDonationService создает сервис жизненного цикла пожертвований
func NewDonationService(
	store ListingStore,
	geocoder geo.Geocoder,
	stats *StatsAggregator,
	liveFeed *feed.Feed,
	scheduler TransitionScheduler,
	publisher webhook.Publisher,
	archive EventArchive,
	routes RouteService,
	logger *logrus.Logger,
	cfg *config.Config,
) DonationService {
	return &donationService{
		store:     store,
		geocoder:  geocoder,
		stats:     stats,
		feed:      liveFeed,
		scheduler: scheduler,
		publisher: publisher,
		archive:   archive,
		routes:    routes,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CreateDonation проверяет входные данные и создает запись о пожертвовании.
// При любой ошибке проверки хранилище не изменяется.
func (s *donationService) CreateDonation(ctx context.Context, input CreateDonationInput) (*models.Donation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "donation",
		"method":  "CreateDonation",
		"donor":   input.DonorName,
	})
	log.Info("Attempting to create a new donation")

	donorName := validation.SanitizeText(input.DonorName)
	contactPerson := validation.SanitizeText(input.ContactPerson)
	phone := validation.SanitizeText(input.Phone)
	address := validation.SanitizeText(input.Address)
	notes := validation.SanitizeText(input.Notes)

	switch {
	case donorName == "":
		return nil, &ValidationError{Field: "donor_name", Reason: "required field is empty"}
	case contactPerson == "":
		return nil, &ValidationError{Field: "contact_person", Reason: "required field is empty"}
	case address == "":
		return nil, &ValidationError{Field: "address", Reason: "required field is empty"}
	}

	if input.Quantity < minQuantity || input.Quantity > maxQuantity {
		return nil, &ValidationError{Field: "quantity", Reason: "quantity must be between 1 and 10000"}
	}

	if !input.FoodType.Known() {
		return nil, &ValidationError{Field: "food_type", Reason: "unknown food type"}
	}

	if input.Urgency.Weight() == 0 {
		return nil, &ValidationError{Field: "urgency", Reason: "unknown urgency"}
	}

	expiry, err := validation.ValidateExpiry(input.Expiry, s.now())
	if err != nil {
		return nil, &ValidationError{Field: "expiry", Reason: err.Error()}
	}

	if !validation.ValidPhone(phone) {
		return nil, &ValidationError{Field: "phone", Reason: "phone must contain at least 10 digits or punctuation"}
	}

	coords, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		log.WithError(err).Error("Failed to geocode donation address")
		return nil, fmt.Errorf("service: could not resolve coordinates: %w", err)
	}

	donation := &models.Donation{
		DonorName:     donorName,
		ContactPerson: contactPerson,
		Phone:         phone,
		Address:       address,
		Latitude:      coords.Latitude,
		Longitude:     coords.Longitude,
		FoodType:      input.FoodType,
		Quantity:      input.Quantity,
		Expiry:        expiry,
		Urgency:       input.Urgency,
		Notes:         notes,
		Status:        models.StatusAvailable,
		PostedAt:      s.now(),
	}
	donation.ID = s.store.InsertDonation(donation)

	s.stats.RecordDonation(donation.Quantity)
	s.feed.Add(fmt.Sprintf("New %s donation from %s", donation.FoodType.Label(), donation.DonorName))
	s.emit(ctx, models.EventPosted, donation)

	log.WithField("donation_id", donation.ID).Info("Donation created successfully")
	return donation, nil
}

// GetDonation возвращает пожертвование по идентификатору
func (s *donationService) GetDonation(ctx context.Context, id int64) (*models.Donation, error) {
	donation, err := s.store.GetDonation(id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get donation: %w", err)
	}
	return donation, nil
}

// ListDonations возвращает записи, опционально отфильтрованные по статусу
func (s *donationService) ListDonations(ctx context.Context, status models.DonationStatus) ([]*models.Donation, error) {
	if status != "" && !status.Known() {
		return nil, &ValidationError{Field: "status", Reason: "unknown status"}
	}
	return s.store.ListDonations(status), nil
}

// ReserveDonation резервирует вывоз и ставит отложенные демо-переходы
// in-transit и completed. В строгом режиме резервируется только доступное
// пожертвование; нестрогий режим повторяет историческое поведение без проверки.
func (s *donationService) ReserveDonation(ctx context.Context, id int64, input ReserveInput) (*models.Donation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "donation",
		"method":      "ReserveDonation",
		"donation_id": id,
	})
	log.Info("Attempting to reserve donation")

	org := validation.SanitizeText(input.Organization)
	if org == "" {
		return nil, &ValidationError{Field: "organization", Reason: "required field is empty"}
	}
	pickupTime := validation.SanitizeText(input.PickupTime)

	donation, err := s.store.ReserveDonation(id, org, pickupTime, s.cfg.ReserveStrict)
	if err != nil {
		log.WithError(err).Warn("Failed to reserve donation")
		return nil, fmt.Errorf("service: could not reserve donation: %w", err)
	}

	s.stats.RecordRescue(donation.Quantity)
	s.feed.Add(fmt.Sprintf("%s donation reserved by %s", donation.DonorName, donation.ReservedBy))
	s.emit(ctx, models.EventReserved, donation)

	// Демо-переходы: вывоз через PickupDelay, доставка через DeliveryDelay после него.
	// Отложенный вызов заново проверяет существование записи и молча завершается,
	// если записи уже нет.
	s.scheduler.Schedule(id, s.cfg.PickupDelay, func() {
		if err := s.AdvanceToInTransit(context.Background(), id); err != nil {
			log.WithError(err).Debug("Deferred in-transit transition skipped")
			return
		}
		s.scheduler.Schedule(id, s.cfg.DeliveryDelay, func() {
			if err := s.AdvanceToCompleted(context.Background(), id); err != nil {
				log.WithError(err).Debug("Deferred completed transition skipped")
			}
		})
	})

	log.WithField("reserved_by", donation.ReservedBy).Info("Donation reserved successfully")
	return donation, nil
}

// AdvanceToInTransit переводит пожертвование в статус in-transit
func (s *donationService) AdvanceToInTransit(ctx context.Context, id int64) error {
	donation, err := s.store.AdvanceDonation(id, models.StatusInTransit)
	if err != nil {
		return fmt.Errorf("service: could not advance donation: %w", err)
	}

	s.feed.Add(fmt.Sprintf("Pickup in progress: %s", donation.DonorName))
	s.emit(ctx, models.EventInTransit, donation)
	return nil
}

// AdvanceToCompleted переводит пожертвование в терминальный статус completed
func (s *donationService) AdvanceToCompleted(ctx context.Context, id int64) error {
	donation, err := s.store.AdvanceDonation(id, models.StatusCompleted)
	if err != nil {
		return fmt.Errorf("service: could not advance donation: %w", err)
	}

	s.feed.Add(fmt.Sprintf("Delivery completed: %s", donation.DonorName))
	s.emit(ctx, models.EventCompleted, donation)
	return nil
}

// RegisterOrganization регистрирует организацию-получателя.
// Запись создается один раз и дальше не редактируется.
func (s *donationService) RegisterOrganization(ctx context.Context, input RegisterOrganizationInput) (*models.Organization, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "donation",
		"method":  "RegisterOrganization",
		"name":    input.Name,
	})
	log.Info("Attempting to register organization")

	name := validation.SanitizeText(input.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "required field is empty"}
	}
	if input.Capacity < 1 {
		return nil, &ValidationError{Field: "capacity", Reason: "capacity must be positive"}
	}

	org := &models.Organization{
		Name:         name,
		Type:         validation.SanitizeText(input.Type),
		Contact:      validation.SanitizeText(input.Contact),
		Phone:        validation.SanitizeText(input.Phone),
		Address:      validation.SanitizeText(input.Address),
		Capacity:     input.Capacity,
		Preferences:  validation.SanitizeText(input.Preferences),
		RegisteredAt: s.now(),
	}
	org.ID = s.store.InsertOrganization(org)

	s.feed.Add(fmt.Sprintf("%s registered as %s", org.Name, org.Type))

	log.WithField("organization_id", org.ID).Info("Organization registered successfully")
	return org, nil
}

// ListOrganizations возвращает все зарегистрированные организации
func (s *donationService) ListOrganizations(ctx context.Context) ([]*models.Organization, error) {
	return s.store.ListOrganizations(), nil
}

// ReservationDefaults собирает предзаполнение формы резервирования:
// контакты последней организации и предложенное время вывоза по оценке маршрута
func (s *donationService) ReservationDefaults(ctx context.Context, id int64, origin *geo.Coordinates) (*ReservationDefaults, error) {
	if _, err := s.store.GetDonation(id); err != nil {
		return nil, fmt.Errorf("service: could not build reservation defaults: %w", err)
	}

	defaults := &ReservationDefaults{
		SuggestedPickupTime: s.now().Add(minPickupLead),
	}

	if org, err := s.store.LatestOrganization(); err == nil {
		defaults.Organization = org.Name
		defaults.Contact = org.Contact
		defaults.Phone = org.Phone
	}

	if origin != nil {
		estimate, err := s.routes.RouteToDonation(ctx, origin, id)
		if err == nil {
			defaults.Route = estimate
			defaults.SuggestedPickupTime = s.now().Add(time.Duration(estimate.EstimatedMinutes) * time.Minute)
		}
	}

	return defaults, nil
}

// Stats возвращает текущую сводку показателей
func (s *donationService) Stats(ctx context.Context) models.Stats {
	return s.stats.Snapshot(s.store.ActiveCount())
}

// LiveFeed возвращает текущие записи ленты событий
func (s *donationService) LiveFeed(ctx context.Context) []models.LiveUpdate {
	return s.feed.Recent()
}

// RecentEvents возвращает хвост архива событий жизненного цикла
func (s *donationService) RecentEvents(ctx context.Context, limit int) ([]*models.LifecycleEvent, error) {
	if s.archive == nil {
		return nil, nil
	}
	events, err := s.archive.RecentEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service: could not read event archive: %w", err)
	}
	return events, nil
}

// emit публикует уведомление организациям и дописывает архивную запись.
// Обе операции не блокируют мутацию: ошибки только логируются.
func (s *donationService) emit(ctx context.Context, kind string, donation *models.Donation) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "donation",
		"event_kind":  kind,
		"donation_id": donation.ID,
	})

	if s.publisher != nil {
		event := webhook.DonationEvent{
			ID:        uuid.New(),
			Kind:      kind,
			Donation:  donation,
			Timestamp: s.now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish donation event")
		}
	}

	if s.archive != nil {
		payload, err := json.Marshal(donation)
		if err != nil {
			log.WithError(err).Error("Failed to marshal donation for archive")
			return
		}
		record := &models.LifecycleEvent{
			DonationID: donation.ID,
			Kind:       kind,
			Payload:    payload,
			OccurredAt: s.now(),
		}
		if err := s.archive.RecordEvent(ctx, record); err != nil {
			log.WithError(err).Error("Failed to archive lifecycle event")
		}
	}
}
