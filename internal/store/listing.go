package store

import (
	"fmt"
	"sync"

	"github.com/shenikar/food_rescue_network/internal/models"
	"github.com/shenikar/food_rescue_network/internal/service"
)

// ListingStore - хранилище записей в памяти процесса.
// Единственный владелец записей пожертвований и организаций; вся мутация
// сериализуется мьютексом. Идентификаторы выдает монотонный счетчик,
// не зависящий от текущего размера коллекции.
type ListingStore struct {
	mu sync.RWMutex

	donations      []*models.Donation // новые в начале
	nextDonationID int64

	organizations []*models.Organization
	nextOrgID     int64
}

// NewListingStore создает пустое хранилище
func NewListingStore() service.ListingStore {
	return &ListingStore{}
}

// InsertDonation присваивает идентификатор и добавляет запись в начало коллекции
func (s *ListingStore) InsertDonation(donation *models.Donation) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextDonationID++
	donation.ID = s.nextDonationID
	s.donations = append([]*models.Donation{donation}, s.donations...)
	return donation.ID
}

// GetDonation возвращает копию записи по идентификатору
func (s *ListingStore) GetDonation(id int64) (*models.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	donation := s.find(id)
	if donation == nil {
		return nil, fmt.Errorf("donation %d: %w", id, service.ErrNotFound)
	}
	copied := *donation
	return &copied, nil
}

// ReserveDonation переводит запись в статус reserved и фиксирует данные вывоза.
// В строгом режиме переход разрешен только из статуса available; нестрогий
// режим повторяет историческое поведение без проверки текущего статуса,
// но терминальный completed в любом случае не покидается.
func (s *ListingStore) ReserveDonation(id int64, reservedBy, pickupTime string, strict bool) (*models.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	donation := s.find(id)
	if donation == nil {
		return nil, fmt.Errorf("donation %d: %w", id, service.ErrNotFound)
	}

	if strict && donation.Status != models.StatusAvailable {
		return nil, fmt.Errorf("donation %d has status %s: %w", id, donation.Status, service.ErrNotAvailable)
	}
	if donation.Status == models.StatusCompleted {
		return nil, fmt.Errorf("donation %d is completed: %w", id, service.ErrStatusRegression)
	}

	donation.Status = models.StatusReserved
	donation.ReservedBy = reservedBy
	donation.PickupTime = pickupTime

	copied := *donation
	return &copied, nil
}

// AdvanceDonation переводит статус строго вперед по жизненному циклу
func (s *ListingStore) AdvanceDonation(id int64, next models.DonationStatus) (*models.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	donation := s.find(id)
	if donation == nil {
		return nil, fmt.Errorf("donation %d: %w", id, service.ErrNotFound)
	}

	if !donation.Status.CanAdvanceTo(next) {
		return nil, fmt.Errorf("donation %d: %s -> %s: %w", id, donation.Status, next, service.ErrStatusRegression)
	}

	donation.Status = next
	copied := *donation
	return &copied, nil
}

// ListDonations возвращает копии записей, новые первыми.
// Пустой статус означает «все записи».
func (s *ListingStore) ListDonations(status models.DonationStatus) []*models.Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Donation, 0, len(s.donations))
	for _, d := range s.donations {
		if status != "" && d.Status != status {
			continue
		}
		copied := *d
		out = append(out, &copied)
	}
	return out
}

// ActiveCount возвращает число доступных пожертвований
func (s *ListingStore) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, d := range s.donations {
		if d.Status == models.StatusAvailable {
			count++
		}
	}
	return count
}

// InsertOrganization присваивает идентификатор и добавляет организацию
func (s *ListingStore) InsertOrganization(org *models.Organization) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextOrgID++
	org.ID = s.nextOrgID
	s.organizations = append(s.organizations, org)
	return org.ID
}

// ListOrganizations возвращает копии всех организаций в порядке регистрации
func (s *ListingStore) ListOrganizations() []*models.Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Organization, 0, len(s.organizations))
	for _, org := range s.organizations {
		copied := *org
		out = append(out, &copied)
	}
	return out
}

// LatestOrganization возвращает последнюю зарегистрированную организацию
func (s *ListingStore) LatestOrganization() (*models.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.organizations) == 0 {
		return nil, fmt.Errorf("no organizations registered: %w", service.ErrNotFound)
	}
	copied := *s.organizations[len(s.organizations)-1]
	return &copied, nil
}

// find ищет запись по идентификатору; вызывается под мьютексом
func (s *ListingStore) find(id int64) *models.Donation {
	for _, d := range s.donations {
		if d.ID == id {
			return d
		}
	}
	return nil
}
