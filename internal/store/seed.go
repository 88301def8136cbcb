package store

import (
	"time"

	"github.com/shenikar/food_rescue_network/internal/models"
	"github.com/shenikar/food_rescue_network/internal/service"
)

const pickupTimeLayout = "2006-01-02T15:04"

// SeedDemoData наполняет хранилище демонстрационными пожертвованиями.
// Сроки годности и время публикации отсчитываются от now, чтобы записи
// оставались валидными независимо от даты запуска.
func SeedDemoData(s service.ListingStore, now time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	demo := []*models.Donation{
		{
			DonorName:     "Harvest Restaurant",
			ContactPerson: "Maria Santos",
			Phone:         "(555) 123-4567",
			Address:       "123 Main St, Downtown",
			Latitude:      40.7589,
			Longitude:     -73.9851,
			FoodType:      models.FoodPrepared,
			Quantity:      50,
			Expiry:        day.AddDate(0, 0, 1),
			Urgency:       models.UrgencyHigh,
			Notes:         "Hot meals ready for pickup. Includes vegetarian options.",
			Status:        models.StatusAvailable,
			PostedAt:      now.Add(-2 * time.Hour),
		},
		{
			DonorName:     "Green Valley Grocery",
			ContactPerson: "Tom Chen",
			Phone:         "(555) 234-5678",
			Address:       "456 Oak Ave, Midtown",
			Latitude:      40.7505,
			Longitude:     -73.9934,
			FoodType:      models.FoodProduce,
			Quantity:      200,
			Expiry:        day.AddDate(0, 0, 3),
			Urgency:       models.UrgencyMedium,
			Notes:         "Fresh vegetables and fruits. Some cosmetic imperfections but good quality.",
			Status:        models.StatusAvailable,
			PostedAt:      now.Add(-5 * time.Hour),
		},
		{
			DonorName:     "Sunrise Bakery",
			ContactPerson: "Emma Johnson",
			Phone:         "(555) 345-6789",
			Address:       "789 Pine St, Eastside",
			Latitude:      40.7614,
			Longitude:     -73.9776,
			FoodType:      models.FoodBaked,
			Quantity:      100,
			Expiry:        day.AddDate(0, 0, 2),
			Urgency:       models.UrgencyLow,
			Notes:         "End-of-day pastries and bread. All items baked fresh today.",
			Status:        models.StatusReserved,
			PostedAt:      now.Add(-8 * time.Hour),
			ReservedBy:    "Downtown Food Bank",
			PickupTime:    day.AddDate(0, 0, 1).Add(18 * time.Hour).Format(pickupTimeLayout),
		},
		{
			DonorName:     "Metro Deli",
			ContactPerson: "Alex Rivera",
			Phone:         "(555) 456-7890",
			Address:       "321 Broadway, Uptown",
			Latitude:      40.7831,
			Longitude:     -73.9712,
			FoodType:      models.FoodPrepared,
			Quantity:      75,
			Expiry:        day.AddDate(0, 0, 1),
			Urgency:       models.UrgencyHigh,
			Notes:         "Fresh sandwiches and salads. Must be picked up today.",
			Status:        models.StatusInTransit,
			PostedAt:      now.Add(-1 * time.Hour),
			ReservedBy:    "City Shelter",
			PickupTime:    day.Add(16*time.Hour + 30*time.Minute).Format(pickupTimeLayout),
		},
		{
			DonorName:     "Campus Cafeteria",
			ContactPerson: "Dr. Sarah Kim",
			Phone:         "(555) 567-8901",
			Address:       "100 University Ave, Campus",
			Latitude:      40.7282,
			Longitude:     -73.9942,
			FoodType:      models.FoodPrepared,
			Quantity:      120,
			Expiry:        day.AddDate(0, 0, 1),
			Urgency:       models.UrgencyMedium,
			Notes:         "Leftover lunch portions. Vegetarian and vegan options available.",
			Status:        models.StatusAvailable,
			PostedAt:      now.Add(-3 * time.Hour),
		},
	}

	for _, d := range demo {
		s.InsertDonation(d)
	}
}
