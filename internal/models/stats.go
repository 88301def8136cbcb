package models

// Stats - агрегированные показатели сети.
// Накопительные счетчики только растут (бегущая сводка, не проекция истории),
// ActiveDonations каждый раз пересчитывается по хранилищу.
type Stats struct {
	TotalDonations  int     `json:"total_donations"`
	PeopleServed    int     `json:"people_served"`
	FoodRescuedKg   int     `json:"food_rescued_kg"`
	CO2SavedTonnes  float64 `json:"co2_saved_tonnes"`
	ActiveDonations int     `json:"active_donations"`
	AvgPickupTimeM  int     `json:"avg_pickup_time_minutes"`
}
