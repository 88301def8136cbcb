package v1

import (
	"fmt"
	"time"

	"github.com/shenikar/food_rescue_network/internal/models"
	"github.com/shenikar/food_rescue_network/internal/service"
)

// expiryLayout - формат даты срока годности в ответах API
const expiryLayout = "2006-01-02"

// DTOToCreateInput преобразует DTO создания в входные данные сервиса
func DTOToCreateInput(dto CreateDonationRequest) service.CreateDonationInput {
	return service.CreateDonationInput{
		DonorName:     dto.DonorName,
		ContactPerson: dto.ContactPerson,
		Phone:         dto.Phone,
		Address:       dto.Address,
		FoodType:      models.FoodType(dto.FoodType),
		Quantity:      dto.Quantity,
		Expiry:        dto.Expiry,
		Urgency:       models.Urgency(dto.Urgency),
		Notes:         dto.Notes,
	}
}

// DTOToRegisterInput преобразует DTO регистрации в входные данные сервиса
func DTOToRegisterInput(dto RegisterOrganizationRequest) service.RegisterOrganizationInput {
	return service.RegisterOrganizationInput{
		Name:        dto.Name,
		Type:        dto.Type,
		Contact:     dto.Contact,
		Phone:       dto.Phone,
		Address:     dto.Address,
		Capacity:    dto.Capacity,
		Preferences: dto.Preferences,
	}
}

// ModelToDonationResponse преобразует доменную модель в DTO для ответа
func ModelToDonationResponse(model *models.Donation, now time.Time) *DonationResponse {
	return &DonationResponse{
		ID:            model.ID,
		DonorName:     model.DonorName,
		ContactPerson: model.ContactPerson,
		Phone:         model.Phone,
		Address:       model.Address,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		FoodType:      string(model.FoodType),
		FoodTypeLabel: model.FoodType.Label(),
		Quantity:      model.Quantity,
		QuantityUnit:  model.FoodType.QuantityUnit(),
		Expiry:        model.Expiry.Format(expiryLayout),
		Urgency:       string(model.Urgency),
		Notes:         model.Notes,
		Status:        string(model.Status),
		PostedAt:      model.PostedAt,
		PostedAgo:     timeAgo(model.PostedAt, now),
		ReservedBy:    model.ReservedBy,
		PickupTime:    model.PickupTime,
	}
}

// ModelsToDonationResponses преобразует слайс моделей в слайс DTO
func ModelsToDonationResponses(donations []*models.Donation, now time.Time) []*DonationResponse {
	responses := make([]*DonationResponse, len(donations))
	for i, model := range donations {
		responses[i] = ModelToDonationResponse(model, now)
	}
	return responses
}

// ModelToOrganizationResponse преобразует доменную модель в DTO для ответа
func ModelToOrganizationResponse(model *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:           model.ID,
		Name:         model.Name,
		Type:         model.Type,
		Contact:      model.Contact,
		Phone:        model.Phone,
		Address:      model.Address,
		Capacity:     model.Capacity,
		Preferences:  model.Preferences,
		RegisteredAt: model.RegisteredAt,
	}
}

// ModelsToOrganizationResponses преобразует слайс моделей в слайс DTO
func ModelsToOrganizationResponses(orgs []*models.Organization) []*OrganizationResponse {
	responses := make([]*OrganizationResponse, len(orgs))
	for i, model := range orgs {
		responses[i] = ModelToOrganizationResponse(model)
	}
	return responses
}

// ModelsToLiveUpdateResponses преобразует записи ленты в DTO
func ModelsToLiveUpdateResponses(updates []models.LiveUpdate) []LiveUpdateResponse {
	responses := make([]LiveUpdateResponse, len(updates))
	for i, update := range updates {
		responses[i] = LiveUpdateResponse{
			ID:        update.ID,
			Message:   update.Message,
			Timestamp: update.Timestamp,
		}
	}
	return responses
}

// timeAgo возвращает человекочитаемую давность публикации
func timeAgo(posted, now time.Time) string {
	diff := now.Sub(posted)
	switch {
	case diff >= 24*time.Hour:
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%d %s ago", days, plural(days, "day"))
	case diff >= time.Hour:
		hours := int(diff.Hours())
		return fmt.Sprintf("%d %s ago", hours, plural(hours, "hour"))
	default:
		minutes := int(diff.Minutes())
		return fmt.Sprintf("%d %s ago", minutes, plural(minutes, "minute"))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
