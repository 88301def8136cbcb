package feed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shenikar/food_rescue_network/internal/models"
	"github.com/sirupsen/logrus"
)

// Интервалы демо-активности ленты
const (
	cannedInterval = 45 * time.Second
	statusInterval = 60 * time.Second
)

// cannedUpdates - сообщения периодической демо-активности
var cannedUpdates = []string{
	"New donor registration from local restaurant",
	"Food safety check completed for downtown pickup",
	"Route optimization updated with current traffic",
	"Volunteer driver assigned to urgent pickup",
	"Real-time inventory updated across network",
}

// Simulator наполняет ленту демонстрационными событиями.
// Включается только конфигурацией и не участвует в бизнес-логике.
type Simulator struct {
	feed      *Feed
	available func() []*models.Donation
	logger    *logrus.Logger
	rnd       *rand.Rand
}

// NewSimulator создает симулятор; available отдает текущие доступные пожертвования
func NewSimulator(f *Feed, available func() []*models.Donation, logger *logrus.Logger) *Simulator {
	return &Simulator{
		feed:      f,
		available: available,
		logger:    logger,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start запускает горутину демо-активности до отмены контекста
func (s *Simulator) Start(ctx context.Context) {
	s.logger.Info("Starting live feed simulator...")
	go func() {
		canned := time.NewTicker(cannedInterval)
		status := time.NewTicker(statusInterval)
		defer canned.Stop()
		defer status.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping live feed simulator.")
				return
			case <-canned.C:
				s.feed.Add(cannedUpdates[s.rnd.Intn(len(cannedUpdates))])
			case <-status.C:
				donations := s.available()
				if len(donations) == 0 || s.rnd.Float64() >= 0.3 {
					continue
				}
				donation := donations[s.rnd.Intn(len(donations))]
				s.feed.Add(fmt.Sprintf("%s donation status updated", donation.DonorName))
			}
		}
	}()
}
