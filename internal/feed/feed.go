package feed

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/food_rescue_network/internal/models"
)

// DefaultCapacity - размер ленты по умолчанию
const DefaultCapacity = 10

// Feed - ограниченная лента событий: новые записи вытесняют самые старые (FIFO).
// Лента эфемерна и живет только в памяти процесса.
type Feed struct {
	mu       sync.RWMutex
	capacity int
	entries  []models.LiveUpdate // новые в начале
	now      func() time.Time
}

// New создает ленту заданной емкости
func New(capacity int) *Feed {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Feed{
		capacity: capacity,
		entries:  make([]models.LiveUpdate, 0, capacity),
		now:      time.Now,
	}
}

// Add добавляет сообщение в начало ленты, вытесняя самую старую запись при переполнении
func (f *Feed) Add(message string) models.LiveUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()

	update := models.LiveUpdate{
		ID:        uuid.New(),
		Message:   message,
		Timestamp: f.now(),
	}

	f.entries = append([]models.LiveUpdate{update}, f.entries...)
	if len(f.entries) > f.capacity {
		f.entries = f.entries[:f.capacity]
	}
	return update
}

// Recent возвращает копию текущих записей, новые первыми
func (f *Feed) Recent() []models.LiveUpdate {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]models.LiveUpdate, len(f.entries))
	copy(out, f.entries)
	return out
}

// Len возвращает текущее количество записей
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}
