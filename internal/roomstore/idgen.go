package roomstore

import (
	"sync"
	"time"
)

// IDSource выдаёт строго возрастающие id на основе времени в миллисекундах.
// Два добавления в одну миллисекунду получают разные id.
type IDSource struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

// Next возвращает id больше floor и больше любого ранее выданного.
func (s *IDSource) Next(floor int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	if id <= floor {
		id = floor + 1
	}
	s.last = id
	return id
}
