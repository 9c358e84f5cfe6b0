package ratelimit

import (
	"sync"
	"time"
)

// Значения по умолчанию для отправки заказа
const (
	DefaultMaxAttempts = 5
	DefaultWindow      = time.Minute
)

// Limiter скользящее окно попыток по строковому ключу. Учитываются только
// разрешённые попытки: отклонённая попытка не сдвигает окно.
type Limiter struct {
	mu          sync.Mutex
	attempts    map[string][]time.Time
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

func New(maxAttempts int, window time.Duration) *Limiter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{
		attempts:    make(map[string][]time.Time),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// NewWithClock вариант с внешними часами для тестов
func NewWithClock(maxAttempts int, window time.Duration, now func() time.Time) *Limiter {
	l := New(maxAttempts, window)
	l.now = now
	return l
}

// Window длительность скользящего окна
func (l *Limiter) Window() time.Duration { return l.window }

// Allow решает, разрешена ли попытка для ключа прямо сейчас, и фиксирует её,
// если разрешена. Записи старше окна отбрасываются до подсчёта.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	valid := l.attempts[key][:0:0]
	for _, t := range l.attempts[key] {
		if now.Sub(t) < l.window {
			valid = append(valid, t)
		}
	}

	if len(valid) >= l.maxAttempts {
		l.attempts[key] = valid
		return false
	}

	l.attempts[key] = append(valid, now)
	return true
}
