// Package venuelock взаимное исключение по площадкам.
// Все мутации бронирований одной площадки (create/update/cancel) выполняются
// под ее мьютексом, чтобы проверка конфликтов и запись бронирования
// были атомарны внутри процесса (check-then-act).
package venuelock

import (
	"context"
	"sync"
)

// Locker набор мьютексов, по одному на площадку
type Locker struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// New создает новый Locker
func New() *Locker {
	return &Locker{
		locks: make(map[int64]*sync.Mutex),
	}
}

// Do выполняет fn под мьютексом площадки venueID.
// Отмена контекста проверяется до захвата мьютекса; уже начатая fn не прерывается.
func (l *Locker) Do(ctx context.Context, venueID int64, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mu := l.lockFor(venueID)
	mu.Lock()
	defer mu.Unlock()

	return fn(ctx)
}

// DoPair выполняет fn под мьютексами двух площадок (для переноса бронирования
// между площадками). Мьютексы берутся в порядке возрастания id,
// чтобы исключить deadlock при встречных переносах.
func (l *Locker) DoPair(ctx context.Context, venueA, venueB int64, fn func(ctx context.Context) error) error {
	if venueA == venueB {
		return l.Do(ctx, venueA, fn)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	first, second := venueA, venueB
	if second < first {
		first, second = second, first
	}

	muFirst := l.lockFor(first)
	muSecond := l.lockFor(second)

	muFirst.Lock()
	defer muFirst.Unlock()
	muSecond.Lock()
	defer muSecond.Unlock()

	return fn(ctx)
}

func (l *Locker) lockFor(venueID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	mu, ok := l.locks[venueID]
	if !ok {
		mu = &sync.Mutex{}
		l.locks[venueID] = mu
	}
	return mu
}
