// internal/system/economy.go
package system

import (
	"math"

	"infection-td/internal/entity"
	"infection-td/internal/event"
)

// EconomySystem owns every change to the player's money.
type EconomySystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	refundRate      float64
}

func NewEconomySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, refundRate float64) *EconomySystem {
	return &EconomySystem{ecs: ecs, eventDispatcher: eventDispatcher, refundRate: refundRate}
}

// Money returns the current balance.
func (s *EconomySystem) Money() int {
	return s.ecs.Wallet.Money
}

// Earn adds money and counts it toward the lifetime total.
func (s *EconomySystem) Earn(amount int) {
	if amount <= 0 {
		return
	}
	s.ecs.Wallet.Money += amount
	s.ecs.Wallet.LifetimeEarned += amount
	s.notify()
}

// Purchase deducts cost if affordable. Nothing changes on failure.
func (s *EconomySystem) Purchase(cost int) bool {
	if cost < 0 || s.ecs.Wallet.Money < cost {
		return false
	}
	s.ecs.Wallet.Money -= cost
	s.notify()
	return true
}

// RefundFor returns floor(totalCost * refundRate). The epsilon keeps
// products like 130*0.7 from flooring to 90.
func (s *EconomySystem) RefundFor(totalCost int) int {
	return int(math.Floor(float64(totalCost)*s.refundRate + 1e-9))
}

// Refund credits the sell value of totalCost and returns it. Refunds are
// not counted as earned money.
func (s *EconomySystem) Refund(totalCost int) int {
	amount := s.RefundFor(totalCost)
	if amount > 0 {
		s.ecs.Wallet.Money += amount
		s.notify()
	}
	return amount
}

func (s *EconomySystem) notify() {
	s.eventDispatcher.Dispatch(event.Event{Type: event.MoneyChanged, Data: s.ecs.Wallet.Money})
}
