package entity

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Session estado de caja de una sesión de navegador: cuenta + datos del cliente.
// Cada sesión tiene su propia instancia; el mutex serializa pestañas concurrentes.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	ledger   BillLedger
	customer CustomerInfo
	lastSeen time.Time
}

// NewSession crea una sesión vacía.
func NewSession(id string, now time.Time) *Session {
	return &Session{ID: id, CreatedAt: now, lastSeen: now}
}

// SessionSnapshot copia consistente del estado de la sesión.
type SessionSnapshot struct {
	Items    []LineItem
	Total    decimal.Decimal
	Customer CustomerInfo
}

// Snapshot devuelve el estado actual sin exponer referencias internas.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionSnapshot{
		Items:    s.ledger.Items(),
		Total:    s.ledger.Total(),
		Customer: s.customer,
	}
}

// AddItem agrega una línea a la cuenta.
func (s *Session) AddItem(itemName string, price decimal.Decimal, size Size) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Add(itemName, price, size)
}

// SetCustomer reemplaza los datos del cliente.
func (s *Session) SetCustomer(info CustomerInfo) {
	s.mu.Lock()
	s.customer = info
	s.mu.Unlock()
}

// Clear limpia cuenta y datos del cliente de forma atómica.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.Clear()
	s.customer = CustomerInfo{}
}

// Touch marca actividad reciente.
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// IdleSince indica si la sesión no tiene actividad desde antes de cutoff.
func (s *Session) IdleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen.Before(cutoff)
}
