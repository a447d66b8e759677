package order

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact recorded by the Order aggregate. Events are collected
// while a unit of work runs and published only after it commits.
type DomainEvent interface {
	EventID() uuid.UUID
	EventName() string
	OccurredAt() time.Time
}

type eventMeta struct {
	id uuid.UUID
	at time.Time
}

func newEventMeta(at time.Time) eventMeta {
	return eventMeta{id: uuid.New(), at: at}
}

func (m eventMeta) EventID() uuid.UUID { return m.id }
func (m eventMeta) OccurredAt() time.Time { return m.at }

type OrderPlaced struct {
	eventMeta
	OrderID ID       `json:"orderId"`
	Login   string   `json:"login"`
	Items   []string `json:"items"`
	Total   string   `json:"total"`
	Paid    bool     `json:"paid"`
}

func (OrderPlaced) EventName() string { return "order.placed" }

type ItemReplaced struct {
	eventMeta
	OrderID  ID     `json:"orderId"`
	ItemID   ItemID `json:"itemId"`
	OldName  string `json:"oldName"`
	NewName  string `json:"newName"`
	OldTotal string `json:"oldTotal"`
	NewTotal string `json:"newTotal"`
}

func (ItemReplaced) EventName() string { return "order.item_replaced" }

type ItemStatusChanged struct {
	eventMeta
	OrderID ID     `json:"orderId"`
	ItemID  ItemID `json:"itemId"`
	Name    string `json:"name"`
	From    string `json:"from"`
	To      string `json:"to"`
	Forced  bool   `json:"forced"`
}

func (ItemStatusChanged) EventName() string { return "order.item_status_changed" }

type PaidStatusChanged struct {
	eventMeta
	OrderID ID   `json:"orderId"`
	Paid    bool `json:"paid"`
}

func (PaidStatusChanged) EventName() string { return "order.paid_status_changed" }
