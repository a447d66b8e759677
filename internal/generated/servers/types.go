package servers

import (
	"time"
)

// Defines values for ItemStatus.
const (
	NotStarted ItemStatus = "NotStarted"
	Started    ItemStatus = "Started"
	Finished   ItemStatus = "Finished"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HistoryEntry defines model for HistoryEntry.
type HistoryEntry struct {
	Comments    *string    `json:"comments,omitempty"`
	ItemId      int64      `json:"itemId"`
	ItemName    string     `json:"itemName"`
	LastUpdated time.Time  `json:"lastUpdated"`
	Login       string     `json:"login"`
	OrderId     int64      `json:"orderId"`
	Paid        bool       `json:"paid"`
	Price       string     `json:"price"`
	Status      ItemStatus `json:"status"`
	Total       string     `json:"total"`
}

// ItemStatus defines model for ItemStatus.
type ItemStatus string

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Items []string `json:"items"`
	Paid  *bool    `json:"paid,omitempty"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt time.Time   `json:"createdAt"`
	Id        int64       `json:"id"`
	Items     []OrderItem `json:"items"`
	Login     string      `json:"login"`
	Paid      bool        `json:"paid"`
	Total     string      `json:"total"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	Comments    *string    `json:"comments,omitempty"`
	Id          int64      `json:"id"`
	LastUpdated time.Time  `json:"lastUpdated"`
	Name        string     `json:"name"`
	Price       string     `json:"price"`
	Status      ItemStatus `json:"status"`
}

// PaidChange defines model for PaidChange.
type PaidChange struct {
	Paid bool `json:"paid"`
}

// PlacedOrder defines model for PlacedOrder.
type PlacedOrder struct {
	OrderId       int64    `json:"orderId"`
	RejectedItems []string `json:"rejectedItems"`
	Total         string   `json:"total"`
}

// ReplacedItem defines model for ReplacedItem.
type ReplacedItem struct {
	ItemId int64  `json:"itemId"`
	Total  string `json:"total"`
}

// Replacement defines model for Replacement.
type Replacement struct {
	NewItemName string `json:"newItemName"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Force  *bool      `json:"force,omitempty"`
	Status ItemStatus `json:"status"`
}

// ItemName defines model for ItemName.
type ItemName = string

// OrderId defines model for OrderId.
type OrderId = int64

// UserLogin defines model for UserLogin.
type UserLogin = string

// PlaceOrderParams defines parameters for PlaceOrder.
type PlaceOrderParams struct {
	XUserLogin UserLogin `json:"X-User-Login"`
}

// GetOrderParams defines parameters for GetOrder.
type GetOrderParams struct {
	XUserLogin UserLogin `json:"X-User-Login"`
}

// ReplaceItemParams defines parameters for ReplaceItem.
type ReplaceItemParams struct {
	XUserLogin UserLogin `json:"X-User-Login"`
}

// AdvanceItemStatusParams defines parameters for AdvanceItemStatus.
type AdvanceItemStatusParams struct {
	XUserLogin UserLogin `json:"X-User-Login"`
}

// SetPaidStatusParams defines parameters for SetPaidStatus.
type SetPaidStatusParams struct {
	XUserLogin UserLogin `json:"X-User-Login"`
}

// GetRecentHistoryParams defines parameters for GetRecentHistory.
type GetRecentHistoryParams struct {
	// Login Defaults to the caller
	Login      *string   `form:"login,omitempty" json:"login,omitempty"`
	Limit      *int      `form:"limit,omitempty" json:"limit,omitempty"`
	XUserLogin UserLogin `json:"X-User-Login"`
}

// GetWindowHistoryParams defines parameters for GetWindowHistory.
type GetWindowHistoryParams struct {
	From       *time.Time `form:"from,omitempty" json:"from,omitempty"`
	To         *time.Time `form:"to,omitempty" json:"to,omitempty"`
	XUserLogin UserLogin  `json:"X-User-Login"`
}

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = NewOrder

// ReplaceItemJSONRequestBody defines body for ReplaceItem for application/json ContentType.
type ReplaceItemJSONRequestBody = Replacement

// AdvanceItemStatusJSONRequestBody defines body for AdvanceItemStatus for application/json ContentType.
type AdvanceItemStatusJSONRequestBody = StatusChange

// SetPaidStatusJSONRequestBody defines body for SetPaidStatus for application/json ContentType.
type SetPaidStatusJSONRequestBody = PaidChange
