package activity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type enumerates the loggable user actions.
type Type string

const (
	ProductAdded       Type = "product_added"
	ProductUpdated     Type = "product_updated"
	ProductDeleted     Type = "product_deleted"
	TransactionCreated Type = "transaction_created"
	TransactionUpdated Type = "transaction_updated"
	TransactionDeleted Type = "transaction_deleted"
	SupplierAdded      Type = "supplier_added"
	SupplierUpdated    Type = "supplier_updated"
	SupplierDeleted    Type = "supplier_deleted"
	CategoryAdded      Type = "category_added"
	UserLogin          Type = "user_login"
	UserLogout         Type = "user_logout"
)

// Record is one logged user action. Message, Icon, Date, and Time are
// derived once at creation and never recomputed; a later locale or
// timezone change does not retroactively rewrite history.
type Record struct {
	ID        string            `json:"id"`
	Type      Type              `json:"type"`
	Message   string            `json:"message"`
	Icon      string            `json:"icon"`
	Data      map[string]string `json:"data,omitempty"`
	UserID    string            `json:"userId,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
}

// Stats aggregates record counts; recomputed on every call, never cached.
type Stats struct {
	Total  int          `json:"total"`
	Today  int          `json:"today"`
	ByType map[Type]int `json:"byType"`
}

var icons = map[Type]string{
	ProductAdded:       "📦",
	ProductUpdated:     "✏️",
	ProductDeleted:     "🗑️",
	TransactionCreated: "🔄",
	TransactionUpdated: "🔁",
	TransactionDeleted: "❌",
	SupplierAdded:      "🚚",
	SupplierUpdated:    "📝",
	SupplierDeleted:    "🚫",
	CategoryAdded:      "🏷️",
	UserLogin:          "🔓",
	UserLogout:         "🔒",
}

// Icon returns the fixed display glyph for the type.
func (t Type) Icon() string {
	if icon, ok := icons[t]; ok {
		return icon
	}
	return "•"
}

// message renders the human-readable text for a record at creation time.
func (t Type) message(data map[string]string) string {
	name := data["name"]
	switch t {
	case ProductAdded:
		return fmt.Sprintf("Added product %q", name)
	case ProductUpdated:
		return fmt.Sprintf("Updated product %q", name)
	case ProductDeleted:
		return fmt.Sprintf("Deleted product %q", name)
	case TransactionCreated:
		return fmt.Sprintf("Recorded transaction for %q", name)
	case TransactionUpdated:
		return fmt.Sprintf("Updated transaction for %q", name)
	case TransactionDeleted:
		return fmt.Sprintf("Deleted transaction for %q", name)
	case SupplierAdded:
		return fmt.Sprintf("Added supplier %q", name)
	case SupplierUpdated:
		return fmt.Sprintf("Updated supplier %q", name)
	case SupplierDeleted:
		return fmt.Sprintf("Deleted supplier %q", name)
	case CategoryAdded:
		return fmt.Sprintf("Added category %q", name)
	case UserLogin:
		if name == "" {
			return "Signed in"
		}
		return fmt.Sprintf("Signed in as %q", name)
	case UserLogout:
		return "Signed out"
	default:
		return string(t)
	}
}

// newRecord constructs a fully-derived record.
func newRecord(t Type, data map[string]string, userID string) Record {
	now := time.Now()
	return Record{
		ID:        fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8]),
		Type:      t,
		Message:   t.message(data),
		Icon:      t.Icon(),
		Data:      data,
		UserID:    userID,
		Timestamp: now,
		Date:      now.Format("02/01/2006"),
		Time:      now.Format("15:04"),
	}
}
