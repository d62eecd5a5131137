package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionCustomerSearch       = "customer_search"
	AuditActionCustomerCreated      = "customer_created"
	AuditActionCustomerCreateFailed = "customer_create_failed"
	AuditActionProductAdded         = "product_added"
	AuditActionPurchaseMade         = "purchase_made"
	AuditActionListCustomers        = "list_customers"
	AuditActionListProducts         = "list_products"
	AuditActionListPurchases        = "list_purchases"
	AuditActionTotalViewed          = "total_viewed"
)

const (
	AuditOutcomeSuccess         = "success"
	AuditOutcomeValidationError = "validation_error"
	AuditOutcomeDomainError     = "domain_error"
	AuditOutcomeTransportError  = "transport_error"
)

const (
	AuditResourceCustomer = "customer"
	AuditResourceProduct  = "product"
	AuditResourcePurchase = "purchase"
)

// AuditLog is one console action as persisted in console_audit_logs.
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Action     string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string    `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID string    `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	Outcome    string    `gorm:"type:varchar(50);not null" json:"outcome"`
	TraceID    string    `gorm:"type:varchar(64);index" json:"trace_id,omitempty"`
	IPAddress  string    `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string    `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata   JSONBMap  `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) GetMetadata(key string, defaultValue interface{}) interface{} {
	if al.Metadata == nil {
		return defaultValue
	}

	if value, exists := al.Metadata[key]; exists {
		return value
	}

	return defaultValue
}

func (al *AuditLog) String() string {
	return fmt.Sprintf("AuditLog[Action: %s, Resource: %s/%s, Outcome: %s, Trace: %s, Time: %s]",
		al.Action, al.Resource, al.ResourceID, al.Outcome, al.TraceID, al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "console_audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}

	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now().UTC()
	}
	return nil
}

// JSONBMap is a JSON object column. It is stored as text so the same model
// works on PostgreSQL and SQLite.
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
