package domain

import "encoding/json"

// AuditLog is one entry of the upstream audit trail. Old and new values
// are forwarded opaquely; their shape depends on the audited entity.
type AuditLog struct {
	ID                int64           `json:"id"`
	ActionType        string          `json:"action_type"`
	ActionTypeDisplay string          `json:"action_type_display"`
	EntityType        string          `json:"entity_type"`
	EntityTypeDisplay string          `json:"entity_type_display"`
	EntityID          int64           `json:"entity_id,omitempty"`
	EntityDescription string          `json:"entity_description,omitempty"`
	UserID            int64           `json:"user_id,omitempty"`
	UserName          string          `json:"user_name,omitempty"`
	UserIP            string          `json:"user_ip,omitempty"`
	OldValues         json.RawMessage `json:"old_values,omitempty"`
	NewValues         json.RawMessage `json:"new_values,omitempty"`
	Description       string          `json:"description,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         string          `json:"created_at"`
}

// AuditLogFilter narrows the audit trail listing.
type AuditLogFilter struct {
	ActionType string
	EntityType string
	UserID     int64
	DateFrom   string
	DateTo     string
	Limit      int
}
