package dto

import (
	"time"

	"gorm.io/datatypes"
)

// Request DTOs

// AuditLogFilterRequest is read from the query string of GET /audit-logs.
type AuditLogFilterRequest struct {
	UserID *int
	Action string
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64             `json:"id"`
	UserID    *int              `json:"user_id,omitempty"`
	User      *UserResponse     `json:"user,omitempty"`
	Action    string            `json:"action"`
	Metadata  datatypes.JSONMap `json:"metadata"`
	CreatedAt time.Time         `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int64              `json:"total"`
}
