package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// ResourceKind identifies which kind of fleet resource an availability check targets.
type ResourceKind string

const (
	ResourceTruck  ResourceKind = "TRUCK"
	ResourceDriver ResourceKind = "DRIVER"
)
