package dto

import (
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClientRequest defines the data needed to register a new client.
type CreateClientRequest struct {
	Name        string          `json:"name" binding:"required"`
	GSTIN       string          `json:"gstin"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	CreditLimit decimal.Decimal `json:"creditLimit"` // zero disables credit checking
}

// UpdateClientRequest defines the data allowed for updating a client.
// Pointers distinguish omitted fields from zero-value updates.
type UpdateClientRequest struct {
	Name        *string          `json:"name"`
	GSTIN       *string          `json:"gstin"`
	Address     *string          `json:"address"`
	Phone       *string          `json:"phone"`
	CreditLimit *decimal.Decimal `json:"creditLimit"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID           string          `json:"clientID"`
	Name               string          `json:"name"`
	GSTIN              string          `json:"gstin"`
	Address            string          `json:"address"`
	Phone              string          `json:"phone"`
	CreditLimit        decimal.Decimal `json:"creditLimit"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	IsActive           bool            `json:"isActive"`
	CreatedAt          time.Time       `json:"createdAt"`
	CreatedBy          string          `json:"createdBy"`
	LastUpdatedAt      time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy      string          `json:"lastUpdatedBy"`
}

// CreditCheckResponse reports the advisory credit position for a proposed charge.
type CreditCheckResponse struct {
	ClientID       string          `json:"clientID"`
	WithinLimit    bool            `json:"withinLimit"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	ProposedAmount decimal.Decimal `json:"proposedAmount"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	IncludeInactive bool `form:"includeInactive"`
	Limit           int  `form:"limit,default=20"`
	Offset          int  `form:"offset,default=0"`
}

// ListClientsResponse wraps the list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:           c.ClientID,
		Name:               c.Name,
		GSTIN:              c.GSTIN,
		Address:            c.Address,
		Phone:              c.Phone,
		CreditLimit:        c.CreditLimit,
		OutstandingBalance: c.OutstandingBalance,
		IsActive:           c.IsActive,
		CreatedAt:          c.CreatedAt,
		CreatedBy:          c.CreatedBy,
		LastUpdatedAt:      c.LastUpdatedAt,
		LastUpdatedBy:      c.LastUpdatedBy,
	}
}

// ToListClientsResponse converts a slice of domain.Client to ListClientsResponse DTO
func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = ToClientResponse(&c)
	}
	return ListClientsResponse{Clients: res}
}
