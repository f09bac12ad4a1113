package mapping

import (
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/SscSPs/fleet_logistics_app/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:           d.ClientID,
		Name:               d.Name,
		GSTIN:              d.GSTIN,
		Address:            d.Address,
		Phone:              d.Phone,
		CreditLimit:        d.CreditLimit,
		OutstandingBalance: d.OutstandingBalance,
		IsActive:           d.IsActive,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:           m.ClientID,
		Name:               m.Name,
		GSTIN:              m.GSTIN,
		Address:            m.Address,
		Phone:              m.Phone,
		CreditLimit:        m.CreditLimit,
		OutstandingBalance: m.OutstandingBalance,
		IsActive:           m.IsActive,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClientSlice converts a slice of model Clients to domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
