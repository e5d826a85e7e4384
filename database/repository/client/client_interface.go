package clientRepo

import "slotdesk/models"

// ClientRepository defines methods for client data access.
type ClientRepository interface {
	// GetByPhone retrieves a client by phone number, nil if none exists.
	GetByPhone(phone string) (*models.Client, error)
	// UpsertByPhone inserts or updates a client keyed by phone and returns
	// the stored record.
	UpsertByPhone(c *models.Client) (*models.Client, error)
}
