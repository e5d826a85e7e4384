package serviceRepo

import "slotdesk/models"

// ServiceRepository defines methods for service-catalogue data access.
type ServiceRepository interface {
	// GetAll retrieves all services.
	GetAll() ([]models.Service, error)
	// GetByID retrieves a service by its unique ID, nil if none exists.
	GetByID(id string) (*models.Service, error)
	// Create inserts a new service record.
	Create(s *models.Service) error
	// Update modifies an existing service record.
	Update(s *models.Service) error
	// Delete removes a service record by its ID.
	Delete(id string) error
}
