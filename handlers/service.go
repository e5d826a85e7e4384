package handlers

import (
	"net/http"

	"slotdesk/database/repository/service"
	"slotdesk/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServiceHandler exposes the service-catalogue admin endpoints. Services are
// immutable once bookings reference them, except through these.
type ServiceHandler struct {
	Repo   serviceRepo.ServiceRepository
	Logger *zap.Logger
}

// NewServiceHandler constructs a ServiceHandler.
func NewServiceHandler(repo serviceRepo.ServiceRepository, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{Repo: repo, Logger: logger}
}

type serviceInput struct {
	Name            string  `json:"name" binding:"required"`
	DurationMinutes int     `json:"durationMinutes" binding:"required,gt=0"`
	Price           float64 `json:"price"`
}

// ListServices handles GET /api/services.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.Repo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// CreateService handles POST /api/services (admin).
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var in serviceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validationError", "message": err.Error()})
		return
	}
	svc := &models.Service{
		ID:              uuid.New().String(),
		Name:            in.Name,
		DurationMinutes: in.DurationMinutes,
		Price:           in.Price,
	}
	if err := h.Repo.Create(svc); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

// UpdateService handles PUT /api/services/:id (admin).
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var in serviceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validationError", "message": err.Error()})
		return
	}
	svc, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "serviceNotFound", "message": "service does not exist"})
		return
	}
	svc.Name = in.Name
	svc.DurationMinutes = in.DurationMinutes
	svc.Price = in.Price
	if err := h.Repo.Update(svc); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// DeleteService handles DELETE /api/services/:id (admin).
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
