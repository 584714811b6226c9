package api

import (
	"github.com/serafaleo/wingman/internal/domain"
	"github.com/serafaleo/wingman/internal/service"
)

// NewFlightHandler creates the CRUD handler for the flight endpoints.
func NewFlightHandler(svc *service.ResourceService[*domain.Flight]) *ResourceHandler[*domain.Flight] {
	return NewResourceHandler("flight", svc, func() *domain.Flight {
		return &domain.Flight{}
	})
}
