package api

import (
	"github.com/serafaleo/wingman/internal/domain"
	"github.com/serafaleo/wingman/internal/service"
)

// NewAircraftHandler creates the CRUD handler for the aircraft endpoints.
func NewAircraftHandler(svc *service.ResourceService[*domain.Aircraft]) *ResourceHandler[*domain.Aircraft] {
	return NewResourceHandler("aircraft", svc, func() *domain.Aircraft {
		return &domain.Aircraft{}
	})
}
