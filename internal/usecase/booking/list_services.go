package booking

import (
	"context"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

// Execute returns the active menu ordered by category, then name.
func (uc *ListServices) Execute(ctx context.Context) ([]models.Service, error) {
	return uc.repo.ListActiveServices(ctx)
}
