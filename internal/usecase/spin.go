package usecase

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/wheeleat/voucher-service/internal/catalog"
	"github.com/wheeleat/voucher-service/internal/domain"
	"github.com/wheeleat/voucher-service/internal/repository"
)

type SpinResult struct {
	Restaurant catalog.Restaurant `json:"restaurant"`
	SpinID     string             `json:"spin_id"`
	Timestamp  time.Time          `json:"timestamp"`
}

// SpinService picks a restaurant uniformly at random from the selected
// categories and records the pick. The log write is fire-and-forget: a
// failed insert never fails the spin.
type SpinService struct {
	store   repository.Store
	catalog *catalog.Catalog
	pick    func(n int) int
	now     func() time.Time
}

func NewSpinService(store repository.Store, cat *catalog.Catalog) *SpinService {
	return &SpinService{
		store:   store,
		catalog: cat,
		pick:    rand.Intn,
		now:     time.Now,
	}
}

func (s *SpinService) Spin(ctx context.Context, mallID string, categories []string) (*SpinResult, error) {
	if mallID == "" || len(categories) == 0 {
		return nil, domain.ErrInvalidArgument
	}

	restaurants := s.catalog.RestaurantsByCategories(mallID, categories)
	if len(restaurants) == 0 {
		return nil, domain.ErrNoRestaurants
	}

	chosen := restaurants[s.pick(len(restaurants))]
	now := s.now()
	spinID := uuid.New().String()

	selected, _ := json.Marshal(categories)
	if err := s.store.InsertSpinLog(ctx, repository.InsertSpinLogParams{
		ID:                 spinID,
		RestaurantName:     chosen.Name,
		RestaurantUnit:     chosen.Unit,
		RestaurantFloor:    chosen.Floor,
		Category:           chosen.Category,
		MallID:             mallID,
		SelectedCategories: string(selected),
		Now:                now,
	}); err != nil {
		log.Printf("Failed to record spin log: %v", err)
	}

	return &SpinResult{Restaurant: chosen, SpinID: spinID, Timestamp: now}, nil
}
