package inventory

import (
	"context"

	"bestdeal-service/internal/domain/vehicle"
	xerrors "bestdeal-service/internal/pkg/errors"
	"bestdeal-service/internal/repository"

	"go.uber.org/zap"
)

// listCap bounds vehicle listings; there is no pagination beyond it.
const listCap = 500

type InventoryService struct {
	store  repository.Store
	logger *zap.Logger
}

func NewInventoryService(store repository.Store, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		store:  store,
		logger: logger,
	}
}

// ListVehicles returns up to 500 listings in store-native order.
func (s *InventoryService) ListVehicles(ctx context.Context) ([]repository.Document, error) {
	return s.store.List(ctx, repository.VehicleCollection, map[string]any{}, listCap)
}

func (s *InventoryService) GetVehicle(ctx context.Context, id string) (repository.Document, error) {
	return s.store.GetOne(ctx, repository.VehicleCollection, map[string]any{"id": id})
}

func (s *InventoryService) CreateVehicle(ctx context.Context, v *vehicle.Vehicle) (repository.Document, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	fields, err := vehicleFields(v)
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Create(ctx, repository.VehicleCollection, fields)
	if err != nil {
		s.logger.Error("failed to create vehicle", zap.Error(err))
		return nil, err
	}

	s.logger.Info("vehicle created",
		zap.Any("id", doc["id"]),
		zap.String("make", v.Make),
		zap.String("model", v.Model),
		zap.Int("year", v.Year),
	)
	return doc, nil
}

// UpdateVehicle is a full-document replacement: the caller resupplies every
// field and the whole set is merged over the stored record. A missing id
// yields ErrNotFound with no write.
func (s *InventoryService) UpdateVehicle(ctx context.Context, id string, v *vehicle.Vehicle) (repository.Document, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	fields, err := vehicleFields(v)
	if err != nil {
		return nil, err
	}
	return s.store.Update(ctx, repository.VehicleCollection, map[string]any{"id": id}, fields)
}

// DeleteVehicle reports whether a listing was actually removed; deleting an
// unknown id is not an error.
func (s *InventoryService) DeleteVehicle(ctx context.Context, id string) (bool, error) {
	return s.store.Delete(ctx, repository.VehicleCollection, map[string]any{"id": id})
}

func vehicleFields(v *vehicle.Vehicle) (map[string]any, error) {
	// Photos persist as an empty array rather than null when absent.
	if v.Photos == nil {
		v.Photos = []vehicle.Photo{}
	}
	fields, err := repository.Fields(v)
	if err != nil {
		return nil, xerrors.Wrap(err, "failed to encode vehicle")
	}
	return fields, nil
}
