package catalogRepo

import (
	"context"
	"errors"
	"time"

	"detailhq/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetService returns a service definition by its ID.
func (r *mongoCatalogRepo) GetService(ctx context.Context, id string) (*models.ServiceDefinition, error) {
	var svc models.ServiceDefinition
	err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&svc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// ListActiveServices fetches all active service definitions for a business.
func (r *mongoCatalogRepo) ListActiveServices(ctx context.Context, businessID string) ([]models.ServiceDefinition, error) {
	cursor, err := r.services.Find(ctx, bson.M{"businessId": businessID, "active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.ServiceDefinition
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetConditionConfig returns the per-business condition configuration, or
// nil when the business never configured condition pricing.
func (r *mongoCatalogRepo) GetConditionConfig(ctx context.Context, businessID string) (*models.ConditionConfig, error) {
	var cfg models.ConditionConfig
	err := r.conditions.FindOne(ctx, bson.M{"businessId": businessID}).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetAddonsByIDs fetches addon definitions for the given ids. Unknown ids
// are simply absent from the result.
func (r *mongoCatalogRepo) GetAddonsByIDs(ctx context.Context, ids []string) ([]models.AddonDefinition, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.addons.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var addons []models.AddonDefinition
	if err := cursor.All(ctx, &addons); err != nil {
		return nil, err
	}
	return addons, nil
}

// ListActiveAddons fetches all active addon definitions for a business.
func (r *mongoCatalogRepo) ListActiveAddons(ctx context.Context, businessID string) ([]models.AddonDefinition, error) {
	cursor, err := r.addons.Find(ctx, bson.M{"businessId": businessID, "active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var addons []models.AddonDefinition
	if err := cursor.All(ctx, &addons); err != nil {
		return nil, err
	}
	return addons, nil
}

// UpsertService inserts or replaces a service definition and returns its ID.
func (r *mongoCatalogRepo) UpsertService(ctx context.Context, svc models.ServiceDefinition) (string, error) {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
		svc.CreatedAt = time.Now()
	}
	svc.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.services.ReplaceOne(ctx, bson.M{"id": svc.ID}, svc, opts)
	if err != nil {
		return "", err
	}
	return svc.ID, nil
}

// UpsertConditionConfig inserts or replaces a business's condition config.
func (r *mongoCatalogRepo) UpsertConditionConfig(ctx context.Context, cfg models.ConditionConfig) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.conditions.ReplaceOne(ctx, bson.M{"businessId": cfg.BusinessID}, cfg, opts)
	return err
}
