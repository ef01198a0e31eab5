package catalogRepo

import (
	"context"

	"detailhq/database"
	"detailhq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository provides the engine's read-side view of the business
// catalog: service definitions, condition tier configuration, and add-ons.
type CatalogRepository interface {
	GetService(ctx context.Context, id string) (*models.ServiceDefinition, error)
	ListActiveServices(ctx context.Context, businessID string) ([]models.ServiceDefinition, error)
	GetConditionConfig(ctx context.Context, businessID string) (*models.ConditionConfig, error)
	GetAddonsByIDs(ctx context.Context, ids []string) ([]models.AddonDefinition, error)
	ListActiveAddons(ctx context.Context, businessID string) ([]models.AddonDefinition, error)
	UpsertService(ctx context.Context, svc models.ServiceDefinition) (string, error)
	UpsertConditionConfig(ctx context.Context, cfg models.ConditionConfig) error
}

type mongoCatalogRepo struct {
	services   *mongo.Collection
	conditions *mongo.Collection
	addons     *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("detailhq")
	return &mongoCatalogRepo{
		services:   db.Collection("service_definitions"),
		conditions: db.Collection("condition_configs"),
		addons:     db.Collection("addon_definitions"),
	}
}
