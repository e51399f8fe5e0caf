package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cargolink/logistics-api/internal/core/domain"
)

const containersCollection = "containers"

type ContainerRepository struct {
	coll *mongo.Collection
}

func NewContainerRepository(db *mongo.Database) *ContainerRepository {
	return &ContainerRepository{coll: db.Collection(containersCollection)}
}

type mongoContainer struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ContainerID string             `bson:"container_id"`
	Model       string             `bson:"model"`
	Status      string             `bson:"status"`
	Medium      string             `bson:"medium_of_transport"`
	Location    string             `bson:"location,omitempty"`
	Ports       []string           `bson:"ports"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mc *mongoContainer) toDomain() *domain.Container {
	return &domain.Container{
		ID:          mc.ID.Hex(),
		ContainerID: mc.ContainerID,
		Model:       mc.Model,
		Status:      domain.ContainerStatus(mc.Status),
		Medium:      domain.TransportMedium(mc.Medium),
		Location:    mc.Location,
		Ports:       mc.Ports,
		Description: mc.Description,
		CreatedAt:   mc.CreatedAt,
		UpdatedAt:   mc.UpdatedAt,
	}
}

func (r *ContainerRepository) Create(ctx context.Context, c *domain.Container) (*domain.Container, error) {
	doc := mongoContainer{
		ContainerID: c.ContainerID,
		Model:       c.Model,
		Status:      string(c.Status),
		Medium:      string(c.Medium),
		Location:    c.Location,
		Ports:       c.Ports,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert container: %w", err)
	}

	created := *c
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ContainerRepository) FindByContainerID(ctx context.Context, containerID string) (*domain.Container, error) {
	var mc mongoContainer
	if err := r.coll.FindOne(ctx, bson.M{"container_id": containerID}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContainerNotFound
		}
		return nil, fmt.Errorf("find container: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *ContainerRepository) List(ctx context.Context) ([]*domain.Container, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	defer cur.Close(ctx)

	var containers []*domain.Container
	for cur.Next(ctx) {
		var mc mongoContainer
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode container: %w", err)
		}
		containers = append(containers, mc.toDomain())
	}
	return containers, cur.Err()
}
