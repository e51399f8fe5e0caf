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

const warehousesCollection = "warehouses"

type WarehouseRepository struct {
	coll *mongo.Collection
}

func NewWarehouseRepository(db *mongo.Database) *WarehouseRepository {
	return &WarehouseRepository{coll: db.Collection(warehousesCollection)}
}

type mongoWarehouse struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	WarehouseID string             `bson:"warehouse_id"`
	Name        string             `bson:"name"`
	Location    string             `bson:"location"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mw *mongoWarehouse) toDomain() *domain.Warehouse {
	return &domain.Warehouse{
		ID:          mw.ID.Hex(),
		WarehouseID: mw.WarehouseID,
		Name:        domain.WarehouseName(mw.Name),
		Location:    mw.Location,
		CreatedAt:   mw.CreatedAt,
		UpdatedAt:   mw.UpdatedAt,
	}
}

func (r *WarehouseRepository) Create(ctx context.Context, w *domain.Warehouse) (*domain.Warehouse, error) {
	doc := mongoWarehouse{
		WarehouseID: w.WarehouseID,
		Name:        string(w.Name),
		Location:    w.Location,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert warehouse: %w", err)
	}

	created := *w
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *WarehouseRepository) FindByWarehouseID(ctx context.Context, warehouseID string) (*domain.Warehouse, error) {
	var mw mongoWarehouse
	if err := r.coll.FindOne(ctx, bson.M{"warehouse_id": warehouseID}).Decode(&mw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWarehouseNotFound
		}
		return nil, fmt.Errorf("find warehouse: %w", err)
	}
	return mw.toDomain(), nil
}

func (r *WarehouseRepository) List(ctx context.Context) ([]*domain.Warehouse, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer cur.Close(ctx)

	var warehouses []*domain.Warehouse
	for cur.Next(ctx) {
		var mw mongoWarehouse
		if err := cur.Decode(&mw); err != nil {
			return nil, fmt.Errorf("decode warehouse: %w", err)
		}
		warehouses = append(warehouses, mw.toDomain())
	}
	return warehouses, cur.Err()
}
