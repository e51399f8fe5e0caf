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
	"github.com/cargolink/logistics-api/internal/core/ports"
)

const clientsCollection = "clients"

type ClientRepository struct {
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{coll: db.Collection(clientsCollection)}
}

type mongoClient struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	UserID    string              `bson:"user_id"`
	Name      string              `bson:"name"`
	Email     string              `bson:"email"`
	Phone     string              `bson:"phone"`
	Address   string              `bson:"address,omitempty"`
	Role      string              `bson:"role"`
	OTP       string              `bson:"otp,omitempty"`
	OTPExpiry *time.Time          `bson:"otp_expiry,omitempty"`
	Forms     []domain.ClientForm `bson:"forms"`
	CreatedAt time.Time           `bson:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at"`
}

func (mc *mongoClient) toDomain() *domain.Client {
	forms := mc.Forms
	if forms == nil {
		forms = []domain.ClientForm{}
	}
	return &domain.Client{
		ID:        mc.ID.Hex(),
		UserID:    mc.UserID,
		Name:      mc.Name,
		Email:     mc.Email,
		Phone:     mc.Phone,
		Address:   mc.Address,
		Role:      domain.ClientRole(mc.Role),
		OTP:       mc.OTP,
		OTPExpiry: mc.OTPExpiry,
		Forms:     forms,
		CreatedAt: mc.CreatedAt,
		UpdatedAt: mc.UpdatedAt,
	}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	doc := mongoClient{
		UserID:    client.UserID,
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		Address:   client.Address,
		Role:      string(client.Role),
		Forms:     client.Forms,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// The unique email/phone indexes span both roles; which message
			// fits is the service's call.
			return nil, domain.ErrClientExists
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}

	created := *client
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *ClientRepository) FindByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

func (r *ClientRepository) FindByEmailOrPhone(ctx context.Context, email, phone string, role domain.ClientRole) (*domain.Client, error) {
	filter := bson.M{
		"$or":  bson.A{bson.M{"email": email}, bson.M{"phone": phone}},
		"role": string(role),
	}
	return r.findOne(ctx, filter)
}

func (r *ClientRepository) findOne(ctx context.Context, filter bson.M) (*domain.Client, error) {
	var mc mongoClient
	if err := r.coll.FindOne(ctx, filter).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *ClientRepository) List(ctx context.Context, filter ports.ListClientsFilter) ([]*domain.Client, int64, error) {
	query := bson.M{}
	if filter.Role != "" {
		query["role"] = string(filter.Role)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	var clients []*domain.Client
	for cur.Next(ctx) {
		var mc mongoClient
		if err := cur.Decode(&mc); err != nil {
			return nil, 0, fmt.Errorf("decode client: %w", err)
		}
		clients = append(clients, mc.toDomain())
	}
	return clients, total, cur.Err()
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(client.ID)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":       client.Name,
		"email":      client.Email,
		"phone":      client.Phone,
		"address":    client.Address,
		"updated_at": client.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrClientNotFound
	}
	return client, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrClientNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) AddForm(ctx context.Context, id string, form domain.ClientForm) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	var mc mongoClient
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$push": bson.M{"forms": form},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("add client form: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *ClientRepository) SetOTP(ctx context.Context, phone, code string, expiry time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"phone": phone},
		bson.M{"$set": bson.M{"otp": code, "otp_expiry": expiry, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("set otp: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// ConsumeOTP is a single compare-and-swap: the filter matches only a
// customer whose stored code equals the supplied one and is still unexpired,
// and the update clears the challenge in the same operation. At most one
// concurrent verifier can win.
func (r *ClientRepository) ConsumeOTP(ctx context.Context, phone, code string, now time.Time) (*domain.Client, error) {
	filter := bson.M{
		"phone":      phone,
		"role":       string(domain.ClientRoleCustomer),
		"otp":        code,
		"otp_expiry": bson.M{"$gt": now},
	}
	update := bson.M{
		"$unset": bson.M{"otp": "", "otp_expiry": ""},
		"$set":   bson.M{"updated_at": now.UTC()},
	}

	var mc mongoClient
	err := r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvalidOTP
		}
		return nil, fmt.Errorf("consume otp: %w", err)
	}
	return mc.toDomain(), nil
}

// EnsureIndexes creates the unique constraints duplicate detection relies on.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
