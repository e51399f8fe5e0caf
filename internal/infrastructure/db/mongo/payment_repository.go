package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cargolink/logistics-api/internal/core/domain"
)

const paymentsCollection = "payments"

type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(paymentsCollection)}
}

type mongoPayment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	BookingID     string             `bson:"booking_id"`
	Amount        float64            `bson:"amount"`
	Status        string             `bson:"status"`
	Method        string             `bson:"payment_method,omitempty"`
	TransactionID string             `bson:"transaction_id,omitempty"`
	PaymentDate   *time.Time         `bson:"payment_date,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (mp *mongoPayment) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:            mp.ID.Hex(),
		BookingID:     mp.BookingID,
		Amount:        mp.Amount,
		Status:        domain.PaymentStatus(mp.Status),
		Method:        domain.PaymentMethod(mp.Method),
		TransactionID: mp.TransactionID,
		PaymentDate:   mp.PaymentDate,
		CreatedAt:     mp.CreatedAt,
		UpdatedAt:     mp.UpdatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	doc := mongoPayment{
		BookingID: p.BookingID,
		Amount:    p.Amount,
		Status:    string(p.Status),
		Method:    string(p.Method),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPaymentNotFound
	}

	var mp mongoPayment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("find payment: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return nil, domain.ErrPaymentNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":         string(p.Status),
		"transaction_id": p.TransactionID,
		"payment_date":   p.PaymentDate,
		"updated_at":     p.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPaymentNotFound
	}
	return p, nil
}
