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

const bookingsCollection = "bookings"

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingsCollection)}
}

type mongoBooking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	BookingID      string             `bson:"booking_id"`
	Sender         domain.Party       `bson:"sender"`
	Receiver       domain.Party       `bson:"receiver"`
	Type           string             `bson:"type"`
	SupplierStatus string             `bson:"supplier_status"`
	SupplierID     string             `bson:"supplier_id,omitempty"`
	Status         string             `bson:"status"`
	Location       string             `bson:"location"`
	ContainerID    string             `bson:"container_id,omitempty"`
	PaymentID      string             `bson:"payment_id,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (mb *mongoBooking) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:             mb.ID.Hex(),
		BookingID:      mb.BookingID,
		Sender:         mb.Sender,
		Receiver:       mb.Receiver,
		Type:           domain.BookingType(mb.Type),
		SupplierStatus: domain.SupplierStatus(mb.SupplierStatus),
		SupplierID:     mb.SupplierID,
		Status:         domain.BookingStatus(mb.Status),
		Location:       mb.Location,
		ContainerID:    mb.ContainerID,
		PaymentID:      mb.PaymentID,
		CreatedAt:      mb.CreatedAt,
		UpdatedAt:      mb.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	doc := mongoBooking{
		BookingID:      b.BookingID,
		Sender:         b.Sender,
		Receiver:       b.Receiver,
		Type:           string(b.Type),
		SupplierStatus: string(b.SupplierStatus),
		SupplierID:     b.SupplierID,
		Status:         string(b.Status),
		Location:       b.Location,
		ContainerID:    b.ContainerID,
		PaymentID:      b.PaymentID,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	created := *b
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BookingRepository) FindByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var mb mongoBooking
	if err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return mb.toDomain(), nil
}

func (r *BookingRepository) List(ctx context.Context, filter ports.ListBookingsFilter) ([]*domain.Booking, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []*domain.Booking
	for cur.Next(ctx) {
		var mb mongoBooking
		if err := cur.Decode(&mb); err != nil {
			return nil, 0, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, mb.toDomain())
	}
	return bookings, total, cur.Err()
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	var mb mongoBooking
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"booking_id": bookingID},
		bson.M{"$set": bson.M{"status": string(status), "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	return mb.toDomain(), nil
}

// EnsureIndexes creates the lookup index on the minted identifier.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "booking_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
