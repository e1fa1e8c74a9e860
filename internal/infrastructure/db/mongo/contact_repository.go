package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brightline/tutoring-platform/internal/core/domain"
	"github.com/brightline/tutoring-platform/internal/core/ports"
)

const contactCollection = "contact_submissions"

type MongoContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{coll: db.Collection(contactCollection)}
}

type mongoSubmission struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Email         string             `bson:"email"`
	Phone         string             `bson:"phone"`
	Message       string             `bson:"message"`
	SubmittedAt   time.Time          `bson:"submitted_at"`
	DeliveryState string             `bson:"delivery_state"`
	DeliveryError string             `bson:"delivery_error,omitempty"`
	DeliveredAt   *time.Time         `bson:"delivered_at,omitempty"`
}

func (r *MongoContactRepository) Create(ctx context.Context, cs *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	doc := mongoSubmission{
		Name:          cs.Name,
		Email:         cs.Email,
		Phone:         cs.Phone,
		Message:       cs.Message,
		SubmittedAt:   cs.SubmittedAt,
		DeliveryState: string(cs.DeliveryState),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert contact submission: %w", err)
	}

	out := *cs
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = oid.Hex()
	}
	return &out, nil
}

func (r *MongoContactRepository) FindByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSubmissionNotFound
	}

	var ms mongoSubmission
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("find contact submission: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *MongoContactRepository) List(ctx context.Context, filter ports.ListSubmissionsFilter) ([]*domain.ContactSubmission, int64, error) {
	query := bson.M{}
	if filter.DeliveryState != "" {
		query["delivery_state"] = string(filter.DeliveryState)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count contact submissions: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
		if filter.Page > 1 {
			opts.SetSkip(int64((filter.Page - 1) * filter.Limit))
		}
	}

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list contact submissions: %w", err)
	}
	defer cur.Close(ctx)

	var subs []*domain.ContactSubmission
	for cur.Next(ctx) {
		var ms mongoSubmission
		if err := cur.Decode(&ms); err != nil {
			return nil, 0, fmt.Errorf("decode contact submission: %w", err)
		}
		subs = append(subs, ms.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list contact submissions: %w", err)
	}

	return subs, total, nil
}

// UpdateDelivery writes the terminal delivery fields. The $set/$unset pair
// keeps delivery_error and delivered_at mutually exclusive in storage.
func (r *MongoContactRepository) UpdateDelivery(ctx context.Context, id string, upd ports.DeliveryUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSubmissionNotFound
	}

	set := bson.M{"delivery_state": string(upd.State)}
	unset := bson.M{}
	if upd.Error != "" {
		set["delivery_error"] = upd.Error
		unset["delivered_at"] = ""
	}
	if upd.DeliveredAt != nil {
		set["delivered_at"] = *upd.DeliveredAt
		unset["delivery_error"] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update delivery state: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

func (ms *mongoSubmission) toDomain() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		ID:            ms.ID.Hex(),
		Name:          ms.Name,
		Email:         ms.Email,
		Phone:         ms.Phone,
		Message:       ms.Message,
		SubmittedAt:   ms.SubmittedAt.UTC(),
		DeliveryState: domain.DeliveryState(ms.DeliveryState),
		DeliveryError: ms.DeliveryError,
		DeliveredAt:   ms.DeliveredAt,
	}
}
