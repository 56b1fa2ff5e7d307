package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/velkart/commerce-api/internal/core/domain"
)

const (
	ordersCollection   = "orders"
	productsCollection = "products"
)

// OrderRepository implements ports.OrderRepository using MongoDB. Reads use an
// aggregation pipeline that expands the product references (excluding the
// photo binary) and reduces the buyer to id and name.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

type mongoOrderProduct struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
}

type mongoOrderBuyer struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"name"`
}

type mongoOrder struct {
	ID        primitive.ObjectID  `bson:"_id"`
	Buyer     mongoOrderBuyer     `bson:"buyer"`
	Products  []mongoOrderProduct `bson:"products"`
	Status    string              `bson:"status"`
	CreatedAt time.Time           `bson:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at"`
}

func (mo *mongoOrder) toDomain() domain.Order {
	products := make([]domain.OrderProduct, 0, len(mo.Products))
	for _, p := range mo.Products {
		products = append(products, domain.OrderProduct{
			ID:          p.ID.Hex(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
		})
	}
	return domain.Order{
		ID:        mo.ID.Hex(),
		Buyer:     domain.OrderBuyer{ID: mo.Buyer.ID.Hex(), Name: mo.Buyer.Name},
		Products:  products,
		Status:    domain.OrderStatus(mo.Status),
		CreatedAt: mo.CreatedAt,
		UpdatedAt: mo.UpdatedAt,
	}
}

// expandStages joins products and the buyer onto the order document and
// strips the product photo before it crosses the wire.
func expandStages() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         productsCollection,
			"localField":   "products",
			"foreignField": "_id",
			"as":           "products",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "buyer",
			"foreignField": "_id",
			"as":           "buyer",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$buyer",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"products.photo":      0,
			"buyer.password_hash": 0,
			"buyer.recovery_key":  0,
			"buyer.email":         0,
			"buyer.phone":         0,
			"buyer.address":       0,
			"buyer.role":          0,
		}}},
	}
}

// FindByBuyer returns the buyer's orders in natural storage order.
func (r *OrderRepository) FindByBuyer(ctx context.Context, buyerID string) ([]domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(buyerID)
	if err != nil {
		return []domain.Order{}, nil
	}

	pipeline := mongo.Pipeline{bson.D{{Key: "$match", Value: bson.M{"buyer": oid}}}}
	pipeline = append(pipeline, expandStages()...)
	return r.aggregate(ctx, pipeline)
}

// FindAll returns every order, newest creation timestamp first.
func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	pipeline := append(expandStages(),
		bson.D{{Key: "$sort", Value: bson.M{"created_at": -1}}})
	return r.aggregate(ctx, pipeline)
}

// UpdateStatus atomically sets the new status, then re-reads the order with
// its expansions applied.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	updCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}}

	res, err := r.coll.UpdateOne(updCtx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrOrderNotFound
	}

	pipeline := mongo.Pipeline{bson.D{{Key: "$match", Value: bson.M{"_id": oid}}}}
	pipeline = append(pipeline, expandStages()...)
	orders, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return &orders[0], nil
}

func (r *OrderRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []domain.Order{}
	for cursor.Next(ctx) {
		var mo mongoOrder
		if err := cursor.Decode(&mo); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, mo.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

// EnsureIndexes creates the lookup indexes used by the read paths.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "buyer", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
