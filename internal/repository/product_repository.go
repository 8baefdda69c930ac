package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vstore-backend/internal/models"
)

// ProductQuery is a conjunctive filter. Empty fields do not constrain.
type ProductQuery struct {
	Category string
	Search   string
	Limit    int64
}

// Filter builds the Mongo filter: exact category match and a case-insensitive
// literal substring match on name or description.
func (q ProductQuery) Filter() bson.M {
	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Search != "" {
		pattern := regexp.QuoteMeta(q.Search)
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": pattern, "$options": "i"}},
			{"description": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	return filter
}

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection(ProductsCollection)}
}

// Find returns matches in natural (insertion) order.
func (r *ProductRepository) Find(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	opts := options.Find()
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := r.collection.Find(ctx, q.Filter(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	for i := range products {
		products[i].ApplyDefaults()
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var product models.Product
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		return nil, translate(err)
	}
	product.ApplyDefaults()
	return &product, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *ProductRepository) InsertMany(ctx context.Context, products []models.Product) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		p.CreatedAt = now
		p.UpdatedAt = now
		docs = append(docs, p)
	}

	res, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
