package repository

import (
	"context"
	"errors"
	"regexp"
	"sort"

	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/domain"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/infrastructure/database/mongodb"
	pkgdto "github.com/alimikegami/point-of-sales/gaming-store-service/pkg/dto"
	"github.com/alimikegami/point-of-sales/gaming-store-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var excludeMongoID = bson.D{{Key: "_id", Value: 0}}

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}

func (r *MongoDBProductRepositoryImpl) CountProducts(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection(mongodb.ProductCollection).CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProducts").Msg("")
		return 0, errs.StoreFailure(err)
	}

	return count, nil
}

func (r *MongoDBProductRepositoryImpl) AddProducts(ctx context.Context, products []domain.Product) (err error) {
	if len(products) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(products))
	for _, product := range products {
		docs = append(docs, product)
	}

	_, err = r.db.Collection(mongodb.ProductCollection).InsertMany(ctx, docs)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProducts").Msg("")
		return errs.StoreFailure(err)
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, filter pkgdto.ProductFilter) (data []domain.Product, err error) {
	query := bson.D{}

	if category := filter.CategoryFilter(); category != "" {
		query = append(query, bson.E{Key: "category", Value: category})
	}

	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query = append(query, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: pattern}},
			bson.D{{Key: "description", Value: pattern}},
			bson.D{{Key: "brand", Value: pattern}},
		}})
	}

	opts := options.Find().
		SetProjection(excludeMongoID).
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "id", Value: 1}})

	return r.findProducts(ctx, "GetProducts", query, opts)
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	filter := bson.D{{Key: "id", Value: id}}
	opts := options.FindOne().SetProjection(excludeMongoID)

	err = r.db.Collection(mongodb.ProductCollection).FindOne(ctx, filter, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return product, errs.ErrProductNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, errs.StoreFailure(err)
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductsByIDs(ctx context.Context, ids []string) (data []domain.Product, err error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	filter := bson.D{{Key: "id", Value: bson.D{{Key: "$in", Value: ids}}}}
	opts := options.Find().SetProjection(excludeMongoID)

	return r.findProducts(ctx, "GetProductsByIDs", filter, opts)
}

func (r *MongoDBProductRepositoryImpl) GetCategories(ctx context.Context) (categories []string, err error) {
	values, err := r.db.Collection(mongodb.ProductCollection).Distinct(ctx, "category", bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return nil, errs.StoreFailure(err)
	}

	categories = make([]string, 0, len(values))
	for _, value := range values {
		if category, ok := value.(string); ok {
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)

	return categories, nil
}

func (r *MongoDBProductRepositoryImpl) findProducts(ctx context.Context, component string, filter interface{}, opts *options.FindOptions) ([]domain.Product, error) {
	cursor, err := r.db.Collection(mongodb.ProductCollection).Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return nil, errs.StoreFailure(err)
	}

	data := []domain.Product{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return nil, errs.StoreFailure(err)
	}

	if data == nil {
		data = []domain.Product{}
	}

	return data, nil
}

type MongoDBCartRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBCartRepository(db *mongo.Database) CartRepository {
	return &MongoDBCartRepositoryImpl{db: db}
}

func (r *MongoDBCartRepositoryImpl) IncrementCartItem(ctx context.Context, item domain.CartItem) (result domain.CartItem, err error) {
	filter := bson.D{{Key: "product_id", Value: item.ProductID}}
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "quantity", Value: item.Quantity}}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "id", Value: item.ID},
			{Key: "added_at", Value: item.AddedAt},
		}},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetProjection(excludeMongoID)

	coll := r.db.Collection(mongodb.CartCollection)

	err = coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result)
	if mongo.IsDuplicateKeyError(err) {
		// A concurrent upsert inserted the row first; this attempt now matches it.
		err = coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result)
	}

	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "IncrementCartItem").Msg("")
		return result, errs.StoreFailure(err)
	}

	return result, nil
}

func (r *MongoDBCartRepositoryImpl) GetCartItems(ctx context.Context) (data []domain.CartItem, err error) {
	opts := options.Find().
		SetProjection(excludeMongoID).
		SetSort(bson.D{{Key: "added_at", Value: 1}, {Key: "id", Value: 1}})

	cursor, err := r.db.Collection(mongodb.CartCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartItems").Msg("")
		return nil, errs.StoreFailure(err)
	}

	data = []domain.CartItem{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartItems").Msg("")
		return nil, errs.StoreFailure(err)
	}

	if data == nil {
		data = []domain.CartItem{}
	}

	return data, nil
}

func (r *MongoDBCartRepositoryImpl) SetCartItemQuantity(ctx context.Context, id string, quantity int) (err error) {
	filter := bson.D{{Key: "id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "quantity", Value: quantity}}}}

	result, err := r.db.Collection(mongodb.CartCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SetCartItemQuantity").Msg("Failed to update cart item")
		return errs.StoreFailure(err)
	}

	if result.MatchedCount == 0 {
		return errs.ErrCartItemNotFound
	}

	return nil
}

func (r *MongoDBCartRepositoryImpl) DeleteCartItem(ctx context.Context, id string) (err error) {
	filter := bson.D{{Key: "id", Value: id}}

	result, err := r.db.Collection(mongodb.CartCollection).DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCartItem").Msg("Failed to delete cart item")
		return errs.StoreFailure(err)
	}

	if result.DeletedCount == 0 {
		return errs.ErrCartItemNotFound
	}

	return nil
}
