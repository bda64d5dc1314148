package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/domain"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/infrastructure/database/mongodb"
	pkgdto "github.com/alimikegami/point-of-sales/gaming-store-service/pkg/dto"
	"github.com/alimikegami/point-of-sales/gaming-store-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func toDoc(t *testing.T, v interface{}) bson.D {
	raw, err := bson.Marshal(v)
	require.NoError(t, err)

	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))

	return doc
}

func testProduct(id string, name string, category string, createdAt time.Time) domain.Product {
	return domain.Product{
		ID:        id,
		Name:      name,
		Category:  category,
		Price:     45,
		Condition: domain.DefaultCondition,
		Brand:     domain.Optional("Microsoft"),
		Stock:     1,
		CreatedAt: createdAt,
	}
}

func TestMongoDBProductRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mt.Run("get products", func(mt *mtest.T) {
		repo := CreateNewMongoDBProductRepository(mt.DB)
		ns := mt.DB.Name() + "." + mongodb.ProductCollection
		first := testProduct("p2", "Xbox One X", "consoles", createdAt.Add(time.Hour))
		second := testProduct("p1", "Manette Xbox", "manettes", createdAt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toDoc(t, first), toDoc(t, second)))

		data, err := repo.GetProducts(context.Background(), pkgdto.ProductFilter{Search: "xbox"})
		require.NoError(t, err)
		require.Len(t, data, 2)
		assert.Equal(t, first, data[0])
		assert.Equal(t, second, data[1])
	})

	mt.Run("get products empty", func(mt *mtest.T) {
		repo := CreateNewMongoDBProductRepository(mt.DB)
		ns := mt.DB.Name() + "." + mongodb.ProductCollection

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		data, err := repo.GetProducts(context.Background(), pkgdto.ProductFilter{Category: "jeux"})
		require.NoError(t, err)
		assert.NotNil(t, data)
		assert.Empty(t, data)
	})

	mt.Run("get products store failure", func(mt *mtest.T) {
		repo := CreateNewMongoDBProductRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 1, Message: "connection lost"}))

		_, err := repo.GetProducts(context.Background(), pkgdto.ProductFilter{})
		assert.ErrorIs(t, err, errs.ErrStoreFailure)
		assert.Contains(t, err.Error(), "connection lost")
	})

	mt.Run("get product by id", func(mt *mtest.T) {
		repo := CreateNewMongoDBProductRepository(mt.DB)
		ns := mt.DB.Name() + "." + mongodb.ProductCollection
		product := testProduct("p1", "PlayStation 5", "consoles", createdAt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toDoc(t, product)))

		got, err := repo.GetProductByID(context.Background(), "p1")
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	mt.Run("get product by id not found", func(mt *mtest.T) {
		repo := CreateNewMongoDBProductRepository(mt.DB)
		ns := mt.DB.Name() + "." + mongodb.ProductCollection

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetProductByID(context.Background(), "missing")
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})

	mt.Run("get products by ids without ids", func(mt *mtest.T) {
		repo := CreateNewMongoDBProductRepository(mt.DB)

		data, err := repo.GetProductsByIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	mt.Run("get categories sorted", func(mt *mtest.T) {
		repo := CreateNewMongoDBProductRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "values", Value: bson.A{"souris", "consoles", "jeux"}}))

		categories, err := repo.GetCategories(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"consoles", "jeux", "souris"}, categories)
	})

	mt.Run("count products", func(mt *mtest.T) {
		repo := CreateNewMongoDBProductRepository(mt.DB)
		ns := mt.DB.Name() + "." + mongodb.ProductCollection

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(13)}}))

		count, err := repo.CountProducts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(13), count)
	})

	mt.Run("add products", func(mt *mtest.T) {
		repo := CreateNewMongoDBProductRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.AddProducts(context.Background(), []domain.Product{testProduct("p1", "PS5", "consoles", createdAt)})
		assert.NoError(t, err)
	})
}

func TestMongoDBCartRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	addedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mt.Run("increment cart item", func(mt *mtest.T) {
		repo := CreateNewMongoDBCartRepository(mt.DB)
		stored := domain.CartItem{ID: "c1", ProductID: "p1", Quantity: 3, AddedAt: addedAt}

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: toDoc(t, stored)}))

		got, err := repo.IncrementCartItem(context.Background(), domain.CartItem{ID: "c2", ProductID: "p1", Quantity: 1, AddedAt: addedAt})
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	mt.Run("increment cart item retries duplicate key", func(mt *mtest.T) {
		repo := CreateNewMongoDBCartRepository(mt.DB)
		stored := domain.CartItem{ID: "c1", ProductID: "p1", Quantity: 2, AddedAt: addedAt}

		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 11000, Message: "E11000 duplicate key error"}),
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: toDoc(t, stored)}),
		)

		got, err := repo.IncrementCartItem(context.Background(), domain.CartItem{ID: "c2", ProductID: "p1", Quantity: 1, AddedAt: addedAt})
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	mt.Run("increment cart item store failure", func(mt *mtest.T) {
		repo := CreateNewMongoDBCartRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad value"}))

		_, err := repo.IncrementCartItem(context.Background(), domain.CartItem{ID: "c1", ProductID: "p1", Quantity: 1, AddedAt: addedAt})
		assert.ErrorIs(t, err, errs.ErrStoreFailure)
	})

	mt.Run("get cart items", func(mt *mtest.T) {
		repo := CreateNewMongoDBCartRepository(mt.DB)
		ns := mt.DB.Name() + "." + mongodb.CartCollection
		item := domain.CartItem{ID: "c1", ProductID: "p1", Quantity: 2, AddedAt: addedAt}

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toDoc(t, item)))

		data, err := repo.GetCartItems(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []domain.CartItem{item}, data)
	})

	mt.Run("set quantity", func(mt *mtest.T) {
		repo := CreateNewMongoDBCartRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		assert.NoError(t, repo.SetCartItemQuantity(context.Background(), "c1", 4))
	})

	mt.Run("set quantity not found", func(mt *mtest.T) {
		repo := CreateNewMongoDBCartRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.SetCartItemQuantity(context.Background(), "missing", 4)
		assert.ErrorIs(t, err, errs.ErrCartItemNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := CreateNewMongoDBCartRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(t, repo.DeleteCartItem(context.Background(), "c1"))
	})

	mt.Run("delete not found", func(mt *mtest.T) {
		repo := CreateNewMongoDBCartRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.DeleteCartItem(context.Background(), "missing")
		assert.ErrorIs(t, err, errs.ErrCartItemNotFound)
	})
}
