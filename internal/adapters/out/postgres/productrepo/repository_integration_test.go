package productrepo_test

import (
	"context"
	"testing"

	"deliveryhub/internal/adapters/out/postgres/postgrestest"
	"deliveryhub/internal/adapters/out/postgres/productrepo"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/product"
	"deliveryhub/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *postgrestest.Database
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := postgrestest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset(context.Background()))

	suite.repository = productrepo.NewGormProductRepository(suite.database.DB)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsPriceAndDefaults() {
	ctx := context.Background()

	id, err := suite.repository.Add(ctx, suite.newProduct("12.5", 7))
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("Café", loaded.Name())
	suite.Equal("12.50", loaded.Price().String())
	suite.Equal(7, loaded.Stock())
	suite.Equal(product.DefaultCategory, loaded.Category())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_StoresZeroStockAndEmptyDescription() {
	ctx := context.Background()
	id, err := suite.repository.Add(ctx, suite.newProduct("2", 3))
	suite.Require().NoError(err)

	stored, err := suite.repository.GetForUpdate(ctx, id)
	suite.Require().NoError(err)
	suite.Require().NoError(stored.Update("Café", "", stored.Price(), 0, "Bebidas"))
	suite.Require().NoError(suite.repository.Update(ctx, stored))

	loaded, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(0, loaded.Stock())
	suite.Empty(loaded.Description())
	suite.Equal("Bebidas", loaded.Category())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDelete_RemovesReferencingLineItems() {
	ctx := context.Background()
	id, err := suite.repository.Add(ctx, suite.newProduct("2", 3))
	suite.Require().NoError(err)

	db := suite.database.DB
	suite.Require().NoError(db.Exec(
		"INSERT INTO clientes (nombre_completo, direccion, telefono) VALUES ('Ana', 'Calle 1', '555')").Error)
	suite.Require().NoError(db.Exec("INSERT INTO pedidos (id_cliente, total_pedido) VALUES (1, 4)").Error)
	suite.Require().NoError(db.Exec(
		"INSERT INTO pedido_detalles (id_pedido, id_producto, cantidad, precio_unitario) VALUES (1, ?, 2, 2)",
		id.Int64()).Error)

	suite.Require().NoError(suite.repository.Delete(ctx, id))

	var remaining int64
	suite.Require().NoError(db.Raw("SELECT COUNT(*) FROM pedido_detalles").Scan(&remaining).Error)
	suite.Zero(remaining)
	_, err = suite.repository.Get(ctx, id)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDelete_MissingRow_NotFound() {
	err := suite.repository.Delete(context.Background(), kernel.ID(99))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetForUpdate_MissingRow_NotFound() {
	_, err := suite.repository.GetForUpdate(context.Background(), kernel.ID(99))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Contains(err.Error(), "id_producto")
}

func (suite *ProductRepositoryIntegrationTestSuite) newProduct(price string, stock int) *product.Product {
	money, err := kernel.NewMoneyFromString(price)
	suite.Require().NoError(err)
	p, err := product.NewProduct("Café", "Tostado", money, stock, "")
	suite.Require().NoError(err)
	return p
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
