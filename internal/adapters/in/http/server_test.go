package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpin "orderadmin/internal/adapters/in/http"
	"orderadmin/internal/adapters/out/database"
	"orderadmin/internal/adapters/out/database/catalogrepo"
	"orderadmin/internal/adapters/out/database/dbtest"
	"orderadmin/internal/adapters/out/kafka"
	"orderadmin/internal/core/application/usecases/commands"
	"orderadmin/internal/core/application/usecases/queries"
	"orderadmin/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type orderUoWFactory struct {
	factory *database.GormUnitOfWorkFactory
}

func (f orderUoWFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

type ServerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *echo.Echo
}

func (suite *ServerTestSuite) SetupTest() {
	t := suite.T()
	suite.db = dbtest.NewSQLite(t)
	suite.Require().NoError(catalogrepo.AddUsers(t.Context(), suite.db, catalogrepo.UserDTO{ID: 7, Name: "Alice"}))
	dbtest.SeedExample(t, suite.db, nil)

	uowFactory := orderUoWFactory{factory: database.NewGormUnitOfWorkFactory(suite.db)}
	users := catalogrepo.NewGormUserDirectory(suite.db)
	server := httpin.NewServer(
		commands.NewDeleteOrderPermanentlyCommandHandler(uowFactory, kafka.NoopPublisher{}, commands.DefaultMessages(), zap.NewNop()),
		commands.NewSoftDeleteOrderCommandHandler(uowFactory),
		queries.NewListOrdersQueryHandler(suite.db, users),
		queries.NewGetOrderQueryHandler(suite.db, users),
		zap.NewNop(),
	)

	router, err := httpin.NewRouter(server, zap.NewNop())
	suite.Require().NoError(err)
	suite.router = router
}

func (suite *ServerTestSuite) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func (suite *ServerTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Healthy", rec.Body.String())
	suite.NotEmpty(rec.Header().Get(echo.HeaderXRequestID))
}

func (suite *ServerTestSuite) TestDeleteOrder_Succeeds() {
	rec := suite.do(http.MethodDelete, "/admin/orders/42")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal(
		servers.DeletionOutcome{Status: true, Message: "Delete succeeded !"},
		decode[servers.DeletionOutcome](suite.T(), rec),
	)
	suite.Zero(dbtest.CountRows(suite.T(), suite.db, "orders"))
	suite.Zero(dbtest.CountRows(suite.T(), suite.db, "order_details"))
}

func (suite *ServerTestSuite) TestDeleteOrder_SecondDeleteReportsNotFound() {
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodDelete, "/admin/orders/42").Code)

	rec := suite.do(http.MethodDelete, "/admin/orders/42")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal(
		servers.DeletionOutcome{Status: false, Message: "Delete failed ! object not found: 42"},
		decode[servers.DeletionOutcome](suite.T(), rec),
	)
}

func (suite *ServerTestSuite) TestDeleteOrder_UnknownOrder() {
	rec := suite.do(http.MethodDelete, "/admin/orders/999")

	suite.Equal(http.StatusOK, rec.Code)
	outcome := decode[servers.DeletionOutcome](suite.T(), rec)
	suite.False(outcome.Status)
	suite.Equal("Delete failed ! object not found: 999", outcome.Message)
	suite.Equal(int64(1), dbtest.CountRows(suite.T(), suite.db, "orders"))
}

func (suite *ServerTestSuite) TestDeleteOrder_StorageFailureKeepsOrder() {
	dbtest.FailDeletesOn(suite.T(), suite.db, "order_details", errors.New("disk I/O error"))

	rec := suite.do(http.MethodDelete, "/admin/orders/42")

	suite.Equal(http.StatusOK, rec.Code)
	outcome := decode[servers.DeletionOutcome](suite.T(), rec)
	suite.False(outcome.Status)
	suite.True(strings.HasPrefix(outcome.Message, "Delete failed ! persistence failure: delete order details"))
	suite.Equal(int64(1), dbtest.CountRows(suite.T(), suite.db, "orders"))
	suite.Equal(int64(3), dbtest.CountRows(suite.T(), suite.db, "order_details"))
}

func (suite *ServerTestSuite) TestDeleteOrder_InvalidID() {
	for _, target := range []string{"/admin/orders/abc", "/admin/orders/0", "/admin/orders/-3"} {
		rec := suite.do(http.MethodDelete, target)

		suite.Equal(http.StatusBadRequest, rec.Code, target)
		suite.Equal(http.StatusBadRequest, decode[servers.Error](suite.T(), rec).Code, target)
	}
	suite.Equal(int64(1), dbtest.CountRows(suite.T(), suite.db, "orders"))
}

func (suite *ServerTestSuite) TestListOrders() {
	rec := suite.do(http.MethodGet, "/admin/orders?user=Ali&page=1&per_page=10")

	suite.Equal(http.StatusOK, rec.Code)
	page := decode[queries.ListOrdersQueryResponse](suite.T(), rec)
	suite.Equal(int64(1), page.Total)
	suite.Require().Len(page.Items, 1)
	suite.Equal("Alice", page.Items[0].UserName)
	suite.Equal("199.00", page.Items[0].Total)
	suite.Equal(10, page.PerPage)
}

func (suite *ServerTestSuite) TestListOrders_InvalidParameters() {
	for _, target := range []string{"/admin/orders?per_page=500", "/admin/orders?page=x"} {
		rec := suite.do(http.MethodGet, target)

		suite.Equal(http.StatusBadRequest, rec.Code, target)
	}
}

func (suite *ServerTestSuite) TestGetOrder() {
	rec := suite.do(http.MethodGet, "/admin/orders/42")

	suite.Equal(http.StatusOK, rec.Code)
	response := decode[queries.GetOrderQueryResponse](suite.T(), rec)
	suite.Equal(int64(42), response.ID)
	suite.Len(response.Details, 3)
	suite.False(response.Deleted)
}

func (suite *ServerTestSuite) TestGetOrder_NotFound() {
	rec := suite.do(http.MethodGet, "/admin/orders/999")

	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Equal(
		servers.Error{Code: http.StatusNotFound, Message: "object not found: 999"},
		decode[servers.Error](suite.T(), rec),
	)
}

func (suite *ServerTestSuite) TestSoftDeleteOrder() {
	rec := suite.do(http.MethodPost, "/admin/orders/42/soft-delete")
	suite.Equal(http.StatusNoContent, rec.Code)

	shown := decode[queries.GetOrderQueryResponse](suite.T(), suite.do(http.MethodGet, "/admin/orders/42"))
	suite.True(shown.Deleted)
	suite.NotNil(shown.DeletedAt)

	again := suite.do(http.MethodPost, "/admin/orders/42/soft-delete")
	suite.Equal(http.StatusNotFound, again.Code)

	deleted := decode[servers.DeletionOutcome](suite.T(), suite.do(http.MethodDelete, "/admin/orders/42"))
	suite.True(deleted.Status)
}

func (suite *ServerTestSuite) TestSwaggerDocument() {
	rec := suite.do(http.MethodGet, "/swagger/doc.json")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "Order administration")
	suite.Contains(rec.Body.String(), "/admin/orders/{id}")
}

func (suite *ServerTestSuite) TestUnknownRoute() {
	rec := suite.do(http.MethodGet, "/admin/unknown")

	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Equal(http.StatusNotFound, decode[servers.Error](suite.T(), rec).Code)
}

func (suite *ServerTestSuite) TestUndocumentedMethod() {
	rec := suite.do(http.MethodPut, "/admin/orders/42")

	suite.Equal(http.StatusMethodNotAllowed, rec.Code)
	suite.Equal(int64(1), dbtest.CountRows(suite.T(), suite.db, "orders"))
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestGetSwagger(t *testing.T) {
	doc, err := servers.GetSwagger()

	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/admin/orders/{id}"))
}
