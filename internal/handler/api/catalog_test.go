//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"gin-storefront/internal/handler/api"
	"gin-storefront/internal/usecase/queries"
	"gin-storefront/tests/common/builder"
	"gin-storefront/tests/common/httptest"
	queriesmock "gin-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockProducts   *queriesmock.MockProductQueries
	mockCategories *queriesmock.MockCategoryQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockProducts = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.mockCategories = queriesmock.NewMockCategoryQueries(s.mockCtrl)
	products := api.NewProductHandler(s.mockProducts)
	categories := api.NewCategoryHandler(s.mockCategories)

	s.router.GET("/api/products", products.List)
	s.router.GET("/api/products/:slug", products.Get)
	s.router.GET("/api/categories", categories.List)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListProducts() {
	newer := builder.NewProductBuilder().With(func(p *builder.ProductBuilder) {
		p.Slug = "newer"
		p.CreatedAt = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	}).BuildView()
	older := builder.NewProductBuilder().With(func(p *builder.ProductBuilder) { p.Slug = "older" }).BuildView()

	s.Run("success: passes the category filter through", func() {
		s.mockProducts.EXPECT().List(gomock.Any(), "electronics").
			Return([]queries.ProductView{newer, older}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products?category=electronics", nil, "")

		var got []queries.ProductView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Require().Len(got, 2)
		s.Equal("newer", got[0].Slug)
		s.Equal("electronics", got[0].Category.Slug)
		s.True(newer.Price.Equal(got[0].Price))
	})

	s.Run("success: unknown category renders an empty array", func() {
		s.mockProducts.EXPECT().List(gomock.Any(), "nope").Return([]queries.ProductView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products?category=nope", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: store failure is hidden", func() {
		s.mockProducts.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("timeout"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CatalogHandlerTestSuite) TestGetProduct() {
	s.Run("success", func() {
		view := builder.NewProductBuilder().BuildView()
		s.mockProducts.EXPECT().GetBySlug(gomock.Any(), view.Slug).Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products/"+view.Slug, nil, "")

		var got queries.ProductView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(view.ID, got.ID)
	})

	s.Run("error: 404 for unknown slug", func() {
		s.mockProducts.EXPECT().GetBySlug(gomock.Any(), "ghost").Return(nil, queries.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products/ghost", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}

func (s *CatalogHandlerTestSuite) TestListCategories() {
	s.mockCategories.EXPECT().List(gomock.Any()).Return([]queries.CategoryView{
		{ID: uuid.New(), Slug: "books", Name: "Books", ProductCount: 3},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/categories", nil, "")

	var got []map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Require().Len(got, 1)
	s.Equal("books", got[0]["slug"])
	s.EqualValues(3, got[0]["productCount"])
}
