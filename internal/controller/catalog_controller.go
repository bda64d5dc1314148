package controller

import (
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/dto"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/service"
	pkgdto "github.com/alimikegami/point-of-sales/gaming-store-service/pkg/dto"
	"github.com/alimikegami/point-of-sales/gaming-store-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CatalogController struct {
	service service.CatalogService
}

func CreateCatalogController(g *echo.Group, service service.CatalogService) {
	c := CatalogController{
		service: service,
	}
	g.GET("/products", c.GetProducts)
	g.GET("/products/:id", c.GetProduct)
	g.GET("/categories", c.GetCategories)
}

func (c *CatalogController) GetProducts(e echo.Context) error {
	filter := pkgdto.ProductFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetProducts").Msg("")
		return response.WriteErrorResponse(e, clientError(err), nil)
	}

	products, err := c.service.ListProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, dto.ProductListResponse{Products: products})
}

func (c *CatalogController) GetProduct(e echo.Context) error {
	product, err := c.service.GetProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, product)
}

func (c *CatalogController) GetCategories(e echo.Context) error {
	categories, err := c.service.ListCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, dto.CategoryListResponse{Categories: categories})
}
