package controller

import (
	"fmt"

	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/service"
	pkgdto "github.com/alimikegami/point-of-sales/gaming-store-service/pkg/dto"
	"github.com/alimikegami/point-of-sales/gaming-store-service/pkg/errs"
	"github.com/alimikegami/point-of-sales/gaming-store-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	MessageAddedToCart   = "Product added to cart successfully"
	MessageCartUpdated   = "Cart updated successfully"
	MessageItemRemoved   = "Item removed from cart"
	defaultCartIncrement = 1
)

type CartController struct {
	service service.CartService
}

func CreateCartController(g *echo.Group, service service.CartService) {
	c := CartController{
		service: service,
	}
	g.POST("/cart/add", c.AddToCart)
	g.GET("/cart", c.GetCart)
	g.PUT("/cart/:item_id", c.UpdateQuantity)
	g.DELETE("/cart/:item_id", c.RemoveFromCart)
}

func (c *CartController) AddToCart(e echo.Context) error {
	param := pkgdto.AddToCartParam{Quantity: defaultCartIncrement}
	err := echo.QueryParamsBinder(e).
		MustString("product_id", &param.ProductID).
		Int("quantity", &param.Quantity).
		BindError()
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddToCart").Msg("")
		return response.WriteErrorResponse(e, clientError(err), nil)
	}

	if err = c.service.AddToCart(e.Request().Context(), param); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteMessageResponse(e, MessageAddedToCart)
}

func (c *CartController) GetCart(e echo.Context) error {
	cart, err := c.service.GetCart(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, cart)
}

func (c *CartController) UpdateQuantity(e echo.Context) error {
	param := pkgdto.UpdateQuantityParam{ItemID: e.Param("item_id")}
	err := echo.QueryParamsBinder(e).
		MustInt("quantity", &param.Quantity).
		BindError()
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateQuantity").Msg("")
		return response.WriteErrorResponse(e, clientError(err), nil)
	}

	if err = c.service.UpdateQuantity(e.Request().Context(), param); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	if param.Quantity <= 0 {
		return response.WriteMessageResponse(e, MessageItemRemoved)
	}

	return response.WriteMessageResponse(e, MessageCartUpdated)
}

func (c *CartController) RemoveFromCart(e echo.Context) error {
	if err := c.service.RemoveFromCart(e.Request().Context(), e.Param("item_id")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteMessageResponse(e, MessageItemRemoved)
}

func clientError(err error) error {
	return fmt.Errorf("%w: %v", errs.ErrClient, err)
}
