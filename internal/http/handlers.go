package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"warung/internal/domain"
	"warung/internal/repository"
	"warung/internal/service"
	"warung/internal/validate"
)

type Server struct {
	engine   *gin.Engine
	catalog  *service.CatalogService
	cart     *service.CartService
	checkout *service.CheckoutService
}

func NewServer(catalog *service.CatalogService, cart *service.CartService, checkout *service.CheckoutService) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s := &Server{engine: r, catalog: catalog, cart: cart, checkout: checkout}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/categories", s.listCategories)

		products := v1.Group("/products")
		products.GET("", s.listProducts)
		products.GET(":id", s.getProduct)

		cart := v1.Group("/cart")
		cart.GET("", s.getCart)
		cart.POST("/items", s.addCartItem)
		cart.PATCH("/items/:id", s.updateCartItem)
		cart.DELETE("/items/:id", s.removeCartItem)
		cart.DELETE("", s.clearCart)

		v1.POST("/checkout", s.submitOrder)
		v1.GET("/orders/:id", s.getOrder)
	}
}

// Catalog handlers

// @Summary List categories with their products
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Category
// @Router /categories [get]
func (s *Server) listCategories(c *gin.Context) {
	cats, err := s.catalog.Categories(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cats)
}

// @Summary List products
// @Tags catalog
// @Produce json
// @Param category query string false "Category name"
// @Param q query string false "Name contains"
// @Success 200 {array} domain.Product
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	f := repository.CatalogFilter{
		Category:      c.Query("category"),
		NameSubstring: c.Query("q"),
	}
	list, err := s.catalog.List(c, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get product by id
// @Tags catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := s.catalog.GetByID(c, id)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Cart handlers

// @Summary Cart summary
// @Tags cart
// @Produce json
// @Success 200 {object} service.CartSummary
// @Router /cart [get]
func (s *Server) getCart(c *gin.Context) {
	sum, err := s.cart.Summary(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sum)
}

type addCartItemReq struct {
	ProductID int64 `json:"product_id"`
}

// @Summary Add product to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param input body addCartItemReq true "Product reference"
// @Success 200 {object} domain.CartItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (s *Server) addCartItem(c *gin.Context) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	it, err := s.cart.Add(c, req.ProductID)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, it)
}

type updateCartItemReq struct {
	Op       string `json:"op"` // increase | decrease | set
	Quantity int64  `json:"quantity"`
}

// @Summary Adjust item quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param input body updateCartItemReq true "Adjustment"
// @Success 200 {object} domain.CartItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{id} [patch]
func (s *Server) updateCartItem(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req updateCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	var (
		it  *domain.CartItem
		err error
	)
	switch req.Op {
	case "increase":
		it, err = s.cart.Increase(c, id)
	case "decrease":
		it, err = s.cart.Decrease(c, id)
	case "set":
		it, err = s.cart.SetQuantity(c, id, req.Quantity)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid op"})
		return
	}
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, it)
}

// @Summary Remove item from cart
// @Tags cart
// @Param id path int true "Product ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /cart/items/{id} [delete]
func (s *Server) removeCartItem(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := s.cart.Remove(c, id); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear cart
// @Tags cart
// @Success 204
// @Router /cart [delete]
func (s *Server) clearCart(c *gin.Context) {
	if err := s.cart.Clear(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Checkout handlers

// @Summary Submit order
// @Tags checkout
// @Accept json
// @Produce json
// @Param input body service.CheckoutInput true "Checkout form"
// @Success 201 {object} service.CheckoutResult
// @Failure 400 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Router /checkout [post]
func (s *Server) submitOrder(c *gin.Context) {
	var req service.CheckoutInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	res, err := s.checkout.Submit(c, req)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "fields": vErr.Fields})
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       err.Error(),
				"retry_after": int(s.checkout.RetryAfter().Seconds()),
			})
		default:
			c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Get submitted order by id
// @Tags checkout
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	o, err := s.checkout.GetOrder(c, id)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

func parseID(s string) (int64, bool) {
	res := validate.Number(s, 1, 999999)
	return res.Value, res.Valid
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
