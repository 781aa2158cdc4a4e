// Package server is the Quality Fast Food ordering backend: menu, order
// intake and order lookup over HTTP.
package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"quality-fastfood/models"
	"quality-fastfood/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// New builds the router with all routes registered.
func New() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// Storefront clients may be served from anywhere.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", root)
	router.GET("/health", health)
	router.GET("/menu", getMenu)
	router.GET("/menu/:item_id", getMenuItem)
	router.POST("/order", createOrder)
	router.GET("/orders/:order_id", getOrder)
	router.GET("/orders", listOrders)
	router.PATCH("/orders/:order_id/status", updateOrderStatus)

	return router
}

func root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "Quality Fast Food API is running!",
		"location": "Mumbai, India",
		"status":   "active",
	})
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().UTC()})
}

func getMenu(c *gin.Context) {
	c.JSON(http.StatusOK, Menu())
}

func getMenuItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid item id"})
		return
	}
	item := ItemByID(id)
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Menu item with ID %d not found", id)})
		return
	}
	c.JSON(http.StatusOK, item)
}

func createOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if errs := services.ValidateDeliveryForm(req.CustomerName, req.Phone, req.Address); len(errs) > 0 {
		for _, field := range []string{"customer_name", "phone", "address"} {
			if msg, ok := errs[field]; ok {
				c.JSON(http.StatusBadRequest, gin.H{"detail": msg})
				return
			}
		}
	}

	// Every item must exist on the menu at the price the client snapshot has.
	var totalPrice int64
	for _, it := range req.Items {
		menuItem := ItemByID(it.ItemID)
		if menuItem == nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("Invalid item ID: %d", it.ItemID)})
			return
		}
		if menuItem.Price != it.Price {
			c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("Price mismatch for item %s", it.Name)})
			return
		}
		totalPrice += it.Price * int64(it.Quantity)
	}

	orderID, err := SaveOrder(c.Request.Context(), req, totalPrice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error creating order"})
		return
	}

	c.JSON(http.StatusCreated, models.OrderSuccessResponse{
		Success:       true,
		OrderID:       orderID,
		Message:       "Order placed successfully! Your delicious food is being prepared.",
		EstimatedTime: "30-45 minutes",
	})
}

func getOrder(c *gin.Context) {
	orderID := c.Param("order_id")
	order, err := GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error fetching order"})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Order with ID %s not found", orderID)})
		return
	}
	c.JSON(http.StatusOK, order)
}

func listOrders(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 100 {
		limit = 100
	}
	orders, err := ListOrders(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error fetching orders"})
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func updateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "status is required"})
		return
	}
	if err := UpdateOrderStatus(c.Request.Context(), c.Param("order_id"), req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
