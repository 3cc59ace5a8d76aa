package controllers

import (
	"github.com/gin-gonic/gin"

	"vapeshop/models"
)

type OrderController struct {
	base
}

func NewOrderController(d Deps) *OrderController {
	return &OrderController{base: newBase(d)}
}

// CreateOrder stores the order as submitted. Prices, totals and stock are
// not checked.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	oc.create(c, models.NewOrder(), "received")
}
