package controllers

import (
	"github.com/gin-gonic/gin"

	"vapeshop/models"
)

type BookingController struct {
	base
}

func NewBookingController(d Deps) *BookingController {
	return &BookingController{base: newBase(d)}
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	bc.create(c, models.NewBooking(), "scheduled")
}
