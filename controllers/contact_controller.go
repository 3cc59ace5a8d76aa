package controllers

import (
	"github.com/gin-gonic/gin"

	"vapeshop/models"
)

type ContactController struct {
	base
}

func NewContactController(d Deps) *ContactController {
	return &ContactController{base: newBase(d)}
}

func (cc *ContactController) CreateMessage(c *gin.Context) {
	cc.create(c, models.NewContactMessage(), "received")
}
