package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vapeshop/apperrors"
	"vapeshop/logger"
	"vapeshop/models"
	"vapeshop/repository"
	"vapeshop/validation"
)

const defaultTimeout = 5 * time.Second

// Deps are shared by every controller.
type Deps struct {
	Store   repository.Handle
	Log     *zap.Logger
	Timeout time.Duration // per store operation
}

type base struct {
	store   repository.Handle
	log     *zap.Logger
	timeout time.Duration
}

func newBase(d Deps) base {
	b := base{store: d.Store, log: d.Log, timeout: d.Timeout}
	if b.log == nil {
		b.log = zap.NewNop()
	}
	if b.timeout <= 0 {
		b.timeout = defaultTimeout
	}
	return b
}

func (b base) withTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), b.timeout)
}

// create validates the request body into record and inserts it. On success
// it answers 201 with the new id, plus status when one is given.
func (b base) create(c *gin.Context, record models.Record, status string) {
	body, err := c.GetRawData()
	if err != nil {
		b.respondError(c, err)
		return
	}
	if err := validation.Decode(body, record); err != nil {
		b.respondError(c, err)
		return
	}

	store, err := b.store.Get()
	if err != nil {
		b.respondError(c, err)
		return
	}

	ctx, cancel := b.withTimeout(c)
	defer cancel()

	id, err := store.Create(ctx, record.CollectionName(), record)
	if err != nil {
		b.respondError(c, err)
		return
	}

	logger.With(c, b.log).Info("Document created",
		zap.String("collection", record.CollectionName()),
		zap.String("id", id),
	)

	resp := gin.H{"id": id}
	if status != "" {
		resp["status"] = status
	}
	c.JSON(http.StatusCreated, resp)
}

// respondError writes validation failures as 422 with the field list and
// everything else as {detail: message} with the error's status.
func (b base) respondError(c *gin.Context, err error) {
	var verrs *validation.Errors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": verrs.Fields})
		return
	}

	code := apperrors.StatusCode(err)
	if code >= http.StatusInternalServerError {
		logger.With(c, b.log).Error("Request failed", zap.Error(err))
	}
	c.JSON(code, gin.H{"detail": err.Error()})
}
