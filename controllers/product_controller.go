package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"vapeshop/apperrors"
	"vapeshop/models"
	"vapeshop/repository"
	"vapeshop/validation"
)

const defaultProductLimit = 50

type ProductController struct {
	base
}

func NewProductController(d Deps) *ProductController {
	return &ProductController{base: newBase(d)}
}

// ListProducts returns up to limit products, optionally only those whose
// category matches exactly. Store IDs are not included.
func (pc *ProductController) ListProducts(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		pc.respondError(c, err)
		return
	}

	filter := repository.Filter{}
	if category := c.Query("category"); category != "" {
		filter = repository.Eq("category", category)
	}

	store, err := pc.store.Get()
	if err != nil {
		pc.respondError(c, err)
		return
	}

	ctx, cancel := pc.withTimeout(c)
	defer cancel()

	docs, err := store.Find(ctx, models.NewProduct().CollectionName(), filter, limit)
	if err != nil {
		pc.respondError(c, err)
		return
	}

	products := make([]*models.Product, 0, len(docs))
	for _, doc := range docs {
		p := models.NewProduct()
		if err := bson.Unmarshal(doc, p); err != nil {
			pc.respondError(c, apperrors.ErrStorage.Wrap(err))
			return
		}
		p.Normalize()
		products = append(products, p)
	}

	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	pc.create(c, models.NewProduct(), "")
}

func parseLimit(c *gin.Context) (int64, error) {
	raw, ok := c.GetQuery("limit")
	if !ok {
		return defaultProductLimit, nil
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &validation.Errors{Fields: []validation.FieldError{{
			Field:   "limit",
			Message: "value is not a valid integer",
			Type:    "type_error.integer",
		}}}
	}
	if limit < 0 {
		return 0, &validation.Errors{Fields: []validation.FieldError{{
			Field:   "limit",
			Message: "ensure this value is greater than or equal to 0",
			Type:    "value_error.number.not_ge",
		}}}
	}
	return limit, nil
}
