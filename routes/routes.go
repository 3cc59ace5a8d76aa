package routes

import (
	"vapeshop/controllers"

	"github.com/gin-gonic/gin"
)

// Controllers groups the handlers RegisterRoutes wires up.
type Controllers struct {
	Health   *controllers.HealthController
	Products *controllers.ProductController
	Orders   *controllers.OrderController
	Bookings *controllers.BookingController
	Contact  *controllers.ContactController
}

// New builds every controller from the same dependencies.
func New(d controllers.Deps, databaseURLSet bool) Controllers {
	return Controllers{
		Health:   controllers.NewHealthController(d, databaseURLSet),
		Products: controllers.NewProductController(d),
		Orders:   controllers.NewOrderController(d),
		Bookings: controllers.NewBookingController(d),
		Contact:  controllers.NewContactController(d),
	}
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	r.GET("/", ctrl.Health.Root)
	r.GET("/test", ctrl.Health.Probe)

	api := r.Group("/api")
	{
		api.GET("/products", ctrl.Products.ListProducts)
		api.POST("/products", ctrl.Products.CreateProduct)

		api.POST("/orders", ctrl.Orders.CreateOrder)
		api.POST("/bookings", ctrl.Bookings.CreateBooking)
		api.POST("/contact", ctrl.Contact.CreateMessage)
	}
}
