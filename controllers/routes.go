package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/princinho/resalebackend/logging"
	"github.com/princinho/resalebackend/middleware"
	"github.com/princinho/resalebackend/models"
)

// NewRouter builds the engine with global middleware and every route. Route
// guards are listed ahead of the handler they protect.
func NewRouter(app *App, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(logging.AccessLog())
	r.Use(middleware.CORS(allowedOrigins))

	authenticated := middleware.Authenticated(app.Tokens)
	phoneOwner := middleware.ResourceOwner(app.PhoneOwner())

	r.GET("/", Health())
	r.GET("/ping", Ping())
	r.GET("/jwt", app.IssueToken())

	r.GET("/brands", app.GetBrands())
	r.GET("/brands/:id", app.GetBrand())
	r.GET("/brands/slug/:slug", app.GetBrandBySlug())

	r.GET("/phones", app.GetPhonesByBrand())
	r.POST("/phones", authenticated, app.CreatePhone())
	r.PATCH("/phones", app.MarkPhoneSold())
	r.POST("/phones/:id/images", authenticated, phoneOwner, app.UploadPhoneImages())

	r.GET("/my-products", app.GetMyProducts())
	r.DELETE("/my-products/:id", authenticated, phoneOwner, app.DeletePhone())

	r.POST("/users", app.CreateUser())

	r.POST("/bookings", app.CreateBooking())
	r.GET("/bookings", authenticated, middleware.OwnerMatch("email"), app.GetBookings())
	r.GET("/bookings/:id", app.GetBooking())

	r.POST("/advertised-items", app.CreateAdvertisedItem())
	r.GET("/advertised-items", app.GetAdvertisedItems())
	r.PATCH("/advertised-items", app.MarkAdvertisedItemSold())

	r.POST("/create-payment-intent", app.CreatePaymentIntent())
	r.POST("/payments", app.ConfirmPayment())

	return r
}

// AdminOnly is the role guard for routes restricted to admins. No route
// requires it yet.
func (a *App) AdminOnly() gin.HandlerFunc {
	return middleware.RoleMatch(a.Store.Users, models.RoleAdmin)
}
