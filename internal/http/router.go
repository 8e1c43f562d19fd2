package http

import (
	"log/slog"

	"github.com/JJB64/IntelliPark/internal/config"
	"github.com/JJB64/IntelliPark/internal/http/handlers"
	"github.com/JJB64/IntelliPark/internal/http/middleware"
	"github.com/JJB64/IntelliPark/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Dependencies struct {
	Config      *config.Config
	Tokens      *services.TokenService
	Auth        *services.AuthService
	Users       *services.UserService
	Vehicles    *services.VehicleService
	Passes      *services.PassService
	Locations   *services.LocationService
	Logger      *slog.Logger
	RateLimiter *middleware.RateLimiter
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	authHandler := handlers.NewAuthHandler(deps.Auth)
	userHandler := handlers.NewUserHandler(deps.Auth, deps.Users)
	vehicleHandler := handlers.NewVehicleHandler(deps.Vehicles)
	passHandler := handlers.NewPassHandler(deps.Passes)
	locationHandler := handlers.NewLocationHandler(deps.Locations)

	router.GET("/healthz", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// The mobile client talks to these paths directly; no version prefix.
	open := router.Group("")
	open.Use(deps.RateLimiter.Middleware())
	{
		open.POST("/create_user", userHandler.Create)
		open.POST("/login", authHandler.Login)
		open.POST("/add_vehicle", vehicleHandler.Add)
		open.POST("/create_pass", passHandler.Create)
		open.POST("/add_location", locationHandler.Add)
	}

	protected := router.Group("")
	protected.Use(middleware.Auth(deps.Tokens))
	{
		protected.GET("/get_user", userHandler.Get)
		protected.PUT("/update_user", userHandler.Update)
		protected.DELETE("/delete_user", userHandler.Delete)
		protected.PUT("/change_password", authHandler.ChangePassword)
		protected.PUT("/edit_vehicleDetails", vehicleHandler.EditDetails)
		protected.GET("/get_user_vehicles", vehicleHandler.ListMine)
		protected.PUT("/approve_pass", passHandler.Approve)
		protected.GET("/get_user_passes", passHandler.ListMine)
		protected.GET("/get_user_locations", locationHandler.ListMine)
	}

	return router
}
