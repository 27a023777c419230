package routes

import (
	"nutriassist/config"
	"nutriassist/controllers"
	"nutriassist/metrics"
	"nutriassist/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origin := config.ClientURL(); origin != "" {
		corsConfig.AllowOrigins = []string{origin}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	metrics.Register()
	r.Use(middlewares.MetricsMiddleware())

	// Sanity check
	r.GET("/", func(c *gin.Context) {
		c.String(200, "Nutrition Assistant API is running")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := r.Group("/users")
	{
		users.POST("/register", controllers.Register)
		users.POST("/login", controllers.Login)
		users.GET("/me", middlewares.AuthMiddleware(), controllers.GetProfile)
		users.PUT("/update/:id", middlewares.AuthMiddleware(), controllers.UpdateProfile)
	}

	foods := r.Group("/foods")
	{
		foods.POST("/add", middlewares.AuthMiddleware(), controllers.AddFood)
		foods.GET("", middlewares.AuthMiddleware(), controllers.GetFoods)
		foods.PUT("/:id", middlewares.AuthMiddleware(), controllers.UpdateFood)
		foods.DELETE("/:id", middlewares.AuthMiddleware(), controllers.DeleteFood)
		foods.GET("/search/:query", middlewares.AuthMiddleware(), controllers.SearchFoods)
		// Debug route: same search without auth, catalog-only results
		foods.GET("/test-search/:query", middlewares.OptionalAuth(), controllers.SearchFoods)
	}

	plans := r.Group("/diet-plans")
	plans.Use(middlewares.AuthMiddleware())
	{
		plans.POST("/create", controllers.CreatePlan)
		plans.GET("", controllers.GetPlans)
		plans.DELETE("/:id", controllers.DeletePlan)
		plans.POST("/:id/meals/:mealType", controllers.AddFoodToMeal)
		plans.DELETE("/:id/meals/:mealType/:foodIndex", controllers.RemoveFoodFromMeal)
	}

	analytics := r.Group("/analytics")
	analytics.Use(middlewares.AuthMiddleware())
	{
		analytics.GET("/daily", controllers.DailyCalories)
		analytics.GET("/macros", controllers.TodayMacros)
		analytics.GET("/target", controllers.CalorieTarget)
	}

	return r
}
