package controllers

import (
	"net/http"
	"time"

	"nutriassist/config"
	"nutriassist/services"

	"github.com/gin-gonic/gin"
)

func newAnalyticsService() *services.AnalyticsService {
	plans := services.NewDietPlanService(config.DB, foodCatalog)
	return services.NewAnalyticsService(config.DB, plans)
}

// DailyCalories returns calorie totals for the trailing seven calendar days.
func DailyCalories(c *gin.Context) {
	days, err := newAnalyticsService().Daily(c.GetString("username"), time.Now())
	if err != nil {
		respondError(c, err, "Server error while computing daily totals")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "days": days})
}

// TodayMacros returns today's macro grams and percentage split.
func TodayMacros(c *gin.Context) {
	macros, err := newAnalyticsService().Macros(c.GetString("username"), time.Now())
	if err != nil {
		respondError(c, err, "Server error while computing macros")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "macros": macros})
}

// CalorieTarget compares today's intake against the active plan's target.
func CalorieTarget(c *gin.Context) {
	target, err := newAnalyticsService().Target(c.GetString("username"), time.Now())
	if err != nil {
		respondError(c, err, "Server error while computing target")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "target": target})
}
