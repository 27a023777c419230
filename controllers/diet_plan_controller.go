package controllers

import (
	"net/http"
	"strconv"

	"nutriassist/config"
	"nutriassist/metrics"
	"nutriassist/services"

	"github.com/gin-gonic/gin"
)

func CreatePlan(c *gin.Context) {
	var input services.CreatePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	svc := services.NewDietPlanService(config.DB, foodCatalog)
	plan, err := svc.Create(c.GetString("username"), input)
	if err != nil {
		respondError(c, err, "Server error while creating plan")
		return
	}
	metrics.IncPlanCreated()

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Diet plan created successfully",
		"plan":    plan,
	})
}

func GetPlans(c *gin.Context) {
	svc := services.NewDietPlanService(config.DB, foodCatalog)
	plans, err := svc.List(c.GetString("username"))
	if err != nil {
		respondError(c, err, "Server error while fetching plans")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(plans),
		"plans":   plans,
	})
}

func DeletePlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Plan not found or unauthorized"})
		return
	}

	svc := services.NewDietPlanService(config.DB, foodCatalog)
	plan, err := svc.Delete(c.GetString("username"), uint(id))
	if err != nil {
		respondError(c, err, "Server error while deleting plan")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Diet plan deleted successfully",
		"plan":    plan,
	})
}

func AddFoodToMeal(c *gin.Context) {
	planID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Plan not found or unauthorized"})
		return
	}

	var input struct {
		FoodName string  `json:"foodName"`
		Servings float64 `json:"servings"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	svc := services.NewDietPlanService(config.DB, foodCatalog)
	item, err := svc.AddFoodToMeal(c.GetString("username"), uint(planID), c.Param("mealType"), input.FoodName, input.Servings)
	if err != nil {
		respondError(c, err, "Server error while adding food to meal")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Food added to meal successfully",
		"mealItem": item,
	})
}

func RemoveFoodFromMeal(c *gin.Context) {
	planID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Plan not found or unauthorized"})
		return
	}
	index, err := strconv.Atoi(c.Param("foodIndex"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Food item not found"})
		return
	}

	svc := services.NewDietPlanService(config.DB, foodCatalog)
	if err := svc.RemoveFoodFromMeal(c.GetString("username"), uint(planID), c.Param("mealType"), index); err != nil {
		respondError(c, err, "Server error while removing food from meal")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Food removed from meal successfully",
	})
}
