package controllers

import (
	"net/http"
	"strconv"

	"nutriassist/config"
	"nutriassist/metrics"
	"nutriassist/services"

	"github.com/gin-gonic/gin"
)

func AddFood(c *gin.Context) {
	var input services.AddFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	svc := services.NewFoodService(config.DB, foodCatalog)
	food, err := svc.Add(c.GetString("username"), input)
	if err != nil {
		respondError(c, err, "Server error while adding food")
		return
	}
	metrics.IncFoodLogged()

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Food added successfully",
		"food":    food,
	})
}

func GetFoods(c *gin.Context) {
	svc := services.NewFoodService(config.DB, foodCatalog)
	foods, err := svc.List(c.GetString("username"))
	if err != nil {
		respondError(c, err, "Server error while fetching foods")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(foods),
		"foods":   foods,
	})
}

func UpdateFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Food not found or unauthorized"})
		return
	}

	var input services.UpdateFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	svc := services.NewFoodService(config.DB, foodCatalog)
	food, err := svc.Update(c.GetString("username"), uint(id), input)
	if err != nil {
		respondError(c, err, "Server error while updating food")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Food updated successfully",
		"food":    food,
	})
}

func DeleteFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Food not found or unauthorized"})
		return
	}

	svc := services.NewFoodService(config.DB, foodCatalog)
	food, err := svc.Delete(c.GetString("username"), uint(id))
	if err != nil {
		respondError(c, err, "Server error while deleting food")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Food deleted successfully",
		"food":    food,
	})
}

// SearchFoods serves both the authenticated route and the public debug route;
// without a caller identity only the catalog is searched.
func SearchFoods(c *gin.Context) {
	svc := services.NewFoodService(config.DB, foodCatalog)
	results, err := svc.Search(c.GetString("username"), c.Param("query"))
	if err != nil {
		respondError(c, err, "Server error while searching foods")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(results),
		"foods":   results,
	})
}
