package controllers

import (
	"net/http"
	"strconv"

	"nutriassist/config"
	"nutriassist/models"
	"nutriassist/services"

	"github.com/gin-gonic/gin"
)

func publicUser(u *models.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
		"age":      u.Age,
		"height":   u.Height,
		"weight":   u.Weight,
		"goal":     u.Goal,
	}
}

func Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	svc := services.NewAuthService(config.DB)
	user, err := svc.Register(input)
	if err != nil {
		respondError(c, err, "Server error during registration")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    publicUser(user),
	})
}

func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	svc := services.NewAuthService(config.DB)
	token, user, err := svc.Login(input.Username, input.Password)
	if err != nil {
		respondError(c, err, "Server error during login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    publicUser(user),
	})
}

func GetProfile(c *gin.Context) {
	svc := services.NewAuthService(config.DB)
	user, err := svc.GetUser(c.GetUint("userID"))
	if err != nil {
		respondError(c, err, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": publicUser(user)})
}

func UpdateProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}
	// Tokens only authorize edits to the caller's own profile.
	if uint(id) != c.GetUint("userID") {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cannot update another user's profile"})
		return
	}

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	svc := services.NewAuthService(config.DB)
	user, err := svc.UpdateProfile(uint(id), input)
	if err != nil {
		respondError(c, err, "Server error updating profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"user":    publicUser(user),
	})
}
