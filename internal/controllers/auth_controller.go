package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"barangay_bis/internal/config"
	"barangay_bis/internal/middleware"
	"barangay_bis/internal/models"
)

type registerInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a staff account. Only a bcrypt hash of the password is
// ever stored.
func Register(c *gin.Context) {
	var input registerInput
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	if input.Username == "" || input.Password == "" || input.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username, password, and full_name are required."})
		return
	}

	var existing models.User
	err := config.DB.Where("username = ?", input.Username).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already taken."})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		serverError(c, err, "Error registering user")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		serverError(c, err, "Error registering user")
		return
	}

	role := input.Role
	if role == "" {
		role = "Staff"
	}

	user := models.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		// The username column is unique; a concurrent register can still
		// slip past the lookup above.
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already taken."})
			return
		}
		serverError(c, err, "Error registering user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"full_name": user.FullName,
		"role":      user.Role,
	})
}

// Login verifies credentials and issues a signed 8-hour token. Unknown
// username and wrong password fail with the same message so callers cannot
// enumerate accounts.
func Login(c *gin.Context) {
	var input loginInput
	if err := bindJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	if input.Username == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required."})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		} else {
			serverError(c, err, "Error logging in")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	ident := middleware.Identity{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Role:     user.Role,
	}
	token, err := middleware.GenerateToken(ident)
	if err != nil {
		serverError(c, err, "Error logging in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  ident,
	})
}

// Me returns the identity claims of the authenticated caller.
func Me(c *gin.Context) {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		return
	}
	c.JSON(http.StatusOK, ident)
}
