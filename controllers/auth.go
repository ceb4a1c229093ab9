package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"idea-management-api/config"
	"idea-management-api/middleware"
	"idea-management-api/models"
	"idea-management-api/services"
	"idea-management-api/utils"
)

// AuthController handles registration, login and the profile endpoint.
type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type RegisterRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required"`
	RoleID      *int    `json:"role_id"`
	Role        string  `json:"role"`
	Designation *string `json:"designation"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a user, resolving the role by id or by name.
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	req.Email = utils.SanitizeInput(req.Email)
	if !utils.ValidateEmail(req.Email) {
		respondError(c, fmt.Errorf("%w: invalid email address", services.ErrInvalidInput))
		return
	}
	if ok, reason := utils.ValidatePassword(req.Password); !ok {
		respondError(c, fmt.Errorf("%w: %s", services.ErrInvalidInput, reason))
		return
	}

	var existing models.User
	err := a.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		respondError(c, fmt.Errorf("%w: email already registered", services.ErrConflict))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, err)
		return
	}

	role, err := a.resolveRole(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	user := models.User{
		Name:        utils.SanitizeInput(req.Name),
		Email:       req.Email,
		Password:    hashed,
		RoleID:      role.RoleID,
		Designation: req.Designation,
	}
	if err := a.DB.Create(&user).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user_id": user.UserID,
	})
}

// resolveRole looks the role up by id when given, by name otherwise.
func (a *AuthController) resolveRole(req *RegisterRequest) (*models.Role, error) {
	var role models.Role

	if req.RoleID != nil {
		if err := a.DB.First(&role, "role_id = ?", *req.RoleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: invalid role_id", services.ErrInvalidInput)
			}
			return nil, err
		}
		return &role, nil
	}

	roleName := strings.TrimSpace(req.Role)
	if roleName == "" {
		return nil, fmt.Errorf("%w: role or role_id is required", services.ErrInvalidInput)
	}
	if err := a.DB.First(&role, "role_name = ?", roleName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid role", services.ErrInvalidInput)
		}
		return nil, err
	}
	return &role, nil
}

// Login verifies credentials and issues a bearer token.
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	var user models.User
	if err := a.DB.Preload("Role").Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
		return
	}
	if !CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
		return
	}

	token, err := a.generateToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user": gin.H{
			"id":    user.UserID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role.RoleName,
		},
	})
}

// Me returns the caller's profile with the role name.
func (a *AuthController) Me(c *gin.Context) {
	var user models.User
	if err := a.DB.Preload("Role").First(&user, "user_id = ?", currentUserID(c)).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          user.UserID,
		"name":        user.Name,
		"email":       user.Email,
		"role":        user.Role.RoleName,
		"designation": user.Designation,
	})
}

// generateToken creates the signed JWT for a user.
func (a *AuthController) generateToken(user models.User) (string, error) {
	claims := middleware.Claims{
		UserID: user.UserID,
		Email:  user.Email,
		Role:   user.Role.RoleName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(a.Cfg.JWTExpireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.Cfg.JWTSecret))
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with its hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
