package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"shopadmin/apperrors"
	"shopadmin/models"
	"shopadmin/repositories"
)

type AuthController struct {
	users     repositories.UserRepository
	jwtSecret []byte
}

func NewAuthController(users repositories.UserRepository, jwtSecret []byte) *AuthController {
	return &AuthController{users: users, jwtSecret: jwtSecret}
}

func (a *AuthController) Signup(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Confirm  string `json:"confirm"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperrors.Validation("Name, email and password are required"))
		return
	}

	if input.Password != input.Confirm {
		fail(c, apperrors.Validation("Passwords do not match"))
		return
	}

	role, err := models.ParseRole(input.Role)
	if err != nil {
		fail(c, apperrors.Validation("Role must be user or admin"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := a.users.EmailExists(ctx, input.Email)
	if err != nil {
		fail(c, apperrors.Internal("checking email", err))
		return
	}
	if exists {
		fail(c, apperrors.Conflict("Email already registered"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
	if err != nil {
		fail(c, apperrors.Internal("hashing password", err))
		return
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		Password:     string(hashed),
		Role:         role,
		IsFirstLogin: true,
		Wishlist:     []primitive.ObjectID{},
	}
	if err := a.users.Create(ctx, &user); err != nil {
		fail(c, apperrors.Internal("creating user", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "role": user.Role})
}

func (a *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperrors.Validation("Email and password are required"))
		return
	}

	role, err := models.ParseRole(input.Role)
	if err != nil {
		fail(c, apperrors.Validation("Role must be user or admin"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := a.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			fail(c, apperrors.NotFound("User not found"))
			return
		}
		fail(c, apperrors.Internal("looking up user", err))
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		fail(c, apperrors.Auth("Incorrect password"))
		return
	}

	if role != user.Role {
		fail(c, apperrors.RoleMismatch(fmt.Sprintf("Access denied: account is registered as %s", user.Role)))
		return
	}

	// isNewUser reflects the document as read, before the persisted flip, so
	// it is true exactly once per user.
	isNewUser := user.IsFirstLogin
	if isNewUser {
		if err := a.users.MarkLoggedIn(ctx, user.ID); err != nil {
			fail(c, apperrors.Internal("updating first-login flag", err))
			return
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": user.ID.Hex(),
		"role":   user.Role,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(a.jwtSecret)
	if err != nil {
		fail(c, apperrors.Internal("signing token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"role":      user.Role,
		"isNewUser": isNewUser,
		"token":     tokenString,
	})
}

// Me returns the authenticated user's profile.
func (a *AuthController) Me(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		fail(c, apperrors.Auth("Invalid token subject"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := a.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			fail(c, apperrors.NotFound("User not found"))
			return
		}
		fail(c, apperrors.Internal("looking up user", err))
		return
	}

	c.JSON(http.StatusOK, user)
}
