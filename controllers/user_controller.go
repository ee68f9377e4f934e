package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/models"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/store"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/validations"
)

type UserController struct {
	Users store.UserStore
}

func NewUserController(users store.UserStore) *UserController {
	return &UserController{Users: users}
}

// UpsertUser - first sign-in creates the account, later sign-ins are
// no-ops against the stored document, so an admin-assigned role is
// never clobbered.
func (uc *UserController) UpsertUser(c *gin.Context) {
	var req validations.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondError(c, "hash password", err)
			return
		}
		user.Password = string(hashed)
	}

	created, err := uc.Users.Upsert(c.Request.Context(), &user)
	if err != nil {
		respondError(c, "upsert user", err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "user created"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.Users.List(c.Request.Context())
	if err != nil {
		respondError(c, "list users", err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) GetUserByEmail(c *gin.Context) {
	user, err := uc.Users.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, "get user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// IsAdmin - role probe answering a boolean for the exact identity the
// session belongs to.
func (uc *UserController) IsAdmin(c *gin.Context) {
	user, err := uc.Users.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, "admin probe", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": user.Role == models.RoleAdmin})
}

func (uc *UserController) IsManager(c *gin.Context) {
	user, err := uc.Users.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, "manager probe", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"manager": user.Role == models.RoleManager})
}

// UpdateUser - admin mutation of role and status.
func (uc *UserController) UpdateUser(c *gin.Context) {
	var req validations.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := bson.M{}
	if req.Role != "" {
		fields["role"] = req.Role
	}
	if req.Status != "" {
		fields["status"] = req.Status
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}

	if err := uc.Users.UpdateByID(c.Request.Context(), c.Param("id"), fields); err != nil {
		respondError(c, "update user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated"})
}
