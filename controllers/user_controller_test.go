package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/middlewares"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/models"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/validations"
)

func userRouter(users *MockUserStore) *gin.Engine {
	r := gin.New()
	uc := NewUserController(users)
	auth := testAuth()
	ownEmail := middlewares.RequireOwnEmail()

	r.POST("/users", uc.UpsertUser)
	r.GET("/users", auth, uc.GetUsers)
	r.GET("/users/:email", auth, ownEmail, uc.GetUserByEmail)
	r.GET("/users/admin/:email", auth, ownEmail, uc.IsAdmin)
	r.GET("/users/manager/:email", auth, ownEmail, uc.IsManager)
	r.PATCH("/users/update/:id", auth, uc.UpdateUser)
	return r
}

func TestUpsertUserFirstSignIn(t *testing.T) {
	var upserted *models.User
	users := &MockUserStore{
		UpsertFunc: func(_ context.Context, u *models.User) (bool, error) {
			upserted = u
			return true, nil
		},
	}
	r := userRouter(users)

	w := perform(r, newRequest(t, http.MethodPost, "/users", validations.UpsertUserRequest{
		Name:  "Rahim",
		Email: "rahim@mail.com",
	}, ""))

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, upserted)
	assert.Equal(t, "rahim@mail.com", upserted.Email)
	assert.Empty(t, upserted.Password)
}

func TestUpsertUserExisting(t *testing.T) {
	users := &MockUserStore{
		UpsertFunc: func(_ context.Context, u *models.User) (bool, error) {
			return false, nil
		},
	}
	r := userRouter(users)

	w := perform(r, newRequest(t, http.MethodPost, "/users", validations.UpsertUserRequest{
		Name:  "Rahim",
		Email: "rahim@mail.com",
	}, ""))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpsertUserHashesPassword(t *testing.T) {
	var upserted *models.User
	users := &MockUserStore{
		UpsertFunc: func(_ context.Context, u *models.User) (bool, error) {
			upserted = u
			return true, nil
		},
	}
	r := userRouter(users)

	w := perform(r, newRequest(t, http.MethodPost, "/users", validations.UpsertUserRequest{
		Name:     "Karim",
		Email:    "karim@mail.com",
		Password: "hunter22",
	}, ""))

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, upserted)
	assert.NotEqual(t, "hunter22", upserted.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(upserted.Password), []byte("hunter22")))
}

func TestRoleProbes(t *testing.T) {
	users := &MockUserStore{
		GetByEmailFunc: func(_ context.Context, email string) (*models.User, error) {
			role := models.RoleUser
			switch email {
			case "admin@garments.com":
				role = models.RoleAdmin
			case "manager@garments.com":
				role = models.RoleManager
			}
			return &models.User{Email: email, Role: role}, nil
		},
	}
	r := userRouter(users)

	w := perform(r, newRequest(t, http.MethodGet, "/users/admin/admin@garments.com", nil, "admin@garments.com"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["admin"])

	w = perform(r, newRequest(t, http.MethodGet, "/users/manager/manager@garments.com", nil, "manager@garments.com"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["manager"])

	// a plain user probing their own role gets false, not an error
	w = perform(r, newRequest(t, http.MethodGet, "/users/admin/user@mail.com", nil, "user@mail.com"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["admin"])

	// probing someone else's role is forbidden
	w = perform(r, newRequest(t, http.MethodGet, "/users/admin/admin@garments.com", nil, "user@mail.com"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateUserRoleAndStatus(t *testing.T) {
	var gotFields bson.M
	users := &MockUserStore{
		UpdateByIDFunc: func(_ context.Context, id string, fields bson.M) error {
			gotFields = fields
			return nil
		},
	}
	r := userRouter(users)

	w := perform(r, newRequest(t, http.MethodPatch, "/users/update/"+primitive.NewObjectID().Hex(),
		validations.UpdateUserRequest{Role: models.RoleManager, Status: models.UserStatusActive}, "admin@garments.com"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RoleManager, gotFields["role"])
	assert.Equal(t, models.UserStatusActive, gotFields["status"])
}

func TestUpdateUserRejectsUnknownRole(t *testing.T) {
	r := userRouter(&MockUserStore{})

	w := perform(r, newRequest(t, http.MethodPatch, "/users/update/"+primitive.NewObjectID().Hex(),
		map[string]string{"role": "superuser"}, "admin@garments.com"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
