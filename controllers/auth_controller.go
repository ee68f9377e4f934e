package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/middlewares"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/store"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/utils"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/validations"
)

type AuthController struct {
	Users      store.UserStore
	Tokens     utils.TokenStore
	Production bool
}

func NewAuthController(users store.UserStore, tokens utils.TokenStore, production bool) *AuthController {
	return &AuthController{Users: users, Tokens: tokens, Production: production}
}

// IssueToken - POST /jwt. Exchanges an identity payload for a session
// cookie. When the stored account carries a password hash and the
// request supplies a password, the password is verified; the primary
// social sign-in flow sends no password at all.
func (ac *AuthController) IssueToken(c *gin.Context) {
	var req validations.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Password != "" {
		user, err := ac.Users.GetByEmail(c.Request.Context(), req.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
				return
			}
			respondError(c, "issue token: load user", err)
			return
		}
		if user.Password == "" ||
			bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
	}

	token, err := utils.GenerateToken(req.Email)
	if err != nil {
		respondError(c, "issue token: sign", err)
		return
	}

	ac.setSessionCookie(c, token, int(utils.TokenTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout - POST /logout. Revokes the presented token for the rest of
// its lifetime and clears the cookie. Always succeeds from the
// client's point of view.
func (ac *AuthController) Logout(c *gin.Context) {
	if tokenString, err := c.Cookie(middlewares.CookieName); err == nil && tokenString != "" {
		if claims, err := utils.ValidateToken(tokenString); err == nil {
			ttl := time.Until(claims.ExpiresAt.Time)
			if err := ac.Tokens.Revoke(c.Request.Context(), claims.ID, ttl); err != nil {
				respondError(c, "logout: revoke token", err)
				return
			}
		}
	}

	ac.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Cross-origin cookie attributes depend on the deployment: the hosted
// frontend needs SameSite=None with Secure, local development uses Lax
// over plain http.
func (ac *AuthController) setSessionCookie(c *gin.Context, token string, maxAge int) {
	if ac.Production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(middlewares.CookieName, token, maxAge, "/", "", ac.Production, true)
}
