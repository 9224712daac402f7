package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-app/models"
	"github.com/yeremiapane/bar-app/utils"
	"golang.org/x/crypto/bcrypt"
)

// UserController starts and ends staff sessions. There are no user accounts:
// a session is a role, and the manager role is protected by a passcode.
type UserController struct {
	passcodeHash []byte
}

func NewUserController(managerPasscode string) (*UserController, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(managerPasscode), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &UserController{passcodeHash: hashed}, nil
}

// Login -> pilih peran, return JWT
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Role     string `json:"role" binding:"required"`
		Passcode string `json:"passcode"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	role := models.Role(strings.ToLower(strings.TrimSpace(input.Role)))
	if !role.Valid() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown role"))
		return
	}

	if role == models.RoleManager {
		if err := bcrypt.CompareHashAndPassword(uc.passcodeHash, []byte(input.Passcode)); err != nil {
			utils.Error().WithField("ip", c.ClientIP()).Warn("Manager session refused: wrong passcode")
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid passcode"))
			return
		}
	}

	token, err := utils.GenerateToken(string(role))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.Info().Printf("Session started: role=%s", role)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":      token,
		"role":       role,
		"expires_at": time.Now().Add(utils.TokenTTL).UTC(),
	})
}

// Logout -> token dimasukkan ke blacklist sampai kadaluarsa
func (uc *UserController) Logout(c *gin.Context) {
	value, exists := c.Get("claims")
	claims, ok := value.(*utils.CustomClaims)
	if !exists || !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no session"))
		return
	}

	expiry := time.Now().Add(utils.TokenTTL)
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}
	utils.BlacklistToken(claims.ID, expiry)

	utils.Info().Printf("Session ended: role=%s", claims.Role)
	utils.RespondJSON(c, http.StatusOK, "Logout successful", nil)
}

// GetProfile -> peran dari JWT
func (uc *UserController) GetProfile(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Session", gin.H{"role": c.GetString("role")})
}
