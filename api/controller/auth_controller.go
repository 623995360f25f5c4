package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/moodtunes/moodtunes-backend/domain"
)

type AuthController struct {
	SignupUsecase  domain.SignupUsecase
	LoginUsecase   domain.LoginUsecase
	ProfileUsecase domain.ProfileUsecase
}

func (ac *AuthController) Signup(c *gin.Context) {
	var req domain.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	auth, err := ac.SignupUsecase.Signup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "account created", auth)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	auth, err := ac.LoginUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "logged in", auth)
}

func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req domain.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	auth, err := ac.LoginUsecase.RefreshToken(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "token refreshed", auth)
}

func (ac *AuthController) Profile(c *gin.Context) {
	user, err := ac.ProfileUsecase.GetProfile(c.Request.Context(), UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", user)
}

func (ac *AuthController) UpdatePreferences(c *gin.Context) {
	var prefs domain.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := ac.ProfileUsecase.UpdatePreferences(c.Request.Context(), UserID(c), &prefs)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "preferences updated", user)
}
