package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moodtunes/moodtunes-backend/api/controller"
	"github.com/moodtunes/moodtunes-backend/bootstrap"
	"github.com/moodtunes/moodtunes-backend/domain"
	"github.com/moodtunes/moodtunes-backend/mongo"
	"github.com/moodtunes/moodtunes-backend/repository"
	"github.com/moodtunes/moodtunes-backend/usecase"
)

func NewAuthRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, public, protected *gin.RouterGroup) {
	userRepo := repository.NewUserRepository(db, domain.CollectionUser)
	tokens := usecase.TokenConfig{
		AccessSecret:       env.AccessTokenSecret,
		AccessExpiryHours:  env.AccessTokenExpiryHour,
		RefreshSecret:      env.RefreshTokenSecret,
		RefreshExpiryHours: env.RefreshTokenExpiryHour,
	}

	authCtrl := &controller.AuthController{
		SignupUsecase:  usecase.NewSignupUsecase(userRepo, tokens, timeout),
		LoginUsecase:   usecase.NewLoginUsecase(userRepo, tokens, timeout),
		ProfileUsecase: usecase.NewProfileUsecase(userRepo, timeout),
	}

	authGroup := public.Group("/auth")
	{
		// POST /auth/signup
		authGroup.POST("/signup", authCtrl.Signup)
		// POST /auth/login
		authGroup.POST("/login", authCtrl.Login)
		// POST /auth/refresh
		authGroup.POST("/refresh", authCtrl.RefreshToken)
	}

	userGroup := protected.Group("/users")
	{
		// GET /users/me
		userGroup.GET("/me", authCtrl.Profile)
		// PUT /users/me/preferences
		userGroup.PUT("/me/preferences", authCtrl.UpdatePreferences)
	}
}
