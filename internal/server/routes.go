package server

import (
	"context"
	"time"

	"github.com/Natoons/cynova/internal/config"
	"github.com/Natoons/cynova/internal/handler"
	"github.com/Natoons/cynova/internal/infra/db"
	infraRepo "github.com/Natoons/cynova/internal/infra/repository"
	"github.com/Natoons/cynova/internal/middleware"
	"github.com/Natoons/cynova/internal/usecase"
	auth "github.com/Natoons/cynova/internal/usecase/auth_usecase"
	"github.com/Natoons/cynova/internal/validator"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// DIしてルートを登録する
func RegisterRoutes(e *echo.Echo, cfg config.Config, gormDB *gorm.DB, startedAt time.Time) {
	//Repository（GORM実装）
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	ingredientRepo := infraRepo.NewIngredientGormRepository(gormDB)
	blogRepo := infraRepo.NewBlogGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)

	//usecaseに渡す部品
	v := validator.New()
	hasher := auth.NewBcryptPasswordHasher(auth.DefaultBcryptCost)
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL)

	//Usecase
	productUC := usecase.NewProductUsecase(productRepo, v)
	ingredientUC := usecase.NewIngredientUsecase(ingredientRepo, v)
	blogUC := usecase.NewBlogUsecase(blogRepo, v)
	userUC := usecase.NewUserUsecase(userRepo, hasher, v)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, auth.SystemClock{})

	//Handler
	ping := func(ctx context.Context) error { return db.Ping(ctx, gormDB) }
	handler.NewSystemHandler(cfg.Env, ping, startedAt).RegisterRoutes(e)

	//リソースごとに別々のレート制限
	limiter := func() echo.MiddlewareFunc {
		return middleware.RateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	}

	handler.NewProductHandler(productUC).RegisterRoutes(e.Group("/api/products", limiter()))
	handler.NewIngredientHandler(ingredientUC).RegisterRoutes(e.Group("/api/ingredients", limiter()))
	handler.NewBlogHandler(blogUC).RegisterRoutes(e.Group("/api/blogs", limiter()))

	users := e.Group("/api/users", limiter())
	handler.NewUserHandler(userUC).RegisterRoutes(users)
	handler.NewAuthHandler(loginUC, userUC).RegisterRoutes(users, middleware.AuthJWT(issuer))
}
