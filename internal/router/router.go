package router

import (
	"time"

	"cafe/internal/config"
	"cafe/internal/handler"
	"cafe/internal/middleware"
	"cafe/internal/repository"
	"cafe/internal/service"

	_ "cafe/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// rdb may be nil, in which case rate limiting is off.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(rdb, "api", cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	productoRepo := repository.NewProductoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	productoSvc := service.NewProductoService(productoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	productosH := handler.NewProductosHandler(productoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	verificaToken := middleware.VerificaToken(cfg.Seed)
	soloAdmin := middleware.VerificaAdminRole()

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/login", middleware.RateLimiter(rdb, "login", cfg.LoginLimitPerMinute, time.Minute), authH.Login)

	categoria := r.Group("/categoria")
	{
		categoria.GET("", categoriasH.Listar)
		categoria.GET("/:id", categoriasH.ObtenerPorID)
		categoria.POST("", verificaToken, categoriasH.Crear)
		categoria.PUT("/:id", verificaToken, categoriasH.Actualizar)
		categoria.DELETE("/:id", verificaToken, soloAdmin, categoriasH.Eliminar)
	}

	producto := r.Group("/producto", verificaToken)
	{
		producto.GET("", productosH.Listar)
		producto.GET("/:id", productosH.ObtenerPorID)
		producto.GET("/buscar/:termino", productosH.Buscar)
		producto.POST("", productosH.Crear)
		producto.PUT("/:id", productosH.Actualizar)
		producto.DELETE("/:id", productosH.Desactivar)
	}

	usuario := r.Group("/usuario", verificaToken)
	{
		usuario.GET("", usuariosH.Listar)
		usuario.POST("", soloAdmin, usuariosH.Crear)
		usuario.PUT("/:id", soloAdmin, usuariosH.Actualizar)
		usuario.DELETE("/:id", soloAdmin, usuariosH.Desactivar)
	}

	// Swagger UI, only outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
