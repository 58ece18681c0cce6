package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dd-blog/braincleaner-backend/internal/config"
	"github.com/dd-blog/braincleaner-backend/internal/event"
	"github.com/dd-blog/braincleaner-backend/internal/handler"
	"github.com/dd-blog/braincleaner-backend/internal/middleware"
	"github.com/dd-blog/braincleaner-backend/internal/migration"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
	"github.com/dd-blog/braincleaner-backend/internal/routes"
	"github.com/dd-blog/braincleaner-backend/internal/service"
	pkgcache "github.com/dd-blog/braincleaner-backend/pkg/cache"
	"github.com/dd-blog/braincleaner-backend/pkg/jwt"
	pkglogger "github.com/dd-blog/braincleaner-backend/pkg/logger"
	pkgredis "github.com/dd-blog/braincleaner-backend/pkg/redis"
	pkgstorage "github.com/dd-blog/braincleaner-backend/pkg/storage"
)

// @title           Braincleaner Backend API
// @version         1.0
// @description     도파민 디톡스 커뮤니티 블로그 백엔드 API
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// MySQL 연결
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")

	if err := migration.Run(db, cfg); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis 연결 (실패해도 캐시/레이트리밋 없이 동작)
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Info("Warning: Failed to connect to Redis: %v (continuing without Redis)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}

	var cacheService pkgcache.Service
	if redisClient != nil {
		cacheService = pkgcache.NewService(redisClient)
	}

	// S3-compatible storage
	var s3Client *pkgstorage.S3Client
	if cfg.Storage.Bucket != "" {
		s3Client, err = pkgstorage.NewS3Client(pkgstorage.S3Config{
			Endpoint:        cfg.Storage.Endpoint,
			Region:          cfg.Storage.Region,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Bucket:          cfg.Storage.Bucket,
			CDNURL:          cfg.Storage.CDNURL,
			BasePath:        cfg.Storage.BasePath,
			ForcePathStyle:  cfg.Storage.ForcePathStyle,
		})
		if err != nil {
			pkglogger.Info("Warning: S3 storage init failed: %v (continuing without S3)", err)
			s3Client = nil
		} else {
			pkglogger.Info("Connected to S3 storage")
		}
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewPostLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)
	histRepo := repository.NewPointHistoryRepository(db)
	itemRepo := repository.NewPointItemRepository(db)
	purchaseRepo := repository.NewPointPurchaseRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	eventBus := event.NewBus()
	pointService := service.NewPointService(db, userRepo, histRepo)
	verificationService := service.NewVerificationService(verificationRepo, userRepo, cacheService)
	postService := service.NewPostService(db, postRepo, categoryRepo, followRepo, verificationService, eventBus, cacheService)
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)
	likeService := service.NewPostLikeService(likeRepo, postRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	storeService := service.NewPointStoreService(db, itemRepo, purchaseRepo, userRepo, histRepo)
	reportService := service.NewReportService(db, reportRepo, postRepo, cacheService)
	adminService := service.NewAdminService(userRepo, verificationRepo, reportRepo)
	adminVerificationService := service.NewAdminVerificationService(db, verificationRepo, pointService, cacheService)

	// 게시글 작성 커밋 후 포인트 적립
	eventBus.SubscribePostCreated(func(e event.PostCreated) error {
		return pointService.AwardForNewPost(e.Post)
	})

	// Gin 라우터
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS
	allowOrigins := cfg.CORS.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining"},
		MaxAge:           86400,
	}))

	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	if err := handler.RegisterValidators(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "braincleaner-backend",
			"time":    time.Now().Unix(),
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Setup(router, routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		User:         handler.NewUserHandler(userService, postService),
		Post:         handler.NewPostHandler(postService, likeService),
		Comment:      handler.NewCommentHandler(commentService),
		Like:         handler.NewLikeHandler(likeService),
		Follow:       handler.NewFollowHandler(followService),
		Category:     handler.NewCategoryHandler(categoryRepo),
		Point:        handler.NewPointHandler(pointService, userService),
		PointStore:   handler.NewPointStoreHandler(storeService),
		Verification: handler.NewVerificationHandler(verificationService),
		Report:       handler.NewReportHandler(reportService),
		Upload:       handler.NewUploadHandler(s3Client),
		Admin:        handler.NewAdminHandler(adminService, adminVerificationService, reportService, postService),
	}, jwtManager, redisClient)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		pkglogger.Info("Server listening on :%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	pkglogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	pkglogger.Info("Server exited")
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	mysqlCfg, err := mysqldriver.ParseDSN(cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("DSN 파싱 실패: %w", err)
	}
	if mysqlCfg.Params == nil {
		mysqlCfg.Params = map[string]string{}
	}
	mysqlCfg.Params["time_zone"] = "'+09:00'"

	logLevel := gormlogger.Warn
	if cfg.Server.Mode == "debug" {
		logLevel = gormlogger.Info
	}
	db, err := gorm.Open(mysql.Open(mysqlCfg.FormatDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}
