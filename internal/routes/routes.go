package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/dd-blog/braincleaner-backend/internal/handler"
	"github.com/dd-blog/braincleaner-backend/internal/middleware"
	"github.com/dd-blog/braincleaner-backend/pkg/jwt"
)

// Handlers groups every handler the router needs
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Post         *handler.PostHandler
	Comment      *handler.CommentHandler
	Like         *handler.LikeHandler
	Follow       *handler.FollowHandler
	Category     *handler.CategoryHandler
	Point        *handler.PointHandler
	PointStore   *handler.PointStoreHandler
	Verification *handler.VerificationHandler
	Report       *handler.ReportHandler
	Upload       *handler.UploadHandler
	Admin        *handler.AdminHandler
}

// Setup configures all API routes
func Setup(router *gin.Engine, h Handlers, jwtManager *jwt.Manager, redisClient *redis.Client) {
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()))

	authRequired := middleware.JWTAuth(jwtManager)
	authOptional := middleware.OptionalJWTAuth(jwtManager)

	// Authentication
	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", authRequired, h.Auth.Logout)
		auth.GET("/me", authRequired, h.Auth.Me)
	}

	// Categories (공개)
	api.GET("/categories", h.Category.List)

	// Users
	users := api.Group("/users")
	{
		users.GET("/me", authRequired, h.User.GetMe)
		users.PATCH("/me", authRequired, h.User.UpdateMe)
		users.DELETE("/me", authRequired, h.User.DeleteMe)
		users.GET("/:id", h.User.GetUser)
		users.GET("/:id/posts", h.User.GetUserPosts)
		users.GET("/:id/followers", h.Follow.Followers)
		users.GET("/:id/followings", h.Follow.Followings)
		users.GET("/:id/follow", authRequired, h.Follow.Status)
		users.POST("/:id/follow", authRequired, h.Follow.Follow)
		users.DELETE("/:id/follow", authRequired, h.Follow.Unfollow)
	}

	// Posts
	posts := api.Group("/posts")
	{
		posts.GET("", h.Post.List)
		posts.GET("/hot", h.Post.Hot)
		posts.GET("/feed", authRequired, h.Post.Feed)
		// 작성은 사용자별 분당 10회 제한 (일일 한도는 서비스에서 검사)
		posts.POST("", authRequired,
			middleware.RateLimitPerUser(redisClient, 10, "api:ratelimit:post:"), h.Post.Create)
		posts.GET("/:id", authOptional, h.Post.Get)
		posts.PUT("/:id", authRequired, h.Post.Update)
		posts.DELETE("/:id", authRequired, h.Post.Delete)

		// 댓글
		posts.GET("/:id/comments", h.Comment.ListByPost)
		posts.POST("/:id/comments", authRequired, h.Comment.Create)

		// 좋아요
		posts.GET("/:id/like", authRequired, h.Like.Status)
		posts.POST("/:id/like", authRequired, h.Like.Like)
		posts.DELETE("/:id/like", authRequired, h.Like.Unlike)

		// 신고 (사용자별 분당 5회 제한)
		posts.POST("/:id/report", authRequired,
			middleware.RateLimitPerUser(redisClient, 5, "api:ratelimit:report:"), h.Report.Create)
	}

	// Comments
	comments := api.Group("/comments", authRequired)
	{
		comments.PUT("/:id", h.Comment.Update)
		comments.DELETE("/:id", h.Comment.Delete)
	}

	// Points
	points := api.Group("/points", authRequired)
	{
		points.GET("/me", h.Point.GetMyPoints)
		points.GET("/me/history", h.Point.GetMyHistory)
	}

	// Point store
	store := api.Group("/store")
	{
		store.GET("/items", h.PointStore.ListItems)
		store.GET("/items/:id", h.PointStore.GetItem)
		store.GET("/items/:id/owned", authRequired, h.PointStore.Owned)
		store.POST("/items/:id/purchase", authRequired, h.PointStore.Purchase)
		store.GET("/purchases", authRequired, h.PointStore.MyPurchases)
	}

	// Verifications
	verifications := api.Group("/verifications")
	{
		verifications.GET("", h.Verification.List)
		verifications.GET("/me/weekly", authRequired, h.Verification.Weekly)
		verifications.GET("/:id", h.Verification.Get)
		verifications.PATCH("/:id", authRequired, h.Verification.UpdateDetoxTime)
		verifications.DELETE("/:id", authRequired, h.Verification.Delete)
	}

	// Uploads
	api.POST("/uploads/images", authRequired, h.Upload.UploadImage)

	// Admin
	admin := api.Group("/admin", authRequired, middleware.RequireAdmin())
	{
		admin.GET("/dashboard", h.Admin.Dashboard)
		admin.GET("/users", h.Admin.ListUsers)
		admin.GET("/users/:id", h.Admin.GetUser)
		admin.PATCH("/users/:id/role", h.Admin.UpdateUserRole)
		admin.PATCH("/users/:id/status", h.Admin.UpdateUserStatus)
		admin.GET("/verifications", h.Admin.PendingVerifications)
		admin.POST("/verifications/:id/approve", h.Admin.ApproveVerification)
		admin.POST("/verifications/:id/reject", h.Admin.RejectVerification)
		admin.GET("/reports", h.Admin.ListReports)
		admin.POST("/reports/:id/approve", h.Admin.ApproveReport)
		admin.POST("/reports/:id/reject", h.Admin.RejectReport)
		admin.DELETE("/posts/:id", h.Admin.DeletePost)
	}
}
