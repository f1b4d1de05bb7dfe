package routes

import (
	"rating-platform-api/controllers"
	"rating-platform-api/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires every endpoint against the shared database handle.
// Browsing is public; posting comments and ratings needs a login; reference
// data, accounts, uploads and bulk import are admin only. Deletes take the
// id as a path parameter uniformly.
func SetupRoutes(router *gin.Engine, db *gorm.DB) {
	auth := controllers.NewAuthController(db)
	passwordReset := controllers.NewPasswordResetController(db)
	districts := controllers.NewDistrictController(db)
	positions := controllers.NewPositionController(db)
	departments := controllers.NewDepartmentController(db)
	impactAreas := controllers.NewImpactAreaController(db)
	institutions := controllers.NewInstitutionController(db)
	nominees := controllers.NewNomineeController(db)
	ratings := controllers.NewRatingController(db)
	ratingCategories := controllers.NewRatingCategoryController(db)
	institutionRatingCategories := controllers.NewInstitutionRatingCategoryController(db)
	comments := controllers.NewCommentController(db)
	users := controllers.NewUserController(db)
	uploads := controllers.NewUploadController()
	bulk := controllers.NewBulkUploadController(db)

	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/register", auth.Register)
			public.POST("/login", auth.Login)
			public.POST("/forgot-password", passwordReset.ForgotPassword)
			public.POST("/reset-password", passwordReset.ResetPassword)

			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Rating Platform API is running",
				})
			})

			// Browsing is open: lists and details for every entity.
			public.GET("/districts", districts.List)
			public.GET("/districts/:id", districts.Get)
			public.GET("/positions", positions.List)
			public.GET("/positions/:id", positions.Get)
			public.GET("/departments", departments.List)
			public.GET("/departments/:id", departments.Get)
			public.GET("/impact-areas", impactAreas.List)
			public.GET("/impact-areas/:id", impactAreas.Get)
			public.GET("/institutions", institutions.List)
			public.GET("/institutions/:id", institutions.Get)
			public.GET("/nominees", nominees.List)
			public.GET("/nominees/:id", nominees.Get)
			public.GET("/ratings", ratings.List)
			public.GET("/ratings/:id", ratings.Get)
			public.GET("/rating-categories", ratingCategories.List)
			public.GET("/rating-categories/:id", ratingCategories.Get)
			public.GET("/institution-rating-categories", institutionRatingCategories.List)
			public.GET("/institution-rating-categories/:id", institutionRatingCategories.Get)
			public.GET("/comments", comments.List)
			public.GET("/comments/:id", comments.Get)
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(db))
		{
			protected.GET("/profile", auth.GetProfile)
			protected.PUT("/change-password", auth.ChangePassword)

			protected.POST("/comments", comments.Create)
			protected.PUT("/comments/:id", comments.Update)
			protected.DELETE("/comments/:id", comments.Delete)

			protected.POST("/ratings", ratings.Create)
		}

		// Admin routes (reference data, accounts, uploads, bulk import)
		admin := v1.Group("")
		admin.Use(middleware.AuthMiddleware(db), middleware.RequireAdmin())
		{
			admin.POST("/districts", districts.Create)
			admin.PUT("/districts/:id", districts.Update)
			admin.DELETE("/districts/:id", districts.Delete)
			admin.GET("/districts/bulk-upload", bulk.DistrictTemplate)
			admin.POST("/districts/bulk-upload", bulk.ImportDistricts)

			admin.POST("/positions", positions.Create)
			admin.PUT("/positions/:id", positions.Update)
			admin.DELETE("/positions/:id", positions.Delete)

			admin.POST("/departments", departments.Create)
			admin.PUT("/departments/:id", departments.Update)
			admin.DELETE("/departments/:id", departments.Delete)

			admin.POST("/impact-areas", impactAreas.Create)
			admin.PUT("/impact-areas/:id", impactAreas.Update)
			admin.DELETE("/impact-areas/:id", impactAreas.Delete)

			admin.POST("/institutions", institutions.Create)
			admin.PUT("/institutions/:id", institutions.Update)
			admin.DELETE("/institutions/:id", institutions.Delete)
			admin.GET("/institutions/bulk-upload", bulk.InstitutionTemplate)
			admin.POST("/institutions/bulk-upload", bulk.ImportInstitutions)

			admin.POST("/nominees", nominees.Create)
			admin.PUT("/nominees/:id", nominees.Update)
			admin.DELETE("/nominees/:id", nominees.Delete)
			admin.GET("/nominees/bulk-upload", bulk.NomineeTemplate)
			admin.POST("/nominees/bulk-upload", bulk.ImportNominees)

			admin.PUT("/ratings/:id", ratings.Update)
			admin.DELETE("/ratings/:id", ratings.Delete)

			admin.POST("/rating-categories", ratingCategories.Create)
			admin.PUT("/rating-categories/:id", ratingCategories.Update)
			admin.DELETE("/rating-categories/:id", ratingCategories.Delete)

			admin.POST("/institution-rating-categories", institutionRatingCategories.Create)
			admin.PUT("/institution-rating-categories/:id", institutionRatingCategories.Update)
			admin.DELETE("/institution-rating-categories/:id", institutionRatingCategories.Delete)

			admin.GET("/users", users.List)
			admin.GET("/users/:id", users.Get)
			admin.PUT("/users/:id", users.Update)
			admin.DELETE("/users/:id", users.Delete)

			admin.POST("/upload", uploads.Upload)
		}
	}
}
