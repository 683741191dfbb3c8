package router

import (
	"careerCompass/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired, adminOnly, selfOrAdmin echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.GET("/email-verification/:code", handler.VerifyEmail)
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.POST("/logout", handler.Logout, authRequired)
	users.PUT("/:id", handler.UpdateUser, authRequired, selfOrAdmin)
	users.GET("", handler.GetAllUsers, authRequired, adminOnly)
	users.GET("/:id", handler.GetUserByID, authRequired, selfOrAdmin)
	users.DELETE("/:id", handler.DeleteUser, authRequired, adminOnly)
}

func SetupQuizRoutes(api *echo.Group, handler *rest.QuizHandler, authRequired echo.MiddlewareFunc) {
	sessions := api.Group("/quiz/sessions", authRequired)

	sessions.POST("", handler.StartSession)
	sessions.GET("/:id/questions", handler.Questions)
	sessions.POST("/:id/responses", handler.RecordResponse)
	sessions.GET("/:id/responses", handler.Responses)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, oppHandler *rest.OpportunityHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired)

	reco.POST("/career", handler.GenerateCareerRecommendations)
	reco.POST("/career-description", handler.CareerDescription)
	reco.POST("/opportunities", oppHandler.MapOpportunities)
	reco.GET("/history", handler.History)
}

func SetupFeedbackRoutes(api *echo.Group, handler *rest.FeedbackHandler, authRequired echo.MiddlewareFunc) {
	feedback := api.Group("/feedback", authRequired)

	feedback.POST("", handler.Submit)
	feedback.GET("", handler.Get)
}

// SetupJobsRoutes registers the scheduled maintenance endpoints, guarded by
// the service credential rather than a user session.
func SetupJobsRoutes(api *echo.Group, handler *rest.JobsHandler, serviceAuth echo.MiddlewareFunc) {
	jobs := api.Group("/jobs", serviceAuth)

	jobs.POST("/refresh-data", handler.RefreshData)
	jobs.POST("/train-model", handler.TrainModel)
}

func SetupCollegeRoutes(api *echo.Group, handler *rest.CollegeHandler, authRequired, adminOnly echo.MiddlewareFunc) {
	colleges := api.Group("/colleges")

	colleges.GET("", handler.GetAllColleges, authRequired)
	colleges.GET("/:id", handler.GetCollegeByID, authRequired)
	colleges.POST("", handler.CreateCollege, authRequired, adminOnly)
	colleges.PUT("/:id", handler.UpdateCollege, authRequired, adminOnly)
	colleges.DELETE("/:id", handler.DeleteCollege, authRequired, adminOnly)
}

func SetupScholarshipRoutes(api *echo.Group, handler *rest.ScholarshipHandler, authRequired, adminOnly echo.MiddlewareFunc) {
	scholarships := api.Group("/scholarships")

	scholarships.GET("", handler.GetAllScholarships, authRequired)
	scholarships.GET("/:id", handler.GetScholarshipByID, authRequired)
	scholarships.POST("", handler.CreateScholarship, authRequired, adminOnly)
	scholarships.PUT("/:id", handler.UpdateScholarship, authRequired, adminOnly)
	scholarships.DELETE("/:id", handler.DeleteScholarship, authRequired, adminOnly)
}

func SetupJobPostingRoutes(api *echo.Group, handler *rest.JobPostingHandler, authRequired, adminOnly echo.MiddlewareFunc) {
	jobs := api.Group("/job-postings")

	jobs.GET("", handler.GetAllJobPostings, authRequired)
	jobs.GET("/:id", handler.GetJobPostingByID, authRequired)
	jobs.POST("", handler.CreateJobPosting, authRequired, adminOnly)
	jobs.PUT("/:id", handler.UpdateJobPosting, authRequired, adminOnly)
	jobs.DELETE("/:id", handler.DeleteJobPosting, authRequired, adminOnly)
}

func SetupReferenceRoutes(api *echo.Group, handler *rest.ReferenceHandler, authRequired, adminOnly echo.MiddlewareFunc) {
	faqs := api.Group("/faqs")
	faqs.GET("", handler.GetAllFAQs)
	faqs.POST("", handler.CreateFAQ, authRequired, adminOnly)
	faqs.PUT("/:id", handler.UpdateFAQ, authRequired, adminOnly)
	faqs.DELETE("/:id", handler.DeleteFAQ, authRequired, adminOnly)

	ngos := api.Group("/ngos")
	ngos.GET("", handler.GetAllNGOs)
	ngos.POST("", handler.CreateNGO, authRequired, adminOnly)
	ngos.PUT("/:id", handler.UpdateNGO, authRequired, adminOnly)
	ngos.DELETE("/:id", handler.DeleteNGO, authRequired, adminOnly)
}

func SetupFavoritesRoutes(api *echo.Group, handler *rest.FavoritesHandler, authRequired echo.MiddlewareFunc) {
	favorites := api.Group("/favorites", authRequired)

	favorites.POST("", handler.Add)
	favorites.DELETE("", handler.Remove)
	favorites.GET("", handler.List)
}
