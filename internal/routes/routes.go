package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/audit"
	"github.com/BruksfildServices01/trainer-manager/internal/auth"
	"github.com/BruksfildServices01/trainer-manager/internal/config"
	"github.com/BruksfildServices01/trainer-manager/internal/dataservice"
	"github.com/BruksfildServices01/trainer-manager/internal/handlers"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/filestore"
	"github.com/BruksfildServices01/trainer-manager/internal/middleware"
	ucBilling "github.com/BruksfildServices01/trainer-manager/internal/usecase/billing"
	ucStudent "github.com/BruksfildServices01/trainer-manager/internal/usecase/student"
	ucSubscription "github.com/BruksfildServices01/trainer-manager/internal/usecase/subscription"
)

// Deps is everything main builds once per process.
type Deps struct {
	Config *config.Config

	Store      *dataservice.Service
	Auth       *auth.Service
	AuditStore audit.Store
	Audit      *audit.Dispatcher
	Uploader   filestore.Uploader

	// nil quando MP_ACCESS_TOKEN não está configurado
	Gateway ucSubscription.Gateway
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins...))

	tz := d.Config.Timezone

	// ======================================================
	// 🧠 USE CASES — FINANCEIRO
	// ======================================================
	monthOverviewUC := ucBilling.NewGetMonthOverview(d.Store, tz)

	togglePaymentUC := ucBilling.NewTogglePayment(
		d.Store,
		monthOverviewUC,
		d.Audit,
	)

	listPaymentsInRangeUC := ucBilling.NewListPaymentsInRange(d.Store)

	attachProofUC := ucBilling.NewAttachProof(
		d.Store,
		d.Uploader,
		d.Audit,
	)

	// ======================================================
	// 🧠 USE CASES — ALUNOS
	// ======================================================
	uploadFileUC := ucStudent.NewUploadFile(
		d.Store,
		d.Uploader,
		d.Audit,
		tz,
	)

	getWeekUC := ucStudent.NewGetWeek(d.Store, tz)

	// ======================================================
	// 🧠 USE CASES — ASSINATURA
	// ======================================================
	var (
		startCheckoutUC      *ucSubscription.StartCheckout
		handleNotificationUC *ucSubscription.HandleNotification
	)
	if d.Gateway != nil {
		startCheckoutUC = ucSubscription.NewStartCheckout(
			d.Store,
			d.Gateway,
			d.Config.SubscriptionPrice,
		)
		handleNotificationUC = ucSubscription.NewHandleNotification(
			d.Store,
			d.Gateway,
			d.Audit,
			d.Config.SubscriptionDays,
		)
	}

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.Auth, d.Store, d.Audit)
	meHandler := handlers.NewMeHandler(d.Store, d.Audit)

	studentHandler := handlers.NewStudentHandler(
		d.Store,
		d.Audit,
		uploadFileUC,
		getWeekUC,
	)

	workoutHandler := handlers.NewWorkoutHandler(d.Store, d.Audit)
	scheduleHandler := handlers.NewScheduleHandler(d.Store, d.Audit, tz)

	financeHandler := handlers.NewFinanceHandler(
		d.Store,
		d.Audit,
		tz,
		monthOverviewUC,
		togglePaymentUC,
		listPaymentsInRangeUC,
		attachProofUC,
	)

	subscriptionHandler := handlers.NewSubscriptionHandler(
		startCheckoutUC,
		handleNotificationUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditStore, tz)

	// ======================================================
	// ❤️ HEALTH
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"cloud":  d.Store.IsCloudActive(),
		})
	})

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 💳 WEBHOOKS
		// ------------------------------
		api.POST("/webhooks/mercadopago", subscriptionHandler.Webhook)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Auth))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			// ------------------------------
			// ALUNOS
			// ------------------------------
			secured.GET("/me/students", studentHandler.List)
			secured.POST("/me/students", studentHandler.Create)
			secured.GET("/me/students/:id", studentHandler.Get)
			secured.PUT("/me/students/:id", studentHandler.Update)
			secured.DELETE("/me/students/:id", studentHandler.Delete)
			secured.GET("/me/students/:id/week", studentHandler.Week)
			secured.POST("/me/students/:id/files", studentHandler.UploadFile)
			secured.GET("/me/students/:id/payments", studentHandler.Payments)

			// ------------------------------
			// TREINOS
			// ------------------------------
			secured.GET("/me/folders", workoutHandler.ListFolders)
			secured.POST("/me/folders", workoutHandler.SaveFolder)
			secured.DELETE("/me/folders/:id", workoutHandler.DeleteFolder)

			secured.GET("/me/templates", workoutHandler.ListTemplates)
			secured.POST("/me/templates", workoutHandler.SaveTemplate)
			secured.DELETE("/me/templates/:id", workoutHandler.DeleteTemplate)

			secured.GET("/me/exercises", workoutHandler.ListExercises)
			secured.POST("/me/exercises", workoutHandler.SaveExercise)
			secured.DELETE("/me/exercises/:id", workoutHandler.DeleteExercise)

			// ------------------------------
			// AGENDA
			// ------------------------------
			secured.GET("/me/events", scheduleHandler.List)
			secured.POST("/me/events", scheduleHandler.Save)
			secured.DELETE("/me/events/:id", scheduleHandler.Delete)

			// ------------------------------
			// FINANCEIRO
			// ------------------------------
			secured.POST("/me/payments", financeHandler.RecordPayment)
			secured.DELETE("/me/payments/:id", financeHandler.DeletePayment)
			secured.POST("/me/payments/:id/proof", financeHandler.AttachProof)

			secured.GET("/me/finance", financeHandler.MonthOverview)
			secured.POST("/me/finance/toggle", financeHandler.Toggle)
			secured.GET("/me/finance/range", financeHandler.Range)

			// ------------------------------
			// ASSINATURA
			// ------------------------------
			secured.POST("/me/subscription/checkout", subscriptionHandler.Checkout)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
