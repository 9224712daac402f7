package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yeremiapane/bar-app/controllers"
	"github.com/yeremiapane/bar-app/middlewares"
	"github.com/yeremiapane/bar-app/models"
	"github.com/yeremiapane/bar-app/services"
)

// Options carries the settings the HTTP layer needs from config.
type Options struct {
	ManagerPasscode string
	CORSOrigin      string
}

func SetupRouter(bar *services.Bar, opts Options) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(opts.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	userCtrl, err := controllers.NewUserController(opts.ManagerPasscode)
	if err != nil {
		return nil, err
	}
	tableCtrl := controllers.NewTableController(bar)
	categoryCtrl := controllers.NewMenuCategoryController(bar)
	menuCtrl := controllers.NewMenuController(bar)
	orderCtrl := controllers.NewOrderController(bar)
	paymentCtrl := controllers.NewPaymentController(bar)
	expenseCtrl := controllers.NewExpenseController(bar)
	adminCtrl := controllers.NewAdminController(bar)
	receiptCtrl := controllers.NewReceiptController(bar)

	attendant := string(models.RoleAttendant)
	kitchen := string(models.RoleKitchen)
	manager := string(models.RoleManager)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rate limiter untuk login
	r.POST("/session", middlewares.NewStrictRateLimiter(), userCtrl.Login)

	// Endpoint KDS WebSocket, token lewat query
	r.GET("/ws/:role", middlewares.WebSocketAuthMiddleware(), controllers.KDSHandler)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/session", userCtrl.GetProfile)
		auth.DELETE("/session", userCtrl.Logout)

		// Semua peran
		auth.GET("/menu", menuCtrl.GetAllMenus)
		auth.GET("/menu/categories", categoryCtrl.GetAllCategories)
		auth.GET("/menu/:id", menuCtrl.GetMenu)
		auth.GET("/tables", tableCtrl.GetAllTables)
		auth.GET("/tables/ready", tableCtrl.GetReadyTables)
		auth.GET("/tables/:id", tableCtrl.GetTable)

		// Atendente
		floor := auth.Group("/")
		floor.Use(middlewares.RoleCheck(attendant, manager))
		{
			floor.GET("/tables/:id/draft", orderCtrl.GetDraft)
			floor.POST("/tables/:id/draft", orderCtrl.AddToDraft)
			floor.DELETE("/tables/:id/draft/:index", orderCtrl.RemoveDraftLine)
			floor.POST("/tables/:id/draft/send", orderCtrl.SendDraft)
			floor.POST("/tables/:id/items", tableCtrl.AddItems)
			floor.POST("/tables/:id/pickup", orderCtrl.MarkPickedUp)
		}

		// Dapur
		kitchenGroup := auth.Group("/")
		kitchenGroup.Use(middlewares.RoleCheck(kitchen, manager))
		{
			kitchenGroup.GET("/kitchen/orders", orderCtrl.GetKitchenOrders)
			kitchenGroup.POST("/tables/:id/ready", orderCtrl.MarkReady)
		}

		// Gerente
		admin := auth.Group("/")
		admin.Use(middlewares.RoleCheck(manager))
		{
			admin.POST("/tables", tableCtrl.CreateTable)
			admin.DELETE("/tables/:id", tableCtrl.DeleteTable)
			admin.DELETE("/tables/:id/items/:index", tableCtrl.CancelItem)
			admin.POST("/tables/:id/payment", paymentCtrl.SendToPayment)
			admin.POST("/tables/:id/close",
				middlewares.PaymentRateLimiter(),
				middlewares.LogPaymentRequest(),
				middlewares.ValidatePaymentRequest(),
				paymentCtrl.CloseTable)

			admin.POST("/menu", menuCtrl.CreateMenu)
			admin.PATCH("/menu/:id", menuCtrl.UpdateMenu)
			admin.DELETE("/menu/:id", menuCtrl.DeleteMenu)

			admin.GET("/expenses", expenseCtrl.GetAllExpenses)
			admin.POST("/expenses", expenseCtrl.CreateExpense)
			admin.PATCH("/expenses/:id", expenseCtrl.UpdateExpense)
			admin.DELETE("/expenses/:id", expenseCtrl.DeleteExpense)

			admin.GET("/history", receiptCtrl.GetHistory)
			admin.GET("/history/:order_id", receiptCtrl.GetClosedOrder)
			admin.GET("/history/:order_id/receipt", middlewares.ReceiptLoggerMiddleware(), receiptCtrl.GenerateReceipt)

			admin.GET("/finance/daily", adminCtrl.GetDashboardStats)
			admin.GET("/finance/summary", adminCtrl.GetDailySummary)
			admin.GET("/finance/range", adminCtrl.GetRangeSummary)
			admin.GET("/finance/series", adminCtrl.GetDailySeries)
			admin.GET("/finance/export.csv", middlewares.ReceiptLoggerMiddleware(), adminCtrl.ExportCSV)
			admin.GET("/finance/export.pdf", middlewares.ReceiptLoggerMiddleware(), adminCtrl.ExportPDF)
		}
	}

	return r, nil
}
