package routes

import (
	"cloud.google.com/go/firestore"
	language "cloud.google.com/go/language/apiv2"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-greenprint/aimodel"
	"go-greenprint/db"
	"go-greenprint/footprint"
	"go-greenprint/handlers"
	"go-greenprint/processor"
)

func SetupRouter(firestoreClient *firestore.Client, langClient *language.Client, aiClient *openai.Client) *gin.Engine {
	r := gin.Default()

	carbonRepo := db.NewCarbonRepository(firestoreClient)
	userRepo := db.NewUserRepository(firestoreClient)
	pointsRepo := db.NewPointsRepository(firestoreClient)
	taskRepo := db.NewTaskRepository(firestoreClient)
	marketplaceRepo := db.NewMarketplaceRepository(firestoreClient)

	calc := footprint.NewCalculator(footprint.DefaultFactors())
	var strategy processor.ComputeStrategy
	if aiClient != nil {
		strategy = aimodel.Strategy{Client: aiClient}
	}
	footprintSvc := processor.NewFootprintService(carbonRepo, calc, strategy)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to GreenPrint!",
		})
	})

	// api routes
	api := r.Group("/api/greenprint")
	{
		api.GET("/carbon/:userID", func(c *gin.Context) {
			handlers.GetCarbonData(c, footprintSvc)
		})
		api.POST("/carbon/:userID", func(c *gin.Context) {
			handlers.SaveCarbonData(c, footprintSvc)
		})
		api.GET("/footprint/:userID", func(c *gin.Context) {
			handlers.GetFootprint(c, footprintSvc)
		})

		api.GET("/tasks", func(c *gin.Context) {
			handlers.GetTasks(c, taskRepo)
		})
		api.POST("/tasks/assign", func(c *gin.Context) {
			handlers.AssignTask(c, taskRepo)
		})
		api.PATCH("/tasks/:userTaskID", func(c *gin.Context) {
			handlers.UpdateTaskStatus(c, taskRepo, pointsRepo)
		})
		api.GET("/tasks/user/:userID", func(c *gin.Context) {
			handlers.GetUserTasks(c, taskRepo)
		})

		api.GET("/marketplace", func(c *gin.Context) {
			handlers.GetProducts(c, marketplaceRepo)
		})
		api.GET("/marketplace/:productID", func(c *gin.Context) {
			handlers.GetProduct(c, marketplaceRepo)
		})
		api.POST("/marketplace/purchase", func(c *gin.Context) {
			handlers.PurchaseProduct(c, marketplaceRepo)
		})

		api.GET("/points/:userID", func(c *gin.Context) {
			handlers.GetUserPoints(c, pointsRepo)
		})
		api.GET("/points/:userID/history", func(c *gin.Context) {
			handlers.GetPointHistory(c, pointsRepo)
		})
		api.POST("/points", func(c *gin.Context) {
			handlers.AddPoints(c, pointsRepo)
		})

		api.GET("/users/:userID", func(c *gin.Context) {
			handlers.GetUser(c, userRepo)
		})
		api.POST("/users", func(c *gin.Context) {
			handlers.CreateUser(c, userRepo)
		})
		api.PATCH("/users/:userID", func(c *gin.Context) {
			handlers.UpdateUser(c, userRepo)
		})

		api.POST("/classify", func(c *gin.Context) {
			handlers.SuggestCategory(c, langClient)
		})
		api.GET("/demo", handlers.GetDemoFootprint)
	}

	return r
}
