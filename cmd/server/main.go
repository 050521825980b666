package main

import (
	"log"

	_ "regeve-backend/docs"
	"regeve-backend/internal/config"
	"regeve-backend/internal/database"
	"regeve-backend/internal/handlers"
	"regeve-backend/internal/middleware"
	"regeve-backend/internal/services"
	"regeve-backend/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Regeve Election API
// @version         1.0
// @description     Election and voting backend for the Regeve event-operations suite
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	electionService := services.NewElectionService(db)
	candidateService := services.NewCandidateService(db)
	ballotService := services.NewBallotService(db)
	winnerService := services.NewWinnerService(db)

	authHandler := handlers.NewAuthHandler(authService)
	electionHandler := handlers.NewElectionHandler(electionService)
	positionHandler := handlers.NewPositionHandler(electionService)
	candidateHandler := handlers.NewCandidateHandler(candidateService, cfg)
	ballotHandler := handlers.NewBallotHandler(ballotService, hub)
	winnerHandler := handlers.NewWinnerHandler(winnerService, hub)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Static("/uploads", cfg.UploadDir)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/election/:id", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		voters := api.Group("/voters")
		{
			voters.POST("/register", authHandler.RegisterVoter)
			voters.POST("/login", authHandler.LoginVoter)
		}

		elections := api.Group("/elections")
		{
			elections.POST("", middleware.OrganizerAuth(authService), electionHandler.CreateElection)
			elections.GET("", middleware.OrganizerAuth(authService), electionHandler.ListElections)
			elections.GET("/:id", electionHandler.GetElection)
			elections.POST("/:id/positions", middleware.OrganizerAuth(authService), positionHandler.CreatePosition)
			elections.GET("/:id/positions", positionHandler.ListPositions)
			elections.GET("/:id/winners", winnerHandler.ListWinners)
			elections.GET("/:id/my-ballots", middleware.VoterAuth(authService), ballotHandler.GetMyBallots)
		}

		positions := api.Group("/positions")
		{
			positions.DELETE("/:id", middleware.OrganizerAuth(authService), positionHandler.DeletePosition)
			positions.POST("/:id/candidates", middleware.OrganizerAuth(authService), candidateHandler.AddCandidate)
			positions.GET("/:id/tally", ballotHandler.GetTally)
			positions.POST("/:id/winner", middleware.OrganizerAuth(authService), winnerHandler.DeclareWinner)
			positions.GET("/:id/winner", winnerHandler.GetWinner)
		}

		candidates := api.Group("/candidates")
		candidates.Use(middleware.OrganizerAuth(authService))
		{
			candidates.DELETE("/:id", candidateHandler.RemoveCandidate)
		}

		upload := api.Group("/upload")
		upload.Use(middleware.OrganizerAuth(authService))
		{
			upload.POST("", candidateHandler.UploadPhoto)
		}

		votes := api.Group("/votes")
		votes.Use(middleware.VoterAuth(authService))
		{
			votes.POST("", ballotHandler.CastVote)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
