// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"bestdeal-service/internal/config"
	"bestdeal-service/internal/db"
	inventoryHandler "bestdeal-service/internal/handlers/inventory"
	leadHandler "bestdeal-service/internal/handlers/leads"
	"bestdeal-service/internal/middleware"
	"bestdeal-service/internal/repository/mongodb"
	"bestdeal-service/internal/service/email"
	inventoryUsecase "bestdeal-service/internal/service/inventory"
	leadUsecase "bestdeal-service/internal/service/leads"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	mongo  *mongo.Client
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	s.logger = logger

	// ----- MongoDB -----
	client, err := db.Connect(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	s.mongo = client
	log.Println("[MONGO] ✅ Connected successfully")

	store := mongodb.NewStore(client.Database(s.cfg.DatabaseName))

	// ----- Email -----
	emailSender := email.NewEmailSender(
		s.cfg.SMTPHost,
		s.cfg.SMTPPort,
		s.cfg.SMTPUser,
		s.cfg.SMTPPass,
		s.cfg.SMTPFrom,
		s.cfg.LeadTo,
		s.cfg.DealerName,
		s.cfg.SMTPSecure,
		logger,
	)

	// ----- Services (Usecases) -----
	inventoryService := inventoryUsecase.NewInventoryService(store, logger)
	leadService := leadUsecase.NewLeadService(store, emailSender, logger)

	// ----- Handlers -----
	inventoryHandlerInst := inventoryHandler.NewInventoryHandler(inventoryService)
	leadHandlerInst := leadHandler.NewLeadHandler(leadService)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		InventoryHandler: inventoryHandlerInst,
		LeadHandler:      leadHandlerInst,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	log.Printf("🚀 %s API running on %s", s.cfg.DealerName, s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}

// Shutdown releases the shared resources acquired in Start: the Mongo client
// and the buffered logger.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.logger != nil {
		_ = s.logger.Sync()
	}
	if s.mongo != nil {
		return s.mongo.Disconnect(ctx)
	}
	return nil
}
