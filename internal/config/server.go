package config

import (
	"fmt"
	"os"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/database/postgres"
	authHandler "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/auth/handler"
	authRepository "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/auth/repository"
	authService "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/auth/service"
	chatHandler "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/chat/handler"
	chatRepository "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/chat/repository"
	chatService "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/chat/service"
	financeHandler "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance/handler"
	financeRepository "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance/repository"
	financeService "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance/service"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/middleware"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/bcrypt"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/nlp"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/redis"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/simulation"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	handlers    []handler
	chatHistory redis.IChatHistory
	keywords    *nlp.Keywords
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.keywords == nil {
		server.keywords = nlp.DefaultKeywords()
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(chatHistory redis.IChatHistory) ServerOption {
	return func(s *Server) error {
		s.chatHistory = chatHistory
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithNLPKeywords loads the keyword tables from NLP_KEYWORDS_FILE when it is
// set. The embedded defaults are used otherwise.
func WithNLPKeywords() ServerOption {
	return func(s *Server) error {
		path := os.Getenv("NLP_KEYWORDS_FILE")
		if path == "" {
			s.keywords = nlp.DefaultKeywords()
			return nil
		}

		kw, err := nlp.LoadKeywords(path)
		if err != nil {
			return fmt.Errorf("failed to load keywords from %s: %w", path, err)
		}
		if s.log != nil {
			s.log.Infof("Loaded NLP keywords from %s", path)
		}
		s.keywords = kw
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Wallet & Transactions
	financeRepo := financeRepository.New(s.db, s.log)
	financeServices := financeService.NewFinanceService(s.log, financeRepo, s.utils)
	financeHandlers := financeHandler.New(s.log, s.validator, s.middleware, financeServices)

	// Chat
	chatRepo := chatRepository.New(s.db, s.log)
	chatServices := chatService.NewChatService(s.log, nlp.New(s.keywords), simulation.NewCalculator(),
		financeServices, financeServices, chatRepo, s.chatHistory, s.utils)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, financeHandlers, chatHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown() error {
	if err := s.engine.Shutdown(); err != nil {
		return err
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
