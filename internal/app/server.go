// internal/app/server.go
package app

import (
	"fmt"

	"coreadmin-service/internal/config"
	"coreadmin-service/internal/db"
	authHandler "coreadmin-service/internal/handlers/auth"
	captchaHandler "coreadmin-service/internal/handlers/captcha"
	commonHandler "coreadmin-service/internal/handlers/common"
	monitorHandler "coreadmin-service/internal/handlers/monitor"
	systemHandler "coreadmin-service/internal/handlers/system"
	"coreadmin-service/internal/middleware"
	"coreadmin-service/internal/pkg/captcha"
	"coreadmin-service/internal/pkg/idgen"
	"coreadmin-service/internal/pkg/online"
	"coreadmin-service/internal/pkg/security"
	"coreadmin-service/internal/pkg/token"
	"coreadmin-service/internal/repository/postgres"
	authService "coreadmin-service/internal/service/auth"
	systemService "coreadmin-service/internal/service/system"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(s.cfg.Postgres)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(s.cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	// ----- Security primitives -----
	decryptor, err := security.NewRSADecryptorFromBase64(s.cfg.RSAPrivateKey)
	if err != nil {
		return fmt.Errorf("failed to load RSA private key: %w", err)
	}
	tokens := token.NewService(s.cfg.JWT)
	onlineStore := online.NewStore()
	captchaStore := captcha.NewStore(redisClient)
	ids := idgen.New()

	// ----- Repositories -----
	userRepo := postgres.NewUserRepository(pool, ids)
	roleRepo := postgres.NewRoleRepository(pool, ids)
	menuRepo := postgres.NewMenuRepository(pool, ids)
	deptRepo := postgres.NewDeptRepository(pool, ids)
	dictRepo := postgres.NewDictRepository(pool, ids)
	storageRepo := postgres.NewStorageRepository(pool, ids)
	optionRepo := postgres.NewOptionRepository(pool)
	logRepo := postgres.NewSysLogRepository(pool, ids)

	// ----- Services -----
	authSvc := authService.NewService(
		userRepo, roleRepo, menuRepo, deptRepo, optionRepo,
		captchaStore, decryptor, tokens, onlineStore, logger,
	)
	userSvc := systemService.NewUserService(userRepo, roleRepo, deptRepo, decryptor)
	roleSvc := systemService.NewRoleService(roleRepo)
	menuSvc := systemService.NewMenuService(menuRepo)
	deptSvc := systemService.NewDeptService(deptRepo)
	dictSvc := systemService.NewDictService(dictRepo)
	storageSvc := systemService.NewStorageService(storageRepo)
	optionSvc := systemService.NewOptionService(optionRepo)
	logSvc := systemService.NewLogService(logRepo)

	// ----- Handlers -----
	handlers := &Handlers{
		Auth:    authHandler.NewAuthHandler(authSvc),
		Captcha: captchaHandler.NewCaptchaHandler(captchaStore, optionRepo, logger),
		Online:  monitorHandler.NewOnlineHandler(onlineStore, authSvc),
		Log:     monitorHandler.NewLogHandler(logSvc),
		User:    systemHandler.NewUserHandler(userSvc),
		Role:    systemHandler.NewRoleHandler(roleSvc),
		Menu:    systemHandler.NewMenuHandler(menuSvc),
		Dept:    systemHandler.NewDeptHandler(deptSvc),
		Dict:    systemHandler.NewDictHandler(dictSvc),
		Storage: systemHandler.NewStorageHandler(storageSvc),
		Option:  systemHandler.NewOptionHandler(optionSvc),
		Common:  commonHandler.NewCommonHandler(dictSvc, deptSvc, roleSvc, menuSvc, userSvc),

		AuthMiddleware: middleware.NewAuthMiddleware(tokens),
	}

	// ----- Middlewares -----
	logging := middleware.NewLoggingMiddleware(logRepo, logger)
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		logging.Log(),
		middleware.CORSMiddleware(),
	)

	SetupRouter(s.engine, handlers)

	logger.Info("server starting", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}
