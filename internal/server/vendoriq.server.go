package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/rajat8876/VendorIQ2/internal/config"
	"github.com/rajat8876/VendorIQ2/internal/formfield"
	"github.com/rajat8876/VendorIQ2/internal/handler"
	"github.com/rajat8876/VendorIQ2/internal/otp"
	"github.com/rajat8876/VendorIQ2/internal/repository"
	"github.com/rajat8876/VendorIQ2/internal/router"
	"github.com/rajat8876/VendorIQ2/internal/service/email"
	"github.com/rajat8876/VendorIQ2/internal/service/notify"
	"github.com/rajat8876/VendorIQ2/internal/service/payment"
	"github.com/rajat8876/VendorIQ2/internal/service/sms"
	"github.com/rajat8876/VendorIQ2/internal/usecase"
	"github.com/rajat8876/VendorIQ2/pkg/cache"
	"github.com/rajat8876/VendorIQ2/pkg/id"
	"github.com/rajat8876/VendorIQ2/pkg/jwtutil"
)

// Server owns every long-lived dependency and tears them down in
// reverse construction order.
type Server struct {
	httpServer *http.Server
	db         *pgxpool.Pool
	cache      *cache.Cache
	memStore   *otp.MemoryStore
	logger     *zap.Logger
}

func New(cfg config.Config, logger *zap.Logger) (*Server, error) {
	db, err := pgxpool.New(context.Background(), cfg.DBConnString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisCache := cache.NewCache([]string{cfg.RedisAddr}, cfg.RedisPass, false)

	// Passcode storage: redis when reachable, process memory otherwise.
	memStore := otp.NewMemoryStore()
	otpStore := otp.NewFallbackStore(otp.NewRedisStore(redisCache), memStore, logger)

	emailSender := email.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, logger)
	smsSender := sms.NewSender(cfg.SMSAccountSID, cfg.SMSAuthToken, cfg.SMSFrom, logger)
	notifier := notify.NewRouter(emailSender, smsSender)

	otpManager := otp.NewManager(otpStore, notifier, logger)
	signer := jwtutil.NewSigner(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	gateway := payment.NewClient(cfg.PaymentKeyID, cfg.PaymentKeySecret, cfg.PaymentBaseURL, logger)

	sf, err := id.NewSnowflake(cfg.NodeID)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init id generator: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	fieldRepo := repository.NewFormFieldRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	requestRepo := repository.NewServiceRequestRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	fileRepo := repository.NewFileRepository(db)

	validator := formfield.NewValidator(fieldRepo, logger)

	authUC := usecase.NewAuthUsecase(userRepo, otpManager, signer, logger)
	requestUC := usecase.NewRequestUsecase(requestRepo, userRepo, validator, sf, logger)
	billingUC := usecase.NewBillingUsecase(subRepo, userRepo, gateway, emailSender, logger)
	fileUC := usecase.NewFileUsecase(fileRepo, cfg.UploadDir, logger)

	r := chi.NewRouter()
	router.SetupRoutes(r, signer,
		handler.NewAuthHandler(authUC, logger),
		handler.NewCatalogHandler(catalogRepo, fieldRepo, logger),
		handler.NewRequestHandler(requestUC, logger),
		handler.NewBillingHandler(billingUC, logger),
		handler.NewFileHandler(fileUC, logger),
		handler.NewHealthHandler(db, redisCache),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      r,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		db:       db,
		cache:    redisCache,
		memStore: memStore,
		logger:   logger,
	}, nil
}

func (s *Server) Start() error {
	s.logger.Info("http server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	s.memStore.Close()
	if cerr := s.cache.Close(); cerr != nil && err == nil {
		err = cerr
	}
	s.db.Close()
	return err
}
