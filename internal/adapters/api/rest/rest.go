package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/playmixer/unicredit/docs"
	"github.com/playmixer/unicredit/internal/adapters/store/model"
	"github.com/playmixer/unicredit/internal/core/marketplace"
	"github.com/playmixer/unicredit/pkg/jwt"
)

var (
	cookieName = "token"
	cookieKey  = "UserID"
	ctxUserID  = "userID"
)

type marketplaceI interface {
	SendOTP(ctx context.Context, phone string) error
	Login(ctx context.Context, phone, code string) (model.User, error)
	GetProfile(ctx context.Context, userID uint) (model.User, error)
	Onboard(ctx context.Context, userID uint, profile model.Profile) (model.User, bool, error)
	ListTransactions(ctx context.Context, userID uint) ([]*model.Transaction, error)
	ListNotifications(ctx context.Context, userID uint) ([]*model.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID uint) error
	CreateClass(ctx context.Context, instructorID uint, in marketplace.NewClass) (*model.Class, error)
	GetClass(ctx context.Context, classID uint) (model.Class, error)
	ListClasses(ctx context.Context, department string) ([]*model.Class, error)
	PurchaseClass(ctx context.Context, buyerID, classID uint) error
	CreateTask(ctx context.Context, creatorID uint, in marketplace.NewTask) (*model.Task, error)
	GetTask(ctx context.Context, taskID uint) (model.Task, error)
	ListTasks(ctx context.Context) ([]*model.Task, error)
	ApplyForTask(ctx context.Context, applicantID, taskID uint) error
	CompleteTask(ctx context.Context, requesterID, taskID uint) error
}

type requestObserver interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
	Handler() http.Handler
}

type Server struct {
	log             *zap.Logger
	engine          *gin.Engine
	service         marketplaceI
	metrics         requestObserver
	validate        *validator.Validate
	address         string
	mediaDir        string
	secret          []byte
	tokenTTL        time.Duration
	shutdownTimeout time.Duration
	maxUploadSize   int64
	cookieSecure    bool
}

type Option func(*Server)

func Logger(log *zap.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

func SetAddress(address string) Option {
	return func(s *Server) {
		s.address = address
	}
}

func SetSecretKey(key []byte) Option {
	return func(s *Server) {
		s.secret = key
	}
}

func Metrics(m requestObserver) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// MediaDir serves locally stored class videos under /media.
func MediaDir(dir string) Option {
	return func(s *Server) {
		s.mediaDir = dir
	}
}

func Configure(cfg *Config) Option {
	return func(s *Server) {
		s.address = cfg.Address
		s.secret = []byte(cfg.Secret)
		s.tokenTTL = cfg.TokenTTL
		s.shutdownTimeout = cfg.ShutdownTimeout
		s.maxUploadSize = cfg.MaxUploadSize
		s.cookieSecure = cfg.CookieSecure
	}
}

//	@title			UniCredit
//	@version		1.0
//	@description	Student marketplace where classes and tasks are paid in credits.
//	@host			localhost:8080
//	@BasePath		/

func New(service marketplaceI, options ...Option) (*Server, error) {
	s := &Server{
		log:             zap.NewNop(),
		service:         service,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		address:         ":8080",
		tokenTTL:        24 * time.Hour,
		shutdownTimeout: 10 * time.Second,
		maxUploadSize:   200 << 20,
	}

	for _, opt := range options {
		opt(s)
	}
	if len(s.secret) == 0 {
		return nil, errors.New("secret key is required")
	}

	s.engine = gin.New()
	s.engine.Use(
		gin.Recovery(),
		s.RequestID(),
		s.Logger(),
		s.Metrics(),
		s.GzipDecompress(),
	)

	api := s.engine.Group("/api")
	api.Use(s.GzipCompress())
	{
		auth := api.Group("/auth")
		{
			auth.POST("/otp", s.handlerSendOTP)
			auth.POST("/login", s.handlerLogin)
			auth.POST("/logout", s.handlerLogout)
		}

		private := api.Group("/")
		private.Use(s.Authentication())
		{
			private.GET("/users", s.handlerGetProfile)
			private.PUT("/users", s.handlerOnboard)
			private.GET("/users/transactions", s.handlerListTransactions)

			private.GET("/notifications", s.handlerListNotifications)
			private.POST("/notifications/:id/read", s.handlerReadNotification)

			private.GET("/classes", s.handlerListClasses)
			private.POST("/classes", s.handlerCreateClass)
			private.GET("/classes/:id", s.handlerGetClass)
			private.POST("/classes/:id/purchase", s.handlerPurchaseClass)

			private.GET("/tasks", s.handlerListTasks)
			private.POST("/tasks", s.handlerCreateTask)
			private.GET("/tasks/:id", s.handlerGetTask)
			private.POST("/tasks/:id/apply", s.handlerApplyForTask)
			private.POST("/tasks/:id/complete", s.handlerCompleteTask)
		}
	}

	if s.mediaDir != "" {
		s.engine.Static("/media", s.mediaDir)
	}
	if s.metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return s, nil
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until ctx is cancelled and then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server started", zap.String("address", s.address))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped with error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed shutdown server: %w", err)
	}
	s.log.Info("server stopped")

	return nil
}

func (s *Server) checkAuth(c *gin.Context) (userID uint, err error) {
	var ok bool
	var userIDS string
	cookieUserID, err := c.Request.Cookie(cookieName)
	if err != nil {
		return 0, fmt.Errorf("failed reade user cookie: %w %w", err, errUnauthorize)
	}

	jwtRest := jwt.New(s.secret)
	userIDS, ok, err = jwtRest.Verify(cookieUserID.Value, cookieKey)
	if err != nil {
		return 0, fmt.Errorf("failed verify token: %w %w", err, errUnauthorize)
	}

	if !ok {
		return 0, fmt.Errorf("unverify usercookie: %w", errUnauthorize)
	}

	userID64, err := strconv.ParseUint(userIDS, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("can't convert string userID to uint: %w %w", err, errUnauthorize)
	}

	return uint(userID64), nil
}

func (s *Server) setSession(c *gin.Context, user model.User) error {
	jwtRest := jwt.New(s.secret, jwt.TTL(s.tokenTTL))
	signedCookie, err := jwtRest.Create(cookieKey, strconv.FormatUint(uint64(user.ID), 10))
	if err != nil {
		return fmt.Errorf("can't create cookie data: %w", err)
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    signedCookie,
		Path:     "/",
		MaxAge:   int(s.tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func unauthorize(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

func currentUser(c *gin.Context) uint {
	v, _ := c.Get(ctxUserID)
	userID, _ := v.(uint)
	return userID
}

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: bad id %q", errBadRequest, c.Param("id"))
	}
	return uint(id), nil
}
