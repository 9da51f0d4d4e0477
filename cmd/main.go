package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/nqhuy/kanban-server/internal/api/http/context"
	"github.com/nqhuy/kanban-server/internal/api/http/router"
	httpServer "github.com/nqhuy/kanban-server/internal/api/http/server"
	"github.com/nqhuy/kanban-server/internal/config"
	"github.com/nqhuy/kanban-server/internal/logger"
	"github.com/nqhuy/kanban-server/internal/model"
	"github.com/nqhuy/kanban-server/internal/password"
	"github.com/nqhuy/kanban-server/internal/repository/postgres"
	"github.com/nqhuy/kanban-server/internal/server"
	"github.com/nqhuy/kanban-server/internal/service"
	storage "github.com/nqhuy/kanban-server/internal/storage/minio"
	"github.com/nqhuy/kanban-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	workspaceRepo := postgres.NewWorkspaceRepository(db)
	boardRepo := postgres.NewBoardRepository(db)
	listRepo := postgres.NewListRepository(db)
	cardRepo := postgres.NewCardRepository(db)

	tokenManager := token.NewJWT(cfg.Auth.AccessTokenSecret, cfg.Auth.AccessTokenTTL)
	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	ctxMgr := httpctx.NewManager()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	authService := service.NewAuth(userRepo, sessionRepo, hasher, tokenManager, cfg.Auth.RefreshTokenTTL, logger)
	userService := service.NewUser(userRepo, storageClient, logger)
	workspaceService := service.NewWorkspace(workspaceRepo, boardRepo, logger)
	boardService := service.NewBoard(boardRepo, workspaceRepo, listRepo, cardRepo, logger)

	r := router.New(authService, userService, workspaceService, boardService,
		tokenManager, userRepo, ctxMgr, cfg.ClientURL, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
