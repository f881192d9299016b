package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shoppa/internal/config"
	"shoppa/internal/domain/model"
	"shoppa/internal/handler"
	"shoppa/internal/infra/catalog"
	"shoppa/internal/infra/db"
	"shoppa/internal/infra/logger"
	infraRepo "shoppa/internal/infra/repository"
	"shoppa/internal/infra/token"
	"shoppa/internal/repository"
	"shoppa/internal/server"
	"shoppa/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	//.envは無くてもよい
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//カタログ
	products, err := newProductRepository(ctx, cfg, log)
	if err != nil {
		return err
	}

	//セッションはプロセス内のみ
	sessions := infraRepo.NewSessionMemoryRepository()
	issuer := token.NewJWTIssuer(cfg.JWTSecret, cfg.SessionTTL)

	idGen := &uuidGenerator{}
	clock := &realClock{}

	//Usecase生成
	productUC := usecase.NewProductUsecase(products)
	sessionUC := usecase.NewSessionUsecase(sessions, issuer, idGen, clock, log)
	cartUC := usecase.NewCartUsecase(sessions, products, log)
	checkoutUC := usecase.NewCheckoutUsecase(sessions, idGen, clock, log)

	//Handler生成
	e := server.New(server.Deps{
		Logger:   log,
		Tokens:   issuer,
		Sessions: sessions,
		Handlers: server.Handlers{
			Products: handler.NewProductHandler(productUC),
			Sessions: handler.NewSessionHandler(sessionUC),
			Cart:     handler.NewCartHandler(cartUC),
			Checkout: handler.NewCheckoutHandler(checkoutUC),
		},
	})

	//Server起動
	return server.Run(ctx, e, cfg.Addr(), cfg.ShutdownTimeout, log)
}

func newProductRepository(ctx context.Context, cfg config.Config, log *zap.Logger) (repository.ProductRepository, error) {
	switch cfg.CatalogSource {
	case config.CatalogSourceFile:
		products, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		log.Info("catalog loaded", zap.String("source", "file"), zap.String("path", cfg.CatalogFile), zap.Int("products", len(products)))
		return infraRepo.NewProductMemoryRepository(products)

	case config.CatalogSourcePostgres:
		gormDB, err := db.Connect(cfg)
		if err != nil {
			return nil, fmt.Errorf("connect db: %w", err)
		}
		if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}

		r := infraRepo.NewProductGormRepository(gormDB)
		seeded, err := r.SeedIfEmpty(ctx, catalog.DefaultProducts())
		if err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		n, err := catalog.Verify(ctx, r)
		if err != nil {
			return nil, err
		}
		log.Info("catalog loaded", zap.String("source", "postgres"), zap.Bool("seeded", seeded), zap.Int("products", n))
		return r, nil

	default:
		log.Info("catalog loaded", zap.String("source", "static"))
		return infraRepo.NewProductMemoryRepository(catalog.DefaultProducts())
	}
}
