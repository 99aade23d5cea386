package cli

import (
	"fmt"

	"go.uber.org/zap"

	"greencross/internal/agegate"
	"greencross/internal/cart"
	"greencross/internal/cart/storage"
	catalogrepo "greencross/internal/catalog/repository"
	catalogservice "greencross/internal/catalog/service"
	"greencross/internal/checkout"
	"greencross/internal/config"
	"greencross/internal/infrastructure/logger"
	locationrepo "greencross/internal/location/repository"
	locationservice "greencross/internal/location/service"
	"greencross/internal/preorder/client"
)

// App is everything a storefront command needs.
type App struct {
	Products  *catalogservice.ProductService
	Locations *locationservice.LocationService
	Cart      *cart.Store
	Gate      *agegate.Gate
	Checkout  *checkout.Flow
	Logger    *zap.Logger
}

func NewApp(st cart.Storage, submitter checkout.Submitter, logger *zap.Logger) (*App, error) {
	products, err := catalogrepo.NewStaticRepository()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	locations, err := locationrepo.NewStaticRepository()
	if err != nil {
		return nil, fmt.Errorf("loading locations: %w", err)
	}

	store := cart.NewStore(products, st, logger)

	return &App{
		Products:  catalogservice.NewService(products),
		Locations: locationservice.NewService(locations),
		Cart:      store,
		Gate:      agegate.New(st, logger),
		Checkout:  checkout.NewFlow(store, submitter, logger),
		Logger:    logger,
	}, nil
}

type GlobalOptions struct {
	ConfigPath string
	StatePath  string
	APIURL     string
}

type Loader func(opts GlobalOptions) (*App, error)

// LoadApp builds the App from config. Flags win over config values.
func LoadApp(opts GlobalOptions) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	zapLogger, err := logger.New(cfg.Log.Level, "console")
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	statePath := cfg.Storefront.StatePath
	if opts.StatePath != "" {
		statePath = opts.StatePath
	}
	apiURL := cfg.Storefront.APIURL
	if opts.APIURL != "" {
		apiURL = opts.APIURL
	}

	zapLogger.Debug("storefront state", zap.String("path", statePath), zap.String("apiUrl", apiURL))

	return NewApp(storage.NewFileStorage(statePath, zapLogger), client.New(apiURL, nil), zapLogger)
}
