// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/maps-cache-service/config"
)

// App holds the wired components of a running service.
type App struct {
	Router   *gin.Engine
	Storage  *StorageComponents
	Services *ServiceComponents
}

// InitializeApp creates and wires all application dependencies.
// The logger must be initialized before calling it.
func InitializeApp(ctx context.Context, cfg config.Config) *App {
	storage := InitializeStorage(ctx, cfg.Storage)
	services := InitializeServices(ctx, cfg, storage.Store)
	router := InitializeRouter(cfg.Server, storage, services)

	return &App{
		Router:   router,
		Storage:  storage,
		Services: services,
	}
}

// Close stops the background sweep and releases the storage connections.
func (a *App) Close(ctx context.Context) error {
	a.Services.Cache.Stop()
	return a.Storage.Close(ctx)
}
