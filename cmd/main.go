// Package main is the entry point for the maps-cache service.
//
// @title           Maps Cache Service API
// @version         1.0.0
// @description     Caching layer in front of the Google Maps geocoding, directions and place details APIs.
//
//	Results are kept per category with their own lifetime and survive restarts.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/maps-cache-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 Admin API key for the cache administration endpoints.
//
// @tag.name        Maps
// @tag.description Geocoding, routing and place lookups
//
// @tag.name        Cache
// @tag.description Cache statistics and maintenance
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"os"

	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/maps-cache-service/docs" // swagger docs
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
