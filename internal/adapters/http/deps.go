package http

import (
	"github.com/safarapp/safar-api/internal/core/usecases"
	"github.com/safarapp/safar-api/internal/pkg/config"
)

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Travel      *usecases.TravelService
	Moods       *usecases.MoodService
	Itineraries *usecases.ItineraryService
	Cfg         *config.Config
}
