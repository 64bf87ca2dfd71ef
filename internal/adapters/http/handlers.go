package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/safarapp/safar-api/internal/core/usecases"
)

// TravelOptionsRequest asks for route options between two place names.
// Modes is optional; an empty list means the default mode set.
type TravelOptionsRequest struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Modes       []string `json:"modes"`
}

// TravelOptionsHandler computes travel options for an origin/destination
// pair across the requested modes.
func TravelOptionsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req TravelOptionsRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid JSON body")
		}
		if req.Origin == "" || req.Destination == "" {
			return errBadRequest(c, "origin and destination are required")
		}

		plan, err := deps.Travel.Options(c.UserContext(), req.Origin, req.Destination, req.Modes)
		if err != nil {
			var geoErr *usecases.GeocodeError
			if errors.As(err, &geoErr) {
				return errBadRequest(c, "could not geocode location: "+geoErr.Place)
			}
			return errInternal(c, err.Error())
		}

		return c.JSON(plan)
	}
}

// MoodTravelRequest carries free-form text describing how the caller feels,
// or an exact mood key to pre-select a category.
type MoodTravelRequest struct {
	Text string `json:"text"`
}

// MoodTravelHandler classifies the text into a mood and returns the
// destinations suggested for it.
func MoodTravelHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req MoodTravelRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid JSON body")
		}
		if strings.TrimSpace(req.Text) == "" {
			return errBadRequest(c, "text input is required")
		}

		mood, destinations, err := deps.Moods.Suggest(c.UserContext(), req.Text)
		if err != nil {
			return errInternal(c, err.Error())
		}

		return c.JSON(fiber.Map{
			"mood":         mood,
			"destinations": destinations,
		})
	}
}

// MoodItineraryRequest asks for a generated day-by-day itinerary. Days
// defaults to 3 when absent; the mood string is not validated against the
// category table.
type MoodItineraryRequest struct {
	Mood        string `json:"mood"`
	Destination string `json:"destination"`
	Days        *int   `json:"days"`
}

// MoodItineraryHandler generates an itinerary for a mood/destination/days
// triple via the generative text provider.
func MoodItineraryHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req MoodItineraryRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid JSON body")
		}
		if req.Destination == "" {
			return errBadRequest(c, "destination is required")
		}

		days := usecases.DefaultItineraryDays
		if req.Days != nil {
			days = *req.Days
		}

		itinerary, err := deps.Itineraries.Generate(c.UserContext(),
			strings.ToLower(req.Mood), req.Destination, days)
		if err != nil {
			return errInternalDetails(c, "failed to generate itinerary", err.Error())
		}

		return c.JSON(fiber.Map{
			"destination": req.Destination,
			"itinerary":   itinerary,
		})
	}
}
