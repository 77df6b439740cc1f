package service

import (
	"frontdesk/config"
	"frontdesk/internal/domains/occupancy/engine"

	"github.com/rs/zerolog/log"
)

// NewFloorPlan reads HOTEL_FLOOR_PLAN once at start up. A malformed plan stops the process.
func NewFloorPlan(cfg *config.Config) engine.FloorPlan {
	plan, err := engine.ParseFloorPlan(cfg.Hotel.FloorPlan)
	if err != nil {
		log.Fatal().Err(err).Str("floor_plan", cfg.Hotel.FloorPlan).Msg("Invalid floor plan")
	}

	log.Info().Int("rooms", plan.Len()).Int("floors", len(plan.Floors())).Msg("Floor plan loaded")

	return plan
}
