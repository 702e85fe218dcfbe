package service

import (
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/NU394-s2025TTh/BugSnacks/app/model"
)

// northwesternDining lists the dining venues on Northwestern's campus.
var northwesternDining = []string{
	"Café Bergson",
	"Dining Commons",
	"Norris Center",
	"Retail Dining",
	"Chicago Campus",
	"Protein Bar",
	"847 Burger",
	"Buen Dia",
	"Shake Smart",
	"Chicken & Boba",
	"Allison Dining Commons",
	"Sargent Dining Commons",
	"847 Late Night at Fran's",
	"Wildcat Deli",
	"Tech Express",
	"Backlot at Kresge Cafe",
	"Starbucks",
	"Foster Walker Plex East",
	"Foster Walker Plex West & Market",
	"MOD Pizza",
	"Cafe Coralie",
	"Market at Norris",
	"Elder Dining Commons",
	"Lisa's Cafe",
}

// CampusService serves static campus reference data; campuses are not
// persisted in this deployment.
type CampusService struct {
	dining map[string][]string
}

func NewCampusService() *CampusService {
	return &CampusService{
		dining: map[string][]string{
			"northwestern1": northwesternDining,
		},
	}
}

// GET /api/campuses/
func (s *CampusService) List(c *fiber.Ctx) error {
	ids := make([]string, 0, len(s.dining))
	for id := range s.dining {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return c.JSON(ids)
}

// GET /api/campuses/:campusId
func (s *CampusService) DiningOptions(c *fiber.Ctx) error {
	campusID := c.Params("campusId")
	options, ok := s.dining[campusID]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "campus not found"})
	}
	return c.JSON(options)
}

// GET /api/campuses/:campusId/rewards
//
// Every dining venue yields one reward per reward type.
func (s *CampusService) Rewards(c *fiber.Ctx) error {
	campusID := c.Params("campusId")
	options, ok := s.dining[campusID]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Error: "campus not found"})
	}

	rewards := make([]model.Reward, 0, 2*len(options))
	for _, option := range options {
		rewards = append(rewards, model.Reward{
			Name:     fmt.Sprintf("%s at %s", option, campusID),
			Location: option,
			Type:     model.RewardGuestSwipe,
		})
		rewards = append(rewards, model.Reward{
			Name:     fmt.Sprintf("%s at %s", option, campusID),
			Location: option,
			Type:     model.RewardMealExchange,
		})
	}
	return c.JSON(rewards)
}
