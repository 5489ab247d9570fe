package server

import (
	"ripple/internal/cache"
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetActivities handles GET /activities: the latest 50 entries, newest
// first. The feed is served cache-aside; the recorder invalidates the key
// on every append, so the short TTL only bounds staleness when an
// invalidation is lost.
func (s *Server) GetActivities(c *fiber.Ctx) error {
	activities := make([]models.Activity, 0)

	err := cache.Aside(c.Context(), cache.ActivitiesKey, &activities, cache.ActivitiesTTL, func() error {
		latest, err := s.activityRepo.Latest(c.Context(), 50)
		if err != nil {
			return err
		}
		activities = latest
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(activities)
}
