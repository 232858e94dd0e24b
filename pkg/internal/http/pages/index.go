package pages

import (
	"github.com/canarylab/chirper/pkg/internal/auth"
	"github.com/gofiber/fiber/v2"
)

func (p *Pages) home(c *fiber.Ctx) error {
	identity, err := p.resolveIdentity(c)
	if err != nil {
		// Anonymous visitors get the plain landing page.
		return c.Render("main", fiber.Map{})
	}

	if identity.State == auth.StateUnprovisioned {
		return c.Redirect("/set_username", fiber.StatusSeeOther)
	}

	timeline, err := p.Timeline.Build(c.UserContext(), identity.Profile)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Render("main", fiber.Map{
		"user_info":       identity.Profile,
		"timeline_tweets": timeline,
	})
}
