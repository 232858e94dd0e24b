package pages

import (
	"errors"

	"github.com/canarylab/chirper/pkg/internal/auth"
	"github.com/canarylab/chirper/pkg/internal/http/exts"
	"github.com/canarylab/chirper/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (p *Pages) usernameForm(c *fiber.Ctx) error {
	return c.Render("update_profile", fiber.Map{
		"message": "",
	})
}

func (p *Pages) saveUsername(c *fiber.Ctx) error {
	identity, err := p.resolveIdentity(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var data struct {
		Username string `form:"username" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := p.Accounts.ClaimUsername(c.UserContext(), identity.UserID, data.Username); err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return c.Render("update_profile", fiber.Map{
				"message": "Username already taken",
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (p *Pages) searchUsername(c *fiber.Ctx) error {
	identity, err := p.resolveIdentity(c)
	if err != nil || identity.State != auth.StateActive {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	var data struct {
		Name string `form:"name" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	found, err := p.Accounts.SearchByPrefix(c.UserContext(), data.Name)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	timeline, err := p.Timeline.Build(c.UserContext(), identity.Profile)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Render("main", fiber.Map{
		"user_info":       identity.Profile,
		"users_found":     found,
		"name":            data.Name,
		"timeline_tweets": timeline,
	})
}
