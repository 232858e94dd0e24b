package pages

import (
	"context"
	"errors"
	"fmt"

	"github.com/canarylab/chirper/pkg/internal/auth"
	"github.com/canarylab/chirper/pkg/internal/models"
	"github.com/canarylab/chirper/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func (p *Pages) showProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	target, err := p.Accounts.GetByUsername(c.UserContext(), username)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	posts, err := p.Posts.ListRecent(c.UserContext(), target.ID, services.ProfilePostLimit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Visitors without a profile of their own never see a follow button,
	// so the flag defaults to "already following".
	isFollowing := true
	if identity, err := p.resolveIdentity(c); err == nil && identity.State == auth.StateActive {
		isFollowing = lo.Contains(target.Followers, identity.Profile.Username)
	}

	return c.Render("user_information", fiber.Map{
		"user_info":         target,
		"tweets":            posts,
		"is_following_user": isFollowing,
		"username":          username,
	})
}

func (p *Pages) follow(c *fiber.Ctx) error {
	return p.changeFollowState(c, p.Graph.Follow)
}

func (p *Pages) unfollow(c *fiber.Ctx) error {
	return p.changeFollowState(c, p.Graph.Unfollow)
}

func (p *Pages) changeFollowState(c *fiber.Ctx, op func(ctx context.Context, actor models.Account, target string) error) error {
	identity, err := p.resolveIdentity(c)
	if err != nil || identity.State != auth.StateActive {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	username := c.Params("username")
	if err := op(c.UserContext(), identity.Profile, username); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfReference):
			return fiber.NewError(fiber.StatusBadRequest, "Cannot follow yourself")
		case errors.Is(err, services.ErrNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Target user not found")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.Redirect(fmt.Sprintf("/profile/%s", username), fiber.StatusSeeOther)
}
