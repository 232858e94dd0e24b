package pages

import (
	"errors"
	"fmt"

	"github.com/canarylab/chirper/pkg/internal/auth"
	"github.com/canarylab/chirper/pkg/internal/http/exts"
	"github.com/canarylab/chirper/pkg/internal/services"
	"github.com/canarylab/chirper/pkg/internal/storage"
	"github.com/gofiber/fiber/v2"
)

// uploadAttachment stores the optional form image and returns its URL.
// A missing file or empty filename means "no attachment", not an error.
func (p *Pages) uploadAttachment(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("image")
	if err != nil || file == nil || file.Filename == "" {
		return "", nil
	}

	src, err := file.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	defer src.Close()

	url, err := p.Uploads.Upload(c.UserContext(), file.Filename, src, file.Size)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedMediaType) {
			return "", fiber.NewError(fiber.StatusBadRequest, "Only JPG and PNG images are allowed")
		}
		return "", fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return url, nil
}

func (p *Pages) createTweet(c *fiber.Ctx) error {
	identity, err := p.resolveIdentity(c)
	if err != nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	if identity.State == auth.StateUnprovisioned {
		return c.Redirect("/set_username", fiber.StatusSeeOther)
	}

	var data struct {
		Tweet string `form:"tweet" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	imageURL, err := p.uploadAttachment(c)
	if err != nil {
		return err
	}

	if _, err := p.Posts.Publish(c.UserContext(), identity.Profile, data.Tweet, imageURL); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (p *Pages) searchTweets(c *fiber.Ctx) error {
	identity, err := p.resolveIdentity(c)
	if err != nil || identity.State != auth.StateActive {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	var data struct {
		Words string `form:"words" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	found, err := p.Posts.Search(c.UserContext(), data.Words)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Render("main", fiber.Map{
		"user_info": identity.Profile,
		"words":     data.Words,
		"tweets":    found,
	})
}

func (p *Pages) editForm(c *fiber.Ctx) error {
	identity, err := p.resolveIdentity(c)
	if err != nil || identity.State != auth.StateActive {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	id := c.Params("tweetId")
	post, err := p.Posts.Get(c.UserContext(), identity.UserID, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tweet not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Render("edit_tweet", fiber.Map{
		"tweet":    post,
		"tweet_id": id,
		"message":  c.Query("message"),
	})
}

func (p *Pages) applyEdit(c *fiber.Ctx) error {
	identity, err := p.resolveIdentity(c)
	if err != nil || identity.State != auth.StateActive {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	var data struct {
		Tweet string `form:"tweet" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	imageURL, err := p.uploadAttachment(c)
	if err != nil {
		return err
	}

	id := c.Params("tweetId")
	if _, err := p.Posts.Edit(c.UserContext(), identity.UserID, id, data.Tweet, imageURL); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tweet not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/edit/%s?message=Tweet+updated+successfully", id), fiber.StatusSeeOther)
}

func (p *Pages) deleteTweet(c *fiber.Ctx) error {
	identity, err := p.resolveIdentity(c)
	if err != nil || identity.State != auth.StateActive {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	id := c.Params("tweetId")
	if err := p.Posts.Delete(c.UserContext(), identity.UserID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tweet not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}
