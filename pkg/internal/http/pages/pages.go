// Package pages wires the HTML surface: every handler renders a view
// or answers with a 303 redirect, in the flow the original app used.
package pages

import (
	"github.com/canarylab/chirper/pkg/internal/auth"
	"github.com/canarylab/chirper/pkg/internal/services"
	"github.com/canarylab/chirper/pkg/internal/storage"
	"github.com/gofiber/fiber/v2"
)

type Pages struct {
	Auth     *auth.Resolver
	Accounts *services.AccountService
	Posts    *services.PostService
	Graph    *services.GraphService
	Timeline *services.TimelineService
	Uploads  storage.Uploader
}

func (p *Pages) Map(app *fiber.App) {
	app.Get("/", p.home)
	app.Post("/tweet", p.createTweet)
	app.Get("/set_username", p.usernameForm)
	app.Post("/search_username", p.searchUsername)
	app.Post("/save_username", p.saveUsername)
	app.Post("/search_tweets", p.searchTweets)
	app.Get("/profile/:username", p.showProfile)
	app.Post("/follow/:username", p.follow)
	app.Post("/unfollow/:username", p.unfollow)
	app.Get("/edit/:tweetId", p.editForm)
	app.Post("/edit/:tweetId", p.applyEdit)
	app.Get("/delete/:tweetId", p.deleteTweet)
}

func (p *Pages) resolveIdentity(c *fiber.Ctx) (auth.Identity, error) {
	return p.Auth.Resolve(c.UserContext(), c.Cookies("token"))
}
