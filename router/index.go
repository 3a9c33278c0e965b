package router

import (
	"gig_manager/handler"
	"gig_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	venue := v1.Group("/venue", logger.New())
	venue.Get("/", handler.GetVenues)
	venue.Post("/search", validate.Search(), handler.SearchVenues)
	venue.Post("/", validate.CreateVenue(), handler.CreateVenue)
	venue.Get("/:venueId", validate.GetById("venueId"), handler.GetVenueById)
	venue.Put("/:venueId", validate.EditVenue("venueId"), handler.EditVenue)
	venue.Delete("/:venueId", validate.GetById("venueId"), handler.DeleteVenue)
	venue.Post("/:venueId/image", validate.GetById("venueId"), handler.UploadVenueImage)
	venue.Get("/:venueId/qr", validate.GetById("venueId"), handler.GetVenueQR)

	artist := v1.Group("/artist", logger.New())
	artist.Get("/", handler.GetArtists)
	artist.Post("/search", validate.Search(), handler.SearchArtists)
	artist.Post("/", validate.CreateArtist(), handler.CreateArtist)
	artist.Get("/:artistId", validate.GetById("artistId"), handler.GetArtistById)
	artist.Put("/:artistId", validate.EditArtist("artistId"), handler.EditArtist)
	artist.Delete("/:artistId", validate.GetById("artistId"), handler.DeleteArtist)
	artist.Post("/:artistId/image", validate.GetById("artistId"), handler.UploadArtistImage)
	artist.Get("/:artistId/qr", validate.GetById("artistId"), handler.GetArtistQR)

	show := v1.Group("/show", logger.New())
	show.Get("/", handler.GetShows)
	show.Post("/filter", validate.FilterShows(), handler.FilterShows)
	show.Post("/", validate.CreateShow(), handler.CreateShow)
	show.Get("/feed/ws", websocket.New(handler.ShowFeedWebsocket))

	// Tra cứu công khai theo slug
	public := v1.Group("/public")
	public.Get("/venue/:slug", handler.GetVenueBySlug)
	public.Get("/artist/:slug", handler.GetArtistBySlug)
}
