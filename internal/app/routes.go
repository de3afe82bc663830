package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("tiket-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)
	r.Use(app.ensureGuestUserSession)

	r.Get("/healthcheck", app.Healthcheck)
	r.Get("/support", app.GetSupportContact)

	fileServer := http.FileServer(http.Dir(app.config.staticDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	r.Post("/users", app.RegisterUser)
	r.Post("/sessions", app.Login)
	r.Delete("/sessions", app.Logout)

	r.Post("/otp/request", app.RequestPhoneCode)
	r.Post("/otp/confirm", app.ConfirmPhoneCode)

	r.Post("/password-reset", app.InitiatePasswordReset)
	r.Put("/password-reset", app.CompletePasswordReset)

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/search", app.SearchCatalog)
		r.Get("/items/{itemID}", app.GetCatalogItem)
		r.Get("/{kind}", app.GetCatalogSections)
	})

	r.Route("/selection", func(r chi.Router) {
		r.Post("/", app.CreateSelection)
		r.Get("/", app.GetSelection)
		r.Delete("/", app.DeleteSelection)
		r.Post("/seats/{seatID}", app.ToggleSelectionSeat)
	})

	r.With(app.requireAuthentication).Route("/bookings", func(r chi.Router) {
		r.Post("/", app.CreateBooking)
		r.Get("/{bookingID}/ticket", app.GetTicket)
		r.Get("/{bookingID}/barcode", app.GetTicketBarcode)
	})

	r.With(app.requireAuthentication).Route("/users/me", func(r chi.Router) {
		r.Get("/", app.GetCurrentUser)
		r.Patch("/", app.UpdateUser)
		r.Get("/bookings", app.GetBookingsOfUser)
		r.Post("/photo", app.UploadProfilePhoto)
	})

	return r
}
