package app

import (
	"fmt"
	"net/http"

	"github.com/nafees-s/tiket-api/api"
)

func (app *application) Healthcheck(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthcheckResponse{
		Status:  "available",
		Env:     app.config.env,
		Version: version,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetSupportContact(w http.ResponseWriter, r *http.Request) {
	resp := api.SupportResponse{
		Email:  app.config.supportEmail,
		Mailto: fmt.Sprintf("mailto:%s", app.config.supportEmail),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
