package main

import (
	"net/http"

	"github.com/mkorpela/liftplan/internal/contexthelpers"
	"github.com/mkorpela/liftplan/internal/errors"
	"github.com/mkorpela/liftplan/internal/nutrition"
)

func (app *application) nutritionGET(w http.ResponseWriter, r *http.Request) {
	profileID := contexthelpers.ProfileID(r.Context())
	p, err := app.profileService.Get(r.Context(), profileID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	plan, err := nutrition.GeneratePlan(nutrition.Input{
		Gender:       nutrition.Gender(p.Gender),
		BodyweightKg: p.BodyweightKg,
		HeightCm:     p.HeightCm,
		Age:          p.Age,
		Activity:     nutrition.ActivityLevel(p.ActivityLevel),
		Program:      p.Program,
		Goals:        p.Goals,
	})
	if errors.Is(err, nutrition.ErrIncompleteProfile) {
		app.unprocessable(w, r, "profile needs bodyweight, height and age before a nutrition plan can be computed")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, plan)
}
