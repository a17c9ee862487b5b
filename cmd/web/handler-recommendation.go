package main

import (
	"net/http"

	"github.com/mkorpela/liftplan/internal/contexthelpers"
	"github.com/mkorpela/liftplan/internal/recommend"
)

// recommendationRequest optionally overrides profile fields for a
// one-off recommendation.
type recommendationRequest struct {
	Goals         *string `json:"goals"`
	Experience    *string `json:"experience"`
	AvailableDays *int    `json:"availableDays"`
}

func (app *application) recommendationPOST(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			app.badRequest(w, r, err)
			return
		}
	}

	profileID := contexthelpers.ProfileID(r.Context())
	p, err := app.profileService.Get(r.Context(), profileID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	input := recommend.Input{
		Goals:         p.Goals,
		Experience:    p.Experience,
		AvailableDays: p.AvailableDays,
		GenderLabel:   p.Gender,
		BodyweightKg:  p.BodyweightKg,
		Bench1RMKg:    p.Bench1RMKg,
		Squat1RMKg:    p.Squat1RMKg,
		Deadlift1RMKg: p.Deadlift1RMKg,
	}
	if req.Goals != nil {
		input.Goals = *req.Goals
	}
	if req.Experience != nil {
		input.Experience = *req.Experience
	}
	if req.AvailableDays != nil {
		input.AvailableDays = *req.AvailableDays
	}

	recommendation := app.recommendService.Recommend(r.Context(), input)
	app.writeJSON(w, r, http.StatusOK, recommendation)
}
