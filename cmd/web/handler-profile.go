package main

import (
	"net/http"

	"github.com/mkorpela/liftplan/internal/contexthelpers"
	"github.com/mkorpela/liftplan/internal/profile"
)

// profileUpdateRequest carries a partial profile update. Only the
// fields present in the request body are changed.
type profileUpdateRequest struct {
	Gender        *string  `json:"gender"`
	BodyweightKg  *float64 `json:"bodyweightKg"`
	HeightCm      *float64 `json:"heightCm"`
	Age           *int     `json:"age"`
	ActivityLevel *string  `json:"activityLevel"`
	Experience    *string  `json:"experience"`
	Program       *string  `json:"program"`
	Goals         *string  `json:"goals"`
	AvailableDays *int     `json:"availableDays"`
	Bench1RMKg    *float64 `json:"bench1RMKg"`
	Bench8RMKg    *float64 `json:"bench8RMKg"`
	Squat1RMKg    *float64 `json:"squat1RMKg"`
	Deadlift1RMKg *float64 `json:"deadlift1RMKg"`
}

func (req profileUpdateRequest) apply(p *profile.Profile) {
	if req.Gender != nil {
		p.Gender = *req.Gender
	}
	if req.BodyweightKg != nil {
		p.BodyweightKg = *req.BodyweightKg
	}
	if req.HeightCm != nil {
		p.HeightCm = *req.HeightCm
	}
	if req.Age != nil {
		p.Age = *req.Age
	}
	if req.ActivityLevel != nil {
		p.ActivityLevel = *req.ActivityLevel
	}
	if req.Experience != nil {
		p.Experience = *req.Experience
	}
	if req.Program != nil {
		p.Program = *req.Program
	}
	if req.Goals != nil {
		p.Goals = *req.Goals
	}
	if req.AvailableDays != nil {
		p.AvailableDays = *req.AvailableDays
	}
	if req.Bench1RMKg != nil {
		p.Bench1RMKg = req.Bench1RMKg
	}
	if req.Bench8RMKg != nil {
		p.Bench8RMKg = req.Bench8RMKg
	}
	if req.Squat1RMKg != nil {
		p.Squat1RMKg = req.Squat1RMKg
	}
	if req.Deadlift1RMKg != nil {
		p.Deadlift1RMKg = req.Deadlift1RMKg
	}
}

func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	profileID := contexthelpers.ProfileID(r.Context())
	p, err := app.profileService.Get(r.Context(), profileID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, p)
}

func (app *application) profilePUT(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		app.badRequest(w, r, err)
		return
	}

	profileID := contexthelpers.ProfileID(r.Context())
	p, err := app.profileService.Update(r.Context(), profileID, req.apply)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, p)
}
