package main

import (
	"net/http"

	"github.com/mkorpela/liftplan/internal/contexthelpers"
	"github.com/mkorpela/liftplan/internal/errors"
	"github.com/mkorpela/liftplan/internal/program"
	"github.com/mkorpela/liftplan/internal/profile"
)

const missingMaxMessage = "record a bench press 1RM or 8RM before requesting workouts"

// workoutCurrentGET resolves the lifter's next workout against their
// bench 1RM.
func (app *application) workoutCurrentGET(w http.ResponseWriter, r *http.Request) {
	profileID := contexthelpers.ProfileID(r.Context())

	p, err := app.profileService.Get(r.Context(), profileID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	oneRepMax, ok := p.BenchOneRepMax()
	if !ok {
		app.unprocessable(w, r, missingMaxMessage)
		return
	}

	progress, err := app.profileService.Progress(r.Context(), profileID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	workout, err := program.ResolveWorkout(progress.Week, progress.Workout, oneRepMax)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, workout)
}

// workoutGET resolves an explicit week/workout position.
func (app *application) workoutGET(w http.ResponseWriter, r *http.Request) {
	week, ok := app.parseIntParam(w, r, "week")
	if !ok {
		return
	}
	workoutNumber, ok := app.parseIntParam(w, r, "workout")
	if !ok {
		return
	}

	profileID := contexthelpers.ProfileID(r.Context())
	p, err := app.profileService.Get(r.Context(), profileID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	oneRepMax, hasMax := p.BenchOneRepMax()
	if !hasMax {
		app.unprocessable(w, r, missingMaxMessage)
		return
	}

	workout, err := program.ResolveWorkout(week, workoutNumber, oneRepMax)
	if errors.Is(err, program.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, workout)
}

type completionResponse struct {
	Completed       program.Progress     `json:"completed"`
	Next            program.Progress     `json:"next"`
	ProgramComplete bool                 `json:"programComplete"`
	History         []profile.Completion `json:"history"`
}

// workoutCompletePOST marks the current workout done and advances the
// lifter's position in the program. A profile with a bench max must
// exist first: there is no workout to complete without one.
func (app *application) workoutCompletePOST(w http.ResponseWriter, r *http.Request) {
	profileID := contexthelpers.ProfileID(r.Context())

	p, err := app.profileService.Get(r.Context(), profileID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if _, ok := p.BenchOneRepMax(); !ok {
		app.unprocessable(w, r, missingMaxMessage)
		return
	}

	completed, next, err := app.profileService.CompleteWorkout(r.Context(), profileID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	history, err := app.profileService.Completions(r.Context(), profileID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, completionResponse{
		Completed:       completed,
		Next:            next,
		ProgramComplete: completed.Completed(),
		History:         history,
	})
}
