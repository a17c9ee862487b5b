package main

import (
	"bytes"
	"net/http"

	"github.com/yuin/goldmark"

	"github.com/mkorpela/liftplan/internal/errors"
	"github.com/mkorpela/liftplan/internal/program"
)

type programResponse struct {
	Metadata        program.Metadata       `json:"metadata"`
	Phases          []program.PhaseSummary `json:"phases"`
	RPEScale        []program.RPEGuideline `json:"rpeScale"`
	DescriptionHTML string                 `json:"descriptionHtml"`
}

func (app *application) programGET(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(program.OverviewMarkdown()), &buf); err != nil {
		app.serverError(w, r, errors.Wrap(err, "render program overview"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, programResponse{
		Metadata:        program.Meta(),
		Phases:          program.Phases(),
		RPEScale:        program.RPEScale(),
		DescriptionHTML: buf.String(),
	})
}

func (app *application) programWeekGET(w http.ResponseWriter, r *http.Request) {
	weekNumber, ok := app.parseIntParam(w, r, "week")
	if !ok {
		return
	}
	week, err := program.LookupWeek(weekNumber)
	if errors.Is(err, program.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, week)
}
