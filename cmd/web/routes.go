package main

import (
	"net/http"
)

func (app *application) routes() *http.ServeMux {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
				app.timeout(next))))
		}
		noSession = func(next http.Handler) http.Handler {
			return app.recoverPanic(shared(next))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				shared(app.identifyProfile(next)))))
		}
	)

	mux.Handle("GET /api/healthy", noSession(http.HandlerFunc(app.healthy)))
	mux.Handle("GET /api/test/timeout", noSession(http.HandlerFunc(app.testTimeout)))

	mux.Handle("GET /api/profile", session(http.HandlerFunc(app.profileGET)))
	mux.Handle("PUT /api/profile", session(http.HandlerFunc(app.profilePUT)))

	mux.Handle("GET /api/nutrition", session(http.HandlerFunc(app.nutritionGET)))

	mux.Handle("GET /api/program", noSession(http.HandlerFunc(app.programGET)))
	mux.Handle("GET /api/program/weeks/{week}", noSession(http.HandlerFunc(app.programWeekGET)))

	mux.Handle("GET /api/workouts/current", session(http.HandlerFunc(app.workoutCurrentGET)))
	mux.Handle("GET /api/workouts/{week}/{workout}", session(http.HandlerFunc(app.workoutGET)))
	mux.Handle("POST /api/workouts/complete", session(http.HandlerFunc(app.workoutCompletePOST)))

	mux.Handle("POST /api/recommendation", session(http.HandlerFunc(app.recommendationPOST)))

	return mux
}
