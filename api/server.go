package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/matt-g-everett/ledtween/stream"
)

// Poster runs functions on the frame loop goroutine.
type Poster interface {
	Post(fn func())
}

// Controller is the scene the API drives.
type Controller interface {
	Start() error
	Stop()
	Status() stream.Status
}

// Api serves the scene controls and the client pages over HTTP. Scene calls
// are posted onto the frame loop so they never race with a frame.
type Api struct {
	poster  Poster
	scene   Controller
	timeout time.Duration
}

// NewApi creates an instance of an Api.
func NewApi(poster Poster, scene Controller) *Api {
	a := new(Api)
	a.poster = poster
	a.scene = scene
	a.timeout = 2 * time.Second
	return a
}

// onLoop runs fn on the frame loop and waits for it to finish.
func (a *Api) onLoop(ctx context.Context, fn func()) bool {
	done := make(chan struct{})
	a.poster.Post(func() {
		fn()
		close(done)
	})

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var status stream.Status
	if !a.onLoop(r.Context(), func() { status = a.scene.Status() }) {
		http.Error(w, "frame loop not responding", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}

func (a *Api) handleStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var err error
	if !a.onLoop(r.Context(), func() { err = a.scene.Start() }) {
		http.Error(w, "frame loop not responding", http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) handleStop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !a.onLoop(r.Context(), a.scene.Stop) {
		http.Error(w, "frame loop not responding", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Handler routes the API and falls back to the client pages.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", a.handleStatus)
	mux.HandleFunc("/start", a.handleStart)
	mux.HandleFunc("/stop", a.handleStop)
	mux.Handle("/", http.FileServer(http.Dir("client/dist")))
	return mux
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return http.ListenAndServe(addr, a.Handler())
}
