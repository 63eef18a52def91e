package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Dsinghbailey/eagle-lang/internal/provider"
)

// buildRouter constructs the chi mux with all routes wired.
func (g *Gateway) buildRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", g.handleHealth())
	r.Get("/capabilities", g.handleCapabilities())
	r.Handle("/metrics", promhttp.HandlerFor(g.metrics.registry, promhttp.HandlerOpts{}))

	if g.run != nil {
		r.Post("/runs", g.handleRun())
	}
	if g.store != nil {
		r.Route("/api", func(r chi.Router) {
			r.Get("/runs", g.handleListRuns())
			r.Get("/runs/{id}/messages", g.handleRunMessages())
		})
	}

	return r
}

func (g *Gateway) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// capabilitiesJSON describes the registered tools, optionally shaped for
// one provider family via ?kind=.
type capabilitiesJSON struct {
	Tools []provider.ToolDefinition `json:"tools"`
	Kind  string                    `json:"kind,omitempty"`
	Shape []json.RawMessage         `json:"shape,omitempty"`
}

func (g *Gateway) handleCapabilities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := capabilitiesJSON{Tools: g.registry.Definitions()}

		if kind := r.URL.Query().Get("kind"); kind != "" {
			shape, err := g.registry.ProviderSchemas(provider.Kind(kind))
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			out.Kind = kind
			out.Shape = shape
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// runRequestJSON is the POST /runs payload.
type runRequestJSON struct {
	Agent  string `json:"agent,omitempty"`
	Script string `json:"script"`
}

func (g *Gateway) handleRun() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req runRequestJSON
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		if req.Script == "" {
			http.Error(w, "script is required", http.StatusBadRequest)
			return
		}

		summary, err := g.run(r.Context(), req.Agent, req.Script)
		if err != nil {
			g.metrics.runsTotal.WithLabelValues("failed").Inc()
			g.logger.Error("gateway run failed", "agent", req.Agent, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		g.metrics.runsTotal.WithLabelValues("done").Inc()
		g.metrics.runTurns.Observe(float64(summary.Turns))
		g.metrics.toolCalls.WithLabelValues("ok").Add(float64(summary.ToolCalls - summary.ToolErrors))
		g.metrics.toolCalls.WithLabelValues("error").Add(float64(summary.ToolErrors))
		writeJSON(w, http.StatusOK, summary)
	}
}

func (g *Gateway) handleListRuns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runs, err := g.store.ListRuns(r.Context(), 50)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, runs)
	}
}

func (g *Gateway) handleRunMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		msgs, err := g.store.Messages(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if msgs == nil {
			http.Error(w, "run not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, msgs)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
