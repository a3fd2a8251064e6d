package cli

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/archpad/archpad/pkg/codec"
)

// newServeCmd creates the serve command: a small HTTP resolver for share
// links, so other tools can exchange diagrams without linking the codec.
func newServeCmd(cfg *Config) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve share-link resolution over HTTP",
		Long: `Serve share-link resolution over HTTP.

GET  /diagram?data=...  decodes a share payload (legacy links included)
                        and returns the restored diagram as JSON.
POST /share             accepts structured JSON or DSL text and returns
                        a share link plus a size report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			r := chi.NewRouter()
			r.Use(middleware.RequestID)
			r.Use(middleware.Recoverer)
			r.Use(middleware.Timeout(10 * time.Second))

			r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			r.Get("/diagram", handleDiagram)
			r.Post("/share", handleShare(cfg))

			logger.Info("listening", "addr", addr)
			srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

			go func() {
				<-cmd.Context().Done()
				_ = srv.Close()
			}()
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8372", "listen address")
	return cmd
}

// handleDiagram decodes the data query parameter. Absent or corrupt
// payloads are a 404, never a 500 - missing share data is an expected
// case.
func handleDiagram(w http.ResponseWriter, r *http.Request) {
	d := codec.Decompress(r.URL.Query().Get(codec.DataParam), true)
	if d == nil {
		http.Error(w, "no decodable diagram", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// shareResponse is the POST /share payload.
type shareResponse struct {
	URL string `json:"url"`
	codec.BudgetReport
}

func handleShare(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
		if err != nil {
			http.Error(w, "read body", http.StatusBadRequest)
			return
		}

		d, _, err := importDiagram(body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		link, err := codec.BuildShareLink(d, cfg.BaseURL)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		report, err := codec.CheckSizeBudget(d, cfg.BudgetKB)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, shareResponse{URL: link, BudgetReport: report})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
