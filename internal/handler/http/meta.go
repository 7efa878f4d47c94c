package http

import (
	"net/http"

	"github.com/connectome-neuprint/neuprint-go/internal/logger"
	"github.com/connectome-neuprint/neuprint-go/internal/utils"
)

// serveDocument answers a metadata endpoint with a fixed document.
func (h *Handler) serveDocument(doc func(*Fixtures) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.WriteJSON(w, doc(h.fixtures), http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing document")
		}
	}
}

func helpDocument(f *Fixtures) any      { return f.Help }
func versionDocument(f *Fixtures) any   { return f.Version }
func availableDocument(f *Fixtures) any { return f.Available }
func databaseDocument(f *Fixtures) any  { return f.Database }
func datasetsDocument(f *Fixtures) any  { return f.Datasets }
