package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/connectome-neuprint/neuprint-go/internal/app"
	"github.com/connectome-neuprint/neuprint-go/internal/logger"
	"github.com/connectome-neuprint/neuprint-go/internal/utils"
	"github.com/connectome-neuprint/neuprint-go/models"
)

// custom answers /api/custom/custom. neuPrint clients send the query as a
// JSON body on GET; POST is accepted as well.
func (h *Handler) custom(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CustomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteJSONError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Cypher) == "" {
		log.Err(ErrMissingCypher).Send()
		utils.WriteJSONError(w, ErrMissingCypher.Error(), http.StatusBadRequest)
		return
	}

	fixture := h.fixtures.Lookup(req.Cypher)
	account, _ := utils.GetAccountFromContext(r.Context())
	log.Debug().
		Str("account", account).
		Str("cypher", req.Cypher).
		Bool("matched", fixture.Cypher != "").
		Msg("custom query")

	if fixture.Status != 0 {
		utils.WriteJSONError(w, fixture.Error, fixture.Status)
		return
	}

	if _, err := utils.WriteJSON(w, fixture.response(), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing query result")
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSONError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
