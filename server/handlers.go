package main

import (
	"encoding/json"
	"net/http"

	"github.com/calexandrepcjr/cheapskate-fiscal/parser"
	"github.com/calexandrepcjr/cheapskate-fiscal/server/logger"
)

type textRequest struct {
	Text string `json:"text"`
}

type amountResponse struct {
	Amount int64 `json:"amount"`
	Found  bool  `json:"found"`
}

type categoriesResponse struct {
	Categories []parser.Category `json:"categories"`
	Count      int               `json:"count"`
}

func decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return "", false
	}
	return req.Text, true
}

func (app *Application) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// HandleMessage handles POST /api/messages, the chat entry point. Every
// routing outcome is a 200; only a malformed body is a client error.
func (app *Application) HandleMessage(w http.ResponseWriter, r *http.Request) {
	text, ok := decodeText(w, r)
	if !ok {
		return
	}

	reply := Route(app.Parser, text)

	reqLog := logger.FromContext(r.Context())
	ev := reqLog.Debug().Str("kind", string(reply.Kind))
	if tx := reply.Transaction; tx != nil {
		ev = ev.Int64("amount", tx.Amount).
			Str("direction", string(tx.Direction)).
			Str("category", tx.Category)
	}
	if reply.Indicator != "" {
		ev = ev.Str("indicator", reply.Indicator)
	}
	ev.Msg("Routed message")

	writeJSON(w, http.StatusOK, reply)
}

// HandleParse handles POST /api/parse.
func (app *Application) HandleParse(w http.ResponseWriter, r *http.Request) {
	text, ok := decodeText(w, r)
	if !ok {
		return
	}

	tx, ok := app.Parser.Parse(text)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "No amount found in text")
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

// HandleClassify handles POST /api/classify.
func (app *Application) HandleClassify(w http.ResponseWriter, r *http.Request) {
	text, ok := decodeText(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, app.Parser.Explain(text))
}

// HandleAmount handles GET /api/amount?text=...
func (app *Application) HandleAmount(w http.ResponseWriter, r *http.Request) {
	amount, found := app.Parser.ExtractAmount(r.URL.Query().Get("text"))
	writeJSON(w, http.StatusOK, amountResponse{Amount: amount, Found: found})
}

// HandleCategories handles GET /api/categories, optionally filtered with
// ?type=income or ?type=expense.
func (app *Application) HandleCategories(w http.ResponseWriter, r *http.Request) {
	tax := app.Parser.Taxonomy()

	cats := tax.All()
	if typ := r.URL.Query().Get("type"); typ != "" {
		dir, err := parser.ParseDirection(typ)
		if err != nil || dir == parser.Both {
			writeError(w, http.StatusBadRequest, "type must be income or expense")
			return
		}
		cats = tax.ForDirection(dir)
	}
	if cats == nil {
		cats = []parser.Category{}
	}

	writeJSON(w, http.StatusOK, categoriesResponse{Categories: cats, Count: len(cats)})
}
