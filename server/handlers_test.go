package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/calexandrepcjr/cheapskate-fiscal/parser"
	"github.com/calexandrepcjr/cheapskate-fiscal/server/logger"
)

func doRequest(t *testing.T, app *Application, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	app.router().ServeHTTP(rec, req)
	return rec
}

func textBody(t *testing.T, text string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(textRequest{Text: text}); err != nil {
		t.Fatalf("Failed to encode body: %v", err)
	}
	return buf.String()
}

func TestHandleHealth(t *testing.T) {
	app := setupTestApp(t)

	rec := doRequest(t, app, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rec.Body.String())
	}
}

func TestHandleMessage(t *testing.T) {
	app := setupTestApp(t)

	t.Run("records a transaction", func(t *testing.T) {
		rec := doRequest(t, app, http.MethodPost, "/api/messages", textBody(t, "Habis beli kopi 25rb"))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var reply Reply
		if err := json.NewDecoder(rec.Body).Decode(&reply); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if reply.Kind != ReplyTransaction {
			t.Fatalf("Kind = %q, want %q", reply.Kind, ReplyTransaction)
		}
		want := parser.ParsedTransaction{
			Amount:      25000,
			Direction:   parser.Expense,
			Category:    "Makanan & Minuman",
			Description: "Habis beli kopi 25rb",
		}
		if reply.Transaction == nil || *reply.Transaction != want {
			t.Errorf("Transaction = %+v, want %+v", reply.Transaction, want)
		}
	})

	t.Run("routes questions", func(t *testing.T) {
		rec := doRequest(t, app, http.MethodPost, "/api/messages", textBody(t, "Total pengeluaran minggu ini?"))

		var reply Reply
		if err := json.NewDecoder(rec.Body).Decode(&reply); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if reply.Kind != ReplyQuestion {
			t.Errorf("Kind = %q, want %q", reply.Kind, ReplyQuestion)
		}
		if reply.Transaction != nil {
			t.Errorf("Transaction = %+v, want nil", reply.Transaction)
		}
	})

	t.Run("unrecognized is not an error", func(t *testing.T) {
		rec := doRequest(t, app, http.MethodPost, "/api/messages", textBody(t, "halo"))
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if !strings.Contains(rec.Body.String(), `"kind":"unrecognized"`) {
			t.Errorf("body = %s, want unrecognized kind", rec.Body.String())
		}
	})

	t.Run("logs the routing decision", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logged := *app
		logged.Log = logger.NewWithWriter(buf)

		rec := doRequest(t, &logged, http.MethodPost, "/api/messages", textBody(t, "Habis beli kopi 25rb"))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		output := buf.String()
		for _, want := range []string{
			"Routed message",
			`"kind":"transaction"`,
			`"amount":25000`,
			`"category":"Makanan & Minuman"`,
			`"request_id":`,
		} {
			if !strings.Contains(output, want) {
				t.Errorf("log output missing %s, got: %s", want, output)
			}
		}
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		rec := doRequest(t, app, http.MethodPost, "/api/messages", "{not json")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		if !strings.Contains(rec.Body.String(), `"error"`) {
			t.Errorf("body = %s, want JSON error", rec.Body.String())
		}
	})
}

func TestHandleParse(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		name       string
		text       string
		wantStatus int
		want       parser.ParsedTransaction
	}{
		{
			name:       "expense with currency symbol",
			text:       "bayar listrik Rp 350.000",
			wantStatus: http.StatusOK,
			want: parser.ParsedTransaction{
				Amount:      350000,
				Direction:   parser.Expense,
				Category:    "Lainnya",
				Description: "bayar listrik Rp 350.000",
			},
		},
		{
			name:       "income",
			text:       "terima gaji 7.5jt",
			wantStatus: http.StatusOK,
			want: parser.ParsedTransaction{
				Amount:      7500000,
				Direction:   parser.Income,
				Category:    "Gaji",
				Description: "terima gaji 7.5jt",
			},
		},
		{
			name:       "no amount",
			text:       "beli kopi",
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, app, http.MethodPost, "/api/parse", textBody(t, tt.text))
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var got parser.ParsedTransaction
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHandleClassify(t *testing.T) {
	app := setupTestApp(t)

	rec := doRequest(t, app, http.MethodPost, "/api/classify", textBody(t, "dapat bonus dari kantor"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got parser.Classification
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if got.Direction != parser.Income {
		t.Errorf("Direction = %q, want income", got.Direction)
	}
	if got.DirectionKeyword != "bonus" {
		t.Errorf("DirectionKeyword = %q, want bonus", got.DirectionKeyword)
	}
	if got.Category != "Lainnya (Pemasukan)" || !got.Fallback {
		t.Errorf("Category = %q, Fallback = %v, want income fallback", got.Category, got.Fallback)
	}
}

func TestHandleAmount(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		text string
		want amountResponse
	}{
		{text: "makan siang 45rb", want: amountResponse{Amount: 45000, Found: true}},
		{text: "Rp. 25,000", want: amountResponse{Amount: 25000, Found: true}},
		{text: "makan siang", want: amountResponse{}},
		{text: "", want: amountResponse{}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			rec := doRequest(t, app, http.MethodGet, "/api/amount?text="+url.QueryEscape(tt.text), "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}

			var got amountResponse
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHandleCategories(t *testing.T) {
	app := setupTestApp(t)

	decode := func(t *testing.T, rec *httptest.ResponseRecorder) categoriesResponse {
		t.Helper()
		var resp categoriesResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		return resp
	}

	t.Run("lists all categories in order", func(t *testing.T) {
		rec := doRequest(t, app, http.MethodGet, "/api/categories", "")
		resp := decode(t, rec)

		want := parser.DefaultCategories()
		if resp.Count != len(want) || len(resp.Categories) != len(want) {
			t.Fatalf("Count = %d, want %d", resp.Count, len(want))
		}
		for i := range want {
			if resp.Categories[i] != want[i] {
				t.Errorf("Categories[%d] = %+v, want %+v", i, resp.Categories[i], want[i])
			}
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		rec := doRequest(t, app, http.MethodGet, "/api/categories?type=income", "")
		resp := decode(t, rec)

		if resp.Count != 5 {
			t.Errorf("Count = %d, want 5 income categories", resp.Count)
		}
		for _, c := range resp.Categories {
			if c.Direction != parser.Income {
				t.Errorf("category %q has type %q", c.Name, c.Direction)
			}
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		for _, typ := range []string{"sideways", "both"} {
			rec := doRequest(t, app, http.MethodGet, "/api/categories?type="+typ, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("type=%s status = %d, want %d", typ, rec.Code, http.StatusBadRequest)
			}
		}
	})
}

func TestRequestID(t *testing.T) {
	app := setupTestApp(t)

	t.Run("assigns an id", func(t *testing.T) {
		rec := doRequest(t, app, http.MethodGet, "/healthz", "")
		if rec.Header().Get(requestIDHeader) == "" {
			t.Error("response has no X-Request-ID")
		}
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(requestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		app.router().ServeHTTP(rec, req)

		if got := rec.Header().Get(requestIDHeader); got != "abc-123" {
			t.Errorf("X-Request-ID = %q, want abc-123", got)
		}
	})
}
