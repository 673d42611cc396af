package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Zaky-dc/shifaa-inventory/internal/model"
)

func newBackend(t *testing.T) (*httptest.Server, *[]model.SnapshotRow) {
	t.Helper()

	var stored []model.SnapshotRow
	mux := http.NewServeMux()
	mux.HandleFunc("/api/contagem", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			if err := json.NewDecoder(r.Body).Decode(&stored); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			json.NewEncoder(w).Encode(map[string]string{"message": "guardado"})
		case http.MethodGet:
			if r.URL.Query().Get("data") == "" || r.URL.Query().Get("armazem") == "" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if r.URL.Query().Get("armazem") != "Central" {
				json.NewEncoder(w).Encode([]model.SnapshotRow{})
				return
			}
			json.NewEncoder(w).Encode(stored)
		}
	})
	mux.HandleFunc("/api/contagem/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.URL.Query().Get("armazem") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		stored = nil
		json.NewEncoder(w).Encode(map[string]string{"message": "apagado"})
	})
	mux.HandleFunc("/api/datas", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.SnapshotSummary{
			{Date: "2026-08-28", Warehouse: "Central"},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &stored
}

func TestRemote_SaveAndLoad(t *testing.T) {
	t.Parallel()

	srv, stored := newBackend(t)
	remote := NewRemote(srv.URL + "/api")

	snap := model.Snapshot{
		Date:      "2026-08-28",
		Warehouse: "Central",
		Rows: []model.SnapshotRow{
			{Code: "A1", Description: "Widget", Expected: 10, Real: 12, Difference: 2, Date: "2026-08-28", Warehouse: "Central"},
		},
	}

	msg, err := remote.Save(context.Background(), snap)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if msg != "guardado" {
		t.Fatalf("message = %q", msg)
	}
	if len(*stored) != 1 || (*stored)[0].Warehouse != "Central" {
		t.Fatalf("backend did not receive the rows: %+v", *stored)
	}

	rows, err := remote.Load(context.Background(), "2026-08-28", "Central")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 1 || rows[0].Code != "A1" || rows[0].Real != 12 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestRemote_LoadMissingIdentityIsEmpty(t *testing.T) {
	t.Parallel()

	srv, _ := newBackend(t)
	remote := NewRemote(srv.URL + "/api")

	rows, err := remote.Load(context.Background(), "2026-08-28", "Inexistente")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(rows))
	}
}

func TestRemote_ListAndDelete(t *testing.T) {
	t.Parallel()

	srv, _ := newBackend(t)
	remote := NewRemote(srv.URL + "/api")

	summaries, err := remote.ListSummaries(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Warehouse != "Central" {
		t.Fatalf("unexpected summaries: %+v", summaries)
	}

	msg, err := remote.Delete(context.Background(), "2026-08-28", "Central")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if msg != "apagado" {
		t.Fatalf("message = %q", msg)
	}
}

func TestRemote_BackendErrorSurfaces(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	remote := NewRemote(srv.URL + "/api")
	if _, err := remote.Save(context.Background(), model.Snapshot{}); err == nil || !strings.Contains(err.Error(), "500") {
		t.Fatalf("err = %v, want status in message", err)
	}
	if _, err := remote.Load(context.Background(), "d", "w"); err == nil {
		t.Fatalf("load error expected")
	}
	if _, err := remote.ListSummaries(context.Background()); err == nil {
		t.Fatalf("list error expected")
	}
	if _, err := remote.Delete(context.Background(), "d", "w"); err == nil {
		t.Fatalf("delete error expected")
	}
}
