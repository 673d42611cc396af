package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Zaky-dc/shifaa-inventory/internal/model"
)

// Remote talks to another shifaa instance's persistence API over HTTP.
// Every call carries a hard timeout; a timeout or transport failure is
// returned as an error and never mutates session state.
type Remote struct {
	client *resty.Client
}

// messageResponse is the {message} envelope the API answers with.
type messageResponse struct {
	Message string `json:"message"`
}

// NewRemote builds a client for the given base URL, e.g.
// "http://stock.example.com/api".
func NewRemote(baseURL string) *Remote {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)
	return &Remote{client: client}
}

// Save posts the resolved rows; the identity rides on every row, as the
// original backend expects.
func (r *Remote) Save(ctx context.Context, snap model.Snapshot) (string, error) {
	var out messageResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(snap.Rows).
		SetResult(&out).
		Post("/contagem")
	if err != nil {
		return "", fmt.Errorf("failed to save snapshot: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("failed to save snapshot: backend returned %s", resp.Status())
	}
	return out.Message, nil
}

// ListSummaries fetches the history listing.
func (r *Remote) ListSummaries(ctx context.Context) ([]model.SnapshotSummary, error) {
	var out []model.SnapshotSummary
	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/datas")
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to list snapshots: backend returned %s", resp.Status())
	}
	return out, nil
}

// Load fetches the full row set for one identity; an empty body means
// no snapshot exists under it.
func (r *Remote) Load(ctx context.Context, date, warehouse string) ([]model.SnapshotRow, error) {
	var out []model.SnapshotRow
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"data": date, "armazem": warehouse}).
		SetResult(&out).
		Get("/contagem")
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to load snapshot: backend returned %s", resp.Status())
	}
	return out, nil
}

// Delete removes one identity; the identity key is date plus warehouse.
func (r *Remote) Delete(ctx context.Context, date, warehouse string) (string, error) {
	var out messageResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("armazem", warehouse).
		SetResult(&out).
		Delete("/contagem/" + date)
	if err != nil {
		return "", fmt.Errorf("failed to delete snapshot: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("failed to delete snapshot: backend returned %s", resp.Status())
	}
	return out.Message, nil
}
