// Package backend talks to the authoritative events API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/render"

	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/lib/session"
	"eventAdmin/internal/models"
)

type Client struct {
	log        *slog.Logger
	baseURL    string
	httpClient *http.Client
}

func New(log *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		log:     log,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListParams narrows GET /api/events. Empty values and "all" are not sent.
type ListParams struct {
	Status string
	Type   string
	Search string
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Status != "" && p.Status != "all" {
		v.Set("status", p.Status)
	}
	if p.Type != "" && p.Type != "all" {
		v.Set("type", p.Type)
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	return v
}

func (c *Client) CreateEvent(ctx context.Context, ev models.Event) (models.Event, error) {
	var out wireEvent
	if err := c.do(ctx, http.MethodPost, "/api/events", nil, ev, &out, "Failed to create event"); err != nil {
		return models.Event{}, err
	}
	return out.event(), nil
}

func (c *Client) ListEvents(ctx context.Context, p ListParams) ([]models.Event, error) {
	var out []wireEvent
	if err := c.do(ctx, http.MethodGet, "/api/events", p.values(), nil, &out, "Failed to fetch events"); err != nil {
		return nil, err
	}
	return decodeEvents(out), nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (models.Event, error) {
	var out wireEvent
	if err := c.do(ctx, http.MethodGet, "/api/events/"+url.PathEscape(id), nil, nil, &out, "Failed to fetch event"); err != nil {
		return models.Event{}, err
	}
	return out.event(), nil
}

// UpdateEvent replaces the backend copy of ev.
func (c *Client) UpdateEvent(ctx context.Context, ev models.Event) (models.Event, error) {
	var out wireEvent
	if err := c.do(ctx, http.MethodPut, "/api/events/"+url.PathEscape(ev.ID), nil, ev, &out, "Failed to update event"); err != nil {
		return models.Event{}, err
	}
	return out.event(), nil
}

func (c *Client) CreateTicket(ctx context.Context, t models.Ticket) (models.Ticket, error) {
	var out wireTicket
	if err := c.do(ctx, http.MethodPost, "/api/tickets", nil, t, &out, "Failed to create ticket"); err != nil {
		return models.Ticket{}, err
	}

	created, err := out.ticket()
	if err != nil {
		return models.Ticket{}, &models.NetworkError{Message: err.Error()}
	}
	return created, nil
}

func (c *Client) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	var out []wireTicket
	if err := c.do(ctx, http.MethodGet, "/api/tickets", nil, nil, &out, "Failed to fetch tickets"); err != nil {
		return nil, err
	}

	tickets, err := decodeTickets(out)
	if err != nil {
		return nil, &models.NetworkError{Message: err.Error()}
	}
	return tickets, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any, fallback string) error {
	const op = "client.backend.do"

	log := c.log.With(
		slog.String("op", op),
		slog.String("method", method),
		slog.String("path", path),
	)

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := session.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("backend request failed", sl.Err(err))
		if errors.Is(err, context.Canceled) {
			return err
		}
		return &models.NetworkError{Message: fallback}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := backendMessage(resp.Body)
		log.Warn("backend rejected request", slog.Int("status", resp.StatusCode), slog.String("message", msg))

		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%s: %w", op, models.ErrUnauthorized)
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}

		if msg == "" {
			msg = fallback
		}
		return &models.NetworkError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err = render.DecodeJSON(resp.Body, out); err != nil {
		log.Error("failed to decode backend response", sl.Err(err))
		return &models.NetworkError{Status: resp.StatusCode, Message: fallback}
	}

	return nil
}

func backendMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := render.DecodeJSON(io.LimitReader(r, 1<<16), &body); err != nil {
		return ""
	}
	return body.Message
}
