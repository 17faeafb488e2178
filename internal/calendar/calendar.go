// Package calendar publishes training sessions to Google Calendar and
// exports them as iCalendar files.
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"skatetrack/internal/domain"
)

const defaultEventsURL = "https://www.googleapis.com/calendar/v3/calendars/primary/events"

// DefaultTimeZone is the calendar time zone for new events.
const DefaultTimeZone = "America/Sao_Paulo"

// defaultStartTime is assumed when a session has no scheduled time.
const defaultStartTime = "10:00"

// EventDateTime is the Google Calendar date-time representation.
type EventDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// Event is the Google Calendar event payload.
type Event struct {
	Summary     string        `json:"summary"`
	Description string        `json:"description"`
	Start       EventDateTime `json:"start"`
	End         EventDateTime `json:"end"`
}

// CreatedEvent is the subset of the Google Calendar response we care
// about.
type CreatedEvent struct {
	ID       string `json:"id"`
	HTMLLink string `json:"htmlLink"`
	Status   string `json:"status"`
}

// Client talks to the Google Calendar events API.
type Client struct {
	httpClient *http.Client
	eventsURL  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithEventsURL overrides the events endpoint. Used in tests.
func WithEventsURL(url string) Option {
	return func(c *Client) { c.eventsURL = url }
}

// NewClient creates a calendar client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		eventsURL:  defaultEventsURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateEvent inserts an event into the user's primary calendar using
// the given OAuth access token.
func (c *Client) CreateEvent(ctx context.Context, accessToken string, ev Event) (*CreatedEvent, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.eventsURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("create event: %s: %s", resp.Status, msg)
	}

	var created CreatedEvent
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &created, nil
}

// EventForSession builds the calendar payload for a training session.
// The session time defaults to 10:00 and the event spans the session
// duration.
func EventForSession(s domain.TrainingSession, loc *time.Location) (Event, error) {
	start, end, err := sessionTimes(s, loc)
	if err != nil {
		return Event{}, err
	}

	return Event{
		Summary:     s.Title,
		Description: fmt.Sprintf("Treino de %d minutos.", s.Duration),
		Start: EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
		End: EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
	}, nil
}

func sessionTimes(s domain.TrainingSession, loc *time.Location) (start, end time.Time, err error) {
	at := s.Time
	if at == "" {
		at = defaultStartTime
	}

	start, err = time.ParseInLocation("2006-01-02 15:04", s.Date+" "+at, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse session start: %w", err)
	}

	end = start.Add(time.Duration(s.Duration) * time.Minute)
	return start, end, nil
}
