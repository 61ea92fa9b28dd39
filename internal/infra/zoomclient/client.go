// Package zoomclient is the HTTP implementation of the video-conferencing
// provider collaborator. The engine treats hosted sessions as opaque: it only
// creates, updates, and deletes them and records the returned join
// credentials. Provider-side session state is never inspected.
package zoomclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"meetingsync/internal/domain/schedule"
	"meetingsync/internal/pkg/config"
	"meetingsync/internal/pkg/errs"
	"meetingsync/internal/usecase"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(cfg config.ProviderConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type sessionRequest struct {
	Topic     string `json:"topic"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"` // minutes
	Type      int    `json:"type"`
}

type sessionResponse struct {
	ID       int64  `json:"id"`
	JoinURL  string `json:"join_url"`
	Passcode string `json:"password"`
}

const scheduledMeetingType = 2

func (c *Client) CreateSession(ctx context.Context, accountRef, topic string, rng schedule.TimeRange) (usecase.HostedSession, error) {
	payload := sessionRequest{
		Topic:     topic,
		StartTime: rng.Start().UTC().Format("2006-01-02T15:04:05Z"),
		Duration:  int(rng.Duration().Minutes()),
		Type:      scheduledMeetingType,
	}
	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("%s/users/%s/meetings", c.baseURL, accountRef), payload, http.StatusCreated)
	if err != nil {
		return usecase.HostedSession{}, err
	}

	var resp sessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return usecase.HostedSession{}, errs.NewConflictDetectionError(errs.ConflictErrorNetwork, false,
			errs.Wrap(err, "failed to decode provider response"))
	}
	return usecase.HostedSession{
		ID:       fmt.Sprintf("%d", resp.ID),
		JoinURL:  resp.JoinURL,
		Passcode: resp.Passcode,
	}, nil
}

func (c *Client) UpdateSession(ctx context.Context, _ string, sessionID string, rng schedule.TimeRange) error {
	payload := sessionRequest{
		StartTime: rng.Start().UTC().Format("2006-01-02T15:04:05Z"),
		Duration:  int(rng.Duration().Minutes()),
		Type:      scheduledMeetingType,
	}
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/meetings/%s", c.baseURL, sessionID), payload, http.StatusNoContent)
	return err
}

func (c *Client) DeleteSession(ctx context.Context, _ string, sessionID string) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/meetings/%s", c.baseURL, sessionID), nil, http.StatusNoContent)
	return err
}

func (c *Client) do(ctx context.Context, method, url string, payload any, wantStatus int) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errs.Wrap(err, "failed to encode provider request")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create provider request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// transport failures propagate unchanged under the network type
		return nil, errs.NewConflictDetectionError(errs.ConflictErrorNetwork, true,
			errs.Wrap(err, "provider request failed"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewConflictDetectionError(errs.ConflictErrorNetwork, true,
			errs.Wrap(err, "failed to read provider response"))
	}

	if resp.StatusCode != wantStatus {
		return nil, errs.NewConflictDetectionError(errs.ConflictErrorNetwork, false,
			errs.New(fmt.Sprintf("provider error (status %d): %s", resp.StatusCode, string(body))))
	}
	return body, nil
}
