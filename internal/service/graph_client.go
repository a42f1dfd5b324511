package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// graphClient is a minimal Meta Graph API client covering the endpoints the
// gateway needs: message dispatch and account reachability probes.
type graphClient struct {
	baseURL    string
	httpClient *http.Client
}

func newGraphClient(baseURL string, timeout time.Duration) *graphClient {
	return &graphClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type graphSendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

type graphErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// SendMessage posts a message payload to the phone number node and returns
// the provider-assigned message ID.
func (c *graphClient) SendMessage(ctx context.Context, token, phoneNumberID string, payload interface{}) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal message payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", c.decodeError(resp)
	}

	var sendResp graphSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(sendResp.Messages) == 0 {
		return "", fmt.Errorf("provider returned no message id")
	}

	return sendResp.Messages[0].ID, nil
}

// CheckAccount fetches the WABA node to confirm the token is valid and the
// account is reachable.
func (c *graphClient) CheckAccount(ctx context.Context, token, wabaID string) error {
	url := fmt.Sprintf("%s/%s?fields=id", c.baseURL, wabaID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return c.decodeError(resp)
	}

	return nil
}

func (c *graphClient) decodeError(resp *http.Response) error {
	var graphErr graphErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&graphErr); err == nil && graphErr.Error.Message != "" {
		return fmt.Errorf("graph api error %d (code %d): %s", resp.StatusCode, graphErr.Error.Code, graphErr.Error.Message)
	}
	return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
}
