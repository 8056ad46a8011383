package suggestion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
)

const (
	backendName    = "mailjet"
	sendPath       = "/v3.1/send"
	defaultTimeout = 10 * time.Second
)

type MailjetOption func(client *MailjetClient)

type MailjetClient struct {
	base      url.URL
	apiKey    string
	secretKey string
	http      *http.Client
}

func NewMailjetClient(baseURL, apiKey, secretKey string, opts ...MailjetOption) (*MailjetClient, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, apperr.NewConfigurationWrap("invalid mailjet base url", err)
	}
	if apiKey == "" || secretKey == "" {
		return nil, apperr.NewConfiguration("mailjet api key and secret key are required")
	}

	client := &MailjetClient{
		base:      *base,
		apiKey:    apiKey,
		secretKey: secretKey,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func WithHttpClient(httpClient *http.Client) MailjetOption {
	return func(client *MailjetClient) {
		client.http = httpClient
	}
}

type Address struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

type Message struct {
	From     Address   `json:"From"`
	To       []Address `json:"To"`
	ReplyTo  *Address  `json:"ReplyTo,omitempty"`
	Subject  string    `json:"Subject"`
	TextPart string    `json:"TextPart"`
	CustomID string    `json:"CustomID,omitempty"`
}

type sendRequest struct {
	Messages []Message `json:"Messages"`
}

type sendResponse struct {
	Messages []struct {
		Status string `json:"Status"`
	} `json:"Messages"`
}

func (mc *MailjetClient) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(sendRequest{Messages: []Message{msg}})
	if err != nil {
		return err
	}

	reqURL := mc.base.JoinPath(sendPath)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}

	request.SetBasicAuth(mc.apiKey, mc.secretKey)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	resp, err := mc.http.Do(request)
	if err != nil {
		slog.Error("Mailjet request failed", "error", err)
		return &apperr.BackendUnavailableError{Backend: backendName, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperr.BackendUnavailableError{Backend: backendName, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		slog.Error("Mailjet rejected message", "status", resp.StatusCode, "body", string(respBody))
		return &apperr.BackendError{Backend: backendName, Status: resp.StatusCode, Reason: string(respBody)}
	}

	var parsed sendResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return &apperr.BackendError{Backend: backendName, Status: resp.StatusCode, Reason: fmt.Sprintf("unmarshal response: %v", err)}
	}
	for _, m := range parsed.Messages {
		if m.Status != "success" {
			return &apperr.BackendError{Backend: backendName, Status: resp.StatusCode, Reason: "message status " + m.Status}
		}
	}

	return nil
}
