// Package stt talks to the speech-to-text service over HTTP. The service
// is a black box: audio and a language tag go in, a transcript (or one of
// the errors in errors.go) comes out.
package stt

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Recognizer abstracts the speech backend for consumers such as the voice
// acquirer, which should not depend on the concrete HTTP client.
type Recognizer interface {
	// Recognize transcribes one utterance. It returns ErrUnintelligible
	// when the service produced no transcript, or a *ServiceError for
	// transport-level failures.
	Recognize(ctx context.Context, audio []byte, language string) (string, error)
}

// Client communicates with a recognition server (vosk-server style HTTP
// API) at a fixed base URL.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a Client targeting the given base URL. apiKey may be empty
// for unauthenticated local servers.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// IsRunning returns true if the recognition server answers its health
// endpoint with 200.
func (c *Client) IsRunning(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// recognizeRequest is the JSON body for POST /api/recognize.
type recognizeRequest struct {
	Audio    string `json:"audio"` // base64-encoded capture
	Language string `json:"language"`
}

// recognizeResponse is the JSON returned by POST /api/recognize.
type recognizeResponse struct {
	Results []recognitionResult `json:"results"`
}

type recognitionResult struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Recognize sends one utterance to the service and returns the top
// transcript.
func (c *Client) Recognize(ctx context.Context, audio []byte, language string) (string, error) {
	body, err := json.Marshal(recognizeRequest{
		Audio:    base64.StdEncoding.EncodeToString(audio),
		Language: language,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/recognize", bytes.NewReader(body))
	if err != nil {
		return "", &ServiceError{Op: "creating request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ServiceError{Op: "recognize request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &ServiceError{Op: "recognize", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var result recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ServiceError{Op: "decoding response", Err: err}
	}

	if len(result.Results) == 0 || strings.TrimSpace(result.Results[0].Transcript) == "" {
		return "", ErrUnintelligible
	}
	return result.Results[0].Transcript, nil
}
