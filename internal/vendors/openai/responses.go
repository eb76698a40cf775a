package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/google/uuid"
	"golang.org/x/net/http2"
)

type request struct {
	Model        string `json:"model"`
	Input        string `json:"input"`
	Instructions string `json:"instructions"`
}

// Responder queries the responses api, one request per turn and without any
// conversation state.
type Responder struct {
	Model        string
	URL          string
	Instructions string
	env          Env
	client       *http.Client
	debug        bool
}

// NewResponder with the default model and endpoint. The endpoint may be
// overridden with GPT_RESPONSES_URL, the api key is not read until a reply is
// requested.
func NewResponder(env Env, instructions string) (*Responder, error) {
	client, err := newClient()
	if err != nil {
		return nil, fmt.Errorf("failed to setup http client: %w", err)
	}
	r := &Responder{
		Model:        DefaultModel,
		URL:          ResponsesURL,
		Instructions: instructions,
		env:          env,
		client:       client,
	}
	if env != nil {
		if u := env.GetString(URLEnv); u != "" {
			r.URL = u
		}
		r.debug = misc.Truthy(env.GetString("DEBUG"))
	}
	return r, nil
}

// newClient mirrors the defaults of http.DefaultTransport, with http2 health
// checks so that idle connections in long interactive sessions are noticed.
func newClient() (*http.Client, error) {
	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	h2, err := http2.ConfigureTransports(tr)
	if err != nil {
		return nil, fmt.Errorf("failed to configure http2: %w", err)
	}
	h2.ReadIdleTimeout = 30 * time.Second
	h2.PingTimeout = 15 * time.Second
	return &http.Client{Transport: tr}, nil
}

// Reply performs exactly one request/response exchange. The error is one of
// *MissingCredentialError, *TransportError or *ServiceError. A successful
// response without text yields NoTextPlaceholder.
func (r *Responder) Reply(ctx context.Context, prompt string) (string, error) {
	apiKey, err := LookupAPIKey(r.env)
	if err != nil {
		return "", err
	}
	req, err := r.createRequest(ctx, apiKey, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	res, err := r.client.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, err := io.ReadAll(res.Body)
		if err != nil {
			body = nil
		}
		return "", &ServiceError{StatusCode: res.StatusCode, Body: string(body)}
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if r.debug {
		ancli.PrintOK(fmt.Sprintf("responses api response: %v\n", string(body)))
	}
	return extractReply(body), nil
}

func (r *Responder) createRequest(ctx context.Context, apiKey, prompt string) (*http.Request, error) {
	reqData := request{
		Model:        r.Model,
		Input:        prompt,
		Instructions: r.Instructions,
	}
	jsonData, err := json.Marshal(reqData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %v", apiKey))
	req.Header.Set("X-Client-Request-Id", requestID)
	if r.debug {
		ancli.PrintOK(fmt.Sprintf("responses api request %v: %v\n", requestID, debug.IndentedJsonFmt(reqData)))
	}
	return req, nil
}
