package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"orchid/internal/models"
)

// RESTBackend talks to an Upstash-compatible Redis REST endpoint (Vercel KV
// exposes the same protocol). Reads use GET {base}/get/{key}; writes POST a
// redis command array to the base URL. Both carry a bearer token.
type RESTBackend struct {
	base   string
	token  string
	client *http.Client
}

func NewRESTBackend(base, token string) *RESTBackend {
	return &RESTBackend{
		base:   base,
		token:  token,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// restEnvelope is the {"result": ...} wrapper every REST response uses.
// The stored blob comes back as a JSON string inside result, or null when
// the key does not exist.
type restEnvelope struct {
	Result *string `json:"result"`
	Error  string  `json:"error"`
}

func (b *RESTBackend) Load(ctx context.Context) (*models.DataStore, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.base+"/get/"+StoreKey, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+b.token)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kv get: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kv get: status %d", resp.StatusCode)
	}

	var env restEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("kv get: decode response: %w", err)
	}
	if env.Error != "" {
		return nil, fmt.Errorf("kv get: %s", env.Error)
	}
	if env.Result == nil || *env.Result == "" {
		return models.DefaultStore(), nil
	}
	var data models.DataStore
	if err := json.Unmarshal([]byte(*env.Result), &data); err != nil {
		return nil, fmt.Errorf("parse stored blob: %w", err)
	}
	return &data, nil
}

func (b *RESTBackend) Save(ctx context.Context, data *models.DataStore) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	cmd, err := json.Marshal([]string{"SET", StoreKey, string(raw)})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.base, bytes.NewReader(cmd))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+b.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("kv set: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("kv set: status %d: %s", resp.StatusCode, body)
	}
	return nil
}
