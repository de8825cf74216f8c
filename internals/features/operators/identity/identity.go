// Package identity membungkus auth provider eksternal. Core tidak pernah
// menerbitkan kredensial sendiri — pembuatan user didelegasikan ke admin API
// provider (gaya GoTrue/Supabase), dan hanya ID-nya yang dipakai.
package identity

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// Provisioner membuat identitas baru di auth provider.
type Provisioner interface {
	CreateUser(ctx context.Context, email, password string) (uuid.UUID, error)
}

// AdminClient memanggil endpoint admin auth provider dengan service key.
type AdminClient struct {
	BaseURL    string
	ServiceKey string
	HTTP       *http.Client
}

func NewAdminClient(baseURL, serviceKey string) *AdminClient {
	return &AdminClient{
		BaseURL:    baseURL,
		ServiceKey: serviceKey,
		HTTP:       &http.Client{Timeout: 10 * time.Second},
	}
}

type createUserRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	EmailConfirm bool   `json:"email_confirm"`
}

type createUserResponse struct {
	ID string `json:"id"`
}

func (c *AdminClient) CreateUser(ctx context.Context, email, password string) (uuid.UUID, error) {
	payload, err := sonic.Marshal(createUserRequest{
		Email:        email,
		Password:     password,
		EmailConfirm: true,
	})
	if err != nil {
		return uuid.Nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/admin/users", bytes.NewReader(payload))
	if err != nil {
		return uuid.Nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.ServiceKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return uuid.Nil, fmt.Errorf("panggil auth provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return uuid.Nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return uuid.Nil, fmt.Errorf("auth provider menolak (%d): %s", resp.StatusCode, body)
	}

	var out createUserResponse
	if err := sonic.Unmarshal(body, &out); err != nil {
		return uuid.Nil, fmt.Errorf("parse response auth provider: %w", err)
	}
	id, err := uuid.Parse(out.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("ID identitas tidak valid: %w", err)
	}
	return id, nil
}
