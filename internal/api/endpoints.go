package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"campuseats/internal/types"
)

// Restaurants fetches the full restaurant list.
func (c *Client) Restaurants(ctx context.Context) ([]types.Restaurant, error) {
	var list []types.Restaurant
	if err := c.getJSON(ctx, "/restaurants", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// DailyMenu fetches today's courses for one restaurant in the given locale.
// The response is returned raw because the upstream shape varies; the menu
// package owns normalization.
func (c *Client) DailyMenu(ctx context.Context, id, lang string) (json.RawMessage, error) {
	path := fmt.Sprintf("/restaurants/daily/%s/%s", url.PathEscape(id), url.PathEscape(lang))
	return c.request(ctx, http.MethodGet, path, nil)
}

// WeeklyMenu fetches the week's courses for one restaurant in the given
// locale. Raw for the same reason as DailyMenu.
func (c *Client) WeeklyMenu(ctx context.Context, id, lang string) (json.RawMessage, error) {
	path := fmt.Sprintf("/restaurants/weekly/%s/%s", url.PathEscape(id), url.PathEscape(lang))
	return c.request(ctx, http.MethodGet, path, nil)
}

// Login authenticates and returns the token plus the server's user record.
func (c *Client) Login(ctx context.Context, username, password string) (*types.LoginResponse, error) {
	payload := map[string]string{"username": username, "password": password}
	var resp types.LoginResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/login", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, email, password string) (*types.UserResponse, error) {
	payload := map[string]string{"username": username, "email": email, "password": password}
	var resp types.UserResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/users", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ProfileUpdate is a partial user update. Nil fields are left untouched
// server-side.
type ProfileUpdate struct {
	Email               *string `json:"email,omitempty"`
	FavouriteRestaurant *string `json:"favouriteRestaurant,omitempty"`
}

// UpdateProfile applies a partial update to the authenticated user and
// returns the authoritative server copy.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*types.UserResponse, error) {
	var resp types.UserResponse
	if err := c.sendJSON(ctx, http.MethodPut, "/users", update, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UploadAvatar uploads an avatar image as multipart form data under the
// "avatar" field. The multipart writer owns the Content-Type header so the
// boundary parameter stays intact.
func (c *Client) UploadAvatar(ctx context.Context, filename string, r io.Reader) (*types.UserResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to buffer avatar: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	raw, err := c.request(ctx, http.MethodPost, "/users/avatar", &buf, withContentType(mw.FormDataContentType()))
	if err != nil {
		return nil, err
	}
	var resp types.UserResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode avatar response: %w", err)
	}
	return &resp, nil
}
