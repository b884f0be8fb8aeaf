package client

import (
	"context"
	"net/http"
)

// Credentials for the login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OwnerRegistration is the payload for registering a restaurant owner
// together with their restaurant.
type OwnerRegistration struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Phone          string `json:"phone,omitempty"`
	RestaurantName string `json:"restaurantName"`
	Cuisine        string `json:"cuisine,omitempty"`
	Address        string `json:"address,omitempty"`
}

// AuthResult is what the auth endpoints return: the user record as the
// backend shaped it, plus the bearer token when one was issued.
type AuthResult struct {
	User       map[string]any
	Restaurant map[string]any
	Token      string
}

func (c *Client) Login(ctx context.Context, creds Credentials) (AuthResult, error) {
	v, err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, creds, false)
	if err != nil {
		return AuthResult{}, err
	}
	return authResult(v), nil
}

func (c *Client) RegisterOwner(ctx context.Context, in OwnerRegistration) (AuthResult, error) {
	v, err := c.do(ctx, http.MethodPost, "/api/auth/register/restaurant-owner", nil, in, false)
	if err != nil {
		return AuthResult{}, err
	}
	return authResult(v), nil
}

func authResult(v any) AuthResult {
	body, ok := v.(map[string]any)
	if !ok {
		return AuthResult{}
	}
	res := AuthResult{}
	if u, ok := body["user"].(map[string]any); ok {
		res.User = u
	}
	if r, ok := body["restaurant"].(map[string]any); ok {
		res.Restaurant = r
	}
	if t, ok := body["token"].(string); ok {
		res.Token = t
	}
	return res
}
