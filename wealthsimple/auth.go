package wealthsimple

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// accessTokenHeader carries the access token on a successful login.
const accessTokenHeader = "X-Access-Token"

// Login authenticates with the trade service and stores the returned
// access token on the session. The one-time password is generated from
// otpSecret at call time.
//
// Fails with ErrAuthentication if any credential is empty or if the
// service responds with 401 Unauthorized. New calls Login for you; it
// only needs to be called again after the session is invalidated.
func (c *Client) Login(email, password, otpSecret string) error {
	if email == "" || password == "" || otpSecret == "" {
		return fmt.Errorf("missing login credentials: %w", ErrAuthentication)
	}

	code, err := otpCode(otpSecret, time.Now())
	if err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
		"otp":      code,
	})
	if err != nil {
		return fmt.Errorf("encoding login request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("invalid login credentials: %w", ErrAuthentication)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return newAPIError(resp.StatusCode, body)
	}

	token := resp.Header.Get(accessTokenHeader)
	if token == "" {
		return fmt.Errorf("login response missing %s header: %w", accessTokenHeader, ErrAuthentication)
	}
	c.SetToken(token)

	c.logger.Debug("login complete")

	return nil
}

// RefreshToken posts the current access token to the refresh endpoint
// and returns the raw response.
//
// The stored token is NOT updated; the caller decides when to refresh
// and stores the new token via SetToken.
func (c *Client) RefreshToken() (map[string]any, error) {
	body := map[string]string{"refresh_token": c.Token()}

	data, err := c.do(http.MethodPost, "auth/refresh", nil, body)
	if err != nil {
		return nil, err
	}

	return decodeObject(data, "refresh response")
}
