// Package discourse implements a small client for the Discourse forum
// platform's admin REST API: fetching users, looking up and granting badges,
// sending private messages, and verifying credentials.
package discourse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/samvad-hq/samvad-talk-courier/pkg/httpclient"
)

// Verified is the marker returned by a successful Verify call.
const Verified = "verified"

// DefaultTimeout bounds requests issued through the default HTTP client.
const DefaultTimeout = 30 * time.Second

// Client issues stateless HTTPS calls against a single configured forum host.
// It is safe for concurrent use; the configuration is never mutated.
type Client struct {
	cfg     Config
	baseURL string
	http    httpclient.Client
	log     Logger
}

// NewClient validates cfg and builds a client. A nil httpClient gets a
// resty-backed default with DefaultTimeout; a nil log discards everything.
func NewClient(cfg Config, httpClient httpclient.Client, log Logger) (*Client, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, fmt.Errorf("discourse client: host is empty")
	}
	if strings.TrimSpace(cfg.APIUsername) == "" {
		return nil, fmt.Errorf("discourse client: api username is empty")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("discourse client: api key is empty")
	}

	if httpClient == nil {
		httpClient = httpclient.NewRestyClient(DefaultTimeout)
	}

	return &Client{
		cfg:     cfg,
		baseURL: baseURL(cfg.Host),
		http:    httpClient,
		log:     ensureLogger(log),
	}, nil
}

// baseURL normalizes the configured host into a scheme-qualified base.
func baseURL(host string) string {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if strings.Contains(host, "://") {
		return host
	}
	return "https://" + host
}

// GetUser fetches the user record for username via GET /users/{username}.json.
// The decoded body is returned as-is.
func (c *Client) GetUser(ctx context.Context, username string) (User, error) {
	op := fmt.Sprintf("get user %q", username)
	endpoint := c.baseURL + "/users/" + url.PathEscape(username) + ".json"

	body, err := c.get(ctx, op, endpoint)
	if err != nil {
		return nil, err
	}

	var user User
	if err := c.decode(op, body, &user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetBadge lists the forum's badges and returns the first whose name matches
// badgeName case-insensitively. No match is (nil, nil), not an error.
func (c *Client) GetBadge(ctx context.Context, badgeName string) (Badge, error) {
	op := fmt.Sprintf("get badge %q", badgeName)
	endpoint := c.baseURL + "/badges.json"

	body, err := c.get(ctx, op, endpoint)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Badges []Badge `json:"badges"`
	}
	if err := c.decode(op, body, &payload); err != nil {
		return nil, err
	}

	for _, badge := range payload.Badges {
		if strings.EqualFold(badge.Name(), badgeName) {
			return badge, nil
		}
	}
	c.log.DebugObj("no badge matched", "name", badgeName)
	return nil, nil
}

// GrantBadge awards the badge with badgeID to username and returns the
// created user-badge record. Parameters travel in the query string; the
// request body is empty.
func (c *Client) GrantBadge(ctx context.Context, username string, badgeID int) (Post, error) {
	op := fmt.Sprintf("grant badge %d to %q", badgeID, username)
	endpoint := c.baseURL + "/user_badges.json?badge_id=" + strconv.Itoa(badgeID) +
		"&username=" + escapeQuery(username)

	body, err := c.post(ctx, op, endpoint)
	if err != nil {
		return nil, err
	}

	var granted Post
	if err := c.decode(op, body, &granted); err != nil {
		return nil, err
	}
	return granted, nil
}

// SendMessage creates a private-message post addressed to username and
// returns the created post record.
func (c *Client) SendMessage(ctx context.Context, username, title, message string) (Post, error) {
	op := fmt.Sprintf("send message to %q", username)
	endpoint := c.baseURL + "/posts.json?archetype=private_message" +
		"&title=" + escapeQuery(title) +
		"&raw=" + escapeQuery(message) +
		"&target_usernames=" + escapeQuery(username)

	body, err := c.post(ctx, op, endpoint)
	if err != nil {
		return nil, err
	}

	var post Post
	if err := c.decode(op, body, &post); err != nil {
		return nil, err
	}
	return post, nil
}

// Verify checks connectivity and credentials by fetching the configured API
// user. It returns Verified on success and the underlying GetUser error
// untouched on failure.
func (c *Client) Verify(ctx context.Context) (string, error) {
	if _, err := c.GetUser(ctx, c.cfg.APIUsername); err != nil {
		return "", err
	}
	return Verified, nil
}

func (c *Client) get(ctx context.Context, op, endpoint string) ([]byte, error) {
	headers := c.authHeaders()
	headers["Accept"] = "application/json"

	resp, err := c.http.Get(ctx, endpoint, headers)
	return c.handle(op, resp, err)
}

func (c *Client) post(ctx context.Context, op, endpoint string) ([]byte, error) {
	headers := c.authHeaders()
	headers["Content-Type"] = "application/x-www-form-urlencoded"

	resp, err := c.http.Post(ctx, endpoint, headers)
	return c.handle(op, resp, err)
}

// handle applies the shared response contract: transport errors propagate
// wrapped, anything but a 200 becomes a StatusError carrying the raw body.
func (c *Client) handle(op string, resp httpclient.Response, err error) ([]byte, error) {
	if err != nil {
		c.log.ErrorObj(op+" request failed", "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if resp.StatusCode() != http.StatusOK {
		c.log.WarnObj(op+" returned non-200", "status", resp.StatusCode())
		return nil, &StatusError{Op: op, Status: resp.StatusCode(), Body: string(resp.Body())}
	}
	return resp.Body(), nil
}

func (c *Client) decode(op string, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		c.log.WarnObj(op+" body is not valid JSON", "snippet", responseSnippet(body))
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}

func (c *Client) authHeaders() map[string]string {
	return map[string]string{
		"Api-Username": c.cfg.APIUsername,
		"Api-Key":      c.cfg.APIKey,
	}
}

// escapeQuery percent-encodes a query value, using %20 rather than + for
// spaces so values survive strict decoders.
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
