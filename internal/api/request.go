package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// statusMessages are the error statuses the API documents, with their
// documented meaning.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request the request was malformed or could not successfully execute.",
	http.StatusPaymentRequired:     "The used API key does not grant access.",
	http.StatusMethodNotAllowed:    "A request parameter is out of allowed range.",
	http.StatusTooManyRequests:     "You are out of tokens.",
	http.StatusInternalServerError: "An unexpected error occurred when executing this request.",
}

// request performs one logical GET against the API and returns the body
// of the first 200 response.
//
// Failure handling has two layers:
//   - transient failures (connection errors, unreadable or undecodable
//     bodies) are retried up to maxAttempts times with retryBackoff
//     pauses, then reported as a TransportError;
//   - a 429 means the token bucket ran dry: the client sleeps until the
//     server's announced refill and starts the exchange over, with no
//     upper bound.
//
// Every other status is terminal and returned as a StatusError.
func (c *Client) request(ctx context.Context, path string, query url.Values) ([]byte, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	log := c.logger.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"path":       path,
	})

	for {
		body, status, err := c.exchange(ctx, log, fullURL)
		if err != nil {
			return nil, err
		}

		switch status {
		case http.StatusOK:
			return body, nil

		case http.StatusTooManyRequests:
			delay := refillDelay(c.last.RefillIn)
			log.WithFields(logrus.Fields{
				"tokens_left": c.last.TokensLeft,
				"delay":       delay,
			}).Info("out of tokens, waiting for refill")
			if err := c.sleep(ctx, delay); err != nil {
				return nil, err
			}

		default:
			msg, ok := statusMessages[status]
			if !ok {
				msg = "unknown status code"
			}
			return nil, &StatusError{StatusCode: status, Message: msg, Body: body}
		}
	}
}

// exchange runs the bounded retry loop around single attempts. It returns
// whatever status the server answered with; only failing to get a
// decodable answer at all is an error here.
func (c *Client) exchange(ctx context.Context, log *logrus.Entry, fullURL string) ([]byte, int, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			if err := c.sleep(ctx, c.retryBackoff); err != nil {
				return nil, 0, err
			}
		}

		body, status, err := c.attempt(ctx, fullURL)
		if err == nil {
			log.WithFields(logrus.Fields{
				"status":      status,
				"tokens_left": c.last.TokensLeft,
			}).Debug("request round trip")
			return body, status, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, 0, ctx.Err()
		}
		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err,
		}).Warn("transient request failure")
	}

	return nil, 0, &TransportError{Attempts: c.maxAttempts, Err: lastErr}
}

// attempt is a single wire exchange. The body must parse as a JSON object
// carrying the token envelope; one that does not counts as a failed
// attempt, exactly like a connection error.
func (c *Client) attempt(ctx context.Context, fullURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}

	meta := ResponseMeta{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, &meta.TokenStatus); err != nil {
		return nil, 0, fmt.Errorf("decode response: %w", err)
	}
	c.last = &meta

	return body, resp.StatusCode, nil
}

// sleep pauses for d, aborting early when ctx is canceled.
func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// refillDelay converts the server's refillIn (milliseconds until the next
// token refill) into a sleep, rounded up to whole seconds so the retry
// lands after the refill.
func refillDelay(ms int64) time.Duration {
	return time.Duration((ms+999)/1000) * time.Second
}

// get runs a request and unmarshals the 200 body into result.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	body, err := c.request(ctx, path, query)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

// baseQuery starts a query with the access key and marketplace. A zero
// domain falls back to the client default.
func (c *Client) baseQuery(d Domain) url.Values {
	if d == 0 {
		d = c.domain
	}
	q := url.Values{}
	q.Set("key", c.accessKey)
	q.Set("domain", strconv.Itoa(int(d)))
	return q
}

// flag encodes a boolean query parameter the way the API expects.
func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
