// Package anthropicllm provides an llm.Completer backed by the Anthropic
// Messages API.
package anthropicllm

import (
	"context"
	"errors"
	"factcrawler/pkg/llm"
	"factcrawler/pkg/serrors"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Options configure the client.
type Options struct {
	APIKey    string
	Model     string
	MaxTokens int64
	// Timeout bounds one completion, retries included.
	Timeout time.Duration
}

// Client implements llm.Completer. It is safe for concurrent use.
type Client struct {
	client anthropic.Client
	opts   Options
}

var _ llm.Completer = (*Client)(nil)

// New creates a client. Extra request options are applied after the
// API key, which lets tests point the client at a local server.
func New(opts Options, requestOpts ...option.RequestOption) *Client {
	all := append([]option.RequestOption{option.WithAPIKey(opts.APIKey)}, requestOpts...)

	return &Client{client: anthropic.NewClient(all...), opts: opts}
}

// Complete returns the concatenated text blocks of the model response.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.opts.Model),
		MaxTokens: c.opts.MaxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", classify(ctx, err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	return b.String(), nil
}

func classify(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return serrors.Wrap(serrors.ErrTimeout, err, "completion timed out")
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests:
			return serrors.Wrap(serrors.ErrRateLimited, err, "completion rate limited")
		case http.StatusUnauthorized, http.StatusForbidden:
			return serrors.Wrap(serrors.ErrUnauthorized, err, "completion rejected credentials")
		case http.StatusBadRequest:
			return serrors.Wrap(serrors.ErrBadRequest, err, "completion request invalid")
		}
	}

	return serrors.Wrap(serrors.ErrUnavailable, err, "completion failed")
}
