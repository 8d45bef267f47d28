// Package genimage wraps the Gemini image model behind the three task kinds
// the application supports: recolor, texture, and item placement.
package genimage

import (
	"context"
	"fmt"

	"design-service/internal/config"
	"design-service/internal/domain/task"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	errMissingSourceImage = "source image payload is required"
	errNoImageInResponse  = "backend returned no image content"
)

// Request carries the inputs common to every generation call.
type Request struct {
	SourceData     []byte
	SourceMimeType string
	Options        task.Options
	CustomPrompt   string
}

// Result is the generated image.
type Result struct {
	Data     []byte
	MimeType string
}

// Client talks to the generative backend.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, cfg *config.GeminiConfig) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create generative backend client: %w", err)
	}

	return &Client{
		client: client,
		model:  cfg.Model,
	}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Generate dispatches to the task-specific call for the given kind.
func (c *Client) Generate(ctx context.Context, kind task.Kind, req Request) (*Result, error) {
	switch kind {
	case task.KindRecolor:
		return c.Recolor(ctx, req)
	case task.KindTexture:
		return c.ApplyTexture(ctx, req)
	case task.KindItem:
		return c.PlaceItem(ctx, req)
	default:
		return nil, kind.Validate()
	}
}

// Recolor repaints the selected surface in the source image.
func (c *Client) Recolor(ctx context.Context, req Request) (*Result, error) {
	if err := req.Options.ValidateFor(task.KindRecolor); err != nil {
		return nil, err
	}
	return c.generate(ctx, buildRecolorPrompt(req.Options, req.CustomPrompt), req)
}

// ApplyTexture re-renders the selected surface with a texture sample.
func (c *Client) ApplyTexture(ctx context.Context, req Request) (*Result, error) {
	if err := req.Options.ValidateFor(task.KindTexture); err != nil {
		return nil, err
	}
	return c.generate(ctx, buildTexturePrompt(req.Options, req.CustomPrompt), req)
}

// PlaceItem composites a furniture or decor item into the source image.
func (c *Client) PlaceItem(ctx context.Context, req Request) (*Result, error) {
	if err := req.Options.ValidateFor(task.KindItem); err != nil {
		return nil, err
	}
	return c.generate(ctx, buildItemPrompt(req.Options, req.CustomPrompt), req)
}

func (c *Client) generate(ctx context.Context, prompt string, req Request) (*Result, error) {
	if len(req.SourceData) == 0 {
		return nil, fmt.Errorf(errMissingSourceImage)
	}

	model := c.client.GenerativeModel(c.model)

	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.Blob{MIMEType: req.SourceMimeType, Data: req.SourceData},
	)
	if err != nil {
		return nil, classifyBackendError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf(errNoImageInResponse)
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if blob, ok := part.(genai.Blob); ok {
			return &Result{Data: blob.Data, MimeType: blob.MIMEType}, nil
		}
	}

	return nil, fmt.Errorf(errNoImageInResponse)
}
