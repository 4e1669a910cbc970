package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"billtracker/constants"
	"billtracker/internal/entity"
	"billtracker/internal/llm"
)

// ExtractBill implements llm.BillExtractor against an OpenAI-compatible
// chat-completions endpoint, attaching the bill image as a base64 data
// URL. One attempt per upload, no retries; every failure folds into an
// unsuccessful ExtractionResult so nothing propagates to the handler.
func (c *Client) ExtractBill(ctx context.Context, imagePath string) entity.ExtractionResult {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"image_path", imagePath,
	)

	if c.cfg.APIKey == "" {
		c.logger.Error("llm.extract.no_api_key", "req_id", rid)
		return llm.Failure("NVIDIA API key is not configured")
	}

	data, err := os.ReadFile(imagePath)
	if err != nil {
		c.logger.Error("llm.extract.read_image_error", "req_id", rid, "error", err)
		return llm.Failure(fmt.Sprintf("failed to read image: %v", err))
	}
	mediaType := constants.MediaTypeForExt(filepath.Ext(imagePath))
	dataURL := "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)

	systemPrompt := llm.BuildSystemPrompt(constants.AsStringSlice())
	body := map[string]any{
		"model": c.cfg.Model,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
					{"type": "text", "text": llm.BuildUserPrompt(systemPrompt)},
				},
			},
		},
		"max_tokens":  c.cfg.MaxTokens,
		"temperature": c.cfg.Temperature,
		"top_p":       c.cfg.TopP,
		"stream":      false,
	}

	raw, status, err := c.post(ctx, body)
	if err != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "status", status, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Failure(fmt.Sprintf("API request failed: %v", err))
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content          string `json:"content"`
				ReasoningContent string `json:"reasoning_content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Failure(fmt.Sprintf("API request failed: %v", err))
	}

	var content string
	if len(cc.Choices) > 0 {
		content = cc.Choices[0].Message.Content
		// Some models split thinking from the answer; the answer is still
		// in content, the split only means it may arrive empty.
		if content == "" && cc.Choices[0].Message.ReasoningContent != "" {
			c.logger.Warn("llm.extract.reasoning_only_reply", "req_id", rid)
		}
	}

	result := llm.ParseResponse(content)

	c.logger.Info("llm.extract.done",
		"req_id", rid,
		"success", result.ExtractionSuccess,
		"category", result.Category,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result
}

func (c *Client) post(ctx context.Context, body map[string]any) ([]byte, int, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("encode request: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bs))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("llm.http.response_body_close_error", "error", err)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}
