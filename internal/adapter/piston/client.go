package piston

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
)

// NoOutput replaces empty stdout of a successful run
const NoOutput = "No output"

var _ secondary.CodeExecutor = (*Client)(nil)

// Client runs programs on a Piston sandbox over HTTP
type Client struct {
	url       string
	languages map[domain.Language]domain.SandboxLanguage
	client    *http.Client
	logger    primary.Logger
}

func NewClient(cfg *config.SandboxConfig, logger primary.Logger) *Client {
	return &Client{
		url:       cfg.Url,
		languages: cfg.Languages,
		client:    &http.Client{Timeout: cfg.Timeout},
		logger:    logger,
	}
}

type executeFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type executeRequest struct {
	Language string        `json:"language"`
	Version  string        `json:"version"`
	Files    []executeFile `json:"files"`
	Stdin    string        `json:"stdin,omitempty"`
}

type stageResult struct {
	Stdout string  `json:"stdout"`
	Stderr string  `json:"stderr"`
	Output string  `json:"output"`
	Code   *int    `json:"code"`
	Signal *string `json:"signal"`
}

type executeResponse struct {
	Language string       `json:"language"`
	Version  string       `json:"version"`
	Compile  *stageResult `json:"compile"`
	Run      *stageResult `json:"run"`
}

func (c *Client) Supports(language domain.Language) bool {
	_, ok := c.languages[language]
	return ok
}

// Execute sends one program to the sandbox. Transport and decoding problems
// come back as a failed result.
func (c *Client) Execute(ctx context.Context, req domain.ExecutionRequest) domain.ExecutionResult {
	spec, ok := c.languages[req.Language]
	if !ok {
		return failure("", fmt.Sprintf("Unsupported language: %s", req.Language))
	}

	body, err := json.Marshal(executeRequest{
		Language: spec.Language,
		Version:  spec.Version,
		Files: []executeFile{
			{Name: "main." + spec.FileExt, Content: req.SourceCode},
		},
		Stdin: req.StdinArgs,
	})
	if err != nil {
		return failure("", fmt.Sprintf("Failed to execute code: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/execute", bytes.NewReader(body))
	if err != nil {
		return failure("", fmt.Sprintf("Failed to execute code: %v", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Executing code", "language", spec.Language, "version", spec.Version)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		if res, hit := c.deadlineHit(ctx, spec.Language); hit {
			return res
		}
		c.logger.Error("Failed to reach sandbox", "error", err)
		return failure("", fmt.Sprintf("Failed to execute code: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Error("Sandbox returned error status", "status", resp.StatusCode)
		return failure("", fmt.Sprintf("HTTP error! status: %d", resp.StatusCode))
	}

	var data executeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		if res, hit := c.deadlineHit(ctx, spec.Language); hit {
			return res
		}
		c.logger.Error("Failed to decode sandbox response", "error", err)
		return failure("", fmt.Sprintf("Failed to execute code: %v", err))
	}

	if data.Compile != nil && data.Compile.Code != nil && *data.Compile.Code != 0 {
		msg := data.Compile.Stderr
		if msg == "" {
			msg = data.Compile.Output
		}
		return failure(data.Compile.Stdout, msg)
	}

	if data.Run == nil {
		return failure("", "Failed to execute code: response has no run stage")
	}

	if data.Run.Stderr != "" {
		return failure(data.Run.Output, data.Run.Stderr)
	}

	output := data.Run.Output
	if output == "" {
		output = NoOutput
	}
	return domain.ExecutionResult{Succeeded: true, Stdout: output}
}

// deadlineHit reports a timed out result when ctx expired mid call. The
// deadline can fire while waiting for headers or while reading the body.
func (c *Client) deadlineHit(ctx context.Context, language string) (domain.ExecutionResult, bool) {
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.ExecutionResult{}, false
	}
	c.logger.Warn("Sandbox call exceeded deadline", "language", language)
	res := failure("", "Time Limit Exceeded")
	res.TimedOut = true
	return res, true
}

func failure(stdout, msg string) domain.ExecutionResult {
	return domain.ExecutionResult{Succeeded: false, Stdout: stdout, Stderr: &msg}
}
