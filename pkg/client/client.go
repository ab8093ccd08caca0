// Package client 提供访问 csvault 数据集服务的类型化 HTTP 客户端.
// 每次调用对应一次同步请求，不做任何自动重试，失败直接返回给调用方.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

const defaultTimeout = 30 * time.Second

// Client 数据集服务的 HTTP API 客户端.
type Client struct {
	// BaseURL 服务地址，不含结尾斜杠，例如 http://localhost:8080
	BaseURL string
	// HTTPClient 底层 HTTP 客户端，超时即失败
	HTTPClient *http.Client
}

// NewClient 创建客户端，timeout 非正数时使用默认 30s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// APIError 服务端返回的结构化错误，由 error 信封解码而来.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// IsNotFound 判断 err 是否为 404 API 错误.
func IsNotFound(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// do 发起一次请求并校验状态码，成功时由调用方负责关闭 Body.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	if err := checkError(resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// checkError 将非 2xx 响应转换为 *APIError 并关闭 Body.
func checkError(resp *http.Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)

	// 优先解码 {"error": "..."} 信封，失败时退回原始响应体
	message := strings.TrimSpace(string(data))

	var envelope struct {
		Error string `json:"error"`
	}
	if err := sonic.Unmarshal(data, &envelope); err == nil && envelope.Error != "" {
		message = envelope.Error
	}

	return &APIError{StatusCode: resp.StatusCode, Message: message}
}

// decodeJSON 读取并解码响应体到 out，同时关闭 Body.
func decodeJSON(resp *http.Response, out any) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// getJSON 请求 JSON 接口并解码到 out.
func (c *Client) getJSON(ctx context.Context, method, path string, out any) error {
	resp, err := c.do(ctx, method, path, nil, "")
	if err != nil {
		return err
	}

	return decodeJSON(resp, out)
}
