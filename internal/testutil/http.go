// Package testutil 提供测试辅助工具
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// HTTPClient 面向 http.Handler 的测试客户端
// 在请求之间保存 Cookie，模拟同一个浏览器会话
type HTTPClient struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

// NewHTTPClient 创建测试客户端
func NewHTTPClient(t *testing.T, handler http.Handler) *HTTPClient {
	return &HTTPClient{
		t:       t,
		handler: handler,
		cookies: make(map[string]*http.Cookie),
	}
}

// Do 发送请求，body 非 nil 时编码为 JSON
func (c *HTTPClient) Do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			c.t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.MaxAge < 0 || cookie.Value == "" {
			delete(c.cookies, cookie.Name)
			continue
		}
		c.cookies[cookie.Name] = cookie
	}
	return w
}

// Cookie 返回当前保存的 Cookie
func (c *HTTPClient) Cookie(name string) (*http.Cookie, bool) {
	cookie, ok := c.cookies[name]
	return cookie, ok
}

// SetCookie 手动设置 Cookie
func (c *HTTPClient) SetCookie(cookie *http.Cookie) {
	c.cookies[cookie.Name] = cookie
}

// DecodeJSON 解码响应体
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
