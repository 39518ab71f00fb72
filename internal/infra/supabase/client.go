package supabase

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Client 包裝遠端 backend-as-a-service 的 REST 介面
// 資料表走 /rest/v1，認證走 /auth/v1，物件儲存走 /storage/v1
// 所有持久化狀態都在遠端，本地只做查詢與寫入
type Client struct {
	baseURL string
	anonKey string
	hc      *http.Client

	mu          sync.RWMutex
	accessToken string // 登入後改用使用者 token，未登入用 anon key

	authOnce sync.Once
	auth     *Auth

	storageOnce sync.Once
	storage     *Storage
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

func NewClient(baseURL, anonKey string, options ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		hc: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// SetAccessToken 設定後續請求使用的使用者 token
// 傳入空字串回到 anon key
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

func (c *Client) bearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.accessToken != "" {
		return c.accessToken
	}
	return c.anonKey
}

// From 開始組一個對資料表的查詢
func (c *Client) From(table string) *QueryBuilder {
	return newQueryBuilder(c, table)
}

// APIError 遠端回傳的錯誤內容
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Code       string `json:"code"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("remote api error (%d, code %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("remote api error (%d): %s", e.StatusCode, e.Message)
}

// setCommonHeaders 每個請求都要帶 apikey 與 Bearer
func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.bearerToken())
	req.Header.Set("Content-Type", "application/json")
}

// do 發送請求，非 2xx 一律轉成 *APIError
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	return nil, decodeAPIError(resp)
}

func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(body) == 0 {
		apiErr.Message = resp.Status
		return apiErr
	}

	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		// auth 介面錯誤欄位不同，退而求其次
		var alt struct {
			Error       string `json:"error"`
			Description string `json:"error_description"`
			Msg         string `json:"msg"`
		}
		if err := json.Unmarshal(body, &alt); err == nil {
			switch {
			case alt.Description != "":
				apiErr.Message = alt.Description
			case alt.Msg != "":
				apiErr.Message = alt.Msg
			case alt.Error != "":
				apiErr.Message = alt.Error
			}
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
