package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/google/uuid"
)

// AuthEvent 認證狀態變化事件
type AuthEvent string

const (
	AuthEventSignedIn         AuthEvent = "SIGNED_IN"
	AuthEventSignedOut        AuthEvent = "SIGNED_OUT"
	AuthEventTokenRefreshed   AuthEvent = "TOKEN_REFRESHED"
	AuthEventUserUpdated      AuthEvent = "USER_UPDATED"
	AuthEventPasswordRecovery AuthEvent = "PASSWORD_RECOVERY"
)

type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Role         string         `json:"role,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

// MetadataString 取出 user_metadata 內的字串欄位，缺少時回空字串
func (u *User) MetadataString(key string) string {
	if u == nil || u.UserMetadata == nil {
		return ""
	}
	if v, ok := u.UserMetadata[key].(string); ok {
		return v
	}
	return ""
}

type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

type AuthStateChange struct {
	Event   AuthEvent
	Session *Session
}

type listenerFunc func(AuthStateChange)

// Auth 包裝遠端認證介面，並在本地鏡射當前 session
// 狀態變化以事件推送給訂閱者，訂閱者需在結束時 Unsubscribe
type Auth struct {
	c *Client

	mu        sync.RWMutex
	session   *Session
	listeners map[uuid.UUID]listenerFunc
}

func newAuth(c *Client) *Auth {
	return &Auth{
		c:         c,
		listeners: make(map[uuid.UUID]listenerFunc),
	}
}

// Auth 取得認證介面，同一個 client 共用一份
func (c *Client) Auth() *Auth {
	c.authOnce.Do(func() {
		c.auth = newAuth(c)
	})
	return c.auth
}

// Subscription 一次認證事件訂閱，用完必須 Unsubscribe
type Subscription struct {
	id   uuid.UUID
	auth *Auth
}

func (s *Subscription) Unsubscribe() {
	s.auth.mu.Lock()
	defer s.auth.mu.Unlock()
	delete(s.auth.listeners, s.id)
}

// OnAuthStateChange 訂閱認證狀態變化
func (a *Auth) OnAuthStateChange(fn func(AuthStateChange)) *Subscription {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := uuid.New()
	a.listeners[id] = fn
	return &Subscription{id: id, auth: a}
}

// notify 同步逐一通知，呼叫端都在單一事件迴圈上
func (a *Auth) notify(change AuthStateChange) {
	a.mu.RLock()
	fns := make([]listenerFunc, 0, len(a.listeners))
	for _, fn := range a.listeners {
		fns = append(fns, fn)
	}
	a.mu.RUnlock()

	for _, fn := range fns {
		fn(change)
	}
}

// GetSession 取得本地鏡射的當前 session，未登入回 nil
func (a *Auth) GetSession() *Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

func (a *Auth) setSession(s *Session) {
	a.mu.Lock()
	a.session = s
	a.mu.Unlock()

	if s != nil {
		a.c.SetAccessToken(s.AccessToken)
	} else {
		a.c.SetAccessToken("")
	}
}

type SignUpOptions struct {
	Metadata map[string]any
}

// SignUp 以 email + password 註冊，metadata 會寫入 user_metadata
func (a *Auth) SignUp(ctx context.Context, email, password string, opts *SignUpOptions) (*Session, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
	}
	if opts != nil && opts.Metadata != nil {
		payload["data"] = opts.Metadata
	}

	session, err := a.tokenRequest(ctx, "/auth/v1/signup", payload)
	if err != nil {
		return nil, err
	}

	// 有些設定下註冊要先驗證信箱，此時沒有 session
	if session.AccessToken != "" {
		a.setSession(session)
		a.notify(AuthStateChange{Event: AuthEventSignedIn, Session: session})
	}
	return session, nil
}

// SignInWithPassword email + password 登入
func (a *Auth) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	session, err := a.tokenRequest(ctx, "/auth/v1/token?grant_type=password", map[string]any{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	a.setSession(session)
	a.notify(AuthStateChange{Event: AuthEventSignedIn, Session: session})
	return session, nil
}

// SignInWithOAuth 組出 OAuth redirect 網址，由呼叫端導轉
func (a *Auth) SignInWithOAuth(provider, redirectTo string) string {
	v := url.Values{}
	v.Set("provider", provider)
	if redirectTo != "" {
		v.Set("redirect_to", redirectTo)
	}
	return a.c.baseURL + "/auth/v1/authorize?" + v.Encode()
}

// RefreshSession 用 refresh token 換新 session
func (a *Auth) RefreshSession(ctx context.Context) (*Session, error) {
	current := a.GetSession()
	if current == nil || current.RefreshToken == "" {
		return nil, fmt.Errorf("no session to refresh")
	}

	session, err := a.tokenRequest(ctx, "/auth/v1/token?grant_type=refresh_token", map[string]any{
		"refresh_token": current.RefreshToken,
	})
	if err != nil {
		return nil, err
	}

	a.setSession(session)
	a.notify(AuthStateChange{Event: AuthEventTokenRefreshed, Session: session})
	return session, nil
}

// SignOut 登出，不論遠端成敗都清掉本地 session
func (a *Auth) SignOut(ctx context.Context) error {
	err := a.post(ctx, "/auth/v1/logout", nil, nil)

	a.setSession(nil)
	a.notify(AuthStateChange{Event: AuthEventSignedOut, Session: nil})
	return err
}

// ResetPasswordForEmail 寄出重設密碼信
func (a *Auth) ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error {
	path := "/auth/v1/recover"
	if redirectTo != "" {
		path += "?redirect_to=" + url.QueryEscape(redirectTo)
	}
	return a.post(ctx, path, map[string]any{"email": email}, nil)
}

// UpdatePassword 更新當前使用者密碼
func (a *Auth) UpdatePassword(ctx context.Context, newPassword string) (*User, error) {
	data, err := json.Marshal(map[string]any{"password": newPassword})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, a.c.baseURL+"/auth/v1/user", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	a.c.setCommonHeaders(req)

	resp, err := a.c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode user response: %w", err)
	}

	a.notify(AuthStateChange{Event: AuthEventUserUpdated, Session: a.GetSession()})
	return &user, nil
}

func (a *Auth) tokenRequest(ctx context.Context, path string, payload map[string]any) (*Session, error) {
	var session Session
	if err := a.post(ctx, path, payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (a *Auth) post(ctx context.Context, path string, payload map[string]any, dest any) error {
	var reader *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.c.baseURL+path, reader)
	if err != nil {
		return err
	}
	a.c.setCommonHeaders(req)

	resp, err := a.c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return fmt.Errorf("decode auth response: %w", err)
		}
	}
	return nil
}
