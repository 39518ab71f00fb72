package session

import (
	"context"
	"sync"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/infra/supabase"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/service/profile"
	jwt "github.com/dgrijalva/jwt-go"
	"github.com/rs/zerolog"
)

// Store 鏡射遠端認證狀態供畫面判斷用 (未登入顯示登入鈕、登入顯示個人選單)
// 啟動時訂閱認證事件，結束時必須 Close 釋放訂閱
//
// token 本體由遠端服務簽發與驗證，這裡只解析 claims 做顯示與過期判斷，
// 不做任何本地驗證
type Store struct {
	auth     *supabase.Auth
	profiles profile.IProfileService
	logger   zerolog.Logger

	mu      sync.RWMutex
	session *supabase.Session
	profile *model.Profile
	expiry  time.Time

	sub *supabase.Subscription
}

func NewStore(auth *supabase.Auth, profiles profile.IProfileService, logger zerolog.Logger) *Store {
	return &Store{
		auth:     auth,
		profiles: profiles,
		logger:   logger,
	}
}

// Start 還原既有 session 並開始監聽認證事件
func (s *Store) Start(ctx context.Context) {
	if current := s.auth.GetSession(); current != nil {
		s.applySession(ctx, current)
	}

	s.sub = s.auth.OnAuthStateChange(func(change supabase.AuthStateChange) {
		s.handleChange(change)
	})
}

// Close 取消事件訂閱
func (s *Store) Close() {
	if s.sub != nil {
		s.sub.Unsubscribe()
		s.sub = nil
	}
}

func (s *Store) handleChange(change supabase.AuthStateChange) {
	switch change.Event {
	case supabase.AuthEventSignedIn, supabase.AuthEventTokenRefreshed, supabase.AuthEventUserUpdated:
		s.applySession(context.Background(), change.Session)
	case supabase.AuthEventSignedOut:
		s.clear()
	}
}

func (s *Store) applySession(ctx context.Context, session *supabase.Session) {
	expiry := tokenExpiry(session)

	s.mu.Lock()
	s.session = session
	s.expiry = expiry
	s.mu.Unlock()

	if session != nil && session.User != nil {
		s.fetchProfile(ctx, session.User)
	}
}

func (s *Store) clear() {
	s.mu.Lock()
	s.session = nil
	s.profile = nil
	s.expiry = time.Time{}
	s.mu.Unlock()
}

// fetchProfile 讀取 profile 快取
// 讀不到時做 upsert fallback，因為遠端建 profile 的流程可能失敗或太慢
func (s *Store) fetchProfile(ctx context.Context, user *supabase.User) {
	p, err := s.profiles.Get(ctx, user.ID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("profile not found, creating fallback")

		p, err = s.profiles.Upsert(ctx, &model.Profile{
			ID:        user.ID,
			Email:     user.Email,
			FullName:  user.MetadataString("full_name"),
			AvatarURL: user.MetadataString("avatar_url"),
		})
		if err != nil {
			s.logger.Error().Err(err).Str("user_id", user.ID).Msg("create profile fallback failed")
			return
		}
	}

	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
}

// RefreshProfile 重抓 profile，例如使用者剛改完個人資料
func (s *Store) RefreshProfile(ctx context.Context) {
	if user := s.CurrentUser(); user != nil {
		s.fetchProfile(ctx, user)
	}
}

// CurrentUser 當前登入使用者，未登入回 nil
func (s *Store) CurrentUser() *supabase.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	return s.session.User
}

// Session 當前 session 鏡射
func (s *Store) Session() *supabase.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Profile 快取的 profile row
func (s *Store) Profile() *model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// IsSignedIn 是否已登入且 token 未過期
func (s *Store) IsSignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return false
	}
	if !s.expiry.IsZero() && time.Now().After(s.expiry) {
		return false
	}
	return true
}

// SignOut 登出，遠端失敗也要清掉本地狀態
func (s *Store) SignOut(ctx context.Context) {
	if err := s.auth.SignOut(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("remote sign out failed, clearing local state anyway")
	}
	// AuthEventSignedOut 會觸發 clear，這裡再保險一次
	s.clear()
}

// tokenExpiry 解析 access token 的 exp claim，解析不了回零值
func tokenExpiry(session *supabase.Session) time.Time {
	if session == nil || session.AccessToken == "" {
		return time.Time{}
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(session.AccessToken, claims); err != nil {
		return time.Time{}
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}
	}
	return time.Unix(int64(exp), 0)
}
