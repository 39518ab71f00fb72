package supabase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignInWithPassword(t *testing.T) {
	var gotPath, gotAuth string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{
			"access_token": "jwt-abc",
			"refresh_token": "refresh-abc",
			"user": {"id": "u1", "email": "user@example.com"}
		}`))
	})

	var events []AuthEvent
	sub := client.Auth().OnAuthStateChange(func(change AuthStateChange) {
		events = append(events, change.Event)
	})
	defer sub.Unsubscribe()

	session, err := client.Auth().SignInWithPassword(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "/auth/v1/token?grant_type=password", gotPath)
	require.Equal(t, "Bearer test-anon-key", gotAuth, "登入請求本身用 anon key")
	require.Equal(t, "jwt-abc", session.AccessToken)
	require.Equal(t, "u1", session.User.ID)

	require.Equal(t, []AuthEvent{AuthEventSignedIn}, events)
	require.Equal(t, session, client.Auth().GetSession())
	require.Equal(t, "jwt-abc", client.bearerToken(), "之後的請求改用使用者 token")
}

func TestSignUpWithoutSession(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		// 信箱驗證開啟時註冊不會回 session
		w.Write([]byte(`{"user": {"id": "u2", "email": "new@example.com"}}`))
	})

	var events []AuthEvent
	sub := client.Auth().OnAuthStateChange(func(change AuthStateChange) {
		events = append(events, change.Event)
	})
	defer sub.Unsubscribe()

	_, err := client.Auth().SignUp(context.Background(), "new@example.com", "secret", &SignUpOptions{
		Metadata: map[string]any{"full_name": "New User"},
	})
	require.NoError(t, err)
	require.Empty(t, events, "沒有 session 就不該發 SIGNED_IN")
	require.Nil(t, client.Auth().GetSession())
}

func TestSignOutClearsLocalOnRemoteError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg": "token expired"}`))
	})

	client.Auth().setSession(&Session{AccessToken: "stale"})

	var events []AuthEvent
	sub := client.Auth().OnAuthStateChange(func(change AuthStateChange) {
		events = append(events, change.Event)
	})
	defer sub.Unsubscribe()

	err := client.Auth().SignOut(context.Background())
	require.Error(t, err)
	require.Nil(t, client.Auth().GetSession(), "遠端失敗也要清掉本地 session")
	require.Equal(t, []AuthEvent{AuthEventSignedOut}, events)
	require.Equal(t, "test-anon-key", client.bearerToken())
}

func TestUnsubscribeStopsEvents(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token": "jwt", "user": {"id": "u1"}}`))
	})

	var count int
	sub := client.Auth().OnAuthStateChange(func(change AuthStateChange) {
		count++
	})

	_, err := client.Auth().SignInWithPassword(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	sub.Unsubscribe()
	require.NoError(t, client.Auth().SignOut(context.Background()))
	require.Equal(t, 1, count, "退訂後不應該再收到事件")
}

func TestRefreshSessionWithoutSession(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := client.Auth().RefreshSession(context.Background())
	require.Error(t, err)
}

func TestSignInWithOAuthURL(t *testing.T) {
	client := NewClient("https://proj.supabase.co", "anon")
	got := client.Auth().SignInWithOAuth("google", "https://app.example.com/callback")
	require.Equal(t,
		"https://proj.supabase.co/auth/v1/authorize?provider=google&redirect_to=https%3A%2F%2Fapp.example.com%2Fcallback",
		got)
}

func TestMetadataString(t *testing.T) {
	u := &User{UserMetadata: map[string]any{"full_name": "Royce", "age": 30}}
	require.Equal(t, "Royce", u.MetadataString("full_name"))
	require.Equal(t, "", u.MetadataString("age"), "非字串欄位回空字串")
	require.Equal(t, "", u.MetadataString("missing"))

	var nilUser *User
	require.Equal(t, "", nilUser.MetadataString("full_name"))
}
