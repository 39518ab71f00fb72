package profile

import (
	"context"
	"fmt"
	"io"

	"github.com/RoyceAzure/lab/storefront/internal/infra/supabase"
	"github.com/RoyceAzure/lab/storefront/internal/model"
)

type IProfileService interface {
	// Get 取得使用者 profile
	//
	// 錯誤:
	//   - *supabase.APIError: 遠端查詢失敗或資料不存在
	Get(ctx context.Context, userID string) (*model.Profile, error)
	// Upsert 建立或更新 profile，以 id 做衝突合併
	Upsert(ctx context.Context, p *model.Profile) (*model.Profile, error)
	// UploadAvatar 上傳大頭貼並把公開網址寫回 profile
	UploadAvatar(ctx context.Context, userID, filename string, r io.Reader) (string, error)
}

type Service struct {
	client *supabase.Client
}

func NewService(client *supabase.Client) *Service {
	return &Service{client: client}
}

func (s *Service) Get(ctx context.Context, userID string) (*model.Profile, error) {
	var p model.Profile
	_, err := s.client.From("profiles").
		Select("*").
		Eq("id", userID).
		Single().
		Get(ctx, &p)
	if err != nil {
		return nil, fmt.Errorf("get profile %s: %w", userID, err)
	}
	return &p, nil
}

func (s *Service) Upsert(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	var rows []model.Profile
	err := s.client.From("profiles").
		Select("*").
		Upsert(ctx, []*model.Profile{p}, "id", &rows)
	if err != nil {
		return nil, fmt.Errorf("upsert profile %s: %w", p.ID, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("upsert profile %s: empty response", p.ID)
	}
	return &rows[0], nil
}

func (s *Service) UploadAvatar(ctx context.Context, userID, filename string, r io.Reader) (string, error) {
	publicURL, err := s.client.Storage().UploadAvatar(ctx, userID, filename, r)
	if err != nil {
		return "", err
	}

	var rows []model.Profile
	err = s.client.From("profiles").
		Eq("id", userID).
		Select("*").
		Update(ctx, map[string]string{"avatar_url": publicURL}, &rows)
	if err != nil {
		return "", fmt.Errorf("save avatar url: %w", err)
	}
	return publicURL, nil
}
