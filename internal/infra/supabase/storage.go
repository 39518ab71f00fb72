package supabase

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
)

const avatarBucket = "avatars"

// Storage 物件儲存介面，目前只用來放大頭貼
type Storage struct {
	c *Client
}

func (c *Client) Storage() *Storage {
	c.storageOnce.Do(func() {
		c.storage = &Storage{c: c}
	})
	return c.storage
}

// UploadAvatar 上傳大頭貼並回傳公開網址
// 同一個使用者重傳會覆蓋舊檔
func (s *Storage) UploadAvatar(ctx context.Context, userID, filename string, r io.Reader) (string, error) {
	objectPath := fmt.Sprintf("%s/%s", userID, filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/storage/v1/object/%s/%s", s.c.baseURL, avatarBucket, objectPath), r)
	if err != nil {
		return "", err
	}
	s.c.setCommonHeaders(req)

	contentType := mime.TypeByExtension(path.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := s.c.do(req)
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}
	resp.Body.Close()

	return s.PublicURL(avatarBucket, objectPath), nil
}

// PublicURL 物件的公開存取網址
func (s *Storage) PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.c.baseURL, bucket, objectPath)
}
