package model

// Profile 對應 profiles 資料表，id 與遠端 auth identity id 相同
type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
