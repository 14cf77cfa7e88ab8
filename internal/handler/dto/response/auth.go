package response

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	IsStaff     bool   `json:"is_staff"`
}
