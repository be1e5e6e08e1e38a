package response_models

type LoginResponse struct {
	Token       string `json:"token"`
	DisplayName string `json:"display_name"`
}
