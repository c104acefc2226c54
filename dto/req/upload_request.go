package req

// UploadRequest carries a base64-encoded payload, mirroring how clients
// submit media over the JSON API.
type UploadRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Type   string `json:"type" validate:"required,oneof=photo video voice avatar banner"`
	File   string `json:"file" validate:"required"`
}
