package res

type UploadResponse struct {
	URL string `json:"url"`
}
