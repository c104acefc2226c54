package enum

type UploadType string

const (
	UploadPhoto  UploadType = "photo"
	UploadVideo  UploadType = "video"
	UploadVoice  UploadType = "voice"
	UploadAvatar UploadType = "avatar"
	UploadBanner UploadType = "banner"
)

// Ext returns the object key extension stored for this upload kind.
func (t UploadType) Ext() string {
	switch t {
	case UploadVideo:
		return "mp4"
	case UploadVoice:
		return "ogg"
	default:
		return "jpg"
	}
}

func (t UploadType) ContentType() string {
	switch t {
	case UploadVideo:
		return "video/mp4"
	case UploadVoice:
		return "audio/ogg"
	case UploadPhoto, UploadAvatar, UploadBanner:
		return "image/jpeg"
	}
	return "application/octet-stream"
}
