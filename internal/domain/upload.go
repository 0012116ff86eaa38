package domain

// UploadedImage describes an object written to storage.
type UploadedImage struct {
	Key         string
	ContentType string
	Size        int
	URL         string
}
