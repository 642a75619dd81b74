package entity

// UploadedFile describes a stored upload. URL is empty when no object
// storage is configured and only the file name is kept.
type UploadedFile struct {
	Name        string `json:"name"`
	Key         string `json:"key,omitempty"`
	URL         string `json:"url,omitempty"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Ref is what records store for the file: the URL when there is one.
func (f UploadedFile) Ref() string {
	if f.URL != "" {
		return f.URL
	}
	return f.Name
}
