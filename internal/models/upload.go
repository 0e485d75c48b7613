package models

// Upload - реестр загруженных файлов. Запись создается только после успешной записи в storage.
type Upload struct {
	BaseModel
	UserID          uint   `gorm:"index" json:"uploaded_by"`
	Folder          string `gorm:"size:255;not null;index" json:"folder"`
	StorageKey      string `gorm:"size:255;not null" json:"-"`                // <folder>/<file>
	Path            string `gorm:"size:255;not null;uniqueIndex" json:"path"` // публичный путь, его хранят записи контента
	OriginalName    string `gorm:"size:255" json:"original_name"`
	MimeType        string `gorm:"size:127" json:"mime_type"`
	Size            int64  `json:"size"`
	StorageProvider string `gorm:"size:32" json:"storage_provider"`

	// Только для изображений jpeg/png
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	PreviewKey  string `gorm:"size:255" json:"-"`
	PreviewPath string `gorm:"size:255" json:"preview_path,omitempty"`
}
