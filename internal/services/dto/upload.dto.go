package dto

import (
	"io"
)

// UploadRequest - файл из multipart формы, уже открытый хэндлером
type UploadRequest struct {
	File         io.Reader
	OriginalName string
	Size         int64
	Folder       string `form:"folder" validate:"omitempty,is-folder"`
}

type UploadResponse struct {
	Path string `json:"path"`
}
