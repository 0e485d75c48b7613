package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"compro_backend/internal/auth"
	"compro_backend/internal/imageprocessor"
	"compro_backend/internal/logger"
	"compro_backend/internal/models"
	"compro_backend/internal/repositories"
	"compro_backend/internal/services/dto"
	"compro_backend/internal/storage"
	"compro_backend/internal/validator"
	"compro_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultUploadFolder = "uploads"
	DefaultMaxFileSize  = 50 * 1024 * 1024

	// sniffSize - сколько байт читаем для определения типа
	sniffSize = 3072

	// maxPreviewSource - изображения больше этого размера без превью
	maxPreviewSource = 20 * 1024 * 1024
)

var extensionPattern = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// UploadService сохраняет файл в storage и регистрирует его в uploads.
// Тип содержимого не ограничивается.
type UploadService interface {
	Store(ctx context.Context, db *gorm.DB, principal *auth.Principal, req *dto.UploadRequest) (*dto.UploadResponse, error)

	// MaxSize - лимит размера файла в байтах
	MaxSize() int64
}

type UploadOptions struct {
	MaxSize       int64
	DefaultFolder string

	// Images - превью для jpeg/png, nil - без превью
	Images *imageprocessor.Processor
}

type uploadService struct {
	storage    storage.Storage
	uploadRepo repositories.UploadRepository
	validator  *validator.Validator
	maxSize    int64
	folder     string
	images     *imageprocessor.Processor
}

func NewUploadService(store storage.Storage, uploadRepo repositories.UploadRepository, v *validator.Validator, opts UploadOptions) UploadService {
	if v == nil {
		v = validator.New()
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = DefaultMaxFileSize
	}
	if opts.DefaultFolder == "" {
		opts.DefaultFolder = DefaultUploadFolder
	}
	return &uploadService{
		storage:    store,
		uploadRepo: uploadRepo,
		validator:  v,
		maxSize:    opts.MaxSize,
		folder:     opts.DefaultFolder,
		images:     opts.Images,
	}
}

func (s *uploadService) MaxSize() int64 {
	return s.maxSize
}

func (s *uploadService) Store(ctx context.Context, db *gorm.DB, principal *auth.Principal, req *dto.UploadRequest) (*dto.UploadResponse, error) {
	req.Folder = strings.Trim(strings.TrimSpace(req.Folder), "/")

	fields, err := s.validator.Fields(req)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	switch {
	case req.File == nil:
		fields["file"] = "The file field is required."
	case req.Size > s.maxSize:
		fields["file"] = FileTooLargeMessage(s.maxSize)
	}
	if len(fields) > 0 {
		return nil, apperrors.ValidationError(fields)
	}

	folder := req.Folder
	if folder == "" {
		folder = s.folder
	}

	// Первые байты - для определения типа, затем весь поток целиком
	head := make([]byte, sniffSize)
	n, err := io.ReadFull(req.File, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, apperrors.FieldError("file", "The file failed to upload.")
	}
	head = head[:n]
	mtype := mimetype.Detect(head)
	contentType := mtype.String()

	var body io.Reader = io.MultiReader(bytes.NewReader(head), req.File)
	var imageData *bytes.Buffer
	if s.images != nil && imageprocessor.Supports(contentType) && req.Size <= maxPreviewSource {
		imageData = &bytes.Buffer{}
		body = io.TeeReader(body, imageData)
	}
	counter := &countingReader{r: body}

	name := uuid.NewString()
	key := folder + "/" + name + fileExtension(req.OriginalName, mtype)
	if err := s.storage.Save(ctx, key, counter, contentType); err != nil {
		logger.CtxWithError(ctx, "failed to store upload", err, "key", key)
		return nil, apperrors.ErrStorage(err)
	}

	upload := &models.Upload{
		UserID:          principal.UserID(),
		Folder:          folder,
		StorageKey:      key,
		Path:            s.storage.URL(key),
		OriginalName:    req.OriginalName,
		MimeType:        contentType,
		Size:            counter.n,
		StorageProvider: s.storage.Provider(),
	}
	if imageData != nil {
		s.attachPreview(ctx, upload, folder+"/previews/"+name, imageData.Bytes())
	}

	if err := s.uploadRepo.Create(db, upload); err != nil {
		// Запись в реестр не удалась - файлы без записи не оставляем
		s.remove(ctx, upload.StorageKey)
		if upload.PreviewKey != "" {
			s.remove(ctx, upload.PreviewKey)
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "file uploaded",
		"path", upload.Path,
		"size", upload.Size,
		"mime_type", upload.MimeType,
		"provider", upload.StorageProvider,
	)
	return &dto.UploadResponse{Path: upload.Path}, nil
}

// attachPreview сохраняет превью изображения. Ошибка превью не отменяет загрузку.
func (s *uploadService) attachPreview(ctx context.Context, upload *models.Upload, keyPrefix string, data []byte) {
	preview, err := s.images.Preview(data)
	if err != nil {
		logger.CtxWarn(ctx, "failed to build image preview", "key", upload.StorageKey, "error", err.Error())
		return
	}
	upload.Width = preview.Width
	upload.Height = preview.Height

	key := keyPrefix + preview.Ext
	if err := s.storage.Save(ctx, key, bytes.NewReader(preview.Data), preview.ContentType); err != nil {
		logger.CtxWithError(ctx, "failed to store image preview", err, "key", key)
		return
	}
	upload.PreviewKey = key
	upload.PreviewPath = s.storage.URL(key)
}

func (s *uploadService) remove(ctx context.Context, key string) {
	if err := s.storage.Delete(ctx, key); err != nil {
		logger.CtxWithError(ctx, "failed to remove orphan upload", err, "key", key)
	}
}

// FileTooLargeMessage - сообщение об ошибке размера, лимит в килобайтах
func FileTooLargeMessage(maxSize int64) string {
	return fmt.Sprintf("The file field must not be greater than %d kilobytes.", maxSize/1024)
}

// fileExtension - расширение из имени файла клиента, иначе по определенному типу
func fileExtension(originalName string, mtype *mimetype.MIME) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if extensionPattern.MatchString(ext) {
		return ext
	}
	return mtype.Extension()
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
