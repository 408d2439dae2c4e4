package helper

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"skbudget_backend/internals/configs"
)

const maxUploadSize = 5 * 1024 * 1024 // guard applied by controllers

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// GenerateObjectKey builds a unique storage key: <folder>/<ts>-<uuid>-<name>.
func GenerateObjectKey(folder, originalName string) string {
	base := filenameSanitizer.ReplaceAllString(filepath.Base(originalName), "-")
	return fmt.Sprintf("%s/%d-%s-%s",
		strings.Trim(folder, "/"),
		time.Now().Unix(),
		uuid.NewString()[:8],
		base,
	)
}

// UploadImageToStorage converts an uploaded image to WebP and pushes it to
// Supabase Storage. Returns the public URL.
func UploadImageToStorage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadSize {
		return "", fmt.Errorf("file exceeds the %dMB upload limit", maxUploadSize/(1024*1024))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !IsImageContentType(contentType) {
		return "", fmt.Errorf("unsupported image type: %s", contentType)
	}

	payload, err := ConvertImageToWebP(fileHeader)
	if err != nil {
		return "", err
	}

	key := GenerateObjectKey(folder, strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))+".webp")
	if err := uploadToSupabase(key, "image/webp", bytes.NewReader(payload)); err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	return publicURL(key), nil
}

// UploadFileToStorage pushes a raw file (PDF, document proof) unchanged.
func UploadFileToStorage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadSize {
		return "", fmt.Errorf("file exceeds the %dMB upload limit", maxUploadSize/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	key := GenerateObjectKey(folder, fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := uploadToSupabase(key, contentType, buf); err != nil {
		return "", fmt.Errorf("file upload failed: %w", err)
	}
	return publicURL(key), nil
}

func uploadToSupabase(key, contentType string, body io.Reader) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		strings.TrimRight(configs.SupabaseURL, "/"),
		configs.SupabaseBucket,
		key,
	)

	req, err := http.NewRequest(http.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+configs.SupabaseAPIKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("storage responded %d: %s", resp.StatusCode, string(msg))
	}
	return nil
}

func publicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		strings.TrimRight(configs.SupabaseURL, "/"),
		configs.SupabaseBucket,
		url.PathEscape(key),
	)
}
