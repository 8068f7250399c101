package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/vocalis/internal/observability/telemetry"
	"github.com/seu-repo/vocalis/internal/ports"
)

// Uploader pushes assistant avatars to a Cloudinary-style media host
// using an unsigned upload preset. The host returns the public URL that
// gets stored on the user record.
type Uploader struct {
	uploadURL string
	preset    string
	client    *http.Client
	log       *zap.Logger
}

var _ ports.MediaUploader = (*Uploader)(nil)

func NewUploader(uploadURL, preset string, timeout time.Duration, log *zap.Logger) *Uploader {
	return &Uploader{
		uploadURL: uploadURL,
		preset:    preset,
		client:    &http.Client{Timeout: timeout},
		log:       log,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

func (u *Uploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	url, err := u.upload(ctx, filename, r)
	if err != nil {
		telemetry.MediaUploadsTotal.WithLabelValues("error").Inc()
		return "", err
	}
	telemetry.MediaUploadsTotal.WithLabelValues("ok").Inc()
	return url, nil
}

func (u *Uploader) upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("upload_preset", u.preset); err != nil {
		return "", fmt.Errorf("media: write preset field: %w", err)
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("media: create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("media: copy file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("media: close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("media: build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("media: upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("media: upload failed with status %d", resp.StatusCode)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("media: decode response: %w", err)
	}

	url := parsed.SecureURL
	if url == "" {
		url = parsed.URL
	}
	if url == "" {
		return "", fmt.Errorf("media: response carries no url")
	}

	u.log.Debug("avatar uploaded", zap.String("filename", filename), zap.String("url", url))
	return url, nil
}
