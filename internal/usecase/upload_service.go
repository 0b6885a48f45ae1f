package usecase

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
	"github.com/valyala/bytebufferpool"
)

var bucketPattern = regexp.MustCompile(`^[a-z0-9-]{3,63}$`)

// allowedUploadTypes lists accepted media types with their stored extension.
// SVG is left out: media is served from the API origin and SVG can carry script.
var allowedUploadTypes = []struct {
	mime string
	ext  string
}{
	{"image/png", ".png"},
	{"image/jpeg", ".jpg"},
	{"image/webp", ".webp"},
	{"image/gif", ".gif"},
	{"application/pdf", ".pdf"},
}

// ObjectStore persists uploaded bytes under bucket/key.
type ObjectStore interface {
	Put(ctx context.Context, bucket, key string, data []byte) error
}

type UploadInput struct {
	Bucket   string
	Filename string
	Body     io.Reader
}

type UploadResult struct {
	Bucket      string
	Key         string
	ContentType string
	Size        int
	PublicURL   string
}

type UploadService struct {
	store         ObjectStore
	idGen         idgen.Generator
	maxBytes      int64
	publicBaseURL string
}

func NewUploadService(store ObjectStore, idGen idgen.Generator, maxBytes int64, publicBaseURL string) *UploadService {
	return &UploadService{
		store:         store,
		idGen:         idGen,
		maxBytes:      maxBytes,
		publicBaseURL: strings.TrimRight(strings.TrimSpace(publicBaseURL), "/"),
	}
}

func (s *UploadService) MaxBytes() int64 {
	return s.maxBytes
}

// Upload stores a file after checking its bucket, size and sniffed content type.
// The declared filename is never trusted for the stored extension.
func (s *UploadService) Upload(ctx context.Context, in UploadInput) (UploadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UploadService.Upload")
	defer span.End()

	bucket := strings.TrimSpace(in.Bucket)
	if !bucketPattern.MatchString(bucket) {
		return UploadResult{}, invalidField("bucket", "must be 3-63 lowercase letters, digits or dashes")
	}
	if in.Body == nil {
		return UploadResult{}, invalidField("file", "is required")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(in.Body, s.maxBytes+1)); err != nil {
		return UploadResult{}, fmt.Errorf("%w: read upload: %v", ErrInvalidInput, err)
	}
	if buf.Len() == 0 {
		return UploadResult{}, invalidField("file", "is empty")
	}
	if int64(buf.Len()) > s.maxBytes {
		return UploadResult{}, invalidField("file", fmt.Sprintf("exceeds %d bytes", s.maxBytes))
	}

	detected := mimetype.Detect(buf.B)
	contentType, ext := "", ""
	for _, allowed := range allowedUploadTypes {
		if detected.Is(allowed.mime) {
			contentType, ext = allowed.mime, allowed.ext
			break
		}
	}
	if contentType == "" {
		return UploadResult{}, invalidField("file", fmt.Sprintf("content type %s is not allowed", detected.String()))
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return UploadResult{}, fmt.Errorf("generate upload key: %w", err)
	}
	key := id + ext
	if err := s.store.Put(ctx, bucket, key, buf.B); err != nil {
		return UploadResult{}, fmt.Errorf("%w: store upload: %v", ErrDependencyUnavailable, err)
	}

	return UploadResult{
		Bucket:      bucket,
		Key:         key,
		ContentType: contentType,
		Size:        buf.Len(),
		PublicURL:   s.publicBaseURL + "/media/" + bucket + "/" + key,
	}, nil
}
