package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/riskibarqy/league-portal/internal/usecase"
)

// multipartOverhead leaves room for form fields and part headers around the file.
const multipartOverhead = 64 << 10

// Upload stores a multipart `file` in the named `bucket` and returns its public url.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Upload")
	defer span.End()

	maxBytes := h.uploadService.MaxBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(maxBytes + multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(ctx, w, &usecase.ValidationError{Fields: []usecase.FieldError{{
				Field:   "file",
				Message: fmt.Sprintf("exceeds %d bytes", maxBytes),
			}}})
			return
		}
		writeError(ctx, w, fmt.Errorf("%w: invalid multipart form: %v", usecase.ErrInvalidInput, err))
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(ctx, w, &usecase.ValidationError{Fields: []usecase.FieldError{{Field: "file", Message: "is required"}}})
		return
	}
	defer file.Close()

	result, err := h.uploadService.Upload(ctx, usecase.UploadInput{
		Bucket:   r.FormValue("bucket"),
		Filename: header.Filename,
		Body:     file,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "media uploaded", "bucket", result.Bucket, "key", result.Key, "size", result.Size)
	writeSuccess(ctx, w, http.StatusCreated, uploadResultDTO{
		Success:     true,
		PublicURL:   result.PublicURL,
		Bucket:      result.Bucket,
		Key:         result.Key,
		ContentType: result.ContentType,
		Size:        result.Size,
	})
}

// MediaHandler serves stored uploads from dir under /media/{bucket}/{file}.
// Nested paths and dot segments are rejected.
func MediaHandler(dir string) http.Handler {
	files := http.StripPrefix("/media/", http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bucket, file := r.PathValue("bucket"), r.PathValue("file")
		if !safeMediaSegment(bucket) || !safeMediaSegment(file) {
			http.NotFound(w, r)
			return
		}
		r.URL.Path = "/media/" + bucket + "/" + file
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		files.ServeHTTP(w, r)
	})
}

func safeMediaSegment(s string) bool {
	if s == "" || s == "." || s == ".." || strings.HasPrefix(s, ".") {
		return false
	}
	return path.Base(s) == s && !strings.ContainsAny(s, `/\`)
}
