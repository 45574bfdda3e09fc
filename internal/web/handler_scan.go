package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vbonduro/pantry/internal/scanner"
)

const maxReceiptSize = 20 * 1024 * 1024 // 20 MB

// allowedReceiptTypes is the set of sniffed MIME types accepted for receipts.
// net/http.DetectContentType handles JPEG, PNG and GIF via magic-byte
// sniffing. WebP is detected separately because the WHATWG sniffing algorithm (and
// therefore the stdlib) does not include a WebP signature.
var allowedReceiptTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"text/plain": true,
}

// isWebP reports whether data is a WebP image (RIFF container with "WEBP" at
// offset 8).
func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

// allowedReceiptMIME returns the detected MIME type, without parameters, and
// true if the data is an accepted receipt format.
func allowedReceiptMIME(data []byte) (string, bool) {
	if len(data) == 0 {
		return "", false
	}
	if isWebP(data) {
		return "image/webp", true
	}
	mime, _, _ := strings.Cut(http.DetectContentType(data), ";")
	if allowedReceiptTypes[mime] {
		return mime, true
	}
	return "", false
}

type scanResponse struct {
	Added int        `json:"added"`
	Items []itemView `json:"items"`
}

func (s *Server) handleScanReceipt(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxReceiptSize)
	if err := r.ParseMultipartForm(maxReceiptSize); err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to parse form")
		return
	}

	file, _, err := r.FormFile("receipt")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "receipt file required")
		return
	}
	defer closeWithLog(file, "receipt file", s.logger)

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to read file")
		s.logger.Error("read receipt failed", "error", err)
		return
	}

	mimeType, ok := allowedReceiptMIME(data)
	if !ok {
		s.writeError(w, http.StatusUnsupportedMediaType, "unsupported receipt format")
		return
	}

	result, err := s.service.ScanReceipt(r.Context(), data, mimeType)
	if errors.Is(err, scanner.ErrUnsupportedFormat) {
		s.writeError(w, http.StatusUnsupportedMediaType, "unsupported receipt format")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to process receipt")
		s.logger.Error("scan receipt failed", "error", err)
		return
	}

	now := s.service.Now()
	items := make([]itemView, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, newItemView(item, now))
	}
	s.writeJSON(w, http.StatusCreated, scanResponse{Added: result.Added, Items: items})
}

// closeWithLog closes c and logs any error, using label to identify the resource.
func closeWithLog(c io.Closer, label string, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close resource", "label", label, "error", err)
	}
}
