package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/WigiWigi1/QRCodeGen/pdf"
	"github.com/WigiWigi1/QRCodeGen/store"
)

func (s *Server) handleDownloadPNG(w http.ResponseWriter, r *http.Request) {
	path, ok := s.lookupImage(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="qrcode.png"`)
	http.ServeFile(w, r, path)
}

func (s *Server) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	path, ok := s.lookupImage(w, r)
	if !ok {
		return
	}

	data, err := pdf.Render(path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="qrcode.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// lookupImage resolves the id query parameter to a stored PNG path,
// writing the error response itself when the code is unknown.
func (s *Server) lookupImage(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.URL.Query().Get("id")
	path, err := s.Store.ImagePath(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "QR not found")
		return "", false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return "", false
	}
	return path, true
}
