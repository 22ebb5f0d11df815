package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/WigiWigi1/QRCodeGen/qr"
)

type generateRequest struct {
	Link      string `json:"link"`
	FillColor string `json:"fill_color"`
	BackColor string `json:"back_color"`
	Size      string `json:"size"`
}

type generateResponse struct {
	QRCode string `json:"qr_code"`
	ID     string `json:"id,omitempty"`
}

// handleGenerateQR encodes the submitted link as a QR code PNG and returns
// it base64-encoded. GET requests carry the fields as query parameters,
// POST requests as a JSON body.
func (s *Server) handleGenerateQR(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	} else {
		q := r.URL.Query()
		req = generateRequest{
			Link:      q.Get("link"),
			FillColor: q.Get("fill_color"),
			BackColor: q.Get("back_color"),
			Size:      q.Get("size"),
		}
	}

	link := qr.NormalizeLink(req.Link)
	if link == "" {
		writeError(w, http.StatusBadRequest, "no link provided")
		return
	}

	size := qr.SizeForPreset(req.Size)
	png, err := qr.Encode(link, qr.Options{
		FillColor: req.FillColor,
		BackColor: req.BackColor,
		Pixels:    size,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := generateResponse{QRCode: base64.StdEncoding.EncodeToString(png)}

	// Keep the image around for the download endpoints. A failed save
	// still returns the generated code, just without an id.
	id, err := s.Store.Save(link, size, png)
	if err != nil {
		s.Log.Warn("failed to archive code", "error", err)
	} else {
		resp.ID = id
	}

	writeJSON(w, http.StatusOK, resp)
}
