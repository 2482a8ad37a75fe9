package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/matzehuels/graphbridge/pkg/buildinfo"
	"github.com/matzehuels/graphbridge/pkg/convert"
	errs "github.com/matzehuels/graphbridge/pkg/errors"
)

// Response headers set by /convert.
const (
	HeaderNodes = "X-Graph-Nodes"
	HeaderEdges = "X-Graph-Edges"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	type format struct {
		Name        string   `json:"name"`
		Extensions  []string `json:"extensions"`
		MediaType   string   `json:"mediaType"`
		Description string   `json:"description"`
	}
	var out []format
	for _, f := range convert.Formats() {
		ext := f.Extensions
		if ext == nil {
			ext = []string{}
		}
		out = append(out, format{string(f.Format), ext, f.MediaType, f.Description})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	from, err := formatParam(r, "from")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	to, err := formatParam(r, "to")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Convert(r.Context(), data, from, to)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", to.MediaType())
	w.Header().Set(HeaderNodes, strconv.Itoa(res.Stats.NodeCount))
	w.Header().Set(HeaderEdges, strconv.Itoa(res.Stats.EdgeCount))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Output)
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	from, err := formatParam(r, "from")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	g, err := s.runner.Import(r.Context(), data, from)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g.Summary())
}

func formatParam(r *http.Request, name string) (convert.Format, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return "", errs.New(errs.ErrCodeInvalidInput, "missing %q query parameter", name)
	}
	return convert.ParseFormat(v)
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "empty request body")
	}
	return data, nil
}

// statusFor maps an error to an HTTP status code.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	switch errs.GetCode(err) {
	case errs.ErrCodeInvalidInput, errs.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errs.ErrCodeParse, errs.ErrCodeMalformed, errs.ErrCodeInvalidColor:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	resp := errorResponse{
		Error:     errs.UserMessage(err),
		Code:      string(errs.GetCode(err)),
		RequestID: requestIDFrom(r.Context()),
	}
	if status == http.StatusRequestEntityTooLarge {
		resp.Error = "request body too large"
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "id", resp.RequestID, "err", err)
	} else {
		s.logger.Debug("request rejected", "id", resp.RequestID, "status", status, "err", err)
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
