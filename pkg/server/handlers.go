package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/weightstack/pkg/buildinfo"
	"github.com/matzehuels/weightstack/pkg/errors"
	"github.com/matzehuels/weightstack/pkg/pipeline"
	"github.com/matzehuels/weightstack/pkg/scene"
)

// request is the body of the measure and arrange endpoints.
type request struct {
	Scene   *scene.Scene     `json:"scene"`
	Options pipeline.Options `json:"options,omitempty"`
}

type sizeResponse struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

var contentTypes = map[string]string{
	scene.FormatJSON: "application/json",
	scene.FormatTOML: "application/toml",
	scene.FormatYAML: "application/yaml",
}

func (s *Server) handleMeasure(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	size, err := s.runner.Measure(r.Context(), req.Scene, req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sizeResponse{Width: size.Width, Height: size.Height})
}

func (s *Server) handleArrange(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.Arrange(r.Context(), req.Scene, req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := req.Options.Format
	if format == "" {
		format = pipeline.DefaultFormat
	}
	data, err := res.Marshal(format)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "encode layout"))
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set(ArrangementIDHeader, res.ID.String())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Current())
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (*request, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()

	var req request
	if err := dec.Decode(&req); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}
	if req.Scene == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scene is required")
	}
	return &req, nil
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch code := errors.GetCode(err); {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case code == errors.ErrCodeNotFound, code == errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorResponse{Code: code, Message: clientMessage(err, status)})
}

// clientMessage is the message sent back for err. Client errors carry
// their cause so callers can see what was wrong with the request.
func clientMessage(err error, status int) string {
	msg := errors.UserMessage(err)
	var e *errors.Error
	if status < http.StatusInternalServerError && stderrors.As(err, &e) && e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
