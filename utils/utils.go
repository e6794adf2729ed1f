package utils

import (
	"net/http"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseJSONBody decodes the request body into dst. Unknown fields are allowed:
// Bot Framework activities carry far more than the bot reads.
func ParseJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to serialize JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(response)
}

type errorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}

func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	res := errorResponse{Message: message}
	if err != nil {
		res.Error = err.Error()
	}
	RespondJSON(w, statusCode, res)
}

// WriteDebugJSON dumps v as indented JSON to dir/name, creating dir if needed.
func WriteDebugJSON(dir, name string, v interface{}) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create debug dir %s", dir)
	}
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", errors.Wrapf(err, "encode %s", name)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, nil
}
