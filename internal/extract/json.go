package extract

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON means the model reply contained no recoverable JSON object.
var ErrNoJSON = errors.New("nu s-au putut extrage datele din răspunsul AI")

// decodeObject recovers the first JSON object embedded in the model's
// free-text reply and unmarshals it into v. Models sometimes wrap the object
// in Markdown fences or surround it with prose despite instructions, so the
// reply is sliced from the first '{' to the last '}' before parsing.
func decodeObject(raw string, v any) error {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return ErrNoJSON
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), v); err != nil {
		return ErrNoJSON
	}
	return nil
}
