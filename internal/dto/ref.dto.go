package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Ref is an identifier sent by clients either as a JSON number or as a
// JSON string. It keeps the textual form.
type Ref string

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Ref(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("ref must be a string or a number: %w", err)
	}
	*r = Ref(n.String())
	return nil
}

func (r Ref) String() string { return string(r) }

func (r Ref) Empty() bool { return r == "" }

// Uint parses the reference as a positive numeric id.
func (r Ref) Uint() (uint, error) {
	n, err := strconv.ParseUint(string(r), 10, 0)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid numeric id %q", string(r))
	}
	return uint(n), nil
}
