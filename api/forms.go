package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"auracash/service"
)

// looseString accepts a JSON string or number, so API clients may send
// amounts either way. Form binding treats it as a plain string.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = looseString(n.String())
	return nil
}

func (s looseString) String() string {
	return string(s)
}

// optionalID reads an optional id field. Blank means none.
func optionalID(field string, raw looseString) (*uint, error) {
	v := strings.TrimSpace(string(raw))
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil || id == 0 {
		return nil, &service.ValidationError{Field: field, Message: field + " is not a valid id"}
	}
	u := uint(id)
	return &u, nil
}
