package models

import (
	"bytes"
	"fmt"
	"strconv"
)

// ID is an entity identifier as delivered by the backend. Different
// endpoints serialize the same id either as a JSON number (7) or as a
// numeric string ("7"); ID canonicalizes both to a single numeric value
// at decode time so lookups never have to care which endpoint produced
// the record.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", s, err)
	}
	*id = ID(n)
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(id), 10)), nil
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
