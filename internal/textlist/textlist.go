// Package textlist stores ordered string lists as comma-joined text columns.
//
// A nil List maps to SQL NULL, so callers can distinguish "no value given"
// from an explicitly empty list (stored as the empty string). Tokens must not
// contain the delimiter; no escaping is performed.
package textlist

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// List is an ordered list of short string tokens (room labels, photo URLs).
type List []string

// Value encodes the list for storage. nil encodes to NULL.
func (l List) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return strings.Join(l, ","), nil
}

// Scan decodes a stored column value. NULL scans to nil, the empty string
// scans to an empty non-nil list.
func (l *List) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("textlist: cannot scan %T into List", value)
	}

	if s == "" {
		*l = List{}
		return nil
	}
	*l = List(strings.Split(s, ","))
	return nil
}

// GormDataType tells GORM to create a plain text column.
func (List) GormDataType() string {
	return "text"
}
