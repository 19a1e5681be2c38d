package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores an ordered list of strings as a jsonb column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(src any) error {
	return scanJSON(src, l)
}

// StatList stores profile stats as a jsonb column.
type StatList []Stat

func (l StatList) Value() (driver.Value, error) {
	return marshalJSONValue(l, len(l) == 0)
}

func (l *StatList) Scan(src any) error {
	return scanJSON(src, l)
}

// SocialList stores social links as a jsonb column.
type SocialList []Social

func (l SocialList) Value() (driver.Value, error) {
	return marshalJSONValue(l, len(l) == 0)
}

func (l *SocialList) Scan(src any) error {
	return scanJSON(src, l)
}

// AttachmentList stores attachments as a jsonb column.
type AttachmentList []Attachment

func (l AttachmentList) Value() (driver.Value, error) {
	return marshalJSONValue(l, len(l) == 0)
}

func (l *AttachmentList) Scan(src any) error {
	return scanJSON(src, l)
}

// LinkList stores labeled links as a jsonb column.
type LinkList []Link

func (l LinkList) Value() (driver.Value, error) {
	return marshalJSONValue(l, len(l) == 0)
}

func (l *LinkList) Scan(src any) error {
	return scanJSON(src, l)
}

func marshalJSONValue(v any, empty bool) (driver.Value, error) {
	if empty {
		return "[]", nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func scanJSON(src any, dest any) error {
	if src == nil {
		return nil
	}
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dest)
	case string:
		return json.Unmarshal([]byte(data), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}
