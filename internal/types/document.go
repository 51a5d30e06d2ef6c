package types

import (
	"database/sql/driver"
	"encoding/json"
	"strings"

	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
)

// DocumentKind tags uploaded attachments so readers never have to infer
// the payload shape from file extensions.
type DocumentKind string

const (
	DocumentKindFile  DocumentKind = "file"
	DocumentKindImage DocumentKind = "image"
)

// Document is one uploaded attachment reference on a service request or
// a product image list. The tagged schema is validated at write time.
type Document struct {
	Kind        DocumentKind `json:"kind"`
	Path        string       `json:"path"`
	ContentType string       `json:"content_type"`
	URL         string       `json:"url,omitempty"`
}

func (d Document) Validate() error {
	if d.Kind != DocumentKindFile && d.Kind != DocumentKindImage {
		return ierr.NewErrorf("invalid document kind: %s", d.Kind).
			WithHint("Document kind must be file or image").
			Mark(ierr.ErrValidation)
	}
	if strings.TrimSpace(d.Path) == "" {
		return ierr.NewError("document path is required").
			WithHint("Uploaded documents must carry a storage path").
			Mark(ierr.ErrValidation)
	}
	if d.ContentType == "" {
		return ierr.NewError("document content type is required").
			WithHint("Uploaded documents must carry a content type").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DocumentList stores attachments as a jsonb column.
type DocumentList []Document

func (l DocumentList) Validate() error {
	for _, d := range l {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Value implements driver.Valuer for jsonb storage
func (l DocumentList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for jsonb storage
func (l *DocumentList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return ierr.NewError("unsupported document list source").
			Mark(ierr.ErrDatabase)
	}
	return json.Unmarshal(data, l)
}
