package s3

import "github.com/kethil/tempursarihubstore-sub000/internal/types"

// Object is an uploadable blob together with the metadata we persist
// alongside the owning record.
type Object struct {
	Path        string
	Data        []byte
	Kind        types.DocumentKind
	ContentType string
}

func NewImageObject(path string, data []byte, contentType string) *Object {
	return &Object{
		Path:        path,
		Data:        data,
		Kind:        types.DocumentKindImage,
		ContentType: contentType,
	}
}

func NewFileObject(path string, data []byte, contentType string) *Object {
	return &Object{
		Path:        path,
		Data:        data,
		Kind:        types.DocumentKindFile,
		ContentType: contentType,
	}
}
