package domain

import (
	"path"
	"strings"
	"time"
)

type Document struct {
	ID         string
	Name       string
	UploadedAt time.Time
}

// Extension returns the file extension of the document name without the dot.
func (d Document) Extension() string {
	ext := path.Ext(strings.TrimSpace(d.Name))
	return strings.TrimPrefix(ext, ".")
}
