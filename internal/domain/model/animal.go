package model

import "time"

// PhotoKind discriminates how an animal photo is referenced.
type PhotoKind string

const (
	// PhotoNone marks records without any photo reference.
	PhotoNone PhotoKind = "none"
	// PhotoStoredFile references a file saved in the local photo store.
	PhotoStoredFile PhotoKind = "stored_file"
	// PhotoExternalURL references an externally hosted image.
	PhotoExternalURL PhotoKind = "external_url"
)

// PhotoRef is a tagged photo reference. For stored files Ref holds the
// generated storage key and DisplayName the client-supplied filename;
// for external URLs Ref holds the URL and DisplayName is empty.
type PhotoRef struct {
	Kind        PhotoKind
	Ref         string
	DisplayName string
}

// StoredFilePhoto builds a reference to an uploaded file kept in the photo store.
func StoredFilePhoto(key, displayName string) PhotoRef {
	return PhotoRef{Kind: PhotoStoredFile, Ref: key, DisplayName: displayName}
}

// ExternalURLPhoto builds a reference to an externally hosted image.
func ExternalURLPhoto(url string) PhotoRef {
	return PhotoRef{Kind: PhotoExternalURL, Ref: url}
}

// IsExternalURL reports whether the reference points at an external image.
func (p PhotoRef) IsExternalURL() bool {
	return p.Kind == PhotoExternalURL
}

// SrcURL returns the value usable as an img src attribute.
func (p PhotoRef) SrcURL() string {
	switch p.Kind {
	case PhotoStoredFile:
		return "/uploads/" + p.Ref
	case PhotoExternalURL:
		return p.Ref
	default:
		return ""
	}
}

// Animal is a single zoo animal record. Age is kept as free text.
type Animal struct {
	ID        int64
	Name      string
	Age       string
	Species   string
	Photo     PhotoRef
	CreatedAt time.Time
	UpdatedAt time.Time
}
