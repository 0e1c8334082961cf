package filestorage

import "mime/multipart"

// FileStorage is the blob store contract: save an uploaded file and get back
// a durable URL, delete by that URL.
type FileStorage interface {
	// SaveFile saves a file under the storage root and returns its accessible URL
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath saves a file under a subdirectory of the storage root
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a file from storage
	DeleteFile(fileURL string) error
}
