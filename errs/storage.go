package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Object-Storage Errors
var (
	ErrStorageFailure  = errors.New("object storage operation failed")
	ErrInvalidBlobURL  = errors.New("invalid blob URL")
	ErrSignedURLFailed = errors.New("signed URL generation failed")
)

// NewStorageError wraps a failed object-store operation. Storage failures
// abort the enclosing operation and surface to the caller as a bad gateway.
func NewStorageError(operation, objectName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrStorageFailure,
		Details:    fmt.Sprintf("Failed to %s %s", operation, objectName),
		Cause:      cause,
	}
}

// NewInvalidBlobURLError signals a stored URL that does not match the
// configured bucket layout and cannot be mapped back to an object key.
func NewInvalidBlobURLError(url string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrInvalidBlobURL,
		Details:    fmt.Sprintf("Invalid object URL format: %s", url),
	}
}

func NewSignedURLError(objectName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrSignedURLFailed,
		Details:    fmt.Sprintf("Failed to generate signed URL for %s", objectName),
		Cause:      cause,
	}
}

func IsStorageFailure(err error) bool {
	return errors.Is(err, ErrStorageFailure)
}
