package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"messdelivery/internal/pkg/errs"
)

// Upload is a file received from a client.
type Upload struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

func (u Upload) validate(param string) error {
	if u.Content == nil {
		return errs.NewValueIsRequiredError(param)
	}
	if _, err := u.extension(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return nil
}

// extension is the lower-cased file extension without the dot.
func (u Upload) extension() (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(u.FileName)), ".")
	if ext == "" {
		return "", fmt.Errorf("file name %q has no extension", u.FileName)
	}
	return ext, nil
}

// blobPath builds "{owner}/{name}.{ext}".
func (u Upload) blobPath(owner fmt.Stringer, name string) string {
	ext, _ := u.extension()
	return fmt.Sprintf("%s/%s.%s", owner, name, ext)
}
