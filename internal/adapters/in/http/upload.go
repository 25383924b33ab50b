package http

import (
	"errors"
	"net/http"

	"messdelivery/internal/core/application/usecases/commands"
	"messdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// formFile opens a multipart file field. The returned func closes it.
func formFile(c echo.Context, name string) (*commands.Upload, func(), error) {
	header, err := c.FormFile(name)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, errs.NewValueIsRequiredError(name)
	}
	if err != nil {
		return nil, nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	f, err := header.Open()
	if err != nil {
		return nil, nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	upload := &commands.Upload{
		FileName:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Content:     f,
	}
	return upload, func() { _ = f.Close() }, nil
}

// optionalFormFile is formFile for fields that may be absent.
func optionalFormFile(c echo.Context, name string) (*commands.Upload, func(), error) {
	upload, closeFile, err := formFile(c, name)
	if errors.Is(err, errs.ErrValueIsRequired) {
		return nil, func() {}, nil
	}
	return upload, closeFile, err
}
