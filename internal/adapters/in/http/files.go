package http

import (
	"net/http"
	"os"
	"path"

	"github.com/labstack/echo/v4"
)

// FileOpener serves objects of a local blob store behind signed links.
type FileOpener interface {
	Open(bucket, path, token string) (*os.File, error)
}

func serveFile(files FileOpener) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := c.Param("*")
		f, err := files.Open(c.Param("bucket"), name, c.QueryParam("token"))
		if err != nil {
			return err
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return err
		}
		c.Response().Header().Set("Cache-Control", "private, no-store")
		http.ServeContent(c.Response(), c.Request(), path.Base(name), info.ModTime(), f)
		return nil
	}
}
