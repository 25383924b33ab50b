package http

import (
	"fmt"
	"strings"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/core/ports"
	"messdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const callerKey = "caller"

func callerFrom(c echo.Context) (profile.Caller, error) {
	caller, ok := c.Get(callerKey).(profile.Caller)
	if !ok {
		return profile.Caller{}, fmt.Errorf("%w: no caller on request", ports.ErrInvalidToken)
	}
	return caller, nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return toUUID(name, id)
}

func queryDate(c echo.Context, name string) (kernel.Date, error) {
	var date openapi_types.Date
	if err := runtime.BindQueryParameter("form", true, true, name, c.QueryParams(), &date); err != nil {
		return kernel.Date{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.DateOf(date.Time), nil
}

func queryInt(c echo.Context, name string) (int, error) {
	var value *int
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if value == nil {
		return 0, nil
	}
	return *value, nil
}

func formUUID(c echo.Context, name string) (kernel.UUID, error) {
	raw := c.FormValue(name)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	var id openapi_types.UUID
	if err := runtime.BindStringToObject(raw, &id); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return toUUID(name, id)
}

func formDate(c echo.Context, name string) (kernel.Date, error) {
	raw := c.FormValue(name)
	if raw == "" {
		return kernel.Date{}, errs.NewValueIsRequiredError(name)
	}
	var date openapi_types.Date
	if err := runtime.BindStringToObject(raw, &date); err != nil {
		return kernel.Date{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.DateOf(date.Time), nil
}

func toUUID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	u, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return u, nil
}

func optionalUUID(name string, id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil // absent value
	}
	u, err := toUUID(name, *id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
