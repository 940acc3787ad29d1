package http

import (
	"encoding/json"
	"io"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/pkg/errs"
)

// equityPattern accepts decimal strings between 0 and 1 inclusive. The domain
// layer re-checks the numeric range; the pattern rejects garbage early.
const equityPattern = `^(0(\.[0-9]+)?|1(\.0+)?)$`

var (
	jobNewSchema        = buildJobNewSchema()
	jobUpdateSchema     = buildJobUpdateSchema()
	companyNewSchema    = buildCompanyNewSchema()
	companyUpdateSchema = buildCompanyUpdateSchema()
	userRegisterSchema  = buildUserRegisterSchema()
	userAuthSchema      = buildUserAuthSchema()
)

func buildJobNewSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("title", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("salary", openapi3.NewIntegerSchema().WithMin(0)).
		WithProperty("equity", openapi3.NewStringSchema().WithPattern(equityPattern)).
		WithProperty("company_handle", openapi3.NewStringSchema().WithMinLength(1))
	schema.Required = []string{"title", "company_handle"}
	forbidExtraProperties(schema)
	return schema
}

func buildJobUpdateSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("title", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("salary", openapi3.NewIntegerSchema().WithMin(0)).
		WithProperty("equity", openapi3.NewStringSchema().WithPattern(equityPattern))
	forbidExtraProperties(schema)
	return schema
}

func buildCompanyNewSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("handle", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("name", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("description", openapi3.NewStringSchema()).
		WithProperty("numEmployees", openapi3.NewIntegerSchema().WithMin(0)).
		WithProperty("logoUrl", openapi3.NewStringSchema())
	schema.Required = []string{"handle", "name"}
	forbidExtraProperties(schema)
	return schema
}

func buildCompanyUpdateSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("description", openapi3.NewStringSchema()).
		WithProperty("numEmployees", openapi3.NewIntegerSchema().WithMin(0)).
		WithProperty("logoUrl", openapi3.NewStringSchema())
	forbidExtraProperties(schema)
	return schema
}

func buildUserRegisterSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("username", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("password", openapi3.NewStringSchema().WithMinLength(int64(commands.MinPasswordLength)))
	schema.Required = []string{"username", "password"}
	forbidExtraProperties(schema)
	return schema
}

func buildUserAuthSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("username", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("password", openapi3.NewStringSchema().WithMinLength(1))
	schema.Required = []string{"username", "password"}
	forbidExtraProperties(schema)
	return schema
}

func forbidExtraProperties(schema *openapi3.Schema) {
	schema.AdditionalProperties = openapi3.AdditionalProperties{Has: openapi3.BoolPtr(false)}
}

// decodeAndValidate reads the request body, validates it against the schema
// collecting every violation, and unmarshals it into out when out is not nil.
func decodeAndValidate(c echo.Context, schema *openapi3.Schema, out any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	if err := schema.VisitJSON(payload, openapi3.MultiErrors()); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}
