package middleware

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/gpacalc/internal/app/models/dto"
	"github.com/yigit/gpacalc/internal/pkg/validation"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json field names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Blank values pass; the ledger reports them as required
	mustRegister(v, dto.TagSubjectName, maxLength(validation.SubjectNameMaxLength))
	mustRegister(v, dto.TagGradeSymbol, maxLength(validation.GradeSymbolMaxLength))
	return v
}

func maxLength(limit int) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return validation.NewStringValidation(fl.Field().String()).
			WithRequired(false).
			WithMaxLength(limit).
			Validate()
	}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// BindAndValidate decodes the JSON body into obj and runs struct validation.
// On failure it writes a 400 response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	return bindAndValidate(c, obj, false)
}

// BindOptionalAndValidate is BindAndValidate for endpoints whose body may be
// omitted. An empty body leaves obj at its zero value.
func BindOptionalAndValidate(c *gin.Context, obj interface{}) bool {
	return bindAndValidate(c, obj, true)
}

func bindAndValidate(c *gin.Context, obj interface{}, allowEmpty bool) bool {
	if allowEmpty && (c.Request.Body == nil || c.Request.Body == http.NoBody) {
		return true
	}

	// Chunked requests report ContentLength -1, so emptiness shows up as EOF
	if err := c.ShouldBindJSON(obj); err != nil && !(allowEmpty && errors.Is(err, io.EOF)) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}

	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}

	if err := validate.Struct(value.Interface()); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}

	return true
}
