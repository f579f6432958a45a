package ui

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/me/glamgiant/pkg/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// fieldErrors converts validator errors into per-field messages keyed by
// form field name.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = describe(fe)
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "eqfield":
		return "does not match"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return "is invalid"
}

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type registerForm struct {
	Name     string `form:"name" validate:"required,max=100"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
	Confirm  string `form:"confirm" validate:"eqfield=Password"`
}

type productForm struct {
	Name              string  `form:"name" validate:"required,max=120"`
	Category          string  `form:"category" validate:"required"`
	Stock             int     `form:"stock" validate:"gte=0"`
	WarehouseLocation string  `form:"warehouse_location" validate:"required"`
	DurabilityScore   float64 `form:"durability_score" validate:"gte=0,lte=10"`
	Price             float64 `form:"price" validate:"gte=0"`
}

func (f productForm) input() model.ProductInput {
	return model.ProductInput{
		Name:              f.Name,
		Category:          f.Category,
		Stock:             f.Stock,
		WarehouseLocation: f.WarehouseLocation,
		DurabilityScore:   f.DurabilityScore,
		Price:             f.Price,
	}
}

func productFormFrom(p model.Product) productForm {
	return productForm{
		Name:              p.Name,
		Category:          p.Category,
		Stock:             p.Stock,
		WarehouseLocation: p.WarehouseLocation,
		DurabilityScore:   p.DurabilityScore,
		Price:             p.Price,
	}
}

type productTestForm struct {
	ProductID      string `form:"product_id" validate:"required"`
	Reaction       string `form:"reaction" validate:"required"`
	Rating         int    `form:"rating" validate:"gte=1,lte=10"`
	SurvivalStatus bool   `form:"survival_status"`
}

type userForm struct {
	Name              string `form:"name" validate:"required"`
	Email             string `form:"email" validate:"required,email"`
	Password          string `form:"password" validate:"omitempty,min=6"`
	Role              string `form:"role" validate:"required,oneof=admin client tester employee"`
	TestSubjectStatus bool   `form:"test_subject_status"`
	AllergicReactions string `form:"allergic_reactions"`
}

type profileForm struct {
	Name              string `form:"name" validate:"required"`
	Email             string `form:"email" validate:"required,email"`
	Password          string `form:"password" validate:"omitempty,min=6"`
	Confirm           string `form:"confirm" validate:"eqfield=Password"`
	TestSubjectStatus bool   `form:"test_subject_status"`
	AllergicReactions string `form:"allergic_reactions"`
}

// formErrors collects conversion errors for numeric fields before
// validation runs.
type formErrors map[string]string

func formString(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}

func (fe formErrors) int(r *http.Request, key string) int {
	raw := formString(r, key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fe[key] = "must be a whole number"
	}
	return n
}

func (fe formErrors) float(r *http.Request, key string) float64 {
	raw := formString(r, key)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fe[key] = "must be a number"
	}
	return f
}

func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(r.PostFormValue(key)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// check validates v and merges in any conversion errors.
func (fe formErrors) check(v any) map[string]string {
	out := map[string]string{}
	if err := validate.Struct(v); err != nil {
		out = fieldErrors(err)
	}
	for k, msg := range fe {
		out[k] = msg
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
