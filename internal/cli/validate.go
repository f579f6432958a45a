package cli

import (
	"github.com/go-playground/validator/v10"

	"github.com/me/glamgiant/pkg/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type registration struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func (r registration) request() model.RegisterRequest {
	return model.RegisterRequest{Name: r.Name, Email: r.Email, Password: r.Password, Role: model.RoleClient}
}

type productInput struct {
	Name              string  `validate:"required"`
	Category          string  `validate:"required"`
	Stock             int     `validate:"gte=0"`
	WarehouseLocation string  `validate:"required"`
	DurabilityScore   float64 `validate:"gte=0,lte=10"`
	Price             float64 `validate:"gte=0"`
}

func (p productInput) input() model.ProductInput {
	return model.ProductInput(p)
}

type testInput struct {
	ProductID string `validate:"required"`
	Reaction  string `validate:"required"`
	Rating    int    `validate:"gte=1,lte=10"`
	Survived  bool
}

type userInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Role     string `validate:"required"`
}
