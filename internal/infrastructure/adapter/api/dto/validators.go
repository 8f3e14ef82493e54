package dto

import (
	"fmt"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Custom binding tags
const (
	TagCardNumber = "cardnumber"
	TagAmount     = "amount"
)

// RegisterValidators installs the custom tags on gin's default validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

// RegisterOn installs the custom tags on v
func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation(TagCardNumber, validateCardNumber); err != nil {
		return err
	}
	return v.RegisterValidation(TagAmount, validateAmount)
}

func validateCardNumber(fl validator.FieldLevel) bool {
	return entity.ValidateCardNumber(fl.Field().String()) == nil
}

// validateAmount accepts a non-negative decimal with at most two fraction digits
func validateAmount(fl validator.FieldLevel) bool {
	_, err := entity.ValidateAndConvertAmount(fl.Field().String())
	return err == nil
}
