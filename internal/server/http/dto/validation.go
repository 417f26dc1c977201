package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/maropko/parceltrack/internal/domain/model"
	"github.com/maropko/parceltrack/internal/pkg/tracknum"
)

// NewValidator returns a validator with the shipment-domain rules
// registered.
func NewValidator() *validatorv10.Validate {
	v := validatorv10.New()

	_ = v.RegisterValidation("tracking_number", func(fl validatorv10.FieldLevel) bool {
		return tracknum.Valid(fl.Field().String())
	})
	_ = v.RegisterValidation("shipment_status", func(fl validatorv10.FieldLevel) bool {
		return model.Status(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("shipping_method", func(fl validatorv10.FieldLevel) bool {
		return model.ShippingMethod(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("currency_code", func(fl validatorv10.FieldLevel) bool {
		return model.Currency(fl.Field().String()).Valid()
	})

	return v
}

// BindAndValidate binds the JSON body into out and runs validation. On
// failure it writes a 400 response and returns the error so the handler can
// short-circuit.
func BindAndValidate(c *gin.Context, out any, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body"})
		return err
	}

	if err := v.Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation_failed",
			"fields": validationErrorsToMap(err),
		})
		return err
	}
	return nil
}

func validationErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	if ve, ok := err.(validatorv10.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
	} else {
		out["error"] = err.Error()
	}
	return out
}
