package validators

import (
    "errors"

    "github.com/go-playground/validator/v10"
)

var validate = validator.New()

type pincodeQuery struct {
    Pincode string `validate:"required,number,len=6"`
}

// ValidatePincode checks that a pincode is exactly six digits. The returned
// error carries a message that is safe to send back to the client.
func ValidatePincode(pincode string) error {
    err := validate.Struct(pincodeQuery{Pincode: pincode})
    if err == nil {
        return nil
    }

    var fieldErrors validator.ValidationErrors
    if !errors.As(err, &fieldErrors) {
        return err
    }

    for _, fieldErr := range fieldErrors {
        switch fieldErr.Tag() {
        case "required":
            return errors.New("Pincode should not be empty.")
        case "len":
            return errors.New("Pincode must contain only 6 digits.")
        default:
            return errors.New("Invalid pincode.")
        }
    }
    return err
}
