package batch

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/vaxsim/internal/domain"
)

// validate is shared by every input of the package. Custom tags:
//   - maxbytes=N: string length in bytes (the built-in max counts runes)
//   - batchid:    only uppercase hexadecimal digits
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("maxbytes", validateMaxBytes)
	_ = v.RegisterValidation("batchid", validateBatchID)
	return v
}

func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func validateBatchID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	for i := 0; i < len(id); i++ {
		if !domain.IsBatchIDChar(id[i]) {
			return false
		}
	}
	return true
}

// CreateBatchInput holds the parameters for registering a new batch.
type CreateBatchInput struct {
	BatchID string `validate:"required,maxbytes=20,batchid"`
	Name    string `validate:"required,maxbytes=50"`
	Expiry  domain.Date
	Doses   int `validate:"min=1"`
}

// Validate checks the fields in a fixed order and reports the first failure:
// batch id, name, expiry (must not be before today), dose count.
func (i CreateBatchInput) Validate(today domain.Date) error {
	failed := make(map[string]bool)
	if err := validate.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate batch input: %w", err)
		}
		for _, fe := range verrs {
			failed[fe.StructField()] = true
		}
	}

	switch {
	case failed["BatchID"]:
		return domain.ErrInvalidBatchID
	case failed["Name"]:
		return domain.ErrInvalidName
	case !i.Expiry.IsValid() || i.Expiry.Before(today):
		return domain.ErrInvalidDate
	case failed["Doses"]:
		return domain.ErrInvalidQuantity
	}
	return nil
}

// ListBatchesInput holds the vaccine names to list. No names lists every batch.
type ListBatchesInput struct {
	Names []string
}

// RemoveBatchInput holds the parameters for removing a batch.
type RemoveBatchInput struct {
	BatchID string
}

// Validate checks that a batch id was given.
func (i RemoveBatchInput) Validate() error {
	if i.BatchID == "" {
		return domain.ErrInvalidBatchID
	}
	return nil
}
