package helper

import (
	"errors"
	"fmt"

	"gig_manager/constants"
	"gig_manager/utils"
)

// Các loại lỗi của tầng store; handler map sang HTTP status bằng errors.Is
var (
	ErrValidation = errors.New("validation failed")
	ErrDuplicate  = errors.New("duplicate record")
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("conflicting state")
)

func validationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}

// ValidateState mã bang phải nằm trong danh sách cố định
func ValidateState(state string) error {
	if !utils.IsValidValueOfConstant(state, constants.STATES) {
		return validationError(constants.INVALID_STATE)
	}
	return nil
}

// ValidateGenres mỗi genre phải hợp lệ, không nhận tag lặp
func ValidateGenres(genres []string) error {
	for _, genre := range genres {
		if !utils.IsValidValueOfConstant(genre, constants.GENRES) {
			return validationError(constants.INVALID_GENRE)
		}
	}
	if utils.HasDuplicate(genres) {
		return validationError(constants.INVALID_GENRE)
	}
	return nil
}
