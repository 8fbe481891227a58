package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"famcal/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidateTitle checks a title is between 1 and 255 characters.
func ValidateTitle(title string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	if n == 0 || n > 255 {
		return errors.New("title must be between 1 and 255 characters")
	}
	return nil
}

// ValidateEventInput checks field formats. On create the title is required.
func ValidateEventInput(in models.EventInput, create bool) error {
	if err := checkTitle(in.Title, create); err != nil {
		return err
	}
	return validationError(validate.Struct(in))
}

func ValidateTaskInput(in models.TaskInput, create bool) error {
	if err := checkTitle(in.Title, create); err != nil {
		return err
	}
	return validationError(validate.Struct(in))
}

func ValidateMessageInput(in models.MessageInput) error {
	if strings.TrimSpace(in.Text) == "" {
		return errors.New("text is required")
	}
	return validationError(validate.Struct(in))
}

func checkTitle(title *string, required bool) error {
	if title == nil {
		if required {
			return errors.New("title is required")
		}
		return nil
	}
	return ValidateTitle(*title)
}

// validationError flattens validator output into one readable line.
func validationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, field+" must be one of: "+strings.ReplaceAll(fe.Param(), " ", ", "))
		case "max":
			msgs = append(msgs, field+" must be at most "+fe.Param()+" characters")
		case "min":
			msgs = append(msgs, field+" must be at least "+fe.Param())
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
