package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/photocatalog/internal/domain/errors"
	"github.com/polkiloo/photocatalog/internal/domain/model"
)

const (
	msgRequired      = "This field is required."
	msgWholeNumber   = "Enter a whole number."
	msgInvalidEmail  = "Enter a valid email address."
	msgInvalidPhone  = "Enter a valid US phone number, e.g. 555-555-5555."
	msgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."
	msgInvalidValue  = "Enter a valid value."
)

// usPhonePattern accepts NXX-NXX-XXXX with an optional "+1 " prefix, N in 2-9.
var usPhonePattern = regexp.MustCompile(`^(\+1 )?[2-9][0-9]{2}-[2-9][0-9]{2}-[0-9]{4}$`)

// zeroFraction matches a trailing ".0", ".00", ... that still denotes a whole number.
var zeroFraction = regexp.MustCompile(`\.0*$`)

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("usphone", func(fl validator.FieldLevel) bool {
		return usPhonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register usphone validation: %v", err))
	}
	return v
}

// ValidateOrderForm checks the shape of checkout input and converts it into
// an Order draft. Reference fields are parsed but not resolved. All violations
// are collected into a single ValidationError.
func ValidateOrderForm(form model.OrderForm) (model.Order, *domainErrors.ValidationError) {
	form = trimForm(form)
	verr := &domainErrors.ValidationError{}

	if err := formValidator.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			verr.Add(domainErrors.NonFieldKey, err.Error())
			return model.Order{}, verr
		}
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), fieldMessage(fe))
		}
	}

	order := model.Order{
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Email:          form.Email,
		PrimaryPhone:   form.PrimaryPhone,
		AddressLineOne: form.AddressLineOne,
		City:           form.City,
		StateOrRegion:  form.StateOrRegion,
		Country:        form.Country,
	}
	if form.AddressLineTwo != "" {
		line := form.AddressLineTwo
		order.AddressLineTwo = &line
	}

	if _, failed := verr.Fields["postal_code"]; !failed {
		n, ok := parseWholeNumber(form.PostalCode)
		if !ok {
			verr.Add("postal_code", msgWholeNumber)
		}
		order.PostalCode = n
	}
	order.PrintID = parseReference(verr, "print_id", form.PrintID)
	order.PhotoID = parseReference(verr, "photo_id", form.PhotoID)

	if !verr.Empty() {
		return model.Order{}, verr
	}
	return order, nil
}

func parseReference(verr *domainErrors.ValidationError, field, raw string) int64 {
	if _, failed := verr.Fields[field]; failed {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		verr.Add(field, msgInvalidChoice)
	}
	return id
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters (it has %d).",
			fe.Param(), utf8.RuneCountInString(fe.Value().(string)))
	case "email":
		return msgInvalidEmail
	case "usphone":
		return msgInvalidPhone
	case "number":
		if fe.Field() == "print_id" || fe.Field() == "photo_id" {
			return msgInvalidChoice
		}
		return msgWholeNumber
	default:
		return msgInvalidValue
	}
}

func trimForm(form model.OrderForm) model.OrderForm {
	fields := []*string{
		&form.FirstName, &form.LastName, &form.Email, &form.PrimaryPhone,
		&form.AddressLineOne, &form.AddressLineTwo, &form.City, &form.StateOrRegion,
		&form.PostalCode, &form.Country, &form.PrintID, &form.PhotoID,
	}
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
	return form
}

// FormatAddress joins address lines with a space. The first line is mandatory
// even when the second is present.
func FormatAddress(lineOne string, lineTwo *string) (string, error) {
	if lineOne == "" {
		return "", domainErrors.ErrEmptyAddress
	}
	if lineTwo == nil || *lineTwo == "" {
		return lineOne, nil
	}
	return lineOne + " " + *lineTwo, nil
}

// parseWholeNumber accepts an optionally signed integer, also written with a
// zero fraction such as "2000.0".
func parseWholeNumber(raw string) (int, bool) {
	raw = zeroFraction.ReplaceAllString(strings.TrimSpace(raw), "")
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
