// Package customfield contains use cases for admin-defined record fields.
package customfield

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/church-ledger/backend/internal/application/usecase/ledger"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

// NormalizeValue checks raw against the field type and returns its canonical
// string form. Empty input is returned as is.
func NormalizeValue(fieldType entity.CustomFieldType, raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", nil
	}

	switch fieldType {
	case entity.CustomFieldTypeText:
		return value, nil
	case entity.CustomFieldTypeDecimal:
		d, err := decimal.NewFromString(strings.ReplaceAll(value, ",", ""))
		if err != nil {
			return "", invalidValue(fieldType, value, err)
		}
		return d.String(), nil
	case entity.CustomFieldTypeInteger:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return "", invalidValue(fieldType, value, err)
		}
		return strconv.FormatInt(n, 10), nil
	case entity.CustomFieldTypeBoolean:
		b, err := strconv.ParseBool(strings.ToLower(value))
		if err != nil {
			return "", invalidValue(fieldType, value, err)
		}
		return strconv.FormatBool(b), nil
	case entity.CustomFieldTypeDate:
		t, err := ledger.ParseRecordDate(value)
		if err != nil {
			return "", invalidValue(fieldType, value, err)
		}
		return t.Format(ledger.DateLayout), nil
	}

	return "", domainerror.NewCustomFieldError(
		domainerror.ErrCodeInvalidFieldType,
		fmt.Sprintf("unsupported field type %q", fieldType),
		domainerror.ErrInvalidFieldType,
	)
}

func invalidValue(fieldType entity.CustomFieldType, value string, err error) error {
	return domainerror.NewCustomFieldError(
		domainerror.ErrCodeInvalidFieldValue,
		fmt.Sprintf("%q is not a valid %s", value, fieldType),
		fmt.Errorf("%w: %v", domainerror.ErrInvalidFieldValue, err),
	)
}

func fieldNotFound(err error) error {
	return domainerror.NewCustomFieldError(
		domainerror.ErrCodeCustomFieldNotFound,
		"custom field not found",
		err,
	)
}
