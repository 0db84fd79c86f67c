package service

import (
	"fmt"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
)

// Validate gates creation of a record that matched nothing. Names are checked
// before the contact channel and only the first failure is returned.
func Validate(
	names domain.Names,
	firm domain.Firm,
	integrationType domain.IntegrationType,
	filtered []string,
	raw []*string,
) *domain.ImportError {
	if err := validateNames(names, integrationType); err != nil {
		return err
	}
	if !firm.IsCorporate && len(filtered) == 0 {
		display := domain.PhoneDisplayNone
		if len(raw) > 0 {
			display = PhoneDisplay(raw)
		}
		return &domain.ImportError{
			Kind:    domain.ErrContactChannelRequired,
			Message: fmt.Sprintf(domain.MsgCellPhoneInvalid, display),
			Fields:  []string{domain.ErrorFieldCellPhone},
		}
	}
	return nil
}

func validateNames(names domain.Names, integrationType domain.IntegrationType) *domain.ImportError {
	var missing []string
	if names.First == "" {
		missing = append(missing, domain.ErrorFieldFirstName)
	}
	if integrationType.RequiresFullName() && names.Last == "" {
		missing = append(missing, domain.ErrorFieldLastName)
	}
	if len(missing) == 0 {
		return nil
	}
	return &domain.ImportError{
		Kind:    domain.ErrMissingRequiredField,
		Message: domain.MsgClientMissingName,
		Fields:  missing,
	}
}

// creationDisabled is returned when a valid record matched nothing and the
// caller asked not to create new clients.
func creationDisabled() *domain.ImportError {
	return &domain.ImportError{
		Kind:    domain.ErrRecordNotFoundAndCreationDisabled,
		Message: domain.MsgClientNotFound,
	}
}
