package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	person := domain.Firm{IsCorporate: false}
	corporate := domain.Firm{IsCorporate: true}
	phones := []string{"555-0100"}
	raw := []*string{strp("555-0100")}

	t.Run("csv and third party need both names", func(t *testing.T) {
		for _, it := range []domain.IntegrationType{domain.IntegrationCSVImport, domain.IntegrationThirdParty} {
			err := Validate(domain.Names{}, person, it, phones, raw)
			require.NotNil(t, err)
			require.Equal(t, domain.ErrMissingRequiredField, err.Kind)
			require.Equal(t, domain.MsgClientMissingName, err.Message)
			require.Equal(t, []string{domain.ErrorFieldFirstName, domain.ErrorFieldLastName}, err.Fields)

			err = Validate(domain.Names{First: "Jane"}, person, it, phones, raw)
			require.NotNil(t, err)
			require.Equal(t, []string{domain.ErrorFieldLastName}, err.Fields)

			require.Nil(t, Validate(domain.Names{First: "Jane", Last: "Smith"}, person, it, phones, raw))
		}
	})

	t.Run("other sources need first name only", func(t *testing.T) {
		for _, it := range []domain.IntegrationType{domain.IntegrationPlatformNative, domain.IntegrationUnspecified} {
			require.Nil(t, Validate(domain.Names{First: "Madonna"}, person, it, phones, raw))

			err := Validate(domain.Names{Last: "Smith"}, person, it, phones, raw)
			require.NotNil(t, err)
			require.Equal(t, []string{domain.ErrorFieldFirstName}, err.Fields)
		}
	})

	t.Run("non-corporate firm needs a phone", func(t *testing.T) {
		names := domain.Names{First: "Jane", Last: "Smith"}

		err := Validate(names, person, domain.IntegrationCSVImport, nil, nil)
		require.NotNil(t, err)
		require.Equal(t, domain.ErrContactChannelRequired, err.Kind)
		require.Equal(t, "Cell phone invalid: <None>", err.Message)
		require.Equal(t, []string{domain.ErrorFieldCellPhone}, err.Fields)

		err = Validate(names, person, domain.IntegrationCSVImport, nil, []*string{strp("555-invalid"), nil, strp("abc")})
		require.NotNil(t, err)
		require.Equal(t, "Cell phone invalid: 555-invalid, abc", err.Message)

		err = Validate(names, person, domain.IntegrationCSVImport, nil, []*string{strp("")})
		require.NotNil(t, err)
		require.Equal(t, "Cell phone invalid: ", err.Message)

		err = Validate(names, person, domain.IntegrationCSVImport, nil, []*string{strp(""), strp("555-invalid")})
		require.NotNil(t, err)
		require.Equal(t, "Cell phone invalid: , 555-invalid", err.Message)
	})

	t.Run("corporate firm does not need a phone", func(t *testing.T) {
		require.Nil(t, Validate(domain.Names{First: "Jane", Last: "Smith"}, corporate, domain.IntegrationCSVImport, nil, nil))
	})

	t.Run("name check fires before phone check", func(t *testing.T) {
		err := Validate(domain.Names{First: "Madonna"}, person, domain.IntegrationCSVImport, nil, nil)
		require.NotNil(t, err)
		require.Equal(t, domain.ErrMissingRequiredField, err.Kind)
		require.Equal(t, []string{domain.ErrorFieldLastName}, err.Fields)
	})
}
