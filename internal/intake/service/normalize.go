package service

import (
	"github.com/aussiebroadwan/intake/internal/intake/domain"
)

// Normalize extracts the recognized fields of an incoming record.
//
// String values are taken verbatim. Values of any other type in a string
// slot are ignored. phone_numbers may be a list (nil entries are kept for
// display) or a single string.
func Normalize(in domain.IncomingRecord) domain.NormalizedRecord {
	return domain.NormalizedRecord{
		FirstName: stringField(in, domain.KeyFirstName),
		LastName:  stringField(in, domain.KeyLastName),
		Name:      stringField(in, domain.KeyName),
		Email:     stringField(in, domain.KeyEmail),
		Phones:    phoneList(in[domain.KeyPhoneNumbers]),
		Type:      stringField(in, domain.KeyType),
		BirthDate: stringField(in, domain.KeyBirthDate),
		SSN:       stringField(in, domain.KeySSN),
	}
}

func stringField(in domain.IncomingRecord, key string) string {
	s, _ := in[key].(string)
	return s
}

func phoneList(v any) []*string {
	switch list := v.(type) {
	case nil:
		return nil
	case string:
		return []*string{&list}
	case []*string:
		out := make([]*string, len(list))
		for i, p := range list {
			if p != nil {
				s := *p
				out[i] = &s
			}
		}
		return out
	case []string:
		out := make([]*string, len(list))
		for i := range list {
			s := list[i]
			out[i] = &s
		}
		return out
	case []any:
		out := make([]*string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				out = append(out, nil)
				continue
			}
			out = append(out, &s)
		}
		return out
	default:
		return nil
	}
}
