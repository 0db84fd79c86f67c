package domain

// IncomingRecord is an untrusted field map supplied by an external source.
// Recognized keys are listed below; anything else is ignored.
type IncomingRecord map[string]any

const (
	KeyFirstName    = "first_name"
	KeyLastName     = "last_name"
	KeyName         = "name"
	KeyEmail        = "email"
	KeyPhoneNumbers = "phone_numbers"
	KeyType         = "type"
	KeyBirthDate    = "birth_date"
	KeySSN          = "ssn"
)

// RecordTypeCompany marks a record describing an organization rather than a
// person. Its first name slot carries the company name.
const RecordTypeCompany = "Company"

// NormalizedRecord is the structured form of an IncomingRecord.
type NormalizedRecord struct {
	FirstName string
	LastName  string
	Name      string // Combined display name
	Email     string
	Phones    []*string // Raw numbers in source order; nil entries kept for display
	Type      string
	BirthDate string
	SSN       string
}

func (r NormalizedRecord) IsCompany() bool { return r.Type == RecordTypeCompany }

// CompanyName returns the company name for company records. Person records
// report nil so callers can emit an explicit null.
func (r NormalizedRecord) CompanyName() *string {
	if !r.IsCompany() || r.FirstName == "" {
		return nil
	}
	name := r.FirstName
	return &name
}

// Names is the resolved first and last name for a record.
type Names struct {
	First string
	Last  string
}
