package domain

// Mergeable client fields. These are the only fields an update may touch.
const (
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldEmail         = "email"
	FieldCellPhone     = "cell_phone"
	FieldBirthDate     = "birth_date"
	FieldSSN           = "ssn"
	FieldIntegrationID = "integration_id"
)

// ClientPatch is a field-level delta for a Client. A nil pointer means the
// field is not part of the patch.
type ClientPatch struct {
	FirstName     *string
	LastName      *string
	Email         *string
	CellPhone     *string
	BirthDate     *string
	SSN           *string
	IntegrationID *string
}

// Keys lists the fields present in the patch in a stable order.
func (p ClientPatch) Keys() []string {
	var keys []string
	for _, f := range p.fields(nil) {
		if f.val != nil {
			keys = append(keys, f.name)
		}
	}
	return keys
}

func (p ClientPatch) IsEmpty() bool { return len(p.Keys()) == 0 }

// Has reports whether the named field is part of the patch.
func (p ClientPatch) Has(name string) bool {
	for _, k := range p.Keys() {
		if k == name {
			return true
		}
	}
	return false
}

// ApplyTo writes the patch onto c and returns the names of fields whose
// value actually changed. Applying the same patch twice changes nothing the
// second time.
func (p ClientPatch) ApplyTo(c *Client) []string {
	var changed []string
	for _, f := range p.fields(c) {
		if f.val == nil || *f.dst == *f.val {
			continue
		}
		*f.dst = *f.val
		changed = append(changed, f.name)
	}
	return changed
}

type patchField struct {
	name string
	val  *string
	dst  *string
}

func (p ClientPatch) fields(c *Client) []patchField {
	if c == nil {
		c = &Client{}
	}
	return []patchField{
		{FieldFirstName, p.FirstName, &c.FirstName},
		{FieldLastName, p.LastName, &c.LastName},
		{FieldEmail, p.Email, &c.Email},
		{FieldCellPhone, p.CellPhone, &c.CellPhone},
		{FieldBirthDate, p.BirthDate, &c.BirthDate},
		{FieldSSN, p.SSN, &c.SSN},
		{FieldIntegrationID, p.IntegrationID, &c.IntegrationID},
	}
}
