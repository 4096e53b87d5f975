package messages

import "fmt"

// Contacts is a contact card message. Unlike every other variant its wire
// body is a JSON array of contact records, not a keyed object; the
// envelope builder serializes the slice directly.
type Contacts []Contact

// NewContacts builds a contacts message, requiring at least one record
// and a formatted name on each.
func NewContacts(contacts ...Contact) (Contacts, error) {
	if len(contacts) == 0 {
		return nil, fmt.Errorf("%w: contacts requires at least one contact", ErrInvalidMessage)
	}
	for i, c := range contacts {
		if c.Name.FormattedName == "" {
			return nil, fmt.Errorf("%w: contact %d is missing a formatted name", ErrInvalidMessage, i)
		}
	}
	return Contacts(contacts), nil
}

func (Contacts) MessageType() string { return TypeContacts }

// Contact is a single record inside a Contacts message.
type Contact struct {
	Name      ContactName      `json:"name"`
	Birthday  string           `json:"birthday,omitempty"` // YYYY-MM-DD
	Org       *ContactOrg      `json:"org,omitempty"`
	Addresses []ContactAddress `json:"addresses,omitempty"`
	Emails    []ContactEmail   `json:"emails,omitempty"`
	Phones    []ContactPhone   `json:"phones,omitempty"`
	URLs      []ContactURL     `json:"urls,omitempty"`
}

// ContactName holds the naming fields of a contact. FormattedName is the
// only field the API requires.
type ContactName struct {
	FormattedName string `json:"formatted_name"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	MiddleName    string `json:"middle_name,omitempty"`
	Suffix        string `json:"suffix,omitempty"`
	Prefix        string `json:"prefix,omitempty"`
}

// ContactOrg describes the contact's organization.
type ContactOrg struct {
	Company    string `json:"company,omitempty"`
	Department string `json:"department,omitempty"`
	Title      string `json:"title,omitempty"`
}

// ContactAddress is a postal address. Type is "HOME" or "WORK".
type ContactAddress struct {
	Street      string `json:"street,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Zip         string `json:"zip,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Type        string `json:"type,omitempty"`
}

// ContactEmail is an email entry. Type is "HOME" or "WORK".
type ContactEmail struct {
	Email string `json:"email,omitempty"`
	Type  string `json:"type,omitempty"`
}

// ContactPhone is a phone entry. WaID links the entry to a WhatsApp
// account so the recipient gets a "message" shortcut on the card.
type ContactPhone struct {
	Phone string `json:"phone,omitempty"`
	Type  string `json:"type,omitempty"`
	WaID  string `json:"wa_id,omitempty"`
}

// ContactURL is a website entry. Type is "HOME" or "WORK".
type ContactURL struct {
	URL  string `json:"url,omitempty"`
	Type string `json:"type,omitempty"`
}
