// Package form decodes the client-intake form body into a typed submission
// record. Decoding is total: missing fields take their documented defaults
// and never produce an error.
package form

import (
	"net/url"
	"strings"
)

// HoneypotField is the hidden form field real users never fill in.
const HoneypotField = "bot-field"

// NA is the placeholder rendered for optional fields the client left empty.
const NA = "N/A"

// Submission is the immutable record decoded from one intake form post.
// Scalar fields default to ""; list fields default to an empty slice.
type Submission struct {
	BusinessName         string
	ContactName          string
	Email                string
	Phone                string
	WhatsApp             string
	Location             string
	Industry             string
	BusinessDescription  string
	Services             string
	TargetCustomers      string
	BusinessHours        string
	BrandColors          string
	BusinessTone         string
	CurrentWebsite       string
	HasDomain            string
	DomainName           string
	HasHosting           string
	Goals                []string
	Features             []string
	SpecialContent       string
	CompetitiveAdvantage string
	Source               string
	AdditionalNotes      string

	honeypot string
}

// Decode builds a Submission from decoded form values. Repeated checkbox
// fields (goals[], features[]) keep every occurrence in submission order;
// a single occurrence is still a one-element list.
func Decode(values url.Values) Submission {
	return Submission{
		BusinessName:         values.Get("business_name"),
		ContactName:          values.Get("contact_name"),
		Email:                values.Get("email"),
		Phone:                values.Get("phone"),
		WhatsApp:             values.Get("whatsapp"),
		Location:             values.Get("location"),
		Industry:             values.Get("industry"),
		BusinessDescription:  values.Get("business_description"),
		Services:             values.Get("services"),
		TargetCustomers:      values.Get("target_customers"),
		BusinessHours:        values.Get("business_hours"),
		BrandColors:          values.Get("brand_colors"),
		BusinessTone:         values.Get("business_tone"),
		CurrentWebsite:       values.Get("current_website"),
		HasDomain:            values.Get("has_domain"),
		DomainName:           values.Get("domain_name"),
		HasHosting:           values.Get("has_hosting"),
		Goals:                list(values, "goals[]"),
		Features:             list(values, "features[]"),
		SpecialContent:       values.Get("special_content"),
		CompetitiveAdvantage: values.Get("competitive_advantage"),
		Source:               values.Get("source"),
		AdditionalNotes:      values.Get("additional_notes"),
		honeypot:             values.Get(HoneypotField),
	}
}

// IsSpam reports whether the honeypot field carried any value.
func (s Submission) IsSpam() bool {
	return s.honeypot != ""
}

// JoinOrNA flattens a list field for display: values joined with ", ",
// or the N/A placeholder when the list is empty.
func JoinOrNA(values []string) string {
	if len(values) == 0 {
		return NA
	}
	return strings.Join(values, ", ")
}

// OrNA substitutes the N/A placeholder for an empty optional field.
func OrNA(s string) string {
	if s == "" {
		return NA
	}
	return s
}

func list(values url.Values, key string) []string {
	vs := values[key]
	if len(vs) == 0 {
		return nil
	}
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}
