package constants

// DocumentType classifies what an uploaded document is.
type DocumentType string

const (
	TypeNationalID         DocumentType = "NATIONAL_ID"
	TypePassport           DocumentType = "PASSPORT"
	TypeDrivingLicense     DocumentType = "DRIVING_LICENSE"
	TypeTaxID              DocumentType = "TAX_ID"
	TypeContract           DocumentType = "CONTRACT"
	TypeInvoice            DocumentType = "INVOICE"
	TypeSupportingDocument DocumentType = "SUPPORTING_DOCUMENT"
	TypeOther              DocumentType = "OTHER"
)

// DocumentTypes holds the allowed values for the document_type column.
var DocumentTypes = []string{
	string(TypeNationalID),
	string(TypePassport),
	string(TypeDrivingLicense),
	string(TypeTaxID),
	string(TypeContract),
	string(TypeInvoice),
	string(TypeSupportingDocument),
	string(TypeOther),
}

// DocumentChannel identifies where an upload originated.
type DocumentChannel string

const (
	ChannelDigital        DocumentChannel = "DIGITAL"         // app, web banking
	ChannelBackoffice     DocumentChannel = "BACKOFFICE"      // branch, internal system
	ChannelAPIIntegration DocumentChannel = "API_INTEGRATION" // third-party API
)

// Channels holds the allowed values for the channel column.
var Channels = []string{
	string(ChannelDigital),
	string(ChannelBackoffice),
	string(ChannelAPIIntegration),
}

// IsDocumentType reports whether s is a member of the closed document type set.
func IsDocumentType(s string) bool {
	for _, t := range DocumentTypes {
		if s == t {
			return true
		}
	}
	return false
}

// IsChannel reports whether s is a member of the closed channel set.
func IsChannel(s string) bool {
	for _, c := range Channels {
		if s == c {
			return true
		}
	}
	return false
}
