package common

// DefaultCredentialKey is the slot name under which the current identity
// record is kept in the credential store.
const DefaultCredentialKey = "ivycraft_user"

// DateLayout is the calendar date format used for deadlines and due dates.
const DateLayout = "2006-01-02"
