package form

// FieldValidation holds runtime validation rules for a form field.
type FieldValidation struct {
	Required bool
}

// Validate checks typed text against the normalized value it produced.
// Text that normalizes to nothing was either unparseable or forbidden.
func (v FieldValidation) Validate(text, value string) string {
	if text == "" {
		if v.Required {
			return "required"
		}
		return ""
	}
	if value == "" {
		return "not a valid or allowed value"
	}
	return ""
}
