package selection

// HostField is the external string cell a dialog reads when it opens and
// writes when it commits. Values are canonical text or "".
type HostField interface {
	Get() string
	Set(string)
}

// StringHost is a HostField backed by a plain string.
type StringHost struct {
	Value string
}

func (h *StringHost) Get() string  { return h.Value }
func (h *StringHost) Set(v string) { h.Value = v }
