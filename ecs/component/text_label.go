package component

// TextSource exposes the text currently displayed by a UI element.
type TextSource interface {
	Text() string
}

// TextLabel attaches a UI text element to an entity so systems can read what
// it displays without depending on the UI toolkit.
type TextLabel struct {
	Source TextSource
}

var TextLabelComponent = NewComponent[TextLabel]()

// StaticText is a TextSource holding a fixed string. Hosts without a widget
// toolkit assign Value directly.
type StaticText struct {
	Value string
}

func (t *StaticText) Text() string {
	if t == nil {
		return ""
	}
	return t.Value
}
