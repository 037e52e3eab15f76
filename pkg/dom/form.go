package dom

import (
	"strconv"
	"strings"
)

// Form creates a <form>. action is omitted when empty.
func Form(action string) *Element {
	f := newElement(KindForm, "form", "")
	if action != "" {
		f.SetAttribute("action", action)
	}
	return f
}

// Input is an <input> element. Its setters return *Input so they chain.
type Input struct{ *Element }

// NewInput creates <input type="...">. name and value are omitted when empty.
func NewInput(inputType, name, value string) *Input {
	in := &Input{newElement(KindInput, "input", "")}
	in.SetAttribute("type", inputType)
	if name != "" {
		in.SetAttribute("name", name)
	}
	if value != "" {
		in.SetAttribute("value", value)
	}
	return in
}

func (in *Input) element() *Element {
	if in == nil {
		return nil
	}
	return in.Element
}

// SetAttribute sets an attribute; an empty value renders as a bare name.
func (in *Input) SetAttribute(name, value string) *Input {
	in.Element.SetAttribute(name, value)
	return in
}

// SetAttributeInt sets an attribute to the decimal form of value.
func (in *Input) SetAttributeInt(name string, value int) *Input {
	return in.SetAttribute(name, strconv.Itoa(value))
}

// ID sets the id attribute.
func (in *Input) ID(id string) *Input { return in.SetAttribute("id", id) }

// Class sets the class attribute.
func (in *Input) Class(classes ...string) *Input {
	return in.SetAttribute("class", strings.Join(classes, " "))
}

// TitleAttr sets the title attribute.
func (in *Input) TitleAttr(title string) *Input { return in.SetAttribute("title", title) }

// StyleAttr sets the style attribute.
func (in *Input) StyleAttr(style string) *Input { return in.SetAttribute("style", style) }

// Size sets the size attribute.
func (in *Input) Size(n uint) *Input { return in.SetAttributeInt("size", int(n)) }

// MaxLength sets the maxlength attribute.
func (in *Input) MaxLength(n uint) *Input { return in.SetAttributeInt("maxlength", int(n)) }

// Placeholder sets the placeholder attribute.
func (in *Input) Placeholder(text string) *Input { return in.SetAttribute("placeholder", text) }

// Min sets the min attribute.
func (in *Input) Min(value string) *Input { return in.SetAttribute("min", value) }

// Max sets the max attribute.
func (in *Input) Max(value string) *Input { return in.SetAttribute("max", value) }

// Checked sets the bare checked attribute when checked is true.
func (in *Input) Checked(checked bool) *Input {
	if checked {
		in.SetAttribute("checked", "")
	}
	return in
}

// Autocomplete sets the bare autocomplete attribute.
func (in *Input) Autocomplete() *Input { return in.SetAttribute("autocomplete", "") }

// Autofocus sets the bare autofocus attribute.
func (in *Input) Autofocus() *Input { return in.SetAttribute("autofocus", "") }

// Disabled sets the bare disabled attribute.
func (in *Input) Disabled() *Input { return in.SetAttribute("disabled", "") }

// Readonly sets the bare readonly attribute.
func (in *Input) Readonly() *Input { return in.SetAttribute("readonly", "") }

// Required sets the bare required attribute.
func (in *Input) Required() *Input { return in.SetAttribute("required", "") }

// Input shortcuts

// NewRadio creates a radio button.
func NewRadio(name, value string) *Input { return NewInput("radio", name, value) }

// NewCheckbox creates a checkbox.
func NewCheckbox(name, value string) *Input { return NewInput("checkbox", name, value) }

// NewTextInput creates a single-line text field.
func NewTextInput(name, value string) *Input { return NewInput("text", name, value) }

// NewNumberInput creates a number field.
func NewNumberInput(name, value string) *Input { return NewInput("number", name, value) }

// NewRangeInput creates a slider.
func NewRangeInput(name, value string) *Input { return NewInput("range", name, value) }

// NewDateInput creates a date picker.
func NewDateInput(name, value string) *Input { return NewInput("date", name, value) }

// NewTimeInput creates a time picker.
func NewTimeInput(name, value string) *Input { return NewInput("time", name, value) }

// NewEmailInput creates an email field.
func NewEmailInput(name, value string) *Input { return NewInput("email", name, value) }

// NewURLInput creates a URL field.
func NewURLInput(name, value string) *Input { return NewInput("url", name, value) }

// NewPasswordInput creates a password field. It never carries a value.
func NewPasswordInput(name string) *Input { return NewInput("password", name, "") }

// NewSubmit creates a submit button labelled value.
func NewSubmit(value, name string) *Input { return NewInput("submit", name, value) }

// NewReset creates a reset button labelled value.
func NewReset(value string) *Input { return NewInput("reset", "", value) }
