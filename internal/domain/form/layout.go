package form

// FieldDescriptor describes how one schema field is presented.
type FieldDescriptor struct {
	Name     string
	Label    string
	Input    string
	Required bool
}

// Section is a titled group of fields.
type Section struct {
	Name        string
	Title       string
	Description string
	Fields      []FieldDescriptor
}

// Layout is the ordered section list of a category's form.
type Layout struct {
	Sections []Section
}

// FieldNames flattens the layout into field names in presentation order.
func (l Layout) FieldNames() []string {
	var names []string
	for _, s := range l.Sections {
		for _, f := range s.Fields {
			names = append(names, f.Name)
		}
	}
	return names
}

// Section looks up a section by name.
func (l Layout) Section(name string) (Section, bool) {
	for _, s := range l.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}
