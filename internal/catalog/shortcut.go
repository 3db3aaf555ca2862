package catalog

// Category groups shortcuts by what they act on.
type Category string

const (
	CategoryCursor   Category = "cursor"
	CategoryEdit     Category = "edit"
	CategoryHistory  Category = "history"
	CategoryControl  Category = "control"
	CategoryAdvanced Category = "advanced"
)

// CategoryInfo holds display metadata for a category.
type CategoryInfo struct {
	Name        Category
	Icon        string
	DisplayName string
}

var categories = []CategoryInfo{
	{Name: CategoryCursor, Icon: "🚀", DisplayName: "Cursor Movement"},
	{Name: CategoryEdit, Icon: "✏️", DisplayName: "Line Editing"},
	{Name: CategoryHistory, Icon: "📚", DisplayName: "History & Completion"},
	{Name: CategoryControl, Icon: "🛠️", DisplayName: "Terminal & Process Control"},
	{Name: CategoryAdvanced, Icon: "💡", DisplayName: "Advanced Techniques"},
}

// Categories returns all categories in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// AllCategories returns the category tags in display order.
func AllCategories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = c.Name
	}
	return out
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryIndex(c)
	return ok
}

// Icon returns the glyph shown next to shortcuts of this category.
func (c Category) Icon() string {
	if i, ok := categoryIndex(c); ok {
		return categories[i].Icon
	}
	return ""
}

// DisplayName returns a human-readable name for the category.
func (c Category) DisplayName() string {
	if i, ok := categoryIndex(c); ok {
		return categories[i].DisplayName
	}
	return string(c)
}

// Order returns the display position of c, or len(categories) if unknown.
func (c Category) Order() int {
	if i, ok := categoryIndex(c); ok {
		return i
	}
	return len(categories)
}

func categoryIndex(c Category) (int, bool) {
	for i, info := range categories {
		if info.Name == c {
			return i, true
		}
	}
	return 0, false
}

// Option is one answer choice for a shortcut question.
type Option struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Shortcut is a single catalog entry. Entries are never mutated after load.
type Shortcut struct {
	Key          string   `json:"key"`
	Action       string   `json:"action"`
	Description  string   `json:"description"`
	Tips         string   `json:"tips,omitempty"`
	Category     Category `json:"category"`
	CategoryIcon string   `json:"-"`
	Hint         string   `json:"hint"`
	Options      []Option `json:"options"`
}

// CorrectIndex returns the position of the correct option, or -1.
func (s Shortcut) CorrectIndex() int {
	for i, o := range s.Options {
		if o.Correct {
			return i
		}
	}
	return -1
}

// Clone returns a copy whose Options slice does not alias s.
func (s Shortcut) Clone() Shortcut {
	c := s
	c.Options = make([]Option, len(s.Options))
	copy(c.Options, s.Options)
	return c
}
