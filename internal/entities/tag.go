package entities

import "fmt"

// Tag is a name/value label attached to a photo, such as
// location=NYC or person=John. Tags are immutable values;
// two tags are equal when both name and value match.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NewTag creates a tag with the given name and value.
func NewTag(name, value string) Tag {
	return Tag{Name: name, Value: value}
}

func (t Tag) String() string {
	return fmt.Sprintf("%s:%s", t.Name, t.Value)
}
