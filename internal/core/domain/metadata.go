package domain

import "strings"

// Attribute identifies one of the package attributes queried for metadata.
type Attribute int

const (
	AttrDescription Attribute = iota
	AttrVersion
	AttrHomepage
	AttrPosition
)

// Attributes lists every attribute fetched for a MetadataRecord.
var Attributes = []Attribute{AttrDescription, AttrVersion, AttrHomepage, AttrPosition}

// Path returns the attribute path appended to the package name.
func (a Attribute) Path() string {
	switch a {
	case AttrDescription:
		return "meta.description"
	case AttrVersion:
		return "version"
	case AttrHomepage:
		return "meta.homepage"
	case AttrPosition:
		return "meta.position"
	default:
		return ""
	}
}

// String returns the field name of the attribute.
func (a Attribute) String() string {
	switch a {
	case AttrDescription:
		return "description"
	case AttrVersion:
		return "version"
	case AttrHomepage:
		return "homepage"
	case AttrPosition:
		return "position"
	default:
		return "unknown"
	}
}

// Query composes an installable of the form <projectRef>#<packageName>.<attribute>.
func Query(projectRef, packageName string, attr Attribute) string {
	return projectRef + "#" + packageName + "." + attr.Path()
}

// StripPosition drops the line number from a "file:line" position.
func StripPosition(raw string) string {
	file, _, _ := strings.Cut(raw, ":")
	return file
}

// MetadataRecord holds the metadata of one package.
// Empty fields mean the value is unknown; a failed lookup never invalidates the others.
type MetadataRecord struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
	Homepage    string `json:"homepage,omitempty"`
	Position    string `json:"position,omitempty"`
}

// NewMetadataRecord assembles a record from resolved attribute values.
// Missing attributes stay empty.
func NewMetadataRecord(name string, values map[Attribute]string) MetadataRecord {
	return MetadataRecord{
		Name:        name,
		Description: values[AttrDescription],
		Version:     values[AttrVersion],
		Homepage:    values[AttrHomepage],
		Position:    values[AttrPosition],
	}
}
