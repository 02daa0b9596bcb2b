// Package fileproperties holds the routes of the file_properties namespace:
// property templates and the property groups attached to files.
package fileproperties

import (
	"fmt"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"

	"github.com/tomblancdev/dropbox-go"
	"github.com/tomblancdev/dropbox-go/endpoint"
	"github.com/tomblancdev/dropbox-go/header"
)

const (
	patternTemplateID = `^(/|ptid:).*$`
	patternPath       = `^(/(.|[\r\n])*|id:.*|(ns:[0-9]+(/.*)?))$`

	maxTemplateNameLength        = 256
	maxTemplateDescriptionLength = 1024
	maxTemplateFields            = 32
)

// PropertyType is the type of a template field. Only "string" exists.
type PropertyType struct {
	Tag string `json:".tag"`
}

// PropertyTypeString is the only property type.
var PropertyTypeString = PropertyType{Tag: "string"}

// PropertyFieldTemplate declares one field of a template.
type PropertyFieldTemplate struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        PropertyType `json:"type"`
}

// AddTemplateArg is the argument of TemplatesAddForUser.
type AddTemplateArg struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Fields      []PropertyFieldTemplate `json:"fields"`
}

// Validate validates this add template arg
func (m *AddTemplateArg) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("name", "body", m.Name); err != nil {
		res = append(res, err)
	}
	if err := validate.MaxLength("name", "body", m.Name, maxTemplateNameLength); err != nil {
		res = append(res, err)
	}
	if err := validate.MaxLength("description", "body", m.Description, maxTemplateDescriptionLength); err != nil {
		res = append(res, err)
	}

	if err := m.validateFields(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *AddTemplateArg) validateFields(formats strfmt.Registry) error {
	if err := validate.MinItems("fields", "body", int64(len(m.Fields)), 1); err != nil {
		return err
	}
	if err := validate.MaxItems("fields", "body", int64(len(m.Fields)), maxTemplateFields); err != nil {
		return err
	}
	for i, f := range m.Fields {
		if err := validate.RequiredString(fmt.Sprintf("fields.%d.name", i), "body", f.Name); err != nil {
			return err
		}
	}
	return nil
}

// AddTemplateResult identifies the new template.
type AddTemplateResult struct {
	TemplateID string `json:"template_id"`
}

// ListTemplateResult lists template ids.
type ListTemplateResult struct {
	TemplateIDs []string `json:"template_ids"`
}

// GetTemplateArg is the argument of TemplatesGetForUser.
type GetTemplateArg struct {
	TemplateID string `json:"template_id"`
}

// Validate validates this get template arg
func (m *GetTemplateArg) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.MinLength("template_id", "body", m.TemplateID, 1); err != nil {
		res = append(res, err)
	}
	if err := validate.Pattern("template_id", "body", m.TemplateID, patternTemplateID); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// GetTemplateResult describes a template.
type GetTemplateResult struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Fields      []PropertyFieldTemplate `json:"fields"`
}

// PropertyField is one name/value pair of a property group.
type PropertyField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PropertyGroup is a set of fields filled in against a template.
type PropertyGroup struct {
	TemplateID string          `json:"template_id"`
	Fields     []PropertyField `json:"fields"`
}

// AddPropertiesArg is the argument of PropertiesAdd.
type AddPropertiesArg struct {
	Path           string          `json:"path"`
	PropertyGroups []PropertyGroup `json:"property_groups"`
}

// Validate validates this add properties arg
func (m *AddPropertiesArg) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Pattern("path", "body", m.Path, patternPath); err != nil {
		res = append(res, err)
	}

	for i, g := range m.PropertyGroups {
		if err := validate.Pattern(fmt.Sprintf("property_groups.%d.template_id", i), "body", g.TemplateID, patternTemplateID); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

var (
	templatesAddForUserRoute = dropbox.Route[AddTemplateArg, AddTemplateResult]{
		Endpoint: endpoint.FilePropertiesTemplatesAddForUser,
		Headers:  header.JSON,
	}
	templatesListForUserRoute = dropbox.Route[dropbox.Void, ListTemplateResult]{
		Endpoint: endpoint.FilePropertiesTemplatesListForUser,
		Headers:  header.None,
	}
	templatesGetForUserRoute = dropbox.Route[GetTemplateArg, GetTemplateResult]{
		Endpoint: endpoint.FilePropertiesTemplatesGetForUser,
		Headers:  header.JSON,
	}
	propertiesAddRoute = dropbox.Route[AddPropertiesArg, dropbox.Void]{
		Endpoint: endpoint.FilePropertiesPropertiesAdd,
		Headers:  header.JSON,
	}
)

// TemplatesAddForUser adds a template to the caller's account.
func TemplatesAddForUser(token string, arg *AddTemplateArg) *dropbox.Request[AddTemplateArg, AddTemplateResult] {
	return templatesAddForUserRoute.New(token, arg)
}

// TemplatesListForUser lists the templates of the caller's account.
func TemplatesListForUser(token string) *dropbox.Request[dropbox.Void, ListTemplateResult] {
	return templatesListForUserRoute.New(token, nil)
}

// TemplatesGetForUser returns a template.
func TemplatesGetForUser(token string, arg *GetTemplateArg) *dropbox.Request[GetTemplateArg, GetTemplateResult] {
	return templatesGetForUserRoute.New(token, arg)
}

// PropertiesAdd attaches property groups to a file. The result carries no
// data.
func PropertiesAdd(token string, arg *AddPropertiesArg) *dropbox.Request[AddPropertiesArg, dropbox.Void] {
	return propertiesAddRoute.New(token, arg)
}
