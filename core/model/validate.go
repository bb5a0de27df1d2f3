package nftModels

import (
	"fmt"

	"github.com/go-openapi/swag"
	"github.com/pkg/errors"
	"k8s.io/kube-openapi/pkg/validation/validate"
)

// Validate checks caller-side policy on a decoded (or directly constructed)
// value: name, description and image must be meaningfully populated, and every
// attribute entry must be well formed. The codec only enforces structure;
// decode success is necessary but not sufficient for valid marketplace
// metadata.
func (m *Metadata) Validate() error {
	var res []error

	if err := m.validateName(); err != nil {
		res = append(res, err)
	}

	if err := m.validateDescription(); err != nil {
		res = append(res, err)
	}

	if err := m.validateImage(); err != nil {
		res = append(res, err)
	}

	if err := m.validateAttributes(); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		err := fmt.Sprintln(res)
		return errors.New(err)
	}
	return nil
}

func (m *Metadata) validateName() error {

	if err := validate.Required("name", "body", m.Name); err != nil {
		return err
	}

	return nil
}

func (m *Metadata) validateDescription() error {

	if err := validate.Required("description", "body", m.Description); err != nil {
		return err
	}

	return nil
}

func (m *Metadata) validateImage() error {

	if err := validate.Required("image", "body", m.Image); err != nil {
		return err
	}

	return nil
}

func (m *Metadata) validateAttributes() error {
	if swag.IsZero(m.Attributes) { // not required
		return nil
	}
	var res []error
	for _, entry := range m.Attributes {
		if swag.IsZero(entry) { // not required
			continue
		}
		if err := entry.Validate(); err != nil {
			res = append(res, err)
		}
	}
	if len(res) > 0 {
		err := fmt.Sprintln(res)
		return errors.New(err)
	}
	return nil
}

func (a StringAttribute) Validate() error {
	var res []error

	if err := validate.Required("trait_type", "attributes", a.TraitType); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("value", "attributes", a.Value); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		err := fmt.Sprintln(res)
		return errors.New(err)
	}
	return nil
}

func (a NumberAttribute) Validate() error {
	var res []error

	if err := validate.Required("trait_type", "attributes", a.TraitType); err != nil {
		res = append(res, err)
	}

	if a.DisplayType != nil {
		if _, err := ParseDisplayType(a.DisplayType.String()); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		err := fmt.Sprintln(res)
		return errors.New(err)
	}
	return nil
}
