package nftModels

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/wanderers-nft/nft-metadata/types"
)

// AttributeEntry is one element of a token's attributes array. The wire format
// carries no discriminator tag; the variant is inferred from the shape of the
// "value" field when decoding.
type AttributeEntry interface {
	attributeEntry()
	Validate() error
}

// StringAttribute is a textual trait.
//
// Example: {"trait_type": "Core", "value": "Vortex"}
type StringAttribute struct {
	TraitType string
	Value     string
}

// NumberAttribute is a numerical trait.
//
// Example: {"trait_type": "Level", "value": 5, "display_type": "number"}
type NumberAttribute struct {
	TraitType   string
	Value       uint64
	DisplayType *DisplayType
}

func (StringAttribute) attributeEntry() {}
func (NumberAttribute) attributeEntry() {}

type stringAttributeWire struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

type numberAttributeWire struct {
	TraitType   string       `json:"trait_type"`
	Value       uint64       `json:"value"`
	DisplayType *DisplayType `json:"display_type,omitempty"`
}

func (a StringAttribute) MarshalJSON() ([]byte, error) {
	return json.Marshal(stringAttributeWire{
		TraitType: a.TraitType,
		Value:     a.Value,
	})
}

func (a NumberAttribute) MarshalJSON() ([]byte, error) {
	return json.Marshal(numberAttributeWire{
		TraitType:   a.TraitType,
		Value:       a.Value,
		DisplayType: a.DisplayType,
	})
}

// attributeProbe keeps value raw so the variant can be chosen by inspecting
// the shape of the token before committing to a decode.
type attributeProbe struct {
	TraitType   *string         `json:"trait_type"`
	Value       json.RawMessage `json:"value"`
	DisplayType *string         `json:"display_type"`
}

// decodeAttributeEntry picks the variant for one attributes element. Numeric
// shapes are tried before textual ones so a number is never captured by the
// string variant, and a negative or fractional value fails instead of being
// coerced.
func decodeAttributeEntry(raw json.RawMessage, index int) (AttributeEntry, error) {
	var probe attributeProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, errors.Wrapf(err, "attributes[%d]", index)
	}
	if probe.TraitType == nil {
		return nil, &types.StructuralError{
			Field:    fmt.Sprintf("attributes[%d].trait_type", index),
			Expected: "string",
			Actual:   "absent",
		}
	}
	if len(probe.Value) == 0 {
		return nil, &types.UnrecognizedAttributeShapeError{Index: index}
	}

	switch c := probe.Value[0]; {
	case c == '-' || (c >= '0' && c <= '9'):
		value, err := strconv.ParseUint(string(probe.Value), 10, 64)
		if err != nil {
			return nil, &types.StructuralError{
				Field:    fmt.Sprintf("attributes[%d].value", index),
				Expected: "unsigned 64-bit integer",
				Actual:   string(probe.Value),
			}
		}
		entry := NumberAttribute{
			TraitType: *probe.TraitType,
			Value:     value,
		}
		if probe.DisplayType != nil {
			displayType, err := ParseDisplayType(*probe.DisplayType)
			if err != nil {
				return nil, errors.Wrapf(err, "attributes[%d]", index)
			}
			entry.DisplayType = &displayType
		}
		return entry, nil
	case c == '"':
		var value string
		if err := json.Unmarshal(probe.Value, &value); err != nil {
			return nil, errors.Wrapf(err, "attributes[%d].value", index)
		}
		return StringAttribute{
			TraitType: *probe.TraitType,
			Value:     value,
		}, nil
	default:
		return nil, &types.UnrecognizedAttributeShapeError{Index: index}
	}
}
