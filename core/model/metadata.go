package nftModels

import (
	"encoding/json"
	stderrors "errors"
	"net/url"
	"strconv"

	"github.com/wanderers-nft/nft-metadata/types"
)

// Metadata is a token-level record following the OpenSea metadata convention.
// Image, Name and Description are required on the wire; the remaining fields
// are optional and their keys are omitted from output when unset.
type Metadata struct {
	// URL to image of the item.
	Image *url.URL
	// External URL to another site.
	ExternalURL *url.URL
	// Human-readable description of the item.
	Description string
	// Name of the item.
	Name string
	// Attributes for the item, in display order. Never nil after a decode.
	Attributes []AttributeEntry
	// Background color of the item.
	BackgroundColor *RGB
	// URL to multi-media attachment for the item.
	AnimationURL *url.URL
	// URL to a YouTube video.
	YoutubeURL *url.URL
}

// Parse decodes raw JSON text into a Metadata value. The decode is atomic:
// either every field lands or an error is returned and nothing escapes.
func Parse(data []byte) (*Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// JSON encodes the metadata back to wire form.
func (m *Metadata) JSON() ([]byte, error) {
	return json.Marshal(m)
}

type metadataWire struct {
	Image           string           `json:"image"`
	ExternalURL     string           `json:"external_url,omitempty"`
	Description     string           `json:"description"`
	Name            string           `json:"name"`
	Attributes      []AttributeEntry `json:"attributes"`
	BackgroundColor string           `json:"background_color,omitempty"`
	AnimationURL    string           `json:"animation_url,omitempty"`
	YoutubeURL      string           `json:"youtube_url,omitempty"`
}

func (m Metadata) MarshalJSON() ([]byte, error) {
	if m.Image == nil {
		return nil, &types.StructuralError{Field: "image", Expected: "absolute URL", Actual: "absent"}
	}
	wire := metadataWire{
		Image:       m.Image.String(),
		Description: m.Description,
		Name:        m.Name,
		Attributes:  m.Attributes,
	}
	// attributes stays in the output even when empty, to keep the schema stable
	if wire.Attributes == nil {
		wire.Attributes = []AttributeEntry{}
	}
	if m.ExternalURL != nil {
		wire.ExternalURL = m.ExternalURL.String()
	}
	if m.BackgroundColor != nil {
		wire.BackgroundColor = formatHexColor(*m.BackgroundColor)
	}
	if m.AnimationURL != nil {
		wire.AnimationURL = m.AnimationURL.String()
	}
	if m.YoutubeURL != nil {
		wire.YoutubeURL = m.YoutubeURL.String()
	}
	return json.Marshal(wire)
}

// metadataProbe distinguishes absent keys from present ones. Unknown keys in
// the input are ignored for forward compatibility.
type metadataProbe struct {
	Image           *string           `json:"image"`
	ExternalURL     *string           `json:"external_url"`
	Description     *string           `json:"description"`
	Name            *string           `json:"name"`
	Attributes      []json.RawMessage `json:"attributes"`
	BackgroundColor *string           `json:"background_color"`
	AnimationURL    *string           `json:"animation_url"`
	YoutubeURL      *string           `json:"youtube_url"`
}

func (m *Metadata) UnmarshalJSON(data []byte) error {
	var probe metadataProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) {
			return &types.StructuralError{
				Field:    typeErr.Field,
				Expected: typeErr.Type.String(),
				Actual:   typeErr.Value,
			}
		}
		return err
	}

	// Missing image/name/description is a hard decode error, not a caller-side
	// validation concern. Semantic sufficiency stays in Validate.
	if probe.Image == nil {
		return requiredFieldError("image", "absolute URL")
	}
	if probe.Description == nil {
		return requiredFieldError("description", "string")
	}
	if probe.Name == nil {
		return requiredFieldError("name", "string")
	}

	decoded := Metadata{
		Description: *probe.Description,
		Name:        *probe.Name,
		Attributes:  make([]AttributeEntry, 0, len(probe.Attributes)),
	}

	var err error
	if decoded.Image, err = parseURLField("image", *probe.Image); err != nil {
		return err
	}
	if probe.ExternalURL != nil {
		if decoded.ExternalURL, err = parseURLField("external_url", *probe.ExternalURL); err != nil {
			return err
		}
	}
	if probe.AnimationURL != nil {
		if decoded.AnimationURL, err = parseURLField("animation_url", *probe.AnimationURL); err != nil {
			return err
		}
	}
	if probe.YoutubeURL != nil {
		if decoded.YoutubeURL, err = parseURLField("youtube_url", *probe.YoutubeURL); err != nil {
			return err
		}
	}
	if probe.BackgroundColor != nil {
		color, err := parseHexColor(*probe.BackgroundColor)
		if err != nil {
			return err
		}
		decoded.BackgroundColor = &color
	}
	for i, raw := range probe.Attributes {
		entry, err := decodeAttributeEntry(raw, i)
		if err != nil {
			return err
		}
		decoded.Attributes = append(decoded.Attributes, entry)
	}

	*m = decoded
	return nil
}

func requiredFieldError(field, expected string) error {
	return &types.StructuralError{Field: field, Expected: expected, Actual: "absent"}
}

// parseURLField checks syntactic parseability only. The codec never resolves
// or fetches anything.
func parseURLField(field, raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return nil, &types.StructuralError{
			Field:    field,
			Expected: "absolute URL",
			Actual:   strconv.Quote(raw),
		}
	}
	return u, nil
}
