package nftModels

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/wanderers-nft/nft-metadata/types"
)

func TestDecodeStringAttribute(t *testing.T) {
	entry, err := decodeAttributeEntry(json.RawMessage(`{"trait_type":"Core","value":"Vortex"}`), 0)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	attr, ok := entry.(StringAttribute)
	if !ok {
		t.Fatalf("Expected StringAttribute, got %T", entry)
	}
	if attr.TraitType != "Core" || attr.Value != "Vortex" {
		t.Errorf("Unexpected attribute: %+v", attr)
	}
}

func TestDecodeNumberAttributeWithDisplayType(t *testing.T) {
	entry, err := decodeAttributeEntry(json.RawMessage(`{"trait_type":"Level","value":5,"display_type":"number"}`), 0)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	attr, ok := entry.(NumberAttribute)
	if !ok {
		t.Fatalf("Expected NumberAttribute, got %T", entry)
	}
	if attr.TraitType != "Level" || attr.Value != 5 {
		t.Errorf("Unexpected attribute: %+v", attr)
	}
	if attr.DisplayType == nil || *attr.DisplayType != DisplayTypeNumber {
		t.Errorf("Expected display type number, got %v", attr.DisplayType)
	}
}

func TestDecodeNumberAttributeWithoutDisplayType(t *testing.T) {
	entry, err := decodeAttributeEntry(json.RawMessage(`{"trait_type":"Generation","value":2}`), 0)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	attr, ok := entry.(NumberAttribute)
	if !ok {
		t.Fatalf("Expected NumberAttribute, got %T", entry)
	}
	if attr.DisplayType != nil {
		t.Errorf("Expected nil display type, got %v", *attr.DisplayType)
	}
}

func TestDecodeAttributeRejectsOutOfRangeNumbers(t *testing.T) {
	for _, raw := range []string{
		`{"trait_type":"X","value":-1}`,
		`{"trait_type":"X","value":1.5}`,
		`{"trait_type":"X","value":18446744073709551616}`,
		`{"trait_type":"X","value":1e3}`,
	} {
		_, err := decodeAttributeEntry(json.RawMessage(raw), 0)
		if err == nil {
			t.Errorf("Expected error for %s", raw)
			continue
		}
		var structErr *types.StructuralError
		if !errors.As(err, &structErr) {
			t.Errorf("Expected StructuralError for %s, got %v", raw, err)
		}
	}
}

func TestDecodeAttributeRejectsUnknownDisplayType(t *testing.T) {
	_, err := decodeAttributeEntry(json.RawMessage(`{"trait_type":"Level","value":5,"display_type":"levels"}`), 0)
	if err == nil {
		t.Fatal("Expected error")
	}
	var tokenErr *types.UnknownEnumTokenError
	if !errors.As(err, &tokenErr) {
		t.Fatalf("Expected UnknownEnumTokenError, got %v", err)
	}
	if tokenErr.Token != "levels" {
		t.Errorf("Expected token levels, got %q", tokenErr.Token)
	}
}

func TestDecodeAttributeRejectsUnrecognizedShapes(t *testing.T) {
	for _, raw := range []string{
		`{"trait_type":"X","value":true}`,
		`{"trait_type":"X","value":{"nested":1}}`,
		`{"trait_type":"X","value":[1]}`,
		`{"trait_type":"X"}`,
	} {
		_, err := decodeAttributeEntry(json.RawMessage(raw), 3)
		if err == nil {
			t.Errorf("Expected error for %s", raw)
			continue
		}
		var shapeErr *types.UnrecognizedAttributeShapeError
		if !errors.As(err, &shapeErr) {
			t.Errorf("Expected UnrecognizedAttributeShapeError for %s, got %v", raw, err)
			continue
		}
		if shapeErr.Index != 3 {
			t.Errorf("Expected element index 3, got %d", shapeErr.Index)
		}
	}
}

func TestDecodeAttributeRequiresTraitType(t *testing.T) {
	_, err := decodeAttributeEntry(json.RawMessage(`{"value":"Vortex"}`), 0)
	if err == nil {
		t.Fatal("Expected error")
	}
	var structErr *types.StructuralError
	if !errors.As(err, &structErr) {
		t.Fatalf("Expected StructuralError, got %v", err)
	}
}

func TestMarshalStringAttribute(t *testing.T) {
	got, err := json.Marshal(StringAttribute{TraitType: "Core", Value: "Vortex"})
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	want := `{"trait_type":"Core","value":"Vortex"}`
	if string(got) != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestMarshalNumberAttribute(t *testing.T) {
	got, err := json.Marshal(NumberAttribute{TraitType: "Level", Value: 5})
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	// display_type is omitted when unset, not emitted as null
	want := `{"trait_type":"Level","value":5}`
	if string(got) != want {
		t.Errorf("Expected %s, got %s", want, got)
	}

	displayType := DisplayTypeBoostNumber
	got, err = json.Marshal(NumberAttribute{TraitType: "Level", Value: 5, DisplayType: &displayType})
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	want = `{"trait_type":"Level","value":5,"display_type":"boost_number"}`
	if string(got) != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}
