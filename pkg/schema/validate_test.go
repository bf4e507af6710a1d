package schema

import (
	"errors"
	"testing"
)

func shipSchema() Schema {
	return Schema{
		"name":   String(),
		"thrust": Float(),
		"armed":  Bool(),
	}
}

func TestValidate_Success(t *testing.T) {
	data := map[string]any{
		"name":   "hi",
		"thrust": 1.9,
		"armed":  true,
		"extra":  "ignored",
	}

	if err := Validate(shipSchema(), data); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_MissingField(t *testing.T) {
	data := map[string]any{
		"name":  "hi",
		"armed": false,
	}

	err := Validate(shipSchema(), data)
	if err == nil {
		t.Fatal("Validate() should return error for missing field")
	}

	errs := ValidationErrors(err)
	if len(errs) != 1 {
		t.Fatalf("Validate() = %d errors, want 1", len(errs))
	}

	var validErr *ValidationError
	if !errors.As(err, &validErr) {
		t.Fatalf("error should wrap *ValidationError, got %T", errs[0])
	}
	if validErr.Key != "thrust" || validErr.Reason != "required" {
		t.Errorf("got %q/%q, want thrust/required", validErr.Key, validErr.Reason)
	}
}

func TestValidate_ErrorsInLexicalOrder(t *testing.T) {
	data := map[string]any{
		"thrust": "fast",
	}

	errs := ValidationErrors(Validate(shipSchema(), data))
	if len(errs) != 3 {
		t.Fatalf("Validate() = %d errors, want 3", len(errs))
	}

	want := []string{"armed", "name", "thrust"}
	for i, err := range errs {
		if got := err.(*ValidationError).Key; got != want[i] {
			t.Errorf("errs[%d].Key = %q, want %q", i, got, want[i])
		}
	}
}

func TestValidate_EmptySchema(t *testing.T) {
	if err := Validate(Schema{}, map[string]any{"name": "hi"}); err != nil {
		t.Errorf("Validate() with empty schema should return nil, got %v", err)
	}

	var nilSchema Schema
	if err := Validate(nilSchema, nil); err != nil {
		t.Errorf("Validate() with nil schema should return nil, got %v", err)
	}
}

func TestValidateFields_Order(t *testing.T) {
	data := map[string]any{
		"name":   42,
		"thrust": "fast",
	}

	errs := ValidationErrors(ValidateFields(shipSchema(), data, "thrust", "name"))
	if len(errs) != 2 {
		t.Fatalf("ValidateFields() = %d errors, want 2", len(errs))
	}
	if first := errs[0].(*ValidationError); first.Key != "thrust" || first.Value != "fast" {
		t.Errorf("first error = %+v, want thrust with value fast", first)
	}
}

func TestValidateFields_UnknownField(t *testing.T) {
	err := ValidateFields(shipSchema(), map[string]any{}, "shield")
	errs := ValidationErrors(err)
	if len(errs) != 1 || errs[0].(*ValidationError).Reason != "not defined in schema" {
		t.Errorf("ValidateFields(shield) = %v, want not defined in schema", err)
	}
}

func TestAggregateError_Message(t *testing.T) {
	err := Validate(shipSchema(), map[string]any{"name": "hi", "armed": true})
	if got := err.Error(); got != `field "thrust": required` {
		t.Errorf("Error() = %q", got)
	}

	err = Validate(shipSchema(), map[string]any{})
	want := "3 validation errors:\n" +
		"  1. field \"armed\": required\n" +
		"  2. field \"name\": required\n" +
		"  3. field \"thrust\": required\n"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
