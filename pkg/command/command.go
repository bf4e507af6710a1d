package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/helmsman/pkg/domain"
	"github.com/aretw0/helmsman/pkg/schema"
)

// Schema is the wire schema every emitted command satisfies.
var Schema = schema.Schema{
	domain.KeyName:        schema.String(),
	domain.KeyThrust:      schema.Float(),
	domain.KeyTorque:      schema.Float(),
	domain.KeyMetalBullet: schema.Bool(),
	domain.KeyLaserBullet: schema.Bool(),
}

// Fields lists the required fields in the order they are checked.
var Fields = domain.CommandKeys

// Validate checks a candidate record against Schema and returns the resulting
// command. Structs are flattened using their mapstructure tags; keys outside the
// schema are kept in Command.Extra.
func Validate(candidate any) (domain.Command, error) {
	switch c := candidate.(type) {
	case nil:
		return domain.Command{}, notRecord(candidate)
	case domain.Command:
		return fromMap(c.Map())
	case *domain.Command:
		if c == nil {
			return domain.Command{}, notRecord(candidate)
		}
		return fromMap(c.Map())
	case map[string]any:
		return fromMap(c)
	}

	rv := reflect.ValueOf(candidate)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return domain.Command{}, notRecord(candidate)
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return domain.Command{}, notRecord(candidate)
		}
	default:
		return domain.Command{}, notRecord(candidate)
	}

	var flat map[string]any
	if err := mapstructure.Decode(rv.Interface(), &flat); err != nil {
		return domain.Command{}, &domain.SchemaError{Reason: fmt.Sprintf("flatten candidate: %v", err)}
	}
	return fromMap(flat)
}

// MustValidate is like Validate but panics on error. It is meant for
// package-level fallback commands built from literals.
func MustValidate(candidate any) domain.Command {
	cmd, err := Validate(candidate)
	if err != nil {
		panic(err)
	}
	return cmd
}

func fromMap(m map[string]any) (domain.Command, error) {
	if err := schema.ValidateFields(Schema, m, Fields...); err != nil {
		return domain.Command{}, toSchemaError(err)
	}

	if err := checkExtras(m); err != nil {
		return domain.Command{}, err
	}

	var cmd domain.Command
	if err := mapstructure.Decode(m, &cmd); err != nil {
		// Unreachable once the schema accepted every field.
		return domain.Command{}, &domain.SchemaError{Reason: err.Error()}
	}
	return cmd, nil
}

// checkExtras rejects extra keys whose values cannot be written as JSON
// (NaN, infinities, funcs, channels). Keys are checked in sorted order.
func checkExtras(m map[string]any) error {
	var keys []string
	for k := range m {
		if _, fixed := Schema[k]; !fixed {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := json.Marshal(m[k]); err != nil {
			return toSchemaError(&schema.ValidationError{
				Key:    k,
				Reason: fmt.Sprintf("not encodable as JSON: %v", err),
				Value:  m[k],
			})
		}
	}
	return nil
}

func toSchemaError(err error) error {
	violations := schema.ValidationErrors(err)
	var first *schema.ValidationError
	if !errors.As(err, &first) {
		return &domain.SchemaError{Reason: err.Error(), Violations: violations}
	}
	return &domain.SchemaError{
		Field:      first.Key,
		Reason:     first.Reason,
		Violations: violations,
	}
}

func notRecord(candidate any) error {
	return &domain.SchemaError{Reason: fmt.Sprintf("candidate is not a record (got %T)", candidate)}
}
