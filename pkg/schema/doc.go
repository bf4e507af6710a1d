// Package schema provides a small type-safe validation system for decoded records.
//
// It defines a handful of built-in types (string, float, bool) and support for custom
// validators. A Schema maps field names to types, enabling runtime validation of
// map[string]any records such as the ones produced by encoding/json.
//
// Basic usage:
//
//	s := schema.Schema{
//	    "name":   schema.String(),
//	    "thrust": schema.Float(),
//	    "armed":  schema.Bool(),
//	}
//
//	if err := schema.Validate(s, data); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        // Handle each field violation
//	    }
//	}
//
// ValidateFields checks an explicit list of fields in the given order, which makes the
// first reported violation deterministic.
//
// This package has no dependencies beyond the Go standard library.
package schema
