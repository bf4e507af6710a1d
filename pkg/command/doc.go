// Package command validates candidate ship commands against the five-field wire schema.
//
// A decision policy may return a domain.Command, a map[string]any or any struct carrying
// mapstructure tags. Validate turns each of these into a domain.Command or fails with a
// *domain.SchemaError naming the first offending field, so nothing malformed ever reaches
// the frame encoder.
package command
