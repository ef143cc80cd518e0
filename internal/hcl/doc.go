// Package hcl implements the config.Loader interface for HCL environment
// descriptors. It parses descriptor documents with hclparse/gohcl into an
// HCL-specific schema and translates them into the format-agnostic
// config.Descriptor model.
package hcl
