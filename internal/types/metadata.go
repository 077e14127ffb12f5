package types

// Metadata is a map of key-value pairs attached to documents and line items
type Metadata map[string]string
