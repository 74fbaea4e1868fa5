package models

// DataType is an inferred column value type.
type DataType string

const (
	TypeNumber  DataType = "number"
	TypeDate    DataType = "date"
	TypeBoolean DataType = "boolean"
	TypeText    DataType = "text"
	// TypeUnknown is reported for columns without any non-empty value.
	TypeUnknown DataType = "unknown"
)

// RelationshipPotentialReference is the only relationship type emitted.
const RelationshipPotentialReference = "potential_reference"
