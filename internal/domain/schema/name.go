package schema

import (
	"strings"

	"github.com/fatih/camelcase"
)

// TableName identifies one annotation table. The value is the table's
// display name; the on-disk JSON filename is derived from it.
type TableName string

const (
	TableAttribute        TableName = "Attribute"
	TableCalibratedSensor TableName = "CalibratedSensor"
	TableCategory         TableName = "Category"
	TableEgoPose          TableName = "EgoPose"
	TableInstance         TableName = "Instance"
	TableLidarseg         TableName = "Lidarseg"
	TableLog              TableName = "Log"
	TableMap              TableName = "Map"
	TableObjectAnn        TableName = "ObjectAnn"
	TableSample           TableName = "Sample"
	TableSampleAnnotation TableName = "SampleAnnotation"
	TableSampleData       TableName = "SampleData"
	TableScene            TableName = "Scene"
	TableSensor           TableName = "Sensor"
	TableSurfaceAnn       TableName = "SurfaceAnn"
	TableVehicleState     TableName = "VehicleState"
	TableVisibility       TableName = "Visibility"
)

// TableNames lists every table in stable order.
var TableNames = []TableName{
	TableAttribute,
	TableCalibratedSensor,
	TableCategory,
	TableEgoPose,
	TableInstance,
	TableLidarseg,
	TableLog,
	TableMap,
	TableObjectAnn,
	TableSample,
	TableSampleAnnotation,
	TableSampleData,
	TableScene,
	TableSensor,
	TableSurfaceAnn,
	TableVehicleState,
	TableVisibility,
}

// optionalTables may be absent from a dataset without that being an error.
var optionalTables = map[TableName]bool{
	TableObjectAnn:    true,
	TableSurfaceAnn:   true,
	TableLidarseg:     true,
	TableVehicleState: true,
}

// Optional reports whether the table's annotation file may be absent.
func (n TableName) Optional() bool { return optionalTables[n] }

// Mandatory reports whether the engine treats the table's absence as a
// structural failure.
func (n TableName) Mandatory() bool { return !optionalTables[n] }

// Filename returns the JSON file name of the table under the annotation
// directory, e.g. TableSampleData -> "sample_data.json".
func (n TableName) Filename() string {
	words := camelcase.Split(string(n))
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_") + ".json"
}
