// Package datasettest builds small on-disk datasets that satisfy every
// sanity rule. Tests start from a valid dataset and break exactly the
// invariant they exercise.
package datasettest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/t4sanity/t4sanity/internal/domain/schema"
)

// Tables returns a fresh copy of the canonical valid dataset: one scene
// holding a three-sample chain captured by a single lidar. Numeric values
// are float64 so in-memory tables match what JSON decoding produces.
func Tables() map[schema.TableName]schema.Table {
	return map[schema.TableName]schema.Table{
		schema.TableAttribute: {
			{"token": "at1", "name": "vehicle_state.moving", "description": "Object is moving."},
		},
		schema.TableCalibratedSensor: {
			{
				"token":             "cs1",
				"sensor_token":      "se1",
				"translation":       []any{0.0, 0.0, 2.0},
				"rotation":          []any{1.0, 0.0, 0.0, 0.0},
				"camera_intrinsic":  []any{},
				"camera_distortion": []any{},
			},
		},
		schema.TableCategory: {
			{"token": "c1", "name": "vehicle.car", "description": "Car.", "index": nil},
			{"token": "c2", "name": "pedestrian.adult", "description": "Adult pedestrian.", "index": nil},
		},
		schema.TableEgoPose: {
			egoPose("e1", 100.0),
			egoPose("e2", 200.0),
			egoPose("e3", 300.0),
		},
		schema.TableInstance: {
			{
				"token":                  "i1",
				"category_token":         "c1",
				"instance_name":          "car-0001",
				"nbr_annotations":        3.0,
				"first_annotation_token": "a1",
				"last_annotation_token":  "a3",
			},
		},
		schema.TableLog: {
			{"token": "l1", "logfile": "", "vehicle": "x2", "data_captured": "2024-07-01", "location": "odaiba"},
		},
		schema.TableMap: {
			{"token": "m1", "category": "lanelet2", "filename": "map/lanelet2_map.osm", "log_tokens": []any{"l1"}},
		},
		schema.TableSample: {
			sample("s1", 100.0, "", "s2"),
			sample("s2", 200.0, "s1", "s3"),
			sample("s3", 300.0, "s2", ""),
		},
		schema.TableSampleAnnotation: {
			sampleAnnotation("a1", "s1", "", "a2"),
			sampleAnnotation("a2", "s2", "a1", "a3"),
			sampleAnnotation("a3", "s3", "a2", ""),
		},
		schema.TableSampleData: {
			sampleData("d1", "s1", "e1", 100.0, "", "d2"),
			sampleData("d2", "s2", "e2", 200.0, "d1", "d3"),
			sampleData("d3", "s3", "e3", 300.0, "d2", ""),
		},
		schema.TableScene: {
			{
				"token":              "sc1",
				"name":               "odaiba-2024-07-01",
				"description":        "",
				"log_token":          "l1",
				"nbr_samples":        3.0,
				"first_sample_token": "s1",
				"last_sample_token":  "s3",
			},
		},
		schema.TableSensor: {
			{"token": "se1", "channel": "LIDAR_CONCAT", "modality": "lidar"},
		},
		schema.TableVisibility: {
			{"token": "v1", "level": "full", "description": "Fully visible."},
		},
	}
}

func egoPose(token string, timestamp float64) schema.Record {
	return schema.Record{
		"token":       token,
		"translation": []any{0.0, 0.0, 0.0},
		"rotation":    []any{1.0, 0.0, 0.0, 0.0},
		"timestamp":   timestamp,
	}
}

func sample(token string, timestamp float64, prev, next string) schema.Record {
	return schema.Record{
		"token":       token,
		"timestamp":   timestamp,
		"scene_token": "sc1",
		"next":        next,
		"prev":        prev,
	}
}

func sampleAnnotation(token, sampleToken, prev, next string) schema.Record {
	return schema.Record{
		"token":            token,
		"sample_token":     sampleToken,
		"instance_token":   "i1",
		"attribute_tokens": []any{"at1"},
		"visibility_token": "v1",
		"translation":      []any{10.0, 0.0, 0.0},
		"size":             []any{1.8, 4.5, 1.5},
		"rotation":         []any{1.0, 0.0, 0.0, 0.0},
		"num_lidar_pts":    42.0,
		"num_radar_pts":    0.0,
		"next":             next,
		"prev":             prev,
	}
}

func sampleData(token, sampleToken, egoPoseToken string, timestamp float64, prev, next string) schema.Record {
	return schema.Record{
		"token":                   token,
		"sample_token":            sampleToken,
		"ego_pose_token":          egoPoseToken,
		"calibrated_sensor_token": "cs1",
		"filename":                "data/LIDAR_CONCAT/" + token + ".pcd.bin",
		"fileformat":              "pcd.bin",
		"width":                   0.0,
		"height":                  0.0,
		"timestamp":               timestamp,
		"is_key_frame":            true,
		"next":                    next,
		"prev":                    prev,
	}
}

// Snapshot builds an in-memory snapshot of the canonical dataset.
func Snapshot() *schema.Snapshot {
	return schema.NewSnapshot(Tables())
}

// Write materializes the canonical dataset on disk as parent/id/1 and
// returns the dataset root parent/id.
func Write(t testing.TB, parent, id string) string {
	t.Helper()

	dbRoot := filepath.Join(parent, id)
	dataRoot := filepath.Join(dbRoot, "1")

	mkdir(t, filepath.Join(dataRoot, "annotation"))
	mkdir(t, filepath.Join(dataRoot, "data", "LIDAR_CONCAT"))
	mkdir(t, filepath.Join(dataRoot, "map", "pointcloud_map.pcd"))
	mkdir(t, filepath.Join(dataRoot, "input_bag"))

	for name, records := range Tables() {
		RewriteTable(t, dataRoot, name, records)
	}
	for _, rec := range Tables()[schema.TableSampleData] {
		writeFile(t, filepath.Join(dataRoot, rec.String("filename")), []byte("pointcloud"))
	}
	writeFile(t, filepath.Join(dataRoot, "map", "lanelet2_map.osm"), []byte("<osm/>"))
	writeFile(t, filepath.Join(dataRoot, "status.json"), []byte("{}"))

	return dbRoot
}

// DataRoot returns the version directory of a dataset written by Write.
func DataRoot(dbRoot string) string {
	return filepath.Join(dbRoot, "1")
}

// RewriteTable replaces one annotation table file under dataRoot.
func RewriteTable(t testing.TB, dataRoot string, name schema.TableName, records schema.Table) {
	t.Helper()
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		t.Fatalf("encoding %s: %v", name.Filename(), err)
	}
	writeFile(t, filepath.Join(dataRoot, "annotation", name.Filename()), data)
}

// LoadTable reads one annotation table file back from disk.
func LoadTable(t testing.TB, dataRoot string, name schema.TableName) schema.Table {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dataRoot, "annotation", name.Filename()))
	if err != nil {
		t.Fatalf("reading %s: %v", name.Filename(), err)
	}
	var records schema.Table
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("decoding %s: %v", name.Filename(), err)
	}
	return records
}

func mkdir(t testing.TB, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
}

func writeFile(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
