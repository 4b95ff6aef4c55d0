package sanity

import (
	"fmt"
	"path/filepath"

	"github.com/t4sanity/t4sanity/internal/domain"
	"github.com/t4sanity/t4sanity/internal/domain/schema"
)

// Structure (STR) rules probe the dataset directory layout. They depend only
// on the filesystem, so they run even when the snapshot failed to load.

func structureCheckers() []Checker {
	return []Checker{
		&checkFunc{
			rule: domain.Rule{
				ID: "STR001", Name: "version-dir-presence", Severity: domain.SeverityError,
				Description: "A numeric version directory exists under the dataset root directory.",
			},
			checkF: func(ctx *Context) []string {
				if ctx.Versioned() {
					return nil
				}
				return []string{"version directory doesn't exist"}
			},
		},
		&checkFunc{
			rule: domain.Rule{
				ID: "STR002", Name: "annotation-dir-presence", Severity: domain.SeverityError,
				Description: "'annotation/' directory exists under the dataset root directory.",
			},
			checkF: dirPresence("annotation"),
		},
		&checkFunc{
			rule: domain.Rule{
				ID: "STR003", Name: "data-dir-presence", Severity: domain.SeverityWarning,
				Description: "'data/' sensor-data directory exists under the dataset root directory.",
			},
			checkF: dirPresence("data"),
		},
		&checkFunc{
			rule: domain.Rule{
				ID: "STR004", Name: "map-dir-presence", Severity: domain.SeverityWarning,
				Description: "'map/' directory exists under the dataset root directory.",
			},
			checkF: dirPresence("map"),
		},
		&checkFunc{
			rule: domain.Rule{
				ID: "STR005", Name: "bag-dir-presence", Severity: domain.SeverityWarning,
				Description: "'input_bag/' directory exists under the dataset root directory.",
			},
			checkF: dirPresence("input_bag"),
		},
		&checkFunc{
			rule: domain.Rule{
				ID: "STR006", Name: "status-json-presence", Severity: domain.SeverityWarning,
				Description: "'status.json' file exists under the dataset root directory.",
			},
			checkF: dirPresence("status.json"),
		},
		&checkFunc{
			rule: domain.Rule{
				ID: "STR007", Name: "schema-file-presence", Severity: domain.SeverityError,
				Description: "Mandatory schema JSON files exist under the 'annotation/' directory.",
			},
			checkF: mandatorySchemaFiles,
		},
		&checkFunc{
			rule: domain.Rule{
				ID: "STR008", Name: "lanelet-file-presence", Severity: domain.SeverityWarning,
				Description: "'lanelet2_map.osm' file exists under the 'map/' directory.",
			},
			checkF: dirPresence(filepath.Join("map", "lanelet2_map.osm")),
		},
		&checkFunc{
			rule: domain.Rule{
				ID: "STR009", Name: "pointcloud-map-dir-presence", Severity: domain.SeverityWarning,
				Description: "'pointcloud_map.pcd' directory exists under the 'map/' directory.",
			},
			checkF: dirPresence(filepath.Join("map", "pointcloud_map.pcd")),
		},
	}
}

// dirPresence fails when the path relative to the dataset version root does
// not exist.
func dirPresence(rel string) func(*Context) []string {
	return func(ctx *Context) []string {
		if ctx.FileExists(rel) {
			return nil
		}
		return []string{fmt.Sprintf("path not found: %s", filepath.Join(ctx.DataRoot(), rel))}
	}
}

func mandatorySchemaFiles(ctx *Context) []string {
	var reasons []string
	for _, name := range schema.TableNames {
		if name.Optional() {
			continue
		}
		rel := filepath.Join("annotation", name.Filename())
		if !ctx.FileExists(rel) {
			reasons = append(reasons, fmt.Sprintf("missing schema file: %s", rel))
		}
	}
	return reasons
}
