package sanity

import (
	"fmt"
	"path/filepath"

	"github.com/t4sanity/t4sanity/internal/domain"
	"github.com/t4sanity/t4sanity/internal/domain/schema"
)

// Reference (REF) rules resolve token references between tables (REF001-),
// self-referential next/prev pointers and chain consistency (REF101-), and
// file references on disk (REF201-).

func referenceCheckers() []Checker {
	return []Checker{
		tokenRefChecker("REF001", "scene-to-log", schema.TableScene, schema.TableLog, "log_token"),
		tokenRefChecker("REF002", "scene-to-first-sample", schema.TableScene, schema.TableSample, "first_sample_token"),
		tokenRefChecker("REF003", "scene-to-last-sample", schema.TableScene, schema.TableSample, "last_sample_token"),
		tokenRefChecker("REF004", "sample-to-scene", schema.TableSample, schema.TableScene, "scene_token"),
		tokenRefChecker("REF005", "sample-data-to-sample", schema.TableSampleData, schema.TableSample, "sample_token"),
		tokenRefChecker("REF006", "sample-data-to-ego-pose", schema.TableSampleData, schema.TableEgoPose, "ego_pose_token"),
		tokenRefChecker("REF007", "sample-data-to-calibrated-sensor", schema.TableSampleData, schema.TableCalibratedSensor, "calibrated_sensor_token"),
		tokenRefChecker("REF008", "calibrated-sensor-to-sensor", schema.TableCalibratedSensor, schema.TableSensor, "sensor_token"),
		tokenRefChecker("REF009", "instance-to-category", schema.TableInstance, schema.TableCategory, "category_token"),
		tokenRefChecker("REF010", "instance-to-first-sample-annotation", schema.TableInstance, schema.TableSampleAnnotation, "first_annotation_token"),
		tokenRefChecker("REF011", "instance-to-last-sample-annotation", schema.TableInstance, schema.TableSampleAnnotation, "last_annotation_token"),
		tokenRefChecker("REF012", "lidarseg-to-sample-data", schema.TableLidarseg, schema.TableSampleData, "sample_data_token"),
		tokenRefChecker("REF013", "sample-annotation-to-sample", schema.TableSampleAnnotation, schema.TableSample, "sample_token"),
		tokenRefChecker("REF014", "sample-annotation-to-instance", schema.TableSampleAnnotation, schema.TableInstance, "instance_token"),

		tokenRefChecker("REF101", "sample-next-to-another", schema.TableSample, schema.TableSample, "next"),
		tokenRefChecker("REF102", "sample-prev-to-another", schema.TableSample, schema.TableSample, "prev"),
		tokenRefChecker("REF103", "sample-annotation-next-to-another", schema.TableSampleAnnotation, schema.TableSampleAnnotation, "next"),
		tokenRefChecker("REF104", "sample-annotation-prev-to-another", schema.TableSampleAnnotation, schema.TableSampleAnnotation, "prev"),
		tokenRefChecker("REF105", "sample-data-next-to-another", schema.TableSampleData, schema.TableSampleData, "next"),
		tokenRefChecker("REF106", "sample-data-prev-to-another", schema.TableSampleData, schema.TableSampleData, "prev"),
		&checkFunc{
			rule: domain.Rule{
				ID: "REF107", Name: "sample-chain-consistent", Severity: domain.SeverityError,
				Description: "Walking 'Sample.next' from the scene's first sample matches walking 'Sample.prev' from its last sample.",
			},
			skipF:  skipMissingTable(schema.TableScene, schema.TableSample),
			checkF: checkSampleChain,
		},

		fileRefChecker("REF201", "sample-data-filename-presence", domain.SeverityError, "filename"),
		fileRefChecker("REF202", "sample-data-info-filename-presence", domain.SeverityWarning, "info_filename"),
	}
}

// tokenRefChecker verifies that every non-empty token held in the source
// table's field resolves to a record of the target table. The empty string
// is a list terminator, never a violation.
func tokenRefChecker(id, name string, source, target schema.TableName, field string) Checker {
	return &checkFunc{
		rule: domain.Rule{
			ID: id, Name: name, Severity: domain.SeverityError,
			Description: fmt.Sprintf("'%s.%s' refers to '%s' record.", source, field, target),
		},
		skipF: skipMissingTable(source, target),
		checkF: func(ctx *Context) []string {
			var reasons []string
			for _, rec := range ctx.Table(source) {
				token := rec.String(field)
				if token == "" {
					continue
				}
				if _, ok := ctx.Lookup(target, token); !ok {
					reasons = append(reasons, fmt.Sprintf("no reference to '%s.%s': %s", source, field, token))
				}
			}
			return reasons
		},
	}
}

// checkSampleChain traverses the sample linked list forward from the scene's
// first sample and backward from its last sample, and requires both walks to
// produce the same sequence covering every sample record.
func checkSampleChain(ctx *Context) []string {
	scenes := ctx.Table(schema.TableScene)
	if len(scenes) == 0 {
		return nil // cardinality is REC001's concern
	}
	scene := scenes[0]
	samples := ctx.Table(schema.TableSample)

	forward, err := walkChain(ctx, scene.String("first_sample_token"), "next", len(samples))
	if err != "" {
		return []string{err}
	}
	backward, err := walkChain(ctx, scene.String("last_sample_token"), "prev", len(samples))
	if err != "" {
		return []string{err}
	}

	var reasons []string
	if len(forward) != len(samples) {
		reasons = append(reasons, fmt.Sprintf(
			"forward chain visits %d of %d samples", len(forward), len(samples)))
	}
	if len(backward) != len(forward) {
		reasons = append(reasons, fmt.Sprintf(
			"forward chain has %d samples but backward chain has %d", len(forward), len(backward)))
		return reasons
	}
	for i := range forward {
		j := len(backward) - 1 - i
		if forward[i] != backward[j] {
			reasons = append(reasons, fmt.Sprintf(
				"chain mismatch at position %d: next-walk visits %s but prev-walk visits %s",
				i, forward[i], backward[j]))
		}
	}
	return reasons
}

// walkChain follows a pointer field from start until the empty terminator.
// Visiting more records than the table holds means the pointers form a
// cycle.
func walkChain(ctx *Context, start, field string, limit int) (tokens []string, errReason string) {
	token := start
	for token != "" {
		rec, ok := ctx.Lookup(schema.TableSample, token)
		if !ok {
			return nil, fmt.Sprintf("chain via '%s' reaches unknown sample token: %s", field, token)
		}
		tokens = append(tokens, token)
		if len(tokens) > limit {
			return nil, fmt.Sprintf("chain via '%s' forms a cycle at token: %s", field, token)
		}
		token = rec.String(field)
	}
	return tokens, ""
}

// fileRefChecker verifies that a 'SampleData' path field points at a file
// on disk under the dataset version root.
func fileRefChecker(id, name string, severity domain.Severity, field string) Checker {
	return &checkFunc{
		rule: domain.Rule{
			ID: id, Name: name, Severity: severity,
			Description: fmt.Sprintf("'%s.%s' exists.", schema.TableSampleData, field),
		},
		skipF: skipMissingTable(schema.TableSampleData),
		checkF: func(ctx *Context) []string {
			var reasons []string
			for _, rec := range ctx.Table(schema.TableSampleData) {
				rel := rec.String(field)
				if rel == "" {
					continue
				}
				if !ctx.FileExists(rel) {
					reasons = append(reasons, fmt.Sprintf("file not found: %s", filepath.Join(ctx.DataRoot(), rel)))
				}
			}
			return reasons
		},
	}
}
