/*
Package importer maps loosely-structured external inventory records onto
asset draft fields.

Input is whatever an external inventory script pasted in: a string-keyed
record with no fixed schema. A fixed alias table maps known key variants
("Model", "Model Number") onto draft fields; unknown keys are ignored on
purpose so newer script output keeps importing. Values are coerced to
strings totally (never failing), stripped of line breaks and trimmed.

After mapping, any recognized model number is classified and the proposed
manufacturer/category/type are folded into the update set, and an ordered
vendor rule table derives fields that one manufacturer family conventionally
reuses (Dell prints the model string as the part number). Only the outer
shape is validated: a payload that is not a key/value record at all is
rejected before a single field is produced.
*/
package importer

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vshtohryn/assetserve/internal/utils"
	"github.com/vshtohryn/assetserve/pkg/catalog"
	"github.com/vshtohryn/assetserve/pkg/match"
)

// ErrInvalidFormat reports a payload that cannot be interpreted as a
// key/value record. The import fails closed: no field updates are
// produced.
var ErrInvalidFormat = errors.New("import payload is not a key/value record")

// Field names an asset draft field the normalizer can propose a value for.
type Field string

const (
	FieldMachineName  Field = "machineName"
	FieldManufacturer Field = "manufacturer"
	FieldCategory     Field = "category"
	FieldType         Field = "type"
	FieldModelNumber  Field = "modelNumber"
	FieldPartNumber   Field = "partNumber"
	FieldSerialNumber Field = "serialNumber"
	FieldOS           Field = "os"
	FieldLocation     Field = "location"
	FieldAssignedUser Field = "assignedUser"
	FieldStatus       Field = "status"
	FieldNotes        Field = "notes"
)

// aliasRule maps one external key spelling onto a draft field. The table is
// ordered; when two aliases target the same field the later value wins,
// matching "last write" semantics for messy records.
type aliasRule struct {
	alias string
	field Field
}

var aliasTable = []aliasRule{
	{"Machine Name", FieldMachineName},
	{"Computer", FieldMachineName},
	{"Hostname", FieldMachineName},
	{"Manufacturer", FieldManufacturer},
	{"Make", FieldManufacturer},
	{"Vendor", FieldManufacturer},
	{"Model", FieldModelNumber},
	{"Model Number", FieldModelNumber},
	{"Part Number", FieldPartNumber},
	{"SKU", FieldPartNumber},
	{"Serial", FieldSerialNumber},
	{"Serial Number", FieldSerialNumber},
	{"Service Tag", FieldSerialNumber},
	{"OS", FieldOS},
	{"Operating System", FieldOS},
	{"Location", FieldLocation},
	{"Site", FieldLocation},
	{"Assigned User", FieldAssignedUser},
	{"User", FieldAssignedUser},
	{"Status", FieldStatus},
	{"Notes", FieldNotes},
}

// deriveRule infers one field from another for a specific manufacturer
// family, after normalization and classification have run. Kept as a table
// so a new vendor quirk is a data change, not new control flow.
type deriveRule struct {
	manufacturerPattern string
	fromField           Field
	toField             Field
	onlyIfTargetEmpty   bool
}

var deriveRules = []deriveRule{
	// Dell prints the part number as the model string on the service tag
	// label, so imported Dell models double as part numbers.
	{manufacturerPattern: "Dell", fromField: FieldModelNumber, toField: FieldPartNumber, onlyIfTargetEmpty: true},
}

// Draft carries the pre-existing values the derive rules consult. The
// normalizer proposes updates; it never writes the draft itself.
type Draft struct {
	Manufacturer string
	PartNumber   string
}

// Result is the outcome of a normalization pass.
type Result struct {
	// Fields holds the proposed updates, normalized.
	Fields map[Field]string
	// MatchedAny reports whether at least one record key was recognized.
	MatchedAny bool
}

// ParseRecord interprets a raw JSON blob as a key/value record. Anything
// that is not a JSON object fails with ErrInvalidFormat.
func ParseRecord(data []byte) (map[string]any, error) {
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, firstLine(err.Error()))
	}
	return record, nil
}

// Normalize maps a record onto draft fields. A nil record fails with
// ErrInvalidFormat; a record with no recognized keys is not an error, only
// MatchedAny=false. When a model number was mapped it is classified against
// the catalog and the proposal folded into the result, then the derive
// rules run against the freshly imported or pre-existing manufacturer.
func Normalize(record map[string]any, draft Draft, cat *catalog.Catalog) (Result, error) {
	if record == nil {
		return Result{}, ErrInvalidFormat
	}

	result := Result{Fields: make(map[Field]string)}
	for _, rule := range aliasTable {
		raw, ok := record[rule.alias]
		if !ok {
			continue
		}
		value := utils.CollapseValue(coerceString(raw))
		if value == "" {
			continue
		}
		result.Fields[rule.field] = value
		result.MatchedAny = true
	}

	if model, ok := result.Fields[FieldModelNumber]; ok {
		if cls, ok := match.Classify(model, cat); ok {
			result.Fields[FieldManufacturer] = cls.Manufacturer
			result.Fields[FieldCategory] = string(cls.Category)
			if cls.Type != "" {
				result.Fields[FieldType] = cls.Type
			}
		} else {
			log.Debugf("import: no classification for model %q", model)
		}
	}

	applyDeriveRules(&result, draft)
	return result, nil
}

func applyDeriveRules(result *Result, draft Draft) {
	for _, rule := range deriveRules {
		manufacturer := result.Fields[FieldManufacturer]
		if manufacturer == "" {
			manufacturer = draft.Manufacturer
		}
		if !utils.EqualsIgnoreCase(manufacturer, rule.manufacturerPattern) {
			continue
		}
		source := result.Fields[rule.fromField]
		if source == "" {
			continue
		}
		if rule.onlyIfTargetEmpty {
			if result.Fields[rule.toField] != "" {
				continue
			}
			if rule.toField == FieldPartNumber && draft.PartNumber != "" {
				continue
			}
		}
		result.Fields[rule.toField] = source
	}
}

// coerceString renders any JSON-decoded value as a string. It never
// fails: import values are permissive, only the outer shape is validated.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		// JSON numbers decode as float64; print integers without the
		// trailing ".000000" fmt.Sprint would give via %v on a struct.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(t)
	}
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
