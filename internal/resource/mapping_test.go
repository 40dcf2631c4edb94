package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// sampleRow заполняет каждую описанную колонку отдельным значением своего типа
func sampleRow(d *Descriptor) Row {
	row := Row{}
	for i, f := range d.Fields {
		switch f.Kind {
		case KindBool:
			row[f.Column] = i%2 == 0
		case KindInt:
			row[f.Column] = i
		case KindStrings:
			row[f.Column] = []any{f.Column + "-a", f.Column + "-b"}
		default:
			row[f.Column] = f.Column + "-value"
		}
	}
	return row
}

func TestMapping_RoundTripIsIdentity(t *testing.T) {
	all := append(Collections(), PersonalInfo)
	for _, d := range all {
		t.Run(d.Name, func(t *testing.T) {
			row := sampleRow(d)
			assert.Equal(t, row, d.ToStore(d.ToAPI(row)))

			payload := d.ToAPI(row)
			assert.Equal(t, payload, d.ToAPI(d.ToStore(payload)))
		})
	}
}

func TestMapping_RenamesKeys(t *testing.T) {
	row := Row{"start_date": "2021-01-01", "is_current_role": true, "employment_type": "Contract"}

	payload := Experiences.ToAPI(row)

	assert.Equal(t, Payload{"startDate": "2021-01-01", "isCurrentRole": true, "employmentType": "Contract"}, payload)
}

func TestMapping_DropsUnknownKeys(t *testing.T) {
	assert.Equal(t, Row{"name": "Go"}, Skills.ToStore(Payload{"name": "Go", "hacker": 1, "start_date": "x"}))
	assert.Equal(t, Payload{"name": "Go"}, Skills.ToAPI(Row{"name": "Go", "slot": "primary"}))
}

func TestWritable_StripsReadOnlyFields(t *testing.T) {
	row := Skills.Writable(Row{"id": "abc", "created_at": "t", "name": "Go", "order": 2})
	assert.Equal(t, Row{"name": "Go", "order": 2}, row)
}

func TestWritableColumns_ExcludeOrderAndMeta(t *testing.T) {
	assert.Equal(t, []string{"name", "category", "proficiency", "icon"}, Skills.WritableColumns())
}

func TestBuild_PanicsOnUnmappedRequiredField(t *testing.T) {
	assert.Panics(t, func() {
		(&Descriptor{Name: "broken", Fields: []Field{{API: "a", Column: "a"}}, Required: []string{"b"}}).Build()
	})
}
