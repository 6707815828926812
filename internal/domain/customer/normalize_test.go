package customer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func num(f float64) *float64 { return &f }

func TestNormalize_Name(t *testing.T) {
	tests := []struct {
		name  string
		input *string
		valid bool
		want  string
	}{
		{name: "absent", input: nil, valid: false},
		{name: "empty", input: str(""), valid: false},
		{name: "whitespace", input: str("   "), valid: false},
		{name: "present", input: str("Alice"), valid: true, want: "Alice"},
		{name: "kept verbatim", input: str(" Bob "), valid: true, want: " Bob "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Normalize(Row{CustomerName: tt.input})
			assert.Equal(t, tt.valid, rec.Name.Valid)
			assert.Equal(t, tt.want, rec.Name.String)
		})
	}
}

func TestNormalize_MonthDay(t *testing.T) {
	tests := []struct {
		name  string
		input *float64
		want  *Preference
	}{
		{name: "absent", input: nil, want: nil},
		{name: "zero", input: num(0), want: nil},
		{name: "negative", input: num(-3), want: nil},
		{name: "integer", input: num(15), want: &Preference{Kind: KindMonthDay, MonthDay: 15}},
		{name: "fraction floors", input: num(7.9), want: &Preference{Kind: KindMonthDay, MonthDay: 7}},
		{name: "small positive floors to zero", input: num(0.5), want: &Preference{Kind: KindMonthDay, MonthDay: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Normalize(Row{CustomerName: str("x"), MonthDay: tt.input})
			assert.Equal(t, tt.want, rec.Preference)
		})
	}
}

func TestNormalize_Weekdays(t *testing.T) {
	rec := Normalize(Row{
		CustomerName: str("Carol"),
		Monday:       str("Y"),
		Tuesday:      str("no"),
		Thursday:     str("yes"),
		Saturday:     str(""),
		Sunday:       str(" y"),
	})

	require.NotNil(t, rec.Preference)
	assert.Equal(t, KindWeekdays, rec.Preference.Kind)
	assert.Equal(t, []time.Weekday{time.Monday, time.Thursday}, rec.Preference.Weekdays.Days())
}

func TestNormalize_NoFlagsMeansNoPreference(t *testing.T) {
	rec := Normalize(Row{CustomerName: str("Dave"), Monday: str("N"), EveryDay: str("no"), Never: str("")})
	assert.Nil(t, rec.Preference)
}

func TestNormalize_FlagsAreCaseInsensitive(t *testing.T) {
	rec := Normalize(Row{CustomerName: str("Eve"), EveryDay: str("yes please")})
	require.NotNil(t, rec.Preference)
	assert.Equal(t, KindEveryDay, rec.Preference.Kind)
}

func TestNormalize_Precedence(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want Kind
	}{
		{
			name: "weekdays overwrite month day",
			row:  Row{MonthDay: num(3), Friday: str("Y")},
			want: KindWeekdays,
		},
		{
			name: "every day overwrites weekdays and month day",
			row:  Row{MonthDay: num(3), Friday: str("Y"), EveryDay: str("Y")},
			want: KindEveryDay,
		},
		{
			name: "never overwrites every day",
			row:  Row{EveryDay: str("Y"), Never: str("Y")},
			want: KindNever,
		},
		{
			name: "never overwrites everything",
			row:  Row{MonthDay: num(10), Monday: str("Y"), EveryDay: str("y"), Never: str("yes")},
			want: KindNever,
		},
		{
			name: "never alone",
			row:  Row{Never: str("Y")},
			want: KindNever,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.row.CustomerName = str("Bob")
			rec := Normalize(tt.row)
			require.NotNil(t, rec.Preference)
			assert.Equal(t, tt.want, rec.Preference.Kind)
		})
	}
}

func TestPrecedenceRules_Order(t *testing.T) {
	assert.Equal(t, []string{"MonthDay", "Weekdays", "EveryDay", "Never"}, PrecedenceRules())
}

func TestNormalize_Deterministic(t *testing.T) {
	row := Row{CustomerName: str("Frank"), MonthDay: num(12), Wednesday: str("Y")}
	assert.Equal(t, Normalize(row), Normalize(row))
}

func TestNormalizeAll_KeepsOrder(t *testing.T) {
	recs := NormalizeAll([]Row{
		{CustomerName: str("a")},
		{CustomerName: nil},
		{CustomerName: str("c")},
	})

	require.Len(t, recs, 3)
	assert.Equal(t, "a", recs[0].Name.String)
	assert.False(t, recs[1].Name.Valid)
	assert.Equal(t, "c", recs[2].Name.String)
}
