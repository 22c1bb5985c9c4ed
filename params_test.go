package spiral

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	p, err := NewParams()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, DefaultParams(), p)
	diff(t, Pt(-40, 0), p.Start)
	assertClose(t, "max angle", p.MaxAngleDegrees(), 200, 1e-12)
	assertClose(t, "growth rate", p.GrowthRate(), math.Log(math.Phi)/(2*math.Pi), 1e-15)
}

func TestNewParamsOptions(t *testing.T) {
	p, err := NewParams(
		WithStart(Pt(1, 2)),
		WithSampleCount(10),
		WithMaxAngle(math.Pi),
		WithScales(1, 3),
		WithGrowthRatio(2),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := Params{
		Start:            Pt(1, 2),
		SampleCount:      10,
		MaxAngle:         math.Pi,
		ScaleArchimedean: 1,
		ScaleGolden:      3,
		GrowthRatio:      2,
	}
	diff(t, want, p)
}

func TestNewParamsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		opt   ParamOption
		field string
	}{
		{"zero samples", WithSampleCount(0), "SampleCount"},
		{"negative samples", WithSampleCount(-3), "SampleCount"},
		{"zero angle", WithMaxAngle(0), "MaxAngle"},
		{"NaN angle", WithMaxAngle(math.NaN()), "MaxAngle"},
		{"infinite angle", WithMaxAngleDegrees(math.Inf(1)), "MaxAngle"},
		{"ratio one", WithGrowthRatio(1), "GrowthRatio"},
		{"ratio below one", WithGrowthRatio(0.5), "GrowthRatio"},
		{"NaN scale", WithScales(math.NaN(), 1), "ScaleArchimedean"},
		{"infinite golden scale", WithScales(1, math.Inf(-1)), "ScaleGolden"},
		{"infinite start", WithStart(Pt(math.Inf(1), 0)), "Start"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParams(tt.opt)
			var perr *InvalidParameterError
			if !errors.As(err, &perr) {
				t.Fatalf("got error %v, want *InvalidParameterError", err)
			}
			if perr.Field != tt.field {
				t.Errorf("got field %q, want %q", perr.Field, tt.field)
			}
		})
	}
}
