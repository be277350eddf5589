package utils_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/shade/token"
	"github.com/takoeight0821/shade/utils"
)

func TestErrorAt(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	where := token.Span{
		Start: token.Location{Offset: 4, Line: 2, Column: 3},
		End:   token.Location{Offset: 5, Line: 2, Column: 4},
	}
	err := utils.ErrorAt(where, cause)
	if err.Error() != "at 2:3: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Errorf("ErrorAt does not wrap its cause")
	}
	var pos utils.PosError
	if !errors.As(err, &pos) || pos.Where != where {
		t.Errorf("errors.As(PosError) = %v", pos)
	}
}

func TestReadTestData(t *testing.T) {
	t.Parallel()

	data := utils.ReadTestData([]byte(`
- label: kept
  enable: true
  input: "1"
  expected:
    eval: "1"
- label: dropped
  enable: false
  input: "2"
`))
	expected := []utils.TestData{
		{Label: "kept", Enable: true, Input: "1", Expected: map[string]string{"eval": "1"}},
	}
	if diff := cmp.Diff(expected, data); diff != "" {
		t.Errorf("ReadTestData mismatch (-want +got):\n%s", diff)
	}
}

func TestFindSourceFiles(t *testing.T) {
	t.Parallel()

	files, err := utils.FindSourceFiles("../testdata")
	if err != nil {
		t.Fatalf("FindSourceFiles returned error: %v", err)
	}
	expected := []string{"../testdata/arith.shade", "../testdata/lists.shade"}
	if diff := cmp.Diff(expected, files); diff != "" {
		t.Errorf("FindSourceFiles mismatch (-want +got):\n%s", diff)
	}
}
