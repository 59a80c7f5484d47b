package pkz

import (
	"strings"
	"testing"

	"github.com/op/go-logging"
)

func init() {
	logging.SetLevel(logging.WARNING, LogModule)
}

func TestCountFrequencies(t *testing.T) {
	ft := CountFrequencies([]byte("abracadabra"))

	type testRow struct {
		sym   Symbol
		count uint64
	}
	testData := [...]testRow{
		{'a', 5},
		{'b', 2},
		{'r', 2},
		{'c', 1},
		{'d', 1},
		{'z', 0},
		{0, 0},
	}
	for _, row := range testData {
		if actual := ft.Count(row.sym); actual != row.count {
			t.Errorf("Count(%q): expected %d, got %d", rune(row.sym), row.count, actual)
		}
	}
	if actual := ft.Distinct(); actual != 5 {
		t.Errorf("Distinct: expected 5, got %d", actual)
	}
	if actual := ft.Total(); actual != 11 {
		t.Errorf("Total: expected 11, got %d", actual)
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	ft := CountFrequencies(nil)
	if ft.Distinct() != 0 || ft.Total() != 0 {
		t.Errorf("expected empty table, got %d distinct, %d total", ft.Distinct(), ft.Total())
	}
}

func TestFrequencyTable_Dump(t *testing.T) {
	ft := CountFrequencies([]byte("AAAB"))

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tCount(65) = 3\n",
		"\tCount(66) = 1\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ft.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
