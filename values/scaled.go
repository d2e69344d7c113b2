package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tlvkit/docsis"
)

// scaleStep is one rung of a unit ladder: a value evenly divisible by
// factor is rendered using suffix instead of the base unit.
type scaleStep struct {
	factor uint64
	suffix string
}

// formatScaled renders v in its base unit scaled up to the largest step
// that divides it evenly, falling back to the base unit otherwise. steps
// must be ordered from largest factor to smallest.
func formatScaled(v uint64, steps []scaleStep, baseUnit string) string {
	for _, s := range steps {
		if v != 0 && v%s.factor == 0 {
			return fmt.Sprintf("%d %s", v/s.factor, s.suffix)
		}
	}
	return fmt.Sprintf("%d %s", v, baseUnit)
}

// parseScaled reverses formatScaled: a trailing step suffix scales the
// leading number back up by that step's factor; anything else is parsed as
// the bare base unit (or, for a non-string human value, coerced directly).
func parseScaled(human any, steps []scaleStep, baseUnit string) (uint64, error) {
	s, ok := human.(string)
	if !ok {
		return toUint64(human)
	}
	s = strings.TrimSpace(s)
	for _, step := range steps {
		if rest, found := strings.CutSuffix(s, step.suffix); found {
			n, err := strconv.ParseUint(strings.TrimSpace(rest), 10, 64)
			if err != nil {
				return 0, err
			}
			return n * step.factor, nil
		}
	}
	rest := strings.TrimSpace(strings.TrimSuffix(s, baseUnit))
	return strconv.ParseUint(rest, 10, 64)
}

var frequencySteps = []scaleStep{
	{1_000_000_000, "GHz"},
	{1_000_000, "MHz"},
	{1_000, "kHz"},
}

func frequencyToHuman(raw []byte) (any, error) {
	if len(raw) != 4 {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: 4, ActualWidth: len(raw)}
	}
	return formatScaled(readUint(raw), frequencySteps, "Hz"), nil
}

func frequencyFromHuman(human any) ([]byte, error) {
	v, err := parseScaled(human, frequencySteps, "Hz")
	if err != nil {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindFrequency, Input: fmt.Sprint(human)}
	}
	return writeUint(v, 4), nil
}

var bandwidthSteps = []scaleStep{
	{1_000_000_000, "Gbps"},
	{1_000_000, "Mbps"},
	{1_000, "Kbps"},
}

func bandwidthToHuman(raw []byte) (any, error) {
	if len(raw) != 4 {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: 4, ActualWidth: len(raw)}
	}
	return formatScaled(readUint(raw), bandwidthSteps, "bps"), nil
}

func bandwidthFromHuman(human any) ([]byte, error) {
	v, err := parseScaled(human, bandwidthSteps, "bps")
	if err != nil {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindBandwidth, Input: fmt.Sprint(human)}
	}
	return writeUint(v, 4), nil
}

// durationSteps scale a count of seconds up to days/hours/minutes rather
// than a decimal power, since DOCSIS timeout fields are clock durations,
// not data quantities.
var durationSteps = []scaleStep{
	{86400, "days"},
	{3600, "hours"},
	{60, "minutes"},
}

// durationToHuman accepts both the 4-byte (Baseline Privacy timeouts) and
// 2-byte (QoS timeout) widths DOCSIS uses for duration fields.
func durationToHuman(raw []byte) (any, error) {
	if len(raw) != 2 && len(raw) != 4 {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: 4, ActualWidth: len(raw)}
	}
	return formatScaled(readUint(raw), durationSteps, "seconds"), nil
}

// durationFromHuman re-emits at maxLength's width when the caller supplies
// 2 or 4 (the Unenricher passes the node's original wire width; the Bridge
// passes the spec's FixedLength or the document's length field); otherwise it picks the narrowest width that fits the
// value, since a duration reached directly through FromHuman without a
// known width has no other way to recover which of the two wire widths
// DOCSIS uses for it.
func durationFromHuman(human any, maxLength int) ([]byte, error) {
	v, err := parseScaled(human, durationSteps, "seconds")
	if err != nil {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindDuration, Input: fmt.Sprint(human)}
	}
	width := maxLength
	if width != 2 && width != 4 {
		width = 4
		if v <= 0xFFFF {
			width = 2
		}
	}
	return writeUint(v, width), nil
}

func percentageToHuman(raw []byte) (any, error) {
	if len(raw) != 1 {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: 1, ActualWidth: len(raw)}
	}
	if raw[0] > 100 {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: 1, ActualWidth: len(raw)}
	}
	return raw[0], nil
}

func percentageFromHuman(human any) ([]byte, error) {
	v, err := toUint64(human)
	if err != nil || v > 100 {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindPercentage, Input: fmt.Sprint(human)}
	}
	return []byte{byte(v)}, nil
}

// powerQuarterDBToHuman converts DOCSIS's signed quarter-dB wire unit to a
// decimal dB string, e.g. a wire byte of 24 becomes "6.00 dB".
func powerQuarterDBToHuman(raw []byte) (any, error) {
	if len(raw) != 1 {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: 1, ActualWidth: len(raw)}
	}
	quarters := int8(raw[0])
	return fmt.Sprintf("%.2f dB", float64(quarters)/4.0), nil
}

func powerQuarterDBFromHuman(human any) ([]byte, error) {
	s, ok := human.(string)
	if !ok {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindPowerQuarterDB, Input: fmt.Sprint(human)}
	}
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "dB"))
	db, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindPowerQuarterDB, Input: s}
	}
	quarters := int8(db * 4.0)
	return []byte{byte(quarters)}, nil
}
