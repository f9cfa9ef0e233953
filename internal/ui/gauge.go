package ui

import "strings"

// Gauge line sets. The thick set needs terminal fonts that render heavy box
// drawing well, so it sits behind the enhanced-graphics capability flag.
const (
	gaugeLineNormal = "─"
	gaugeLineThick  = "━"
)

func gaugeLineSet(enhanced bool) string {
	if enhanced {
		return gaugeLineThick
	}
	return gaugeLineNormal
}

// renderLineGauge draws a titled single-line gauge:
//
//	CPU:
//	70% ━━━━━━━━────────
//
// ratio is the fill fraction and must already be clamped to [0,1] by the
// caller; label is rendered verbatim so it can report the unclamped value.
func renderLineGauge(title, label string, ratio float64, width int, enhanced, light bool) string {
	barWidth := width - visualLength(label) - 1
	if barWidth < 1 {
		barWidth = 1
	}

	filled := int(ratio * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	line := gaugeLineSet(enhanced)
	bar := stylePrimary(light).Render(strings.Repeat(line, filled)) +
		styleMuted(light).Render(strings.Repeat(line, barWidth-filled))

	return styleDefault(light).Render(title) + "\n" +
		styleDefault(light).Render(label) + " " + bar
}
