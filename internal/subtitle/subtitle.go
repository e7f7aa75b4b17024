// Package subtitle serializes transcript segments into the SRT and
// SubStation Alpha text formats.
package subtitle

import (
	"fmt"
	"os"
	"strings"

	"github.com/nguyentantai21042004/subgen/internal/transcriber"
)

// ssaHeader is the fixed SubStation Alpha v4.00+ preamble written before the
// dialogue lines.
var ssaHeader = []string{
	"[Script Info]",
	"Title: FCP Generated Subtitles",
	"ScriptType: v4.00+",
	"PlayResX: 1920",
	"PlayResY: 1080",
	"ScaledBorderAndShadow: yes",
	"",
	"[V4+ Styles]",
	"Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding",
	"Style: Default,Arial,20,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,2,10,10,10,1",
	"",
	"[Events]",
	"Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text",
}

// RenderSRT serializes segments as sequential numbered SRT cues.
func RenderSRT(segments []transcriber.Segment) string {
	var b strings.Builder
	for i, seg := range segments {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n",
			i+1,
			FormatSRTTimestamp(seg.Start),
			FormatSRTTimestamp(seg.End),
			strings.TrimSpace(seg.Text),
		)
	}
	return b.String()
}

// RenderSSA serializes segments as a SubStation Alpha script.
func RenderSSA(segments []transcriber.Segment) string {
	var b strings.Builder
	b.WriteString(strings.Join(ssaHeader, "\n") + "\n")
	for _, seg := range segments {
		fmt.Fprintf(&b, "Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n",
			FormatSSATimestamp(seg.Start),
			FormatSSATimestamp(seg.End),
			strings.TrimSpace(seg.Text),
		)
	}
	return b.String()
}

// WriteSRT writes segments to path in SRT format.
func WriteSRT(path string, segments []transcriber.Segment) error {
	if err := os.WriteFile(path, []byte(RenderSRT(segments)), 0644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}

// WriteSSA writes segments to path in SSA format.
func WriteSSA(path string, segments []transcriber.Segment) error {
	if err := os.WriteFile(path, []byte(RenderSSA(segments)), 0644); err != nil {
		return fmt.Errorf("write ssa: %w", err)
	}
	return nil
}
