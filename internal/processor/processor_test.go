package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/subgen/internal/config"
	"github.com/nguyentantai21042004/subgen/internal/logger"
	"github.com/nguyentantai21042004/subgen/internal/transcriber"
)

// fakeExecutor stands in for ffmpeg: it creates the output file named by the
// last argument.
type fakeExecutor struct {
	fail  bool
	calls [][]string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.ExecuteInDir(ctx, "", name, args...)
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.fail {
		return "", fmt.Errorf("ffmpeg exploded")
	}
	if len(args) > 0 {
		if err := os.WriteFile(args[len(args)-1], []byte("RIFF"), 0644); err != nil {
			return "", err
		}
	}
	return "", nil
}

// fakeTranscriber returns canned segments.
type fakeTranscriber struct {
	segments  []transcriber.Segment
	err       error
	audioPath string
}

func (f *fakeTranscriber) Name() string { return "fake" }

func (f *fakeTranscriber) Transcribe(ctx context.Context, audioPath string) ([]transcriber.Segment, error) {
	f.audioPath = audioPath
	return f.segments, f.err
}

func testSetup(t *testing.T, tr transcriber.Transcriber, exec *fakeExecutor) (Processor, string) {
	t.Helper()

	cfg, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	mediaPath := filepath.Join(dir, "lesson.mp4")
	if err := os.WriteFile(mediaPath, []byte("fake video"), 0644); err != nil {
		t.Fatal(err)
	}

	return New(cfg, exec, tr, logger.New("error")), mediaPath
}

func TestProcess(t *testing.T) {
	tr := &fakeTranscriber{segments: []transcriber.Segment{
		{Start: 0.0, End: 2.0, Text: "Hello world"},
		{Start: 2.5, End: 4.5, Text: "Testing 123"},
	}}
	exec := &fakeExecutor{}

	proc, mediaPath := testSetup(t, tr, exec)

	if err := proc.Process(context.Background(), mediaPath); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	base := strings.TrimSuffix(mediaPath, ".mp4")

	srtContent, err := os.ReadFile(base + ".srt")
	if err != nil {
		t.Fatalf("missing srt output: %v", err)
	}
	if !strings.Contains(string(srtContent), "00:00:00,000 --> 00:00:02,000") {
		t.Errorf("srt content = %q", srtContent)
	}

	ssaContent, err := os.ReadFile(base + ".ssa")
	if err != nil {
		t.Fatalf("missing ssa output: %v", err)
	}
	if !strings.Contains(string(ssaContent), "Dialogue: 0,0:00:00.00,0:00:02.00,Default,,0,0,0,,Hello world") {
		t.Errorf("ssa content = %q", ssaContent)
	}

	// The backend received the extracted wav, not the media file
	if !strings.HasSuffix(tr.audioPath, "_temp.wav") {
		t.Errorf("transcriber got %q, want extracted wav", tr.audioPath)
	}
	// Temp wav cleaned up
	if _, err := os.Stat(tr.audioPath); !os.IsNotExist(err) {
		t.Error("temp wav should be removed after processing")
	}

	// ffmpeg invoked with the whisper-friendly format
	call := exec.calls[0]
	joined := strings.Join(call, " ")
	if call[0] != "ffmpeg" || !strings.Contains(joined, "-ar 16000") || !strings.Contains(joined, "-ac 1") {
		t.Errorf("unexpected ffmpeg call: %v", call)
	}
}

func TestProcessOutputDir(t *testing.T) {
	tr := &fakeTranscriber{segments: []transcriber.Segment{{Start: 0, End: 1, Text: "hi"}}}
	proc, mediaPath := testSetup(t, tr, &fakeExecutor{})

	outDir := t.TempDir()
	proc.(*implProcessor).cfg.Paths.Output = outDir

	if err := proc.Process(context.Background(), mediaPath); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "lesson.srt")); err != nil {
		t.Errorf("srt not in output dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "lesson.ssa")); err != nil {
		t.Errorf("ssa not in output dir: %v", err)
	}
}

func TestProcessMissingInput(t *testing.T) {
	proc, _ := testSetup(t, &fakeTranscriber{}, &fakeExecutor{})

	if err := proc.Process(context.Background(), "no/such/file.mp4"); err == nil {
		t.Error("Process() expected error for missing input")
	}
}

func TestProcessExtractFailure(t *testing.T) {
	proc, mediaPath := testSetup(t, &fakeTranscriber{}, &fakeExecutor{fail: true})

	err := proc.Process(context.Background(), mediaPath)
	if err == nil || !strings.Contains(err.Error(), "extract audio") {
		t.Errorf("Process() error = %v, want extract audio failure", err)
	}
}

func TestProcessTranscribeFailure(t *testing.T) {
	tr := &fakeTranscriber{err: fmt.Errorf("backend down")}
	proc, mediaPath := testSetup(t, tr, &fakeExecutor{})

	err := proc.Process(context.Background(), mediaPath)
	if err == nil || !strings.Contains(err.Error(), "transcribe") {
		t.Errorf("Process() error = %v, want transcribe failure", err)
	}
}

func TestProcessNoSegments(t *testing.T) {
	tr := &fakeTranscriber{} // empty result
	proc, mediaPath := testSetup(t, tr, &fakeExecutor{})

	if err := proc.Process(context.Background(), mediaPath); err != nil {
		t.Fatalf("Process() error = %v, empty transcription is not an error", err)
	}

	base := strings.TrimSuffix(mediaPath, ".mp4")
	if _, err := os.Stat(base + ".srt"); !os.IsNotExist(err) {
		t.Error("no srt should be written for empty transcription")
	}
	if _, err := os.Stat(base + ".ssa"); !os.IsNotExist(err) {
		t.Error("no ssa should be written for empty transcription")
	}
}
