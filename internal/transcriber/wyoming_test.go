package transcriber

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/nguyentantai21042004/subgen/internal/config"
)

// writeTestWAV produces a short 16kHz mono PCM wav file.
func writeTestWAV(t *testing.T, samples int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "audio.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 16000},
		Data:   make([]int, samples),
	}
	for i := range buf.Data {
		buf.Data[i] = i % 128
	}

	enc := wav.NewEncoder(f, 16000, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// fakeWyomingServer accepts one connection, consumes the audio stream, and
// replies with a transcript event.
func fakeWyomingServer(t *testing.T, transcript string) (addr string, done chan serverResult) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ln.Close() })

	done = make(chan serverResult, 1)
	go func() {
		var res serverResult
		defer func() { done <- res }()

		conn, err := ln.Accept()
		if err != nil {
			res.err = err
			return
		}
		defer conn.Close()

		r := bufio.NewReader(conn)
		for {
			event, err := readEvent(r)
			if err != nil {
				res.err = err
				return
			}
			switch event.Type {
			case eventAudioStart:
				if err := json.Unmarshal(event.Data, &res.format); err != nil {
					res.err = err
					return
				}
			case eventAudioChunk:
				res.pcmBytes += len(event.Payload)
			case eventAudioStop:
				res.err = writeEvent(conn, eventTranscript, transcriptData{Text: transcript}, nil)
				return
			}
		}
	}()

	return ln.Addr().String(), done
}

type serverResult struct {
	format   audioFormat
	pcmBytes int
	err      error
}

func TestWyomingTranscribe(t *testing.T) {
	audioPath := writeTestWAV(t, 4000)
	addr, done := fakeWyomingServer(t, "hello from the server")

	cfg := testConfig(config.MethodWyoming)
	cfg.Wyoming.URI = "tcp://" + addr

	tr, err := New(cfg, &fakeExecutor{}, testLogger())
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	segments, err := tr.Transcribe(ctx, audioPath)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if segments[0].Text != "hello from the server" {
		t.Errorf("Text = %q", segments[0].Text)
	}
	if segments[0].Start != 0 || segments[0].End != 0 {
		t.Errorf("wyoming segment should carry zero timestamps, got %+v", segments[0])
	}

	res := <-done
	if res.err != nil {
		t.Fatalf("server error = %v", res.err)
	}
	want := audioFormat{Rate: 16000, Width: 2, Channels: 1}
	if res.format != want {
		t.Errorf("audio-start format = %+v, want %+v", res.format, want)
	}
	if res.pcmBytes != 4000*2 {
		t.Errorf("streamed %d pcm bytes, want %d", res.pcmBytes, 4000*2)
	}
}

func TestWyomingTranscribeServerClosesEarly(t *testing.T) {
	audioPath := writeTestWAV(t, 100)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		// Drain the audio then hang up without a transcript
		r := bufio.NewReader(conn)
		for {
			event, err := readEvent(r)
			if err != nil || event.Type == eventAudioStop {
				break
			}
		}
		conn.Close()
	}()

	cfg := testConfig(config.MethodWyoming)
	cfg.Wyoming.URI = "tcp://" + ln.Addr().String()

	tr, err := New(cfg, &fakeExecutor{}, testLogger())
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := tr.Transcribe(ctx, audioPath); err == nil {
		t.Error("Transcribe() expected error when server closes before transcript")
	}
}

func TestWyomingTranscribeNoServer(t *testing.T) {
	cfg := testConfig(config.MethodWyoming)
	cfg.Wyoming.URI = "tcp://127.0.0.1:1" // nothing listens here

	tr, err := New(cfg, &fakeExecutor{}, testLogger())
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := tr.Transcribe(ctx, writeTestWAV(t, 10)); err == nil {
		t.Error("Transcribe() expected error when no server is listening")
	}
}
