package transcriber

import (
	"bufio"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/nguyentantai21042004/subgen/internal/config"
	"github.com/nguyentantai21042004/subgen/internal/logger"
)

// chunkFrames is how many PCM frames go into each audio-chunk event.
const chunkFrames = 16 * 1024

type implWyoming struct {
	uri    string
	logger logger.Logger
}

func (t *implWyoming) Name() string {
	return config.MethodWyoming
}

// Transcribe streams the WAV file to a Wyoming server and waits for the
// transcript event. The server reports no timings, so the result is a single
// zero-timestamp segment.
func (t *implWyoming) Transcribe(ctx context.Context, audioPath string) ([]Segment, error) {
	addr := strings.TrimPrefix(t.uri, "tcp://")

	t.logger.Info(ctx, "Connecting to Wyoming server: %s", addr)

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial wyoming server: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("set connection deadline: %w", err)
		}
	}

	if err := t.streamAudio(ctx, conn, audioPath); err != nil {
		return nil, err
	}

	text, err := t.awaitTranscript(conn)
	if err != nil {
		return nil, err
	}

	t.logger.Info(ctx, "Wyoming transcription completed (%d chars)", len(text))
	return []Segment{{Start: 0, End: 0, Text: text}}, nil
}

// streamAudio sends audio-start, the PCM chunks, and audio-stop.
func (t *implWyoming) streamAudio(ctx context.Context, conn net.Conn, audioPath string) error {
	f, err := os.Open(audioPath)
	if err != nil {
		return fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	decoder.ReadInfo()
	if err := decoder.Err(); err != nil {
		return fmt.Errorf("read wav header: %w", err)
	}
	if decoder.SampleRate == 0 || decoder.NumChans == 0 {
		return fmt.Errorf("invalid wav file: %s", audioPath)
	}

	format := audioFormat{
		Rate:     int(decoder.SampleRate),
		Width:    int(decoder.BitDepth) / 8,
		Channels: int(decoder.NumChans),
	}

	w := bufio.NewWriter(conn)
	if err := writeEvent(w, eventAudioStart, format, nil); err != nil {
		return err
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: format.Channels,
			SampleRate:  format.Rate,
		},
		Data:           make([]int, chunkFrames*format.Channels),
		SourceBitDepth: int(decoder.BitDepth),
	}

	for {
		n, err := decoder.PCMBuffer(buf)
		if err != nil {
			return fmt.Errorf("read pcm: %w", err)
		}
		if n == 0 {
			break
		}

		payload := make([]byte, n*2)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(payload[i*2:], uint16(int16(buf.Data[i])))
		}
		if err := writeEvent(w, eventAudioChunk, format, payload); err != nil {
			return err
		}
	}

	if err := writeEvent(w, eventAudioStop, nil, nil); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush audio stream: %w", err)
	}

	t.logger.Debug(ctx, "Audio streamed to Wyoming server: %s", audioPath)
	return nil
}

// awaitTranscript reads events until a transcript arrives.
func (t *implWyoming) awaitTranscript(conn net.Conn) (string, error) {
	r := bufio.NewReader(conn)
	for {
		event, err := readEvent(r)
		if err != nil {
			if err == io.EOF {
				return "", fmt.Errorf("wyoming server closed connection before transcript")
			}
			return "", err
		}

		if event.Type != eventTranscript {
			continue
		}

		var data transcriptData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return "", fmt.Errorf("parse transcript: %w", err)
		}
		return data.Text, nil
	}
}
