package transcriber

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Wyoming event types used by the ASR flow.
const (
	eventAudioStart = "audio-start"
	eventAudioChunk = "audio-chunk"
	eventAudioStop  = "audio-stop"
	eventTranscript = "transcript"
)

// audioFormat is the data block of audio-start and audio-chunk events.
type audioFormat struct {
	Rate     int `json:"rate"`
	Width    int `json:"width"`
	Channels int `json:"channels"`
}

// transcriptData is the data block of a transcript event.
type transcriptData struct {
	Text string `json:"text"`
}

// wyomingEvent is one protocol unit: a JSON header line, optionally followed
// by a separate data block and a binary payload.
type wyomingEvent struct {
	Type    string
	Data    json.RawMessage
	Payload []byte
}

// eventHeader is the JSON object on the first line of every event. Newer
// servers inline "data"; older ones announce it with "data_length".
type eventHeader struct {
	Type          string          `json:"type"`
	Data          json.RawMessage `json:"data,omitempty"`
	DataLength    int             `json:"data_length,omitempty"`
	PayloadLength int             `json:"payload_length,omitempty"`
}

// writeEvent frames and writes a single event. A nil data or empty payload
// is simply omitted.
func writeEvent(w io.Writer, eventType string, data interface{}, payload []byte) error {
	header := eventHeader{
		Type:          eventType,
		PayloadLength: len(payload),
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal event data: %w", err)
		}
		header.Data = raw
	}

	line, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("marshal event header: %w", err)
	}

	if _, err := w.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write event header: %w", err)
	}
	if len(payload) > 0 {
		if _, err := w.Write(payload); err != nil {
			return fmt.Errorf("write event payload: %w", err)
		}
	}
	return nil
}

// readEvent reads one framed event. Returns io.EOF when the stream ends
// cleanly between events.
func readEvent(r *bufio.Reader) (*wyomingEvent, error) {
	line, err := r.ReadBytes('\n')
	if err != nil {
		if err == io.EOF && len(line) == 0 {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read event header: %w", err)
	}

	var header eventHeader
	if err := json.Unmarshal(line, &header); err != nil {
		return nil, fmt.Errorf("parse event header: %w", err)
	}

	event := &wyomingEvent{Type: header.Type, Data: header.Data}

	if header.DataLength > 0 {
		data := make([]byte, header.DataLength)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, fmt.Errorf("read event data: %w", err)
		}
		event.Data = data
	}

	if header.PayloadLength > 0 {
		payload := make([]byte, header.PayloadLength)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, fmt.Errorf("read event payload: %w", err)
		}
		event.Payload = payload
	}

	return event, nil
}
