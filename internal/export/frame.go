package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/scene"
	"github.com/san-kum/fieldlab/internal/topics"
)

// FrameDoc is the JSON form of one rendered frame.
type FrameDoc struct {
	Topic    topics.Topic    `json:"topic"`
	Title    string          `json:"title"`
	Elapsed  float64         `json:"elapsed"`
	Playing  bool            `json:"playing"`
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	Params   params.Set      `json:"params"`
	Reading  *topics.Reading `json:"reading,omitempty"`
	Commands []scene.Command `json:"commands"`
}

func WriteJSON(w io.Writer, doc FrameDoc) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return nil
}

// WriteText writes one command per line.
func WriteText(w io.Writer, cmds []scene.Command) error {
	for _, c := range cmds {
		if _, err := fmt.Fprintln(w, c.String()); err != nil {
			return err
		}
	}
	return nil
}
