package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Metadata RunMetadata `json:"metadata"`
	Bodies   []string    `json:"bodies"`
	Frames   []Frame     `json:"frames"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, rec *Recording) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Metadata: *meta, Bodies: rec.Bodies, Frames: rec.Frames})
}

func ExportJSONFile(path string, meta *RunMetadata, rec *Recording) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeInto(file, &err)
	return ExportJSON(file, meta, rec)
}
