package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/maxmalkin/sdiff/diff"
	"github.com/maxmalkin/sdiff/ir"
)

type jsonChange struct {
	Path     []string    `json:"path"`
	Type     string      `json:"type"`
	OldValue interface{} `json:"old_value"`
	NewValue interface{} `json:"new_value"`
}

type jsonStats struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Modified  int `json:"modified"`
	Unchanged int `json:"unchanged"`
}

type jsonDiff struct {
	Changes []jsonChange `json:"changes"`
	Stats   jsonStats    `json:"stats"`
}

func renderJSON(d *diff.Diff, w io.Writer) error {
	out := jsonDiff{
		Changes: make([]jsonChange, len(d.Changes)),
		Stats: jsonStats{
			Added:     d.Stats.Added,
			Removed:   d.Stats.Removed,
			Modified:  d.Stats.Modified,
			Unchanged: d.Stats.Unchanged,
		},
	}
	for i, c := range d.Changes {
		path := c.Path
		if path == nil {
			path = []string{}
		}
		out.Changes[i] = jsonChange{
			Path:     path,
			Type:     c.Type.String(),
			OldValue: nodeValue(c.Old),
			NewValue: nodeValue(c.New),
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing diff: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func nodeValue(n *ir.Node) interface{} {
	if n == nil {
		return nil
	}
	return n.Interface()
}
