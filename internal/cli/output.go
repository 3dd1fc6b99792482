package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/native/errors"
	"github.com/jmgilman/go/native/fs/core"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// textual is implemented by results with a human-readable form.
type textual interface {
	text() string
}

type printer struct {
	format string
	w      io.Writer
}

func newPrinter(format string, w io.Writer) (*printer, error) {
	switch format {
	case formatText, formatJSON, formatYAML:
		return &printer{format: format, w: w}, nil
	default:
		return nil, errors.Newf(errors.CodeInvalidInput, "invalid output format %q: must be text, json or yaml", format)
	}
}

func (p *printer) print(v any) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		if t, ok := v.(textual); ok {
			_, err := fmt.Fprintln(p.w, t.text())
			return err
		}
		_, err := fmt.Fprintln(p.w, v)
		return err
	}
}

// statResult is the printable form of core.FileStatus.
type statResult struct {
	Path    string     `json:"path" yaml:"path"`
	Type    string     `json:"type" yaml:"type"`
	Mode    string     `json:"mode" yaml:"mode"`
	Size    int64      `json:"size" yaml:"size"`
	UID     uint32     `json:"uid" yaml:"uid"`
	GID     uint32     `json:"gid" yaml:"gid"`
	ModTime *time.Time `json:"modTime,omitempty" yaml:"modTime,omitempty"`
}

func newStatResult(path string, st core.FileStatus) statResult {
	r := statResult{
		Path: path,
		Type: st.Type.String(),
		Mode: st.Mode.String(),
		Size: st.Size,
		UID:  st.UID,
		GID:  st.GID,
	}
	if !st.ModTime.IsZero() {
		t := st.ModTime.UTC()
		r.ModTime = &t
	}
	return r
}

func (r statResult) text() string {
	s := fmt.Sprintf("path: %s\ntype: %s\nmode: %s", r.Path, r.Type, r.Mode)
	if r.Type == core.FileTypeMissing.String() {
		return s
	}
	s += fmt.Sprintf("\nsize: %d\nuid: %d\ngid: %d", r.Size, r.UID, r.GID)
	if r.ModTime != nil {
		s += "\nmodified: " + r.ModTime.Format(time.RFC3339Nano)
	}
	return s
}

type modeResult struct {
	Path string `json:"path" yaml:"path"`
	Mode string `json:"mode" yaml:"mode"`
}

func (r modeResult) text() string { return r.Mode }

type linkResult struct {
	Link   string `json:"link" yaml:"link"`
	Target string `json:"target" yaml:"target"`
}

func (r linkResult) text() string { return r.Target }
