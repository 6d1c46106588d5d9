package alerts

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/constants"
)

// Writer writes alerts in the format of the command output, so a JSON or
// YAML consumer can parse notices too.
type Writer struct {
	w      io.Writer
	format string
	color  bool
}

// NewWriter creates a Writer. Color is used only on terminals.
func NewWriter(w io.Writer, format string, noColor bool) *Writer {
	return &Writer{
		w:      w,
		format: format,
		color:  !noColor && isTerminal(w),
	}
}

type alertData struct {
	Level   string   `json:"level" yaml:"level"`
	Message string   `json:"message" yaml:"message"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Write writes one alert. A nil Writer discards it.
func (aw *Writer) Write(a *Alert) error {
	if aw == nil || a == nil {
		return nil
	}
	switch aw.format {
	case constants.FormatJSON, constants.FormatGeoJSON:
		return json.NewEncoder(aw.w).Encode(toData(a))
	case constants.FormatYAML:
		out, err := yaml.Marshal(toData(a))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(aw.w, "---\n%s", out)
		return err
	default:
		return aw.writePlain(a)
	}
}

func (aw *Writer) writePlain(a *Alert) error {
	message := a.String()
	if aw.color {
		message = a.Level.Color() + message + resetColor
	}
	if _, err := fmt.Fprintln(aw.w, message); err != nil {
		return err
	}
	for _, d := range a.Details {
		if _, err := fmt.Fprintf(aw.w, "   %s\n", d); err != nil {
			return err
		}
	}
	return nil
}

func toData(a *Alert) alertData {
	d := alertData{
		Level:   a.Level.String(),
		Message: a.Message,
		Details: a.Details,
	}
	if a.Err != nil {
		d.Error = a.Err.Error()
	}
	return d
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
