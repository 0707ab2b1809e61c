package output

import (
	"encoding/json"
	"fmt"

	"github.com/abdul-hamid-achik/reqq/packages/core/catalog"
	"github.com/abdul-hamid-achik/reqq/packages/history"
)

// JSONFormatter writes one indented JSON document per call.
type JSONFormatter struct {
	*settings
}

func NewJSONFormatter(opts ...Option) *JSONFormatter {
	return &JSONFormatter{settings: newSettings(opts)}
}

type JSONNames struct {
	Kind  string   `json:"kind"`
	Names []string `json:"names"`
}

type JSONExecution struct {
	Request     string  `json:"request"`
	Environment string  `json:"environment,omitempty"`
	Text        string  `json:"text"`
	Duration    float64 `json:"duration"` // milliseconds
}

type JSONInspection struct {
	Request      string         `json:"request"`
	Path         string         `json:"path"`
	Placeholders []string       `json:"placeholders"`
	Environments []JSONCoverage `json:"environments"`
}

type JSONCoverage struct {
	Environment string   `json:"environment"`
	Complete    bool     `json:"complete"`
	Missing     []string `json:"missing,omitempty"`
	NonScalar   []string `json:"nonScalar,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type JSONValidation struct {
	Valid   bool              `json:"valid"`
	Results []JSONCheckResult `json:"results"`
}

type JSONCheckResult struct {
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Path  string `json:"path"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

type JSONHistoryEntry struct {
	ID          string  `json:"id"`
	Request     string  `json:"request"`
	Environment string  `json:"environment,omitempty"`
	Status      string  `json:"status"`
	Error       string  `json:"error,omitempty"`
	Bytes       int     `json:"bytes"`
	Digest      string  `json:"digest,omitempty"`
	Duration    float64 `json:"duration"` // milliseconds
	Time        string  `json:"time"`
}

type JSONError struct {
	Error string `json:"error"`
}

func (f *JSONFormatter) FormatNames(kind string, names []string) {
	if names == nil {
		names = []string{}
	}
	f.write(JSONNames{Kind: kind, Names: names})
}

func (f *JSONFormatter) FormatExecution(e *Execution) {
	f.write(JSONExecution{
		Request:     e.Request,
		Environment: e.Environment,
		Text:        e.Text,
		Duration:    float64(e.Duration.Microseconds()) / 1000,
	})
}

func (f *JSONFormatter) FormatInspection(ins *catalog.Inspection) {
	out := JSONInspection{
		Request:      ins.Request,
		Path:         ins.Path,
		Placeholders: ins.Keys,
		Environments: make([]JSONCoverage, 0, len(ins.Coverage)),
	}
	if out.Placeholders == nil {
		out.Placeholders = []string{}
	}
	for _, cov := range ins.Coverage {
		jc := JSONCoverage{
			Environment: cov.Environment,
			Complete:    cov.Complete(),
			Missing:     cov.Missing,
			NonScalar:   cov.NonScalar,
		}
		if cov.Err != nil {
			jc.Error = cov.Err.Error()
		}
		out.Environments = append(out.Environments, jc)
	}
	f.write(out)
}

func (f *JSONFormatter) FormatValidation(results []catalog.CheckResult) {
	out := JSONValidation{Valid: true, Results: make([]JSONCheckResult, 0, len(results))}
	for _, r := range results {
		jr := JSONCheckResult{Kind: string(r.Kind), Name: r.Name, Path: r.Path, Valid: r.Err == nil}
		if r.Err != nil {
			jr.Error = r.Err.Error()
			out.Valid = false
		}
		out.Results = append(out.Results, jr)
	}
	f.write(out)
}

func (f *JSONFormatter) FormatHistory(entries []history.Entry) {
	out := make([]JSONHistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, JSONHistoryEntry{
			ID:          e.ID,
			Request:     e.Request,
			Environment: e.Environment,
			Status:      string(e.Status),
			Error:       e.Error,
			Bytes:       e.Bytes,
			Digest:      e.Digest,
			Duration:    float64(e.Duration.Microseconds()) / 1000,
			Time:        e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	f.write(out)
}

func (f *JSONFormatter) FormatError(err error) {
	data, _ := json.Marshal(JSONError{Error: err.Error()})
	fmt.Fprintln(f.errWriter, string(data))
}

func (f *JSONFormatter) write(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		f.FormatError(err)
		return
	}
	fmt.Fprintln(f.writer, string(data))
}
