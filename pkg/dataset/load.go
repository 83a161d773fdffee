package dataset

import (
	"context"
	"fmt"
	"log/slog"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
	"github.com/wdm0006/tjstuff/pkg/io/csvio"
	iox "github.com/wdm0006/tjstuff/pkg/io/ioutils"
	"github.com/wdm0006/tjstuff/pkg/io/jsonlio"
	"github.com/wdm0006/tjstuff/pkg/io/parquetio"
	"github.com/wdm0006/tjstuff/pkg/transform/filter"
)

// Supported season file formats.
const (
	FormatAuto    = ""
	FormatCSV     = "csv"
	FormatTSV     = "tsv"
	FormatJSONL   = "jsonl"
	FormatParquet = "parquet"
)

type LoadOptions struct {
	// Format overrides detection by file extension.
	Format string
	// Delimiter for delimited files; 0 sniffs it from the header.
	Delimiter rune
	Strict    bool
	Logger    *slog.Logger
}

// DetectFormat picks a reader format from the path's extension.
func DetectFormat(path string) (string, error) {
	switch ext := iox.BaseExt(path); ext {
	case "csv", "txt":
		return FormatCSV, nil
	case "tsv":
		return FormatTSV, nil
	case "jsonl", "ndjson":
		return FormatJSONL, nil
	case "parquet":
		return FormatParquet, nil
	default:
		return "", fmt.Errorf("unsupported season file extension %q", ext)
	}
}

// ReadRaw reads path into an unnormalized frame.
func ReadRaw(ctx context.Context, path string, opt LoadOptions) (*fr.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := opt.Logger
	if log == nil {
		log = slog.Default()
	}
	format := opt.Format
	if format == FormatAuto {
		var err error
		if format, err = DetectFormat(path); err != nil {
			return nil, err
		}
	}
	switch format {
	case FormatCSV, FormatTSV:
		ro := csvio.ReaderOptions{Delimiter: opt.Delimiter, Strict: opt.Strict}
		if format == FormatTSV && ro.Delimiter == 0 {
			ro.Delimiter = '\t'
		}
		r, err := csvio.Open(path, ro)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		f, err := r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if w := r.Warnings(); w != "" {
			log.Warn("repaired malformed records", "path", path, "warnings", w)
		}
		return f, nil
	case FormatJSONL:
		r, err := jsonlio.Open(path, jsonlio.ReaderOptions{})
		if err != nil {
			return nil, err
		}
		defer r.Close()
		f, err := r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return f, nil
	case FormatParquet:
		f, err := parquetio.ReadAll(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// Load reads and normalizes a season file.
func Load(ctx context.Context, path string, opt LoadOptions) ([]PitchRow, error) {
	raw, err := ReadRaw(ctx, path, opt)
	if err != nil {
		return nil, err
	}
	norm, err := Normalize(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	rows, err := RowsFromFrame(norm)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if opt.Logger != nil {
		opt.Logger.Info("season loaded", "path", path, "rows", len(rows))
	}
	return rows, nil
}

// QualifiedPipeline returns frame steps that keep the same rows TableView
// would for f and minPitches, without ordering them. Used for streaming exports.
func QualifiedPipeline(f Filter, minPitches int64) *fr.Pipeline {
	p := fr.NewPipeline().
		Add(&filter.MinInt{Column: ColPitches, Min: minPitches}).
		Add(&filter.NotNull{Columns: []string{ColStuffPlus, ColPitchGrade}})
	if f.Active() {
		p.Add(filter.NewInSet(ColPitchType, f.Codes()))
	}
	return p
}
