package parquetio

import (
	"fmt"

	local "github.com/xitongsys/parquet-go-source/local"
	pr "github.com/xitongsys/parquet-go/reader"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

// ReadAll loads a pitch-record Parquet file into a typed Frame.
func ReadAll(path string) (*fr.Frame, error) {
	pf, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = pf.Close() }()
	rd, err := pr.NewParquetReader(pf, new(pitchRecord), 4)
	if err != nil {
		return nil, fmt.Errorf("parquet reader init: %w", err)
	}
	defer rd.ReadStop()

	f := fr.NewFrame(Schema)
	remaining := int(rd.GetNumRows())
	for remaining > 0 {
		n := remaining
		if n > 4096 {
			n = 4096
		}
		recs := make([]pitchRecord, n)
		if err := rd.Read(&recs); err != nil {
			return nil, fmt.Errorf("parquet read: %w", err)
		}
		for i := range recs {
			appendRecord(f, &recs[i])
		}
		remaining -= n
	}
	return f, nil
}
