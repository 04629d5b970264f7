package model

import (
	"fmt"
	"time"
)

// XLSXContentType is the media type of exported workbooks
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportFile is a rendered download
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportFilename returns the download name of a workbook generated at t
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("OpsNexus_Report_%s.xlsx", t.Format(DateLayout))
}
