package domain

// PageSize is the physical page format for printable output.
type PageSize string

const (
	PageLetter PageSize = "letter"
	PageA4     PageSize = "a4"
	PageLegal  PageSize = "legal"
)

// Orientation is the printable page orientation.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// ReportConfig is the presentation policy consumed by every renderer.
// It is orthogonal to data assembly: a config never changes which rows a
// report contains, only how they are presented.
type ReportConfig struct {
	PageSize           PageSize
	Orientation        Orientation
	ShowHeader         bool
	ShowFooter         bool
	ShowLogo           bool
	ShowPageNumbers    bool
	ShowGenerationDate bool
	Watermark          string
	CustomStyles       string
}

// DefaultReportConfig is the single source of presentation defaults.
// Every renderer normalizes absent fields through it so that text and
// HTML output never diverge on defaults.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		PageSize:           PageLetter,
		Orientation:        OrientationPortrait,
		ShowHeader:         true,
		ShowFooter:         true,
		ShowLogo:           false,
		ShowPageNumbers:    true,
		ShowGenerationDate: true,
	}
}

// Normalized fills zero-valued enum fields with the documented defaults.
// Boolean toggles are taken as-is.
func (c ReportConfig) Normalized() ReportConfig {
	if c.PageSize == "" {
		c.PageSize = PageLetter
	}
	if c.Orientation == "" {
		c.Orientation = OrientationPortrait
	}
	return c
}
