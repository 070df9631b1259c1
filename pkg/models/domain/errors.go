package domain

import "fmt"

// InvalidFilterError reports a malformed or contradictory filter. It is
// returned before any data access happens.
type InvalidFilterError struct {
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter: %s", e.Reason)
}

// TemplateNotFoundError reports an unknown template id.
type TemplateNotFoundError struct {
	ID string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("report template %q is not registered", e.ID)
}

// DataSourceError wraps a failure of the data-access collaborator during
// assembly. Generation is all-or-nothing: a DataSourceError never comes
// with a partial report.
type DataSourceError struct {
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source failure: %v", e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// RenderSurfaceError reports that a renderer which needs an output
// surface (the print path) could not obtain one. The report data itself
// remains valid and re-renderable in another format.
type RenderSurfaceError struct {
	Format string
}

func (e *RenderSurfaceError) Error() string {
	return fmt.Sprintf("no output surface available for %s rendering", e.Format)
}
