package templates

import (
	"fmt"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
)

// Registry is the process-wide template catalog. It is populated once at
// startup and read-only afterwards, which makes it safe for concurrent
// reads without locking.
type Registry interface {
	// Get returns the template registered under id.
	Get(id string) (domain.ReportTemplate, error)
	// ListFor returns the templates visible to role, in registration order.
	ListFor(role domain.Role) []domain.ReportTemplate
}

type registry struct {
	ordered []domain.ReportTemplate
	byID    map[string]domain.ReportTemplate
}

// NewRegistry builds a registry from the given templates. Duplicate ids
// and duplicate field keys within a template are configuration mistakes
// and fail construction.
func NewRegistry(tmpls ...domain.ReportTemplate) (Registry, error) {
	r := &registry{
		byID: make(map[string]domain.ReportTemplate, len(tmpls)),
	}

	for _, t := range tmpls {
		if t.ID == "" {
			return nil, fmt.Errorf("template id cannot be empty")
		}
		if _, exists := r.byID[t.ID]; exists {
			return nil, fmt.Errorf("template %q is already registered", t.ID)
		}
		if err := validateFields(t); err != nil {
			return nil, fmt.Errorf("template %q: %w", t.ID, err)
		}
		r.byID[t.ID] = t
		r.ordered = append(r.ordered, t)
	}

	return r, nil
}

func validateFields(t domain.ReportTemplate) error {
	if len(t.Fields) == 0 {
		return fmt.Errorf("at least one field must be declared")
	}
	seen := make(map[string]struct{}, len(t.Fields))
	for _, f := range t.Fields {
		if f.Key == "" {
			return fmt.Errorf("field key cannot be empty")
		}
		if _, dup := seen[f.Key]; dup {
			return fmt.Errorf("duplicate field key %q", f.Key)
		}
		seen[f.Key] = struct{}{}
	}
	return nil
}

func (r *registry) Get(id string) (domain.ReportTemplate, error) {
	t, ok := r.byID[id]
	if !ok {
		return domain.ReportTemplate{}, &domain.TemplateNotFoundError{ID: id}
	}
	return t, nil
}

func (r *registry) ListFor(role domain.Role) []domain.ReportTemplate {
	visible := make([]domain.ReportTemplate, 0, len(r.ordered))
	for _, t := range r.ordered {
		if t.VisibleTo(role) {
			visible = append(visible, t)
		}
	}
	return visible
}
