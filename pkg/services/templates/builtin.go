package templates

import "github.com/de-tools/learn-atlas/pkg/models/domain"

// Builtin returns the stock template catalog. It covers every report
// type the platform ships with; deployments can extend it through a
// catalog file (see LoadCatalog).
func Builtin() []domain.ReportTemplate {
	allRoles := []domain.Role{
		domain.RoleAdmin, domain.RoleManager, domain.RoleInstructor,
	}
	adminOnly := []domain.Role{domain.RoleAdmin}

	return []domain.ReportTemplate{
		{
			ID:           "employee_progress",
			Name:         "Progreso de Empleados",
			Type:         domain.ReportEmployeeProgress,
			Description:  "Avance de capacitación por empleado y curso",
			AvailableFor: allRoles,
			Fields: []domain.ReportField{
				{Key: "name", Label: "Empleado", Type: domain.FieldText, Sortable: true, Filterable: true},
				{Key: "department", Label: "Departamento", Type: domain.FieldText, Sortable: true, Filterable: true},
				{Key: "course", Label: "Curso", Type: domain.FieldText, Sortable: true, Filterable: true},
				{Key: "progress", Label: "Avance", Type: domain.FieldPercentage, Sortable: true},
				{Key: "status", Label: "Estado", Type: domain.FieldStatus, Filterable: true},
				{Key: "due_date", Label: "Fecha Límite", Type: domain.FieldDate, Sortable: true},
			},
			Aggregations: []domain.AggregationSpec{
				{Name: "Total de asignaciones", Reducer: domain.ReducerCount},
				{Name: "Avance promedio", Reducer: domain.ReducerAverage, Field: "progress"},
				{Name: "Tasa de finalización", Reducer: domain.ReducerRate, Field: "status", Match: string(domain.StatusCompleted)},
			},
			Charts: []domain.ChartSpec{
				{Type: domain.ChartBar, Title: "Avance por departamento", XKey: "department", YKey: "progress"},
			},
		},
		{
			ID:           "department_statistics",
			Name:         "Estadísticas por Departamento",
			Type:         domain.ReportDepartmentStatistics,
			Description:  "Indicadores de capacitación agregados por departamento",
			AvailableFor: []domain.Role{domain.RoleAdmin, domain.RoleManager},
			Fields: []domain.ReportField{
				{Key: "department", Label: "Departamento", Type: domain.FieldText, Sortable: true, Filterable: true},
				{Key: "name", Label: "Empleado", Type: domain.FieldText, Sortable: true},
				{Key: "course", Label: "Curso", Type: domain.FieldText, Filterable: true},
				{Key: "progress", Label: "Avance", Type: domain.FieldPercentage, Sortable: true},
				{Key: "status", Label: "Estado", Type: domain.FieldStatus, Filterable: true},
			},
			Aggregations: []domain.AggregationSpec{
				{Name: "Total de registros", Reducer: domain.ReducerCount},
				{Name: "Avance promedio", Reducer: domain.ReducerAverage, Field: "progress"},
			},
			Charts: []domain.ChartSpec{
				{Type: domain.ChartPie, Title: "Distribución por estado", XKey: "status", YKey: "progress"},
			},
		},
		{
			ID:           "certifications",
			Name:         "Certificaciones",
			Type:         domain.ReportCertifications,
			Description:  "Certificados emitidos por curso completado",
			AvailableFor: allRoles,
			DefaultFilters: domain.RawFilter{
				Status: []domain.TrainingStatus{domain.StatusCompleted},
			},
			Fields: []domain.ReportField{
				{Key: "name", Label: "Empleado", Type: domain.FieldText, Sortable: true, Filterable: true},
				{Key: "course", Label: "Curso", Type: domain.FieldText, Sortable: true, Filterable: true},
				{Key: "score", Label: "Calificación", Type: domain.FieldNumber, Sortable: true},
				{Key: "completed_at", Label: "Fecha de Finalización", Type: domain.FieldDate, Sortable: true},
				{Key: "certificate_id", Label: "Certificado", Type: domain.FieldBadge},
			},
			Aggregations: []domain.AggregationSpec{
				{Name: "Certificados emitidos", Reducer: domain.ReducerCount, Field: "certificate_id"},
				{Name: "Calificación promedio", Reducer: domain.ReducerAverage, Field: "score"},
			},
		},
		{
			ID:           "pending_assignments",
			Name:         "Asignaciones Pendientes",
			Type:         domain.ReportPendingAssignments,
			Description:  "Cursos asignados aún no completados",
			AvailableFor: allRoles,
			DefaultFilters: domain.RawFilter{
				Status: []domain.TrainingStatus{
					domain.StatusNotStarted, domain.StatusInProgress, domain.StatusOverdue,
				},
			},
			Fields: []domain.ReportField{
				{Key: "name", Label: "Empleado", Type: domain.FieldText, Sortable: true, Filterable: true},
				{Key: "department", Label: "Departamento", Type: domain.FieldText, Filterable: true},
				{Key: "course", Label: "Curso", Type: domain.FieldText, Sortable: true},
				{Key: "due_date", Label: "Fecha Límite", Type: domain.FieldDate, Sortable: true},
				{Key: "status", Label: "Estado", Type: domain.FieldStatus, Filterable: true},
			},
			Aggregations: []domain.AggregationSpec{
				{Name: "Asignaciones pendientes", Reducer: domain.ReducerCount},
				{Name: "Tasa de vencidos", Reducer: domain.ReducerRate, Field: "status", Match: string(domain.StatusOverdue)},
			},
		},
		{
			ID:           "system_performance",
			Name:         "Desempeño del Sistema",
			Type:         domain.ReportSystemPerformance,
			Description:  "Actividad de capacitación por curso y categoría",
			AvailableFor: adminOnly,
			Fields: []domain.ReportField{
				{Key: "course", Label: "Curso", Type: domain.FieldText, Sortable: true, Filterable: true},
				{Key: "category", Label: "Categoría", Type: domain.FieldText, Filterable: true},
				{Key: "progress", Label: "Avance", Type: domain.FieldPercentage, Sortable: true},
				{Key: "time_spent", Label: "Minutos Invertidos", Type: domain.FieldNumber, Sortable: true},
				{Key: "status", Label: "Estado", Type: domain.FieldStatus},
			},
			Aggregations: []domain.AggregationSpec{
				{Name: "Avance promedio", Reducer: domain.ReducerAverage, Field: "progress"},
				{Name: "Minutos totales", Reducer: domain.ReducerSum, Field: "time_spent"},
				{Name: "Tasa de finalización", Reducer: domain.ReducerRate, Field: "status", Match: string(domain.StatusCompleted)},
			},
			Charts: []domain.ChartSpec{
				{Type: domain.ChartLine, Title: "Avance por curso", XKey: "course", YKey: "progress"},
			},
		},
		{
			ID:           "completion_history",
			Name:         "Historial de Finalización",
			Type:         domain.ReportCompletionHistory,
			Description:  "Cursos completados en el período seleccionado",
			AvailableFor: []domain.Role{domain.RoleAdmin, domain.RoleManager},
			DefaultFilters: domain.RawFilter{
				DateRange: &domain.RawDateRange{Preset: domain.PresetThisMonth},
				Status:    []domain.TrainingStatus{domain.StatusCompleted},
			},
			Fields: []domain.ReportField{
				{Key: "name", Label: "Empleado", Type: domain.FieldText, Sortable: true, Filterable: true},
				{Key: "course", Label: "Curso", Type: domain.FieldText, Sortable: true},
				{Key: "completed_at", Label: "Fecha de Finalización", Type: domain.FieldDate, Sortable: true},
				{Key: "score", Label: "Calificación", Type: domain.FieldNumber, Sortable: true},
				{Key: "time_spent", Label: "Minutos Invertidos", Type: domain.FieldNumber},
			},
			Aggregations: []domain.AggregationSpec{
				{Name: "Cursos completados", Reducer: domain.ReducerCount},
				{Name: "Calificación promedio", Reducer: domain.ReducerAverage, Field: "score"},
			},
			Charts: []domain.ChartSpec{
				{Type: domain.ChartArea, Title: "Finalizaciones en el período", XKey: "completed_at", YKey: "score"},
			},
		},
	}
}
