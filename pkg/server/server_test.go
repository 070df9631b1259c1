package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/learn-atlas/pkg/models/api"
	"github.com/de-tools/learn-atlas/pkg/models/domain"
	"github.com/de-tools/learn-atlas/pkg/services/templates"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(
	ctx context.Context,
	templateID string,
	raw domain.RawFilter,
	requestedBy string,
) (*domain.ReportData, error) {
	args := m.Called(ctx, templateID, raw, requestedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportData), args.Error(1)
}

func testRegistry(t *testing.T) templates.Registry {
	t.Helper()
	registry, err := templates.NewRegistry(domain.ReportTemplate{
		ID:           "employee_progress",
		Name:         "Progreso de Empleados",
		Type:         domain.ReportEmployeeProgress,
		AvailableFor: []domain.Role{domain.RoleAdmin, domain.RoleManager},
		Fields: []domain.ReportField{
			{Key: "name", Label: "Empleado", Type: domain.FieldText},
			{Key: "progress", Label: "Avance", Type: domain.FieldPercentage},
		},
	}, domain.ReportTemplate{
		ID:           "system_performance",
		Name:         "Desempeño del Sistema",
		Type:         domain.ReportSystemPerformance,
		AvailableFor: []domain.Role{domain.RoleAdmin},
		Fields: []domain.ReportField{
			{Key: "course", Label: "Curso", Type: domain.FieldText},
		},
	})
	require.NoError(t, err)
	return registry
}

func sampleReport(registry templates.Registry, t *testing.T) *domain.ReportData {
	tmpl, err := registry.Get("employee_progress")
	require.NoError(t, err)

	return &domain.ReportData{
		ID:          "employee_progress-1",
		Template:    tmpl,
		GeneratedAt: time.Date(2025, time.June, 18, 15, 30, 0, 0, time.UTC),
		GeneratedBy: "admin",
		Data: []domain.Row{
			{"name": "Ana", "progress": 100.0},
			{"name": "Luis", "progress": nil},
		},
		Summary: &domain.ReportSummary{
			TotalRecords: 2,
			Aggregations: map[string]interface{}{},
		},
	}
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	registry := testRegistry(t)
	mockGen := new(mockGenerator)

	router := ConfigureRouter(Config{
		Dependencies: Dependencies{
			Registry:  registry,
			Generator: mockGen,
			Logger:    logger,
		},
	})
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	tests := []struct {
		name           string
		method         string
		path           string
		body           interface{}
		setupMocks     func()
		expectedStatus int
		check          func(t *testing.T, resp *http.Response, body []byte)
	}{
		{
			name:           "ListTemplates filters by role",
			method:         http.MethodGet,
			path:           "/api/v1/templates?role=manager",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, _ *http.Response, body []byte) {
				var tmpls []api.ReportTemplate
				require.NoError(t, json.Unmarshal(body, &tmpls))
				require.Len(t, tmpls, 1)
				assert.Equal(t, "employee_progress", tmpls[0].Id)
			},
		},
		{
			name:           "ListTemplates requires role",
			method:         http.MethodGet,
			path:           "/api/v1/templates",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "GenerateReport",
			method: http.MethodPost,
			path:   "/api/v1/reports/employee_progress/generate",
			body: api.GenerateReportRequest{
				Filter:      api.ReportFilter{Departments: []string{"IT"}},
				RequestedBy: "admin",
			},
			setupMocks: func() {
				mockGen.On("Generate", mock.Anything, "employee_progress",
					domain.RawFilter{Departments: []string{"IT"}}, "admin").
					Return(sampleReport(registry, t), nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp *http.Response, body []byte) {
				var report api.ReportData
				require.NoError(t, json.Unmarshal(body, &report))
				assert.Equal(t, "employee_progress", report.TemplateId)
				assert.Equal(t, 2, report.Summary.TotalRecords)
				require.Len(t, report.Data, 2)
				assert.Equal(t, "Ana", report.Data[0]["name"])
			},
		},
		{
			name:   "GenerateReport unknown template",
			method: http.MethodPost,
			path:   "/api/v1/reports/nope/generate",
			body:   api.GenerateReportRequest{RequestedBy: "admin"},
			setupMocks: func() {
				mockGen.On("Generate", mock.Anything, "nope", domain.RawFilter{}, "admin").
					Return(nil, &domain.TemplateNotFoundError{ID: "nope"}).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "GenerateReport invalid filter",
			method: http.MethodPost,
			path:   "/api/v1/reports/employee_progress/generate",
			body: api.GenerateReportRequest{
				Filter:      api.ReportFilter{DateRange: &api.DateRange{Preset: "fortnight"}},
				RequestedBy: "admin",
			},
			setupMocks: func() {
				mockGen.On("Generate", mock.Anything, "employee_progress", mock.Anything, "admin").
					Return(nil, &domain.InvalidFilterError{Reason: `unknown date range preset "fortnight"`}).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "GenerateReport data source failure stays internal",
			method: http.MethodPost,
			path:   "/api/v1/reports/employee_progress/generate",
			body:   api.GenerateReportRequest{RequestedBy: "admin"},
			setupMocks: func() {
				mockGen.On("Generate", mock.Anything, "employee_progress", domain.RawFilter{}, "admin").
					Return(nil, &domain.DataSourceError{Err: io.ErrUnexpectedEOF}).Once()
			},
			expectedStatus: http.StatusBadGateway,
			check: func(t *testing.T, _ *http.Response, body []byte) {
				assert.Equal(t, "report data source unavailable\n", string(body))
				assert.NotContains(t, string(body), "unexpected EOF")
			},
		},
		{
			name:   "ExportReport CSV",
			method: http.MethodPost,
			path:   "/api/v1/reports/employee_progress/export?format=csv",
			body:   api.ExportReportRequest{RequestedBy: "admin"},
			setupMocks: func() {
				mockGen.On("Generate", mock.Anything, "employee_progress", domain.RawFilter{}, "admin").
					Return(sampleReport(registry, t), nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp *http.Response, body []byte) {
				assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
				assert.Contains(t, string(body), "Empleado,Avance")
				assert.Contains(t, string(body), "Ana,100")
			},
		},
		{
			name:   "ExportReport PDF routes through printable HTML",
			method: http.MethodPost,
			path:   "/api/v1/reports/employee_progress/export?format=pdf",
			body:   api.ExportReportRequest{RequestedBy: "admin"},
			setupMocks: func() {
				mockGen.On("Generate", mock.Anything, "employee_progress", domain.RawFilter{}, "admin").
					Return(sampleReport(registry, t), nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp *http.Response, body []byte) {
				assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
				assert.Contains(t, string(body), "<td>100%</td>")
				assert.Contains(t, string(body), "<td>N/A</td>")
			},
		},
		{
			name:           "ExportReport rejects unknown format",
			method:         http.MethodPost,
			path:           "/api/v1/reports/employee_progress/export?format=docx",
			body:           api.ExportReportRequest{RequestedBy: "admin"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			var reqBody io.Reader
			if tt.body != nil {
				encoded, err := json.Marshal(tt.body)
				require.NoError(t, err)
				reqBody = bytes.NewReader(encoded)
			}

			req, err := http.NewRequest(tt.method, testServer.URL+tt.path, reqBody)
			require.NoError(t, err)

			resp, err := testServer.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.check != nil {
				tt.check(t, resp, body)
			}
		})
	}

	mockGen.AssertExpectations(t)
}
