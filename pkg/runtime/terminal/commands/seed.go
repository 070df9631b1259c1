package commands

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/de-tools/learn-atlas/pkg/models/store"
	"github.com/de-tools/learn-atlas/pkg/services/config"
	"github.com/de-tools/learn-atlas/pkg/store/duckdb"
	"github.com/de-tools/learn-atlas/pkg/store/records"
)

type SeedCmd struct {
	profilePath string
	profile     string
	count       int
	seed        int64

	output io.Writer
}

// NewSeedCmd fills the records database with synthetic assignments so
// reports can be exercised without a live platform export.
func NewSeedCmd(output io.Writer) *cobra.Command {
	sc := &SeedCmd{output: output}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load synthetic training records into the records database",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.profilePath, "profile", "", "Path to the profiles file")
	cmd.Flags().StringVar(&sc.profile, "profile-name", "default", "Profile name inside the profiles file")
	cmd.Flags().IntVar(&sc.count, "count", 200, "Number of records to generate")
	cmd.Flags().Int64Var(&sc.seed, "seed", 1, "Random seed")

	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (sc *SeedCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	profiles, err := config.NewRegistry(sc.profilePath)
	if err != nil {
		return fmt.Errorf("failed to load profiles from %s: %w", sc.profilePath, err)
	}
	profile, err := profiles.GetProfile(ctx, sc.profile)
	if err != nil {
		return err
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: profile.DbPath})
	if err != nil {
		return fmt.Errorf("failed to open records database: %w", err)
	}
	recordStore, err := records.NewStore(db)
	if err != nil {
		return err
	}

	batch := syntheticRecords(sc.count, sc.seed)
	if err := recordStore.Add(ctx, batch); err != nil {
		return fmt.Errorf("failed to insert records: %w", err)
	}

	_, err = fmt.Fprintf(sc.output, "Inserted %d training records into %s\n", len(batch), profile.DbPath)
	return err
}

var (
	seedNames       = []string{"Ana Torres", "Luis Vega", "Eva Morales", "Carlos Pinto", "María Soto", "Jorge Lara"}
	seedDepartments = []string{"IT", "RRHH", "Ventas", "Operaciones"}
	seedCourses     = []struct{ id, name, category string }{
		{"sec-101", "Seguridad de la Información", "Cumplimiento"},
		{"lid-201", "Liderazgo Efectivo", "Desarrollo"},
		{"ofi-110", "Ofimática Avanzada", "Herramientas"},
		{"cal-130", "Gestión de Calidad", "Cumplimiento"},
	}
	seedStatuses = []string{"completed", "in_progress", "not_started", "overdue"}
)

func syntheticRecords(count int, seed int64) []store.TrainingRecord {
	rng := rand.New(rand.NewSource(seed))
	now := time.Now()

	batch := make([]store.TrainingRecord, 0, count)
	for i := 0; i < count; i++ {
		user := rng.Intn(len(seedNames))
		course := seedCourses[rng.Intn(len(seedCourses))]
		status := seedStatuses[rng.Intn(len(seedStatuses))]
		assigned := now.AddDate(0, 0, -rng.Intn(120))

		r := store.TrainingRecord{
			ID:         fmt.Sprintf("tr-%06d", i),
			UserID:     fmt.Sprintf("u-%03d", user),
			UserName:   seedNames[user],
			Department: seedDepartments[user%len(seedDepartments)],
			CourseID:   course.id,
			CourseName: course.name,
			Category:   course.category,
			Status:     status,
			AssignedAt: assigned,
		}

		switch status {
		case "completed":
			progress := 100.0
			score := 60 + rng.Float64()*40
			spent := 30 + rng.Float64()*300
			completed := assigned.AddDate(0, 0, rng.Intn(30)+1)
			r.Progress = &progress
			r.Score = &score
			r.TimeSpentMin = &spent
			r.StartedAt = &assigned
			r.CompletedAt = &completed
			r.CertificateID = fmt.Sprintf("cert-%06d", i)
		case "in_progress", "overdue":
			progress := rng.Float64() * 95
			spent := rng.Float64() * 200
			r.Progress = &progress
			r.TimeSpentMin = &spent
			r.StartedAt = &assigned
		}

		due := assigned.AddDate(0, 1, 0)
		r.DueDate = &due

		batch = append(batch, r)
	}
	return batch
}
