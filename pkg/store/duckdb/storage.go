package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const TrainingRecordsSchema = `
	CREATE TABLE IF NOT EXISTS training_records (
		id VARCHAR NOT NULL,
		user_id VARCHAR NOT NULL,
		user_name VARCHAR,
		department VARCHAR,
		course_id VARCHAR NOT NULL,
		course_name VARCHAR,
		category VARCHAR,
		status VARCHAR,
		progress DOUBLE,
		score DOUBLE,
		assigned_at TIMESTAMP NOT NULL,
		started_at TIMESTAMP,
		completed_at TIMESTAMP,
		due_date TIMESTAMP,
		certificate_id VARCHAR,
		time_spent_min DOUBLE,
		PRIMARY KEY (user_id, course_id, id)
	);
`

var bootQueries = []string{
	TrainingRecordsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		bootQueries := append([]string{}, bootQueries...)

		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
