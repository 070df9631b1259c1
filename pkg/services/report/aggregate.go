package report

import (
	"fmt"
	"math"
	"time"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
)

// computeAggregations evaluates the template's declared reducers over
// the full row set. Aggregation formulas live in the template, not here;
// the engine only knows the four reducer kinds.
func computeAggregations(specs []domain.AggregationSpec, rows []domain.Row) map[string]interface{} {
	aggs := make(map[string]interface{}, len(specs))

	for _, spec := range specs {
		switch spec.Reducer {
		case domain.ReducerCount:
			aggs[spec.Name] = reduceCount(spec.Field, rows)
		case domain.ReducerSum:
			aggs[spec.Name] = round2(reduceSum(spec.Field, rows))
		case domain.ReducerAverage:
			aggs[spec.Name] = reduceAverage(spec.Field, rows)
		case domain.ReducerRate:
			aggs[spec.Name] = reduceRate(spec.Field, spec.Match, rows)
		}
	}

	return aggs
}

func reduceCount(field string, rows []domain.Row) int {
	if field == "" {
		return len(rows)
	}
	n := 0
	for _, row := range rows {
		if row[field] != nil {
			n++
		}
	}
	return n
}

func reduceSum(field string, rows []domain.Row) float64 {
	var sum float64
	for _, row := range rows {
		if v, ok := numericValue(row[field]); ok {
			sum += v
		}
	}
	return sum
}

func reduceAverage(field string, rows []domain.Row) float64 {
	var sum float64
	n := 0
	for _, row := range rows {
		if v, ok := numericValue(row[field]); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return round1(sum / float64(n))
}

func reduceRate(field, match string, rows []domain.Row) float64 {
	if len(rows) == 0 {
		return 0
	}
	matched := 0
	for _, row := range rows {
		if fmt.Sprintf("%v", row[field]) == match {
			matched++
		}
	}
	return round1(float64(matched) / float64(len(rows)) * 100)
}

func numericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// buildCharts groups rows by each chart's x key. The y value is the
// average of the y key over the group when it is numeric, otherwise the
// group size.
func buildCharts(specs []domain.ChartSpec, rows []domain.Row) []domain.Chart {
	charts := make([]domain.Chart, 0, len(specs))

	for _, spec := range specs {
		type bucket struct {
			sum   float64
			nums  int
			total int
		}
		order := []string{}
		buckets := map[string]*bucket{}

		for _, row := range rows {
			x := labelValue(row[spec.XKey])
			b, ok := buckets[x]
			if !ok {
				b = &bucket{}
				buckets[x] = b
				order = append(order, x)
			}
			b.total++
			if v, isNum := numericValue(row[spec.YKey]); isNum {
				b.sum += v
				b.nums++
			}
		}

		data := make([]domain.Row, 0, len(order))
		for _, x := range order {
			b := buckets[x]
			var y interface{}
			if b.nums > 0 {
				y = round1(b.sum / float64(b.nums))
			} else {
				y = b.total
			}
			data = append(data, domain.Row{spec.XKey: x, spec.YKey: y})
		}

		charts = append(charts, domain.Chart{
			Type:  spec.Type,
			Title: spec.Title,
			Data:  data,
			XKey:  spec.XKey,
			YKey:  spec.YKey,
		})
	}

	return charts
}

func labelValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "N/A"
	case time.Time:
		return x.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", x)
	}
}
